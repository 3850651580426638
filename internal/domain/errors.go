package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDateInput means the submitted billing date could not be
	// parsed as dd-mm-yyyy (or dd/mm/yyyy). Reported before any I/O.
	ErrInvalidDateInput = errors.New("billing date must be in dd-mm-yyyy format")

	// ErrSourceUnavailable wraps any record-source fetch or auth failure.
	ErrSourceUnavailable = errors.New("record source unavailable")

	// ErrNoMatchingRecords signals that zero rows matched the target date.
	// It is a warning, not a failure: the run halts cleanly with no archive.
	ErrNoMatchingRecords = errors.New("no billing records found for that date")

	// ErrArchiveNotFound means no archive has been published yet.
	ErrArchiveNotFound = errors.New("no invoice archive has been generated")
)

// MissingFieldError reports a required column absent from a source row.
// A missing field aborts the whole batch; no partial archive is produced.
type MissingFieldError struct {
	Column string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("row is missing required column %q", e.Column)
}

// IsMissingField reports whether err is (or wraps) a MissingFieldError.
func IsMissingField(err error) bool {
	var mf *MissingFieldError
	return errors.As(err, &mf)
}
