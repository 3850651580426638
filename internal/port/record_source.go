package port

import (
	"context"

	"trainerbills/internal/domain"
)

// RecordSource abstracts the spreadsheet backing the billing data.
// FetchAll returns every data row in sheet order, keyed by column header.
type RecordSource interface {
	FetchAll(ctx context.Context) ([]domain.RawRow, error)
}
