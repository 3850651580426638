package port

import (
	"time"

	"trainerbills/internal/domain"
)

// InvoiceRenderer turns one billing record into a finished invoice document.
// Render is a pure function of the record, the target date, and the static
// branding asset; identical input produces identical bytes.
type InvoiceRenderer interface {
	Render(rec *domain.BillingRecord, target time.Time) ([]byte, error)
}
