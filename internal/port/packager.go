package port

import (
	"context"
	"time"

	"trainerbills/internal/domain"
)

// BatchPackager renders a batch of records and publishes the archive.
// An empty batch returns domain.ErrNoMatchingRecords; any render failure
// aborts the whole batch and nothing is published.
type BatchPackager interface {
	Package(ctx context.Context, records []domain.BillingRecord, target time.Time) (*domain.InvoiceBatch, error)
}
