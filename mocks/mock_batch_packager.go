package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"trainerbills/internal/domain"
)

// MockBatchPackager is a mock implementation of port.BatchPackager.
type MockBatchPackager struct {
	mock.Mock
}

func (m *MockBatchPackager) Package(ctx context.Context, records []domain.BillingRecord, target time.Time) (*domain.InvoiceBatch, error) {
	args := m.Called(ctx, records, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceBatch), args.Error(1)
}
