package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"trainerbills/internal/domain"
)

// MockInvoiceRenderer is a mock implementation of port.InvoiceRenderer.
type MockInvoiceRenderer struct {
	mock.Mock
}

func (m *MockInvoiceRenderer) Render(rec *domain.BillingRecord, target time.Time) ([]byte, error) {
	args := m.Called(rec, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
