package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"trainerbills/internal/domain"
)

// MockRecordSource is a mock implementation of port.RecordSource.
type MockRecordSource struct {
	mock.Mock
}

func (m *MockRecordSource) FetchAll(ctx context.Context) ([]domain.RawRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawRow), args.Error(1)
}
