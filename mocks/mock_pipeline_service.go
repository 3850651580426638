package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"trainerbills/internal/domain"
)

// MockPipelineService is a mock implementation of service.PipelineService.
type MockPipelineService struct {
	mock.Mock
}

func (m *MockPipelineService) GenerateForDate(ctx context.Context, dateInput string) (*domain.RunResult, error) {
	args := m.Called(ctx, dateInput)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RunResult), args.Error(1)
}
