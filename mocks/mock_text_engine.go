package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cardlens/internal/domain"
	"cardlens/internal/port"
)

// MockTextEngine is a mock implementation of port.TextEngine.
type MockTextEngine struct {
	mock.Mock
}

func (m *MockTextEngine) Name() domain.Engine {
	args := m.Called()
	return args.Get(0).(domain.Engine)
}

func (m *MockTextEngine) Extract(ctx context.Context, doc port.Document) *port.ExtractionAttempt {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*port.ExtractionAttempt)
}
