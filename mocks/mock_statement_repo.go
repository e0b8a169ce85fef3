package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cardlens/internal/domain"
)

// MockStatementRepo is a mock implementation of port.StatementRepository.
type MockStatementRepo struct {
	mock.Mock
}

func (m *MockStatementRepo) Save(ctx context.Context, rec *domain.StatementRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockStatementRepo) GetByJobID(ctx context.Context, jobID uuid.UUID) (*domain.StatementRecord, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatementRecord), args.Error(1)
}

func (m *MockStatementRepo) List(ctx context.Context, offset, limit int) ([]domain.StatementRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.StatementRecord), args.Int(1), args.Error(2)
}
