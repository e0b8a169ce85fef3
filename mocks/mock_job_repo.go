package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cardlens/internal/domain"
)

// MockJobRepo is a mock implementation of port.JobRepository.
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.ParseJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ParseJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseJob), args.Error(1)
}

func (m *MockJobRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.JobStatus, progress int, message string) error {
	args := m.Called(ctx, id, status, progress, message)
	return args.Error(0)
}

func (m *MockJobRepo) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	args := m.Called(ctx, id, errMsg)
	return args.Error(0)
}

func (m *MockJobRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockJobRepo) Requeue(ctx context.Context, id uuid.UUID, message string) error {
	args := m.Called(ctx, id, message)
	return args.Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockJobRepo) ClaimQueued(ctx context.Context, limit int) ([]domain.ParseJob, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ParseJob), args.Error(1)
}

func (m *MockJobRepo) List(ctx context.Context, offset, limit int) ([]domain.ParseJob, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ParseJob), args.Int(1), args.Error(2)
}
