package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cardlens/internal/domain"
	"cardlens/internal/service"
)

// MockParseService is a mock implementation of service.ParseService.
type MockParseService struct {
	mock.Mock
}

func (m *MockParseService) Upload(ctx context.Context, input service.UploadInput) (*domain.ParseJob, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseJob), args.Error(1)
}

func (m *MockParseService) UploadBatch(ctx context.Context, inputs []service.UploadInput) ([]domain.ParseJob, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ParseJob), args.Error(1)
}

func (m *MockParseService) GetJob(ctx context.Context, id uuid.UUID) (*domain.ParseJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseJob), args.Error(1)
}

func (m *MockParseService) GetResult(ctx context.Context, jobID uuid.UUID) (*domain.StatementRecord, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatementRecord), args.Error(1)
}

func (m *MockParseService) ListResults(ctx context.Context, offset, limit int) ([]domain.StatementRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.StatementRecord), args.Int(1), args.Error(2)
}

func (m *MockParseService) DeleteJob(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockParseService) ProcessJob(ctx context.Context, job *domain.ParseJob) {
	m.Called(ctx, job)
}
