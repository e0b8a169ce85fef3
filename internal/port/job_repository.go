package port

import (
	"context"

	"github.com/google/uuid"

	"cardlens/internal/domain"
)

// JobRepository manages parse job rows.
type JobRepository interface {
	Create(ctx context.Context, job *domain.ParseJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ParseJob, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.JobStatus, progress int, message string) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	// Requeue returns a claimed job to the pending pool after a
	// transient failure so a later poll can claim it again.
	Requeue(ctx context.Context, id uuid.UUID, message string) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ClaimQueued atomically moves up to limit pending jobs to processing and
	// returns them, so concurrent workers never pick up the same job.
	ClaimQueued(ctx context.Context, limit int) ([]domain.ParseJob, error)
	List(ctx context.Context, offset, limit int) ([]domain.ParseJob, int, error)
}
