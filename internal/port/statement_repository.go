package port

import (
	"context"

	"github.com/google/uuid"

	"cardlens/internal/domain"
)

// StatementRepository manages persisted parse results.
type StatementRepository interface {
	Save(ctx context.Context, rec *domain.StatementRecord) error
	GetByJobID(ctx context.Context, jobID uuid.UUID) (*domain.StatementRecord, error)
	List(ctx context.Context, offset, limit int) ([]domain.StatementRecord, int, error)
}
