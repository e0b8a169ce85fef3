package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"cardlens/internal/domain"
	"cardlens/internal/port"
)

type statementRepo struct {
	db *sqlx.DB
}

// NewStatementRepo creates a new PostgreSQL-backed StatementRepository.
func NewStatementRepo(db *sqlx.DB) port.StatementRepository {
	return &statementRepo{db: db}
}

func (r *statementRepo) Save(ctx context.Context, rec *domain.StatementRecord) error {
	query := `INSERT INTO statements (
		id, job_id, issuer, card_number, statement_date, payment_due_date,
		total_amount_due, currency, overall_confidence, engine_used,
		ocr_required, result, created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6,
		$7, $8, $9, $10,
		$11, $12, $13
	)
	ON CONFLICT (job_id) DO UPDATE SET
		issuer = EXCLUDED.issuer,
		card_number = EXCLUDED.card_number,
		statement_date = EXCLUDED.statement_date,
		payment_due_date = EXCLUDED.payment_due_date,
		total_amount_due = EXCLUDED.total_amount_due,
		currency = EXCLUDED.currency,
		overall_confidence = EXCLUDED.overall_confidence,
		engine_used = EXCLUDED.engine_used,
		ocr_required = EXCLUDED.ocr_required,
		result = EXCLUDED.result`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.JobID, rec.Issuer, rec.CardNumber, rec.StatementDate, rec.PaymentDueDate,
		rec.TotalAmountDue, rec.Currency, rec.OverallConfidence, rec.EngineUsed,
		rec.OCRRequired, rec.Result, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("statementRepo.Save: %w", err)
	}
	return nil
}

func (r *statementRepo) GetByJobID(ctx context.Context, jobID uuid.UUID) (*domain.StatementRecord, error) {
	var rec domain.StatementRecord
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM statements WHERE job_id = $1", jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrResultNotFound
		}
		return nil, fmt.Errorf("statementRepo.GetByJobID: %w", err)
	}
	return &rec, nil
}

func (r *statementRepo) List(ctx context.Context, offset, limit int) ([]domain.StatementRecord, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM statements"); err != nil {
		return nil, 0, fmt.Errorf("statementRepo.List count: %w", err)
	}

	var recs []domain.StatementRecord
	err := r.db.SelectContext(ctx, &recs,
		"SELECT * FROM statements ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("statementRepo.List: %w", err)
	}
	return recs, total, nil
}
