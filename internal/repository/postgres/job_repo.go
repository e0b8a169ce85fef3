package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"cardlens/internal/domain"
	"cardlens/internal/port"
)

type jobRepo struct {
	db *sqlx.DB
}

// NewJobRepo creates a new PostgreSQL-backed JobRepository.
func NewJobRepo(db *sqlx.DB) port.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.ParseJob) error {
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	query := `INSERT INTO parse_jobs (
		id, filename, status, progress, message, error_message,
		force_ocr, attempts, s3_bucket, s3_key, file_size,
		created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6,
		$7, $8, $9, $10, $11,
		$12, $13
	)`

	_, err := r.db.ExecContext(ctx, query,
		job.ID, job.Filename, job.Status, job.Progress, job.Message, job.ErrorMessage,
		job.ForceOCR, job.Attempts, job.S3Bucket, job.S3Key, job.FileSize,
		job.CreatedAt, job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("jobRepo.Create: %w", err)
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ParseJob, error) {
	var job domain.ParseJob
	err := r.db.GetContext(ctx, &job, "SELECT * FROM parse_jobs WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("jobRepo.GetByID: %w", err)
	}
	return &job, nil
}

func (r *jobRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.JobStatus, progress int, message string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE parse_jobs SET status = $2, progress = $3, message = $4, updated_at = $5
		 WHERE id = $1`,
		id, status, progress, message, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("jobRepo.UpdateStatus: %w", err)
	}
	return checkAffected(res, domain.ErrJobNotFound)
}

func (r *jobRepo) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE parse_jobs SET status = $2, error_message = $3, updated_at = $4, completed_at = $4
		 WHERE id = $1`,
		id, domain.JobStatusFailed, errMsg, now)
	if err != nil {
		return fmt.Errorf("jobRepo.MarkFailed: %w", err)
	}
	return checkAffected(res, domain.ErrJobNotFound)
}

func (r *jobRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE parse_jobs SET status = $2, progress = 100, message = 'done',
		 updated_at = $3, completed_at = $3 WHERE id = $1`,
		id, domain.JobStatusCompleted, now)
	if err != nil {
		return fmt.Errorf("jobRepo.MarkCompleted: %w", err)
	}
	return checkAffected(res, domain.ErrJobNotFound)
}

// Requeue puts a job back in the pending pool. Attempts is left alone
// here; ClaimQueued increments it on the next claim.
func (r *jobRepo) Requeue(ctx context.Context, id uuid.UUID, message string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE parse_jobs SET status = $2, progress = 0, message = $3, updated_at = $4
		 WHERE id = $1`,
		id, domain.JobStatusPending, message, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("jobRepo.Requeue: %w", err)
	}
	return checkAffected(res, domain.ErrJobNotFound)
}

// Delete removes the job row; the statement row follows via the FK
// cascade.
func (r *jobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM parse_jobs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("jobRepo.Delete: %w", err)
	}
	return checkAffected(res, domain.ErrJobNotFound)
}

// ClaimQueued flips up to limit pending jobs to processing in one statement.
// SKIP LOCKED keeps concurrent worker instances from claiming the same row.
func (r *jobRepo) ClaimQueued(ctx context.Context, limit int) ([]domain.ParseJob, error) {
	var jobs []domain.ParseJob
	err := r.db.SelectContext(ctx, &jobs,
		`UPDATE parse_jobs SET status = $1, attempts = attempts + 1, updated_at = NOW()
		 WHERE id IN (
			SELECT id FROM parse_jobs
			WHERE status = $2
			ORDER BY created_at
			LIMIT $3
			FOR UPDATE SKIP LOCKED
		 )
		 RETURNING *`,
		domain.JobStatusProcessing, domain.JobStatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("jobRepo.ClaimQueued: %w", err)
	}
	return jobs, nil
}

func (r *jobRepo) List(ctx context.Context, offset, limit int) ([]domain.ParseJob, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM parse_jobs"); err != nil {
		return nil, 0, fmt.Errorf("jobRepo.List count: %w", err)
	}

	var jobs []domain.ParseJob
	err := r.db.SelectContext(ctx, &jobs,
		"SELECT * FROM parse_jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("jobRepo.List: %w", err)
	}
	return jobs, total, nil
}

func checkAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
