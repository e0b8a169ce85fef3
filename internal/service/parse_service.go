package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"cardlens/internal/config"
	"cardlens/internal/domain"
	"cardlens/internal/port"
)

// MaxBatchFiles caps how many statements one batch upload may carry.
const MaxBatchFiles = 10

// UploadInput is the DTO for statement upload requests.
type UploadInput struct {
	File     multipart.File
	Header   *multipart.FileHeader
	ForceOCR bool
}

// Parser is the statement parsing core as the service layer sees it.
type Parser interface {
	Parse(ctx context.Context, doc port.Document, forceOCR bool) (*domain.ParseResult, error)
}

// ParseService defines the statement parsing workflow contract.
type ParseService interface {
	Upload(ctx context.Context, input UploadInput) (*domain.ParseJob, error)
	UploadBatch(ctx context.Context, inputs []UploadInput) ([]domain.ParseJob, error)
	GetJob(ctx context.Context, id uuid.UUID) (*domain.ParseJob, error)
	GetResult(ctx context.Context, jobID uuid.UUID) (*domain.StatementRecord, error)
	ListResults(ctx context.Context, offset, limit int) ([]domain.StatementRecord, int, error)
	// DeleteJob removes the job, its parsed result, and the stored
	// document.
	DeleteJob(ctx context.Context, id uuid.UUID) error
	// ProcessJob downloads a claimed job's document and runs the parse
	// pipeline, recording the outcome on the job row.
	ProcessJob(ctx context.Context, job *domain.ParseJob)
}

type parseService struct {
	jobRepo    port.JobRepository
	stmtRepo   port.StatementRepository
	storage    port.ObjectStorage
	parser     Parser
	s3cfg      *config.S3Config
	maxRetries int
}

// NewParseService creates a new ParseService implementation. maxRetries
// is the total attempt budget per job; transient failures requeue the
// job until the budget is spent.
func NewParseService(
	jobRepo port.JobRepository,
	stmtRepo port.StatementRepository,
	storage port.ObjectStorage,
	parser Parser,
	s3cfg *config.S3Config,
	maxRetries int,
) ParseService {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &parseService{
		jobRepo:    jobRepo,
		stmtRepo:   stmtRepo,
		storage:    storage,
		parser:     parser,
		s3cfg:      s3cfg,
		maxRetries: maxRetries,
	}
}

func (s *parseService) Upload(ctx context.Context, input UploadInput) (*domain.ParseJob, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.s3cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Magic-byte check: the extension alone is not trusted.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	if _, ok := domain.AllowedContentTypes[baseContentType(http.DetectContentType(buf[:n]))]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	jobID := uuid.New()
	s3Key := fmt.Sprintf("statements/%s/%s", jobID, input.Header.Filename)

	job := &domain.ParseJob{
		ID:       jobID,
		Filename: input.Header.Filename,
		Status:   domain.JobStatusPending,
		Message:  "queued",
		ForceOCR: input.ForceOCR,
		S3Bucket: s.s3cfg.Bucket,
		S3Key:    s3Key,
		FileSize: input.Header.Size,
	}

	log.Printf("parseService.Upload: accepting %s (%d bytes, force_ocr=%t) as job %s",
		input.Header.Filename, input.Header.Size, input.ForceOCR, jobID)

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: "application/pdf",
		Size:        input.Header.Size,
	}); err != nil {
		log.Printf("parseService.Upload: storage upload failed: %v", err)
		return nil, domain.ErrUploadFailed
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("creating parse job: %w", err)
	}
	return job, nil
}

func (s *parseService) UploadBatch(ctx context.Context, inputs []UploadInput) ([]domain.ParseJob, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrNoFilesProvided
	}
	if len(inputs) > MaxBatchFiles {
		return nil, domain.ErrBatchTooLarge
	}

	jobs := make([]domain.ParseJob, 0, len(inputs))
	for i := range inputs {
		job, err := s.Upload(ctx, inputs[i])
		if err != nil {
			return nil, fmt.Errorf("file %q: %w", inputs[i].Header.Filename, err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

func (s *parseService) GetJob(ctx context.Context, id uuid.UUID) (*domain.ParseJob, error) {
	return s.jobRepo.GetByID(ctx, id)
}

func (s *parseService) GetResult(ctx context.Context, jobID uuid.UUID) (*domain.StatementRecord, error) {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	return s.stmtRepo.GetByJobID(ctx, jobID)
}

func (s *parseService) ListResults(ctx context.Context, offset, limit int) ([]domain.StatementRecord, int, error) {
	return s.stmtRepo.List(ctx, offset, limit)
}

func (s *parseService) DeleteJob(ctx context.Context, id uuid.UUID) error {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	// The statement row goes with the job row via the FK cascade; the
	// stored PDF is cleaned up best-effort.
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, job.S3Bucket, job.S3Key); err != nil {
		log.Printf("parseService.DeleteJob: object cleanup failed for %s/%s: %v",
			job.S3Bucket, job.S3Key, err)
	}
	log.Printf("parseService.DeleteJob: job %s deleted", id)
	return nil
}

func (s *parseService) ProcessJob(ctx context.Context, job *domain.ParseJob) {
	if err := s.jobRepo.UpdateStatus(ctx, job.ID, domain.JobStatusProcessing, 10, "downloading"); err != nil {
		log.Printf("parseService.ProcessJob: job %s status update failed: %v", job.ID, err)
	}

	data, err := s.storage.Download(ctx, job.S3Bucket, job.S3Key)
	if err != nil {
		s.retry(ctx, job, fmt.Sprintf("download failed: %v", err))
		return
	}

	if err := s.jobRepo.UpdateStatus(ctx, job.ID, domain.JobStatusProcessing, 40, "parsing"); err != nil {
		log.Printf("parseService.ProcessJob: job %s status update failed: %v", job.ID, err)
	}

	res, err := s.parser.Parse(ctx, port.Document{Bytes: data, Filename: job.Filename}, job.ForceOCR)
	if err != nil {
		// Unreadable documents are terminal; every softer extraction
		// failure already came back as a degraded result. Anything else
		// (timeout, infrastructure) gets another attempt.
		if errors.Is(err, domain.ErrDocumentUnreadable) {
			s.fail(ctx, job, domain.ErrDocumentUnreadable.Error())
		} else {
			s.retry(ctx, job, fmt.Sprintf("parse failed: %v", err))
		}
		return
	}

	rec, err := domain.NewStatementRecord(job.ID, res)
	if err != nil {
		s.fail(ctx, job, fmt.Sprintf("serializing result: %v", err))
		return
	}
	if err := s.stmtRepo.Save(ctx, rec); err != nil {
		s.retry(ctx, job, fmt.Sprintf("saving result: %v", err))
		return
	}

	if err := s.jobRepo.MarkCompleted(ctx, job.ID); err != nil {
		log.Printf("parseService.ProcessJob: job %s completion update failed: %v", job.ID, err)
	}
	log.Printf("parseService.ProcessJob: job %s completed (issuer=%s overall=%.2f)",
		job.ID, res.Issuer, res.Confidence.Overall)
}

// retry requeues a transiently failed job while its attempt budget
// lasts; job.Attempts already counts the attempt that just failed.
func (s *parseService) retry(ctx context.Context, job *domain.ParseJob, msg string) {
	if job.Attempts >= s.maxRetries {
		s.fail(ctx, job, msg)
		return
	}
	log.Printf("parseService.ProcessJob: job %s attempt %d/%d failed, requeueing: %s",
		job.ID, job.Attempts, s.maxRetries, msg)
	if err := s.jobRepo.Requeue(ctx, job.ID, msg); err != nil {
		log.Printf("parseService.ProcessJob: job %s requeue failed: %v", job.ID, err)
	}
}

func (s *parseService) fail(ctx context.Context, job *domain.ParseJob, msg string) {
	log.Printf("parseService.ProcessJob: job %s failed: %s", job.ID, msg)
	if err := s.jobRepo.MarkFailed(ctx, job.ID, msg); err != nil {
		log.Printf("parseService.ProcessJob: job %s failure update failed: %v", job.ID, err)
	}
}

// baseContentType strips parameters like "; charset=utf-8".
func baseContentType(ct string) string {
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}
