package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ParseJob represents one statement parsing job.
type ParseJob struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Filename     string     `db:"filename" json:"filename"`
	Status       JobStatus  `db:"status" json:"status"`
	Progress     int        `db:"progress" json:"progress"`
	Message      string     `db:"message" json:"message"`
	ErrorMessage string     `db:"error_message" json:"error_message,omitempty"`
	ForceOCR     bool       `db:"force_ocr" json:"force_ocr"`
	Attempts     int        `db:"attempts" json:"attempts"`
	S3Bucket     string     `db:"s3_bucket" json:"-"`
	S3Key        string     `db:"s3_key" json:"-"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
	CompletedAt  *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}

// StatementRecord is a persisted ParseResult linked to its job. The full
// typed result is stored as JSON; headline columns are denormalized for
// listing and export.
type StatementRecord struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	JobID             uuid.UUID       `db:"job_id" json:"job_id"`
	Issuer            Issuer          `db:"issuer" json:"issuer"`
	CardNumber        string          `db:"card_number" json:"card_number"`
	StatementDate     string          `db:"statement_date" json:"statement_date"`
	PaymentDueDate    string          `db:"payment_due_date" json:"payment_due_date"`
	TotalAmountDue    string          `db:"total_amount_due" json:"total_amount_due"`
	Currency          string          `db:"currency" json:"currency"`
	OverallConfidence float64         `db:"overall_confidence" json:"overall_confidence"`
	EngineUsed        Engine          `db:"engine_used" json:"engine_used"`
	OCRRequired       bool            `db:"ocr_required" json:"ocr_required"`
	Result            json.RawMessage `db:"result" json:"result"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
}

// NewStatementRecord denormalizes a ParseResult into its storage row.
func NewStatementRecord(jobID uuid.UUID, res *ParseResult) (*StatementRecord, error) {
	raw, err := json.Marshal(res)
	if err != nil {
		return nil, err
	}

	rec := &StatementRecord{
		ID:                uuid.New(),
		JobID:             jobID,
		Issuer:            res.Issuer,
		Currency:          res.TotalAmountDue.Currency,
		OverallConfidence: res.Confidence.Overall,
		EngineUsed:        res.Metadata.EngineUsed,
		OCRRequired:       res.Metadata.OCRRequired,
		Result:            raw,
		CreatedAt:         time.Now().UTC(),
	}
	if res.CardNumber.Value != nil {
		rec.CardNumber = *res.CardNumber.Value
	}
	if res.StatementDate.Value != nil {
		rec.StatementDate = *res.StatementDate.Value
	}
	if res.PaymentDueDate.Value != nil {
		rec.PaymentDueDate = *res.PaymentDueDate.Value
	}
	if res.TotalAmountDue.Value != nil {
		rec.TotalAmountDue = res.TotalAmountDue.Value.StringFixed(2)
	}
	return rec, nil
}
