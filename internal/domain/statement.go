package domain

import (
	"github.com/shopspring/decimal"
)

// Field is one extracted string data point. Value is nil when nothing usable
// was extracted; RawText keeps the matched substring for audit even when
// normalization failed. Invariant: Confidence == 0 iff Value is nil and
// RawText is empty.
type Field struct {
	Value      *string `json:"value"`
	Confidence float64 `json:"confidence"`
	RawText    string  `json:"raw_text,omitempty"`
}

// DateField is a Field whose value is an ISO 8601 date (YYYY-MM-DD).
type DateField struct {
	Value      *string `json:"value"`
	Confidence float64 `json:"confidence"`
	RawText    string  `json:"raw_text,omitempty"`
}

// DateRangeField covers the statement billing period.
type DateRangeField struct {
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
	Confidence float64 `json:"confidence"`
	RawText    string  `json:"raw_text,omitempty"`
}

// AmountField is a Field whose value is a decimal amount with currency.
// Negative (credit balance) amounts keep their sign.
type AmountField struct {
	Value      *decimal.Decimal `json:"value"`
	Currency   string           `json:"currency,omitempty"`
	Confidence float64          `json:"confidence"`
	RawText    string           `json:"raw_text,omitempty"`
}

// Transaction is one statement line item, kept in document order.
type Transaction struct {
	Date     string          `json:"date"`
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
}

// ConfidenceScores holds per-field confidences plus the aggregated overall
// score. All values are 0-1 fractions.
type ConfidenceScores struct {
	CardNumber     float64 `json:"card_number"`
	StatementDate  float64 `json:"statement_date"`
	BillingPeriod  float64 `json:"billing_period"`
	PaymentDueDate float64 `json:"payment_due_date"`
	TotalAmountDue float64 `json:"total_amount_due"`
	Overall        float64 `json:"overall"`
}

// ParseMetadata records how a result was produced.
type ParseMetadata struct {
	EngineUsed    Engine  `json:"engine_used"`
	EngineQuality float64 `json:"engine_quality"`
	OCRRequired   bool    `json:"ocr_required"`
	Degraded      bool    `json:"degraded"`
	Pages         int     `json:"pages"`
	ElapsedMS     int64   `json:"elapsed_ms"`
	FileSizeBytes int64   `json:"file_size_bytes"`
}

// ParseResult is the one value that crosses the core boundary: everything
// extracted from a single statement, with confidences and processing metadata.
// Immutable once assembled.
type ParseResult struct {
	Issuer               Issuer           `json:"issuer"`
	IssuerConfidence     float64          `json:"issuer_confidence"`
	MatchedSignature     string           `json:"matched_signature,omitempty"`
	CardNumber           Field            `json:"card_number"`
	StatementDate        DateField        `json:"statement_date"`
	BillingPeriod        DateRangeField   `json:"billing_period"`
	PaymentDueDate       DateField        `json:"payment_due_date"`
	TotalAmountDue       AmountField      `json:"total_amount_due"`
	MinimumAmountDue     *AmountField     `json:"minimum_amount_due,omitempty"`
	PreviousBalance      *AmountField     `json:"previous_balance,omitempty"`
	AvailableCreditLimit *AmountField     `json:"available_credit_limit,omitempty"`
	RewardPointsSummary  *Field           `json:"reward_points_summary,omitempty"`
	Transactions         []Transaction    `json:"transactions,omitempty"`
	Confidence           ConfidenceScores `json:"confidence_scores"`
	Metadata             ParseMetadata    `json:"metadata"`
}
