// Package extract pulls statement fields out of engine text. Each issuer
// has its own pattern table tuned to that bank's layout; a generic table
// handles statements from unrecognized issuers on a best-effort basis.
package extract

import (
	"github.com/shopspring/decimal"

	"cardlens/internal/domain"
	"cardlens/internal/score"
)

// TextField is a matched string field before engine weighting.
type TextField struct {
	Value        string
	Raw          string
	Method       score.Method
	NormalizedOK bool
}

// DateField is a matched date. Value is ISO 8601 when NormalizedOK.
type DateField struct {
	Value        string
	Raw          string
	Method       score.Method
	NormalizedOK bool
}

// RangeField is a matched billing period. Start may be empty when the
// statement only prints a closing date.
type RangeField struct {
	Start        string
	End          string
	Raw          string
	Method       score.Method
	NormalizedOK bool
}

// MoneyField is a matched monetary amount with its currency code.
type MoneyField struct {
	Amount       decimal.Decimal
	Currency     string
	Raw          string
	Method       score.Method
	NormalizedOK bool
}

// Partial holds everything one extractor found. Nil pointers mean the
// field was not located at all; a non-nil field with NormalizedOK=false
// means the raw text matched but did not normalize.
type Partial struct {
	CardNumber     *TextField
	StatementDate  *DateField
	BillingPeriod  *RangeField
	PaymentDueDate *DateField
	TotalAmountDue *MoneyField

	MinimumAmountDue     *MoneyField
	PreviousBalance      *MoneyField
	AvailableCreditLimit *MoneyField
	RewardPoints         *TextField

	Transactions []domain.Transaction
}

// Extractor locates statement fields in extracted text.
type Extractor interface {
	Issuer() domain.Issuer
	Extract(text string) *Partial
}

// Registry maps detected issuers to their extractors.
type Registry struct {
	byIssuer map[domain.Issuer]Extractor
	generic  Extractor
}

// NewRegistry wires every supported issuer plus the generic fallback.
func NewRegistry() *Registry {
	r := &Registry{
		byIssuer: make(map[domain.Issuer]Extractor),
		generic:  NewGeneric(),
	}
	for _, e := range []Extractor{
		NewKotak(),
		NewHDFC(),
		NewICICI(),
		NewAxis(),
		NewIDFC(),
		NewAmex(),
		NewCapitalOne(),
	} {
		r.byIssuer[e.Issuer()] = e
	}
	return r
}

// For returns the extractor for the issuer, or the generic one for
// IssuerUnknown and anything unregistered.
func (r *Registry) For(issuer domain.Issuer) Extractor {
	if e, ok := r.byIssuer[issuer]; ok {
		return e
	}
	return r.generic
}
