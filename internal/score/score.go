// Package score turns extraction outcomes into 0-1 confidence fractions.
// Each factor is a separate pure function so capping and monotonicity are
// testable without running real extraction.
package score

import (
	"cardlens/internal/domain"
)

// Method ranks how a field was located in the text. A literal anchor next to
// the value beats a bare pattern match, which beats keyword proximity.
type Method int

const (
	MethodNone Method = iota
	MethodProximity
	MethodPattern
	MethodAnchor
)

// Specificity is the base confidence contributed by the match method.
func Specificity(m Method) float64 {
	switch m {
	case MethodAnchor:
		return 1.0
	case MethodPattern:
		return 0.85
	case MethodProximity:
		return 0.7
	default:
		return 0.0
	}
}

// NormalizationMultiplier discounts a field whose raw text matched but did
// not normalize cleanly: something relevant was found, so confidence is
// reduced, not zeroed.
func NormalizationMultiplier(ok bool) float64 {
	if ok {
		return 1.0
	}
	return 0.5
}

// Field combines match specificity with the normalization outcome.
func Field(m Method, normalized bool) float64 {
	if m == MethodNone {
		return 0.0
	}
	return Specificity(m) * NormalizationMultiplier(normalized)
}

// EngineFactor is the multiplier applied to every field confidence for the
// winning engine. OCR output is capped below 1.0 even on a clean match.
func EngineFactor(engine domain.Engine, ocrCeiling float64) float64 {
	if engine == domain.EngineOCR {
		return ocrCeiling
	}
	return 1.0
}

// Weights holds the per-required-field weights for the overall score.
type Weights struct {
	CardNumber     float64
	StatementDate  float64
	BillingPeriod  float64
	PaymentDueDate float64
	TotalAmountDue float64
}

// DefaultWeights weighs the four headline fields highest, per the product's
// review workflow.
func DefaultWeights() Weights {
	return Weights{
		CardNumber:     1.0,
		StatementDate:  1.0,
		BillingPeriod:  0.5,
		PaymentDueDate: 1.0,
		TotalAmountDue: 1.0,
	}
}

// Caps holds the ceilings applied to the overall score.
type Caps struct {
	UnknownIssuer   float64 // overall ceiling when the issuer is UNKNOWN
	MissingRequired float64 // overall ceiling when any required field is null
}

// DefaultCaps mirrors the shipped configuration defaults.
func DefaultCaps() Caps {
	return Caps{UnknownIssuer: 0.4, MissingRequired: 0.5}
}

// Overall aggregates required-field confidences into a single score:
// a weighted average, capped by the engine quality, by issuer
// classification, and by missing required fields. Optional fields never
// participate, so extracting one can only preserve the overall score.
func Overall(
	scores domain.ConfidenceScores,
	w Weights,
	caps Caps,
	issuer domain.Issuer,
	engineQuality float64,
	missingRequired bool,
) float64 {
	sum := scores.CardNumber*w.CardNumber +
		scores.StatementDate*w.StatementDate +
		scores.BillingPeriod*w.BillingPeriod +
		scores.PaymentDueDate*w.PaymentDueDate +
		scores.TotalAmountDue*w.TotalAmountDue
	div := w.CardNumber + w.StatementDate + w.BillingPeriod + w.PaymentDueDate + w.TotalAmountDue
	if div == 0 {
		return 0
	}
	overall := sum / div

	if engineQuality < overall {
		overall = engineQuality
	}
	if issuer == domain.IssuerUnknown && overall > caps.UnknownIssuer {
		overall = caps.UnknownIssuer
	}
	if missingRequired && overall > caps.MissingRequired {
		overall = caps.MissingRequired
	}
	if overall < 0 {
		overall = 0
	}
	return overall
}
