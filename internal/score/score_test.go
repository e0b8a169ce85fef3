package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardlens/internal/domain"
	"cardlens/internal/score"
)

func TestSpecificity_Ordering(t *testing.T) {
	anchor := score.Specificity(score.MethodAnchor)
	pattern := score.Specificity(score.MethodPattern)
	prox := score.Specificity(score.MethodProximity)
	none := score.Specificity(score.MethodNone)

	assert.Greater(t, anchor, pattern)
	assert.Greater(t, pattern, prox)
	assert.Greater(t, prox, none)
	assert.Equal(t, 0.0, none)
}

func TestField_NormalizationFailureHalvesConfidence(t *testing.T) {
	clean := score.Field(score.MethodAnchor, true)
	dirty := score.Field(score.MethodAnchor, false)

	assert.Equal(t, clean*0.5, dirty)
	assert.Greater(t, dirty, 0.0, "a matched but unnormalized field is not zero")
}

func TestField_NoneIsZero(t *testing.T) {
	assert.Equal(t, 0.0, score.Field(score.MethodNone, true))
}

func TestEngineFactor(t *testing.T) {
	assert.Equal(t, 1.0, score.EngineFactor(domain.EngineStructural, 0.9))
	assert.Equal(t, 1.0, score.EngineFactor(domain.EngineStructuralTable, 0.9))
	assert.Equal(t, 0.9, score.EngineFactor(domain.EngineOCR, 0.9))
}

func allHigh() domain.ConfidenceScores {
	return domain.ConfidenceScores{
		CardNumber:     1.0,
		StatementDate:  1.0,
		BillingPeriod:  1.0,
		PaymentDueDate: 1.0,
		TotalAmountDue: 1.0,
	}
}

func TestOverall_PerfectExtraction(t *testing.T) {
	got := score.Overall(allHigh(), score.DefaultWeights(), score.DefaultCaps(),
		domain.IssuerHDFC, 1.0, false)
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestOverall_CappedByEngineQuality(t *testing.T) {
	got := score.Overall(allHigh(), score.DefaultWeights(), score.DefaultCaps(),
		domain.IssuerHDFC, 0.65, false)
	assert.InDelta(t, 0.65, got, 1e-9)
}

func TestOverall_UnknownIssuerCap(t *testing.T) {
	got := score.Overall(allHigh(), score.DefaultWeights(), score.DefaultCaps(),
		domain.IssuerUnknown, 1.0, false)
	assert.InDelta(t, 0.4, got, 1e-9)
}

func TestOverall_MissingRequiredCap(t *testing.T) {
	scores := allHigh()
	scores.TotalAmountDue = 0
	got := score.Overall(scores, score.DefaultWeights(), score.DefaultCaps(),
		domain.IssuerHDFC, 1.0, true)
	assert.LessOrEqual(t, got, 0.5)
}

func TestOverall_MonotoneInFieldConfidence(t *testing.T) {
	low := allHigh()
	low.CardNumber = 0.3
	high := allHigh()
	high.CardNumber = 0.9

	w, caps := score.DefaultWeights(), score.DefaultCaps()
	lo := score.Overall(low, w, caps, domain.IssuerHDFC, 1.0, false)
	hi := score.Overall(high, w, caps, domain.IssuerHDFC, 1.0, false)
	assert.Greater(t, hi, lo)
}

func TestOverall_ZeroWeights(t *testing.T) {
	got := score.Overall(allHigh(), score.Weights{}, score.DefaultCaps(),
		domain.IssuerHDFC, 1.0, false)
	assert.Equal(t, 0.0, got)
}
