package statement_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardlens/internal/config"
	"cardlens/internal/domain"
	"cardlens/internal/engine"
	"cardlens/internal/port"
	"cardlens/internal/statement"
)

// fixedCascade returns a canned extraction regardless of the document.
type fixedCascade struct {
	ext *engine.Extraction
	err error
}

func (c *fixedCascade) Run(_ context.Context, _ port.Document, _ bool) (*engine.Extraction, error) {
	return c.ext, c.err
}

const hdfcStatement = `HDFC Bank Credit Card Statement
Card No: 5228 52XX XXXX 0591
Statement Date: 16 Aug 2024
Total Amount Due: Rs. 40,491.00
Payment Due Date: 05 Oct 2024
`

func newOrchestrator(ext *engine.Extraction, err error) *statement.Orchestrator {
	return statement.NewOrchestrator(config.ParseConfig{}, &fixedCascade{ext: ext, err: err})
}

func TestParse_HDFCStructural(t *testing.T) {
	o := newOrchestrator(&engine.Extraction{
		Engine:  domain.EngineStructural,
		Text:    hdfcStatement,
		Pages:   1,
		Quality: 1.0,
	}, nil)

	res, err := o.Parse(context.Background(), port.Document{Filename: "stmt.pdf", Bytes: []byte("%PDF-1.4")}, false)
	require.NoError(t, err)

	assert.Equal(t, domain.IssuerHDFC, res.Issuer)
	assert.Greater(t, res.IssuerConfidence, 0.0)

	require.NotNil(t, res.CardNumber.Value)
	assert.Equal(t, "5228 52XX XXXX 0591", *res.CardNumber.Value)
	assert.Equal(t, 1.0, res.CardNumber.Confidence)

	require.NotNil(t, res.StatementDate.Value)
	assert.Equal(t, "2024-08-16", *res.StatementDate.Value)

	require.NotNil(t, res.PaymentDueDate.Value)
	assert.Equal(t, "2024-10-05", *res.PaymentDueDate.Value)

	require.NotNil(t, res.TotalAmountDue.Value)
	assert.True(t, res.TotalAmountDue.Value.Equal(decimal.RequireFromString("40491.00")))
	assert.Equal(t, "INR", res.TotalAmountDue.Currency)

	assert.GreaterOrEqual(t, res.Confidence.Overall, 0.8)

	assert.Equal(t, domain.EngineStructural, res.Metadata.EngineUsed)
	assert.False(t, res.Metadata.OCRRequired)
	assert.False(t, res.Metadata.Degraded)
	assert.Equal(t, 1, res.Metadata.Pages)
	assert.Equal(t, int64(8), res.Metadata.FileSizeBytes)
}

func TestParse_OCRScalesAndCapsConfidence(t *testing.T) {
	o := newOrchestrator(&engine.Extraction{
		Engine:  domain.EngineOCR,
		Text:    hdfcStatement,
		Pages:   1,
		Quality: 0.65,
	}, nil)

	res, err := o.Parse(context.Background(), port.Document{Filename: "scan.pdf"}, true)
	require.NoError(t, err)

	// anchored fields score 1.0 before the OCR ceiling
	assert.InDelta(t, 0.9, res.CardNumber.Confidence, 1e-9)
	assert.InDelta(t, 0.9, res.TotalAmountDue.Confidence, 1e-9)

	// engine quality caps the overall score
	assert.InDelta(t, 0.65, res.Confidence.Overall, 1e-9)

	assert.True(t, res.Metadata.OCRRequired)
	assert.Equal(t, domain.EngineOCR, res.Metadata.EngineUsed)
}

func TestParse_UnknownIssuerCapped(t *testing.T) {
	o := newOrchestrator(&engine.Extraction{
		Engine: domain.EngineStructural,
		Text: `Some Regional Bank
Card Number: 4111 11XX XXXX 1111
Statement Date: 08062019
Due Date: 08072019
Total Amount Due: ₹ 9,999.00`,
		Pages:   1,
		Quality: 1.0,
	}, nil)

	res, err := o.Parse(context.Background(), port.Document{Filename: "other.pdf"}, false)
	require.NoError(t, err)

	assert.Equal(t, domain.IssuerUnknown, res.Issuer)
	assert.Equal(t, 0.0, res.IssuerConfidence)
	require.NotNil(t, res.TotalAmountDue.Value)
	assert.LessOrEqual(t, res.Confidence.Overall, 0.4)
}

func TestParse_MissingRequiredFieldCapped(t *testing.T) {
	o := newOrchestrator(&engine.Extraction{
		Engine: domain.EngineStructural,
		Text: `HDFC Bank Credit Card Statement
Total Amount Due: Rs. 1,500.00`,
		Pages:   1,
		Quality: 1.0,
	}, nil)

	res, err := o.Parse(context.Background(), port.Document{Filename: "partial.pdf"}, false)
	require.NoError(t, err)

	assert.Equal(t, domain.IssuerHDFC, res.Issuer)
	assert.Nil(t, res.CardNumber.Value)
	assert.Nil(t, res.PaymentDueDate.Value)
	assert.LessOrEqual(t, res.Confidence.Overall, 0.5)
}

func TestParse_OptionalFieldOnlyAdds(t *testing.T) {
	base := newOrchestrator(&engine.Extraction{
		Engine: domain.EngineStructural, Text: hdfcStatement, Pages: 1, Quality: 1.0,
	}, nil)
	enriched := newOrchestrator(&engine.Extraction{
		Engine: domain.EngineStructural,
		Text:   hdfcStatement + "Minimum Amount Due (Rs.) 2,020.00\n",
		Pages:  1, Quality: 1.0,
	}, nil)

	baseRes, err := base.Parse(context.Background(), port.Document{Filename: "a.pdf"}, false)
	require.NoError(t, err)
	richRes, err := enriched.Parse(context.Background(), port.Document{Filename: "b.pdf"}, false)
	require.NoError(t, err)

	require.NotNil(t, richRes.MinimumAmountDue)
	assert.GreaterOrEqual(t, richRes.Confidence.Overall, baseRes.Confidence.Overall)
}

func TestParse_UnreadableDocument(t *testing.T) {
	o := newOrchestrator(nil, domain.ErrDocumentUnreadable)

	res, err := o.Parse(context.Background(), port.Document{Filename: "blank.pdf"}, false)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrDocumentUnreadable)
}
