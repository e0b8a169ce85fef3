package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cardlens/internal/domain"
)

func exportRecords() []domain.StatementRecord {
	return []domain.StatementRecord{
		{
			ID:                uuid.New(),
			JobID:             uuid.MustParse("11111111-2222-3333-4444-555555555555"),
			Issuer:            domain.IssuerHDFC,
			CardNumber:        "5228 52XX XXXX 0591",
			StatementDate:     "2024-08-16",
			PaymentDueDate:    "2024-10-05",
			TotalAmountDue:    "40491",
			Currency:          "INR",
			OverallConfidence: 0.912,
			EngineUsed:        domain.EngineStructural,
			OCRRequired:       false,
			CreatedAt:         time.Date(2024, 8, 17, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:          uuid.New(),
			JobID:       uuid.New(),
			Issuer:      domain.IssuerUnknown,
			Currency:    "INR",
			EngineUsed:  domain.EngineOCR,
			OCRRequired: true,
			CreatedAt:   time.Date(2024, 8, 18, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRecords(exportRecords()))
	require.NoError(t, w.Flush())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, columns, rows[0])
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", rows[1][0])
	assert.Equal(t, "HDFC", rows[1][1])
	assert.Equal(t, "5228 52XX XXXX 0591", rows[1][2])
	assert.Equal(t, "0.91", rows[1][7])
	assert.Equal(t, "2024-08-17 09:30:00", rows[1][10])

	// empty fields stay empty rather than printing zero values
	assert.Equal(t, "", rows[2][2])
	assert.Equal(t, "true", rows[2][9])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, exportRecords()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Statements")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Job ID", rows[0][0])
	assert.Equal(t, "HDFC", rows[1][1])
	assert.Equal(t, "ocr", rows[2][8])
}
