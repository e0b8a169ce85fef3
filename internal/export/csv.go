// Package export renders persisted statement records as CSV and XLSX
// downloads for reconciliation workflows.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"cardlens/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Job ID",
	"Issuer",
	"Card Number",
	"Statement Date",
	"Payment Due Date",
	"Total Amount Due",
	"Currency",
	"Overall Confidence",
	"Engine Used",
	"OCR Required",
	"Created At",
}

// CSVWriter wraps csv.Writer for exporting statement records.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w. The caller writes BOM
// first when the output is a download.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRecords converts a batch of statement records to CSV rows.
func (w *CSVWriter) WriteRecords(recs []domain.StatementRecord) error {
	for i := range recs {
		if err := w.csv.Write(recordToRow(&recs[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func recordToRow(rec *domain.StatementRecord) []string {
	return []string{
		rec.JobID.String(),
		string(rec.Issuer),
		rec.CardNumber,
		rec.StatementDate,
		rec.PaymentDueDate,
		rec.TotalAmountDue,
		rec.Currency,
		strconv.FormatFloat(rec.OverallConfidence, 'f', 2, 64),
		string(rec.EngineUsed),
		strconv.FormatBool(rec.OCRRequired),
		rec.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}
}
