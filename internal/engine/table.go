package engine

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"

	"cardlens/internal/domain"
	"cardlens/internal/port"
)

// TableEngine reassembles text row-by-row from glyph positions. Slower than
// the structural engine, but keeps label/value pairs on one line for
// statements laid out as summary tables, which is where the plain reading
// order falls apart.
type TableEngine struct{}

// NewTableEngine creates the table-aware structural engine.
func NewTableEngine() *TableEngine { return &TableEngine{} }

func (e *TableEngine) Name() domain.Engine { return domain.EngineStructuralTable }

func (e *TableEngine) Extract(_ context.Context, doc port.Document) *port.ExtractionAttempt {
	attempt := &port.ExtractionAttempt{Engine: domain.EngineStructuralTable}

	r, err := pdf.NewReader(bytes.NewReader(doc.Bytes), int64(len(doc.Bytes)))
	if err != nil {
		attempt.Err = fmt.Errorf("open pdf: %w", err)
		return attempt
	}

	var text strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			log.Printf("engine.table: page %d: %v", i, err)
			continue
		}
		for _, row := range rows {
			line := joinRow(row)
			if line == "" {
				continue
			}
			if text.Len() > 0 {
				text.WriteByte('\n')
			}
			text.WriteString(line)
		}
	}

	attempt.Text = cleanText(text.String())
	attempt.Pages = r.NumPage()
	attempt.Quality = textQuality(attempt.Text)
	return attempt
}

// joinRow concatenates the glyph runs of one row, inserting spaces at
// horizontal gaps so table columns stay separated.
func joinRow(row *pdf.Row) string {
	var b strings.Builder
	var prevEnd, prevSize float64
	for _, t := range row.Content {
		if t.S == "" {
			continue
		}
		if b.Len() > 0 {
			gap := t.X - prevEnd
			size := prevSize
			if size <= 0 {
				size = 10
			}
			if gap > size*1.5 {
				b.WriteString("  ")
			} else if gap > size*0.2 {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
		prevEnd = t.X + t.W
		prevSize = t.FontSize
	}
	return strings.TrimSpace(b.String())
}
