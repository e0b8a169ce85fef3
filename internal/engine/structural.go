// Package engine contains the text acquisition strategies and the cascade
// controller that tries them in preference order.
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

// StructuralEngine extracts born-digital text directly from the PDF content
// streams. Fastest path; useless on scanned documents.
type StructuralEngine struct{}

// NewStructuralEngine creates the plain structural text engine.
func NewStructuralEngine() *StructuralEngine { return &StructuralEngine{} }

func (e *StructuralEngine) Name() domain.Engine { return domain.EngineStructural }

func (e *StructuralEngine) Extract(_ context.Context, doc port.Document) *port.ExtractionAttempt {
	attempt := &port.ExtractionAttempt{Engine: domain.EngineStructural}

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
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// unreadable page, keep going
			log.Printf("engine.structural: page %d: %v", i, err)
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if text.Len() > 0 {
			text.WriteString("\n\n")
		}
		text.WriteString(pageText)
	}

	attempt.Text = cleanText(text.String())
	attempt.Pages = r.NumPage()
	attempt.Quality = textQuality(attempt.Text)
	return attempt
}

// PageCount opens the document just far enough to count pages. Used for
// metadata when OCR produced the winning text.
func PageCount(docBytes []byte) (int, error) {
	r, err := pdf.NewReader(bytes.NewReader(docBytes), int64(len(docBytes)))
	if err != nil {
		return 0, fmt.Errorf("open pdf: %w", err)
	}
	return r.NumPage(), nil
}
