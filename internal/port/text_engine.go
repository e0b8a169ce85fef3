package port

import (
	"context"

	"cardlens/internal/domain"
)

// Document carries the raw statement bytes for one parse invocation. The
// core never persists it; ownership ends when the invocation returns.
type Document struct {
	Bytes    []byte
	Filename string
}

// ExtractionAttempt is the outcome of running one text acquisition engine
// over a document. At most one attempt survives a cascade as the winner.
type ExtractionAttempt struct {
	Engine  domain.Engine
	Text    string
	Pages   int
	Quality float64
	Err     error
}

// Succeeded reports whether the attempt produced any usable text.
func (a *ExtractionAttempt) Succeeded() bool {
	return a != nil && a.Err == nil && a.Text != ""
}

// TextEngine abstracts one strategy for turning PDF bytes into text.
type TextEngine interface {
	Name() domain.Engine
	Extract(ctx context.Context, doc Document) *ExtractionAttempt
}
