package engine

import (
	"context"
	"log"
	"time"

	"cardlens/internal/domain"
	"cardlens/internal/port"
)

// CascadeConfig controls which engines run and when an attempt is good
// enough to stop the chain.
type CascadeConfig struct {
	QualityThreshold float64
	MinTextChars     int
	OCRTimeout       time.Duration
}

// Extraction is the cascade's outcome: the text handed to extraction plus
// how it was obtained.
type Extraction struct {
	Engine   domain.Engine
	Text     string
	Pages    int
	Quality  float64
	Degraded bool
}

// Cascade runs text engines in order until one clears the quality bar.
// When none do, the best attempt is returned degraded rather than failing
// the document outright.
type Cascade struct {
	cfg     CascadeConfig
	engines []port.TextEngine
}

// NewCascade builds a cascade over the given engines. Order matters: the
// cheapest engine goes first.
func NewCascade(cfg CascadeConfig, engines ...port.TextEngine) *Cascade {
	return &Cascade{cfg: cfg, engines: engines}
}

// Run extracts text from doc. With forceOCR set, only OCR-class engines
// are attempted. Returns domain.ErrDocumentUnreadable when no engine
// produced any text at all.
func (c *Cascade) Run(ctx context.Context, doc port.Document, forceOCR bool) (*Extraction, error) {
	var best *port.ExtractionAttempt

	for _, eng := range c.engines {
		if forceOCR && eng.Name() != domain.EngineOCR {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		attempt := c.attempt(ctx, eng, doc)
		if attempt.Err != nil {
			log.Printf("engine.cascade: %s failed for %q: %v", eng.Name(), doc.Filename, attempt.Err)
			continue
		}
		if len(attempt.Text) < c.cfg.MinTextChars {
			log.Printf("engine.cascade: %s produced %d chars for %q, below minimum %d",
				eng.Name(), len(attempt.Text), doc.Filename, c.cfg.MinTextChars)
			if better(attempt, best) {
				best = attempt
			}
			continue
		}
		if attempt.Quality >= c.cfg.QualityThreshold {
			return &Extraction{
				Engine:  attempt.Engine,
				Text:    attempt.Text,
				Pages:   attempt.Pages,
				Quality: attempt.Quality,
			}, nil
		}
		log.Printf("engine.cascade: %s quality %.2f below threshold %.2f for %q",
			eng.Name(), attempt.Quality, c.cfg.QualityThreshold, doc.Filename)
		if better(attempt, best) {
			best = attempt
		}
	}

	if best == nil || best.Text == "" {
		return nil, domain.ErrDocumentUnreadable
	}
	log.Printf("engine.cascade: degraded to %s (quality %.2f) for %q", best.Engine, best.Quality, doc.Filename)
	return &Extraction{
		Engine:   best.Engine,
		Text:     best.Text,
		Pages:    best.Pages,
		Quality:  best.Quality,
		Degraded: true,
	}, nil
}

func (c *Cascade) attempt(ctx context.Context, eng port.TextEngine, doc port.Document) *port.ExtractionAttempt {
	if eng.Name() == domain.EngineOCR && c.cfg.OCRTimeout > 0 {
		octx, cancel := context.WithTimeout(ctx, c.cfg.OCRTimeout)
		defer cancel()
		return eng.Extract(octx, doc)
	}
	return eng.Extract(ctx, doc)
}

func better(a, b *port.ExtractionAttempt) bool {
	if b == nil {
		return a.Succeeded()
	}
	if a.Text == "" {
		return false
	}
	if a.Quality != b.Quality {
		return a.Quality > b.Quality
	}
	return len(a.Text) > len(b.Text)
}
