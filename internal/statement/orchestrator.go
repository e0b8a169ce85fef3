// Package statement is the parsing core: it drives the engine cascade,
// issuer detection, field extraction and confidence scoring for one
// document per invocation. The orchestrator is stateless, so invocations
// may run in parallel from independent workers.
package statement

import (
	"context"
	"log"
	"time"

	"cardlens/internal/config"
	"cardlens/internal/domain"
	"cardlens/internal/engine"
	"cardlens/internal/extract"
	"cardlens/internal/issuer"
	"cardlens/internal/port"
	"cardlens/internal/score"
)

// TextCascade is the acquisition stage as the orchestrator sees it.
type TextCascade interface {
	Run(ctx context.Context, doc port.Document, forceOCR bool) (*engine.Extraction, error)
}

// Orchestrator runs the full parse pipeline: acquire text, detect the
// issuer, extract fields, score and assemble.
type Orchestrator struct {
	cascade  TextCascade
	detector *issuer.Detector
	registry *extract.Registry

	weights    score.Weights
	caps       score.Caps
	ocrCeiling float64
}

// NewOrchestrator wires the pipeline from configuration. Zero weights fall
// back to the defaults so a partially configured deployment stays sane.
func NewOrchestrator(cfg config.ParseConfig, cascade TextCascade) *Orchestrator {
	w := score.Weights{
		CardNumber:     cfg.WeightCardNumber,
		StatementDate:  cfg.WeightStatementDate,
		BillingPeriod:  cfg.WeightBillingPeriod,
		PaymentDueDate: cfg.WeightPaymentDueDate,
		TotalAmountDue: cfg.WeightTotalAmountDue,
	}
	if w == (score.Weights{}) {
		w = score.DefaultWeights()
	}
	caps := score.Caps{
		UnknownIssuer:   cfg.UnknownIssuerCap,
		MissingRequired: cfg.MissingRequiredCap,
	}
	if caps == (score.Caps{}) {
		caps = score.DefaultCaps()
	}
	ceiling := cfg.OCRCeiling
	if ceiling <= 0 || ceiling > 1 {
		ceiling = 0.9
	}
	return &Orchestrator{
		cascade:    cascade,
		detector:   issuer.NewDetector(),
		registry:   extract.NewRegistry(),
		weights:    w,
		caps:       caps,
		ocrCeiling: ceiling,
	}
}

// Parse processes one document end to end. The only failure mode is
// domain.ErrDocumentUnreadable (or a context error); everything else
// comes back as a result with appropriately low confidence.
func (o *Orchestrator) Parse(ctx context.Context, doc port.Document, forceOCR bool) (*domain.ParseResult, error) {
	start := time.Now()

	ext, err := o.cascade.Run(ctx, doc, forceOCR)
	if err != nil {
		return nil, err
	}

	det := o.detector.Detect(ext.Text)
	partial := o.registry.For(det.Issuer).Extract(ext.Text)

	factor := score.EngineFactor(ext.Engine, o.ocrCeiling)
	res := assemble(partial, det, factor, o.weights, o.caps, ext.Quality)
	res.Metadata = domain.ParseMetadata{
		EngineUsed:    ext.Engine,
		EngineQuality: ext.Quality,
		OCRRequired:   ext.Engine == domain.EngineOCR,
		Degraded:      ext.Degraded,
		Pages:         ext.Pages,
		ElapsedMS:     time.Since(start).Milliseconds(),
		FileSizeBytes: int64(len(doc.Bytes)),
	}

	log.Printf("statement: parsed %q issuer=%s engine=%s overall=%.2f elapsed=%dms",
		doc.Filename, res.Issuer, ext.Engine, res.Confidence.Overall, res.Metadata.ElapsedMS)
	return &res, nil
}
