package engine

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"cardlens/internal/domain"
	"cardlens/internal/port"
)

// OCRConfig holds the external-tool settings for the OCR engine.
type OCRConfig struct {
	TesseractBin string
	PdftoppmBin  string
	DPI          int
	MaxPages     int
	Lang         string
	PSM          string
}

// DefaultOCRConfig returns the settings used when none are configured.
func DefaultOCRConfig() OCRConfig {
	return OCRConfig{
		TesseractBin: "tesseract",
		PdftoppmBin:  "pdftoppm",
		DPI:          300,
		MaxPages:     10,
		Lang:         "eng",
		PSM:          "6",
	}
}

// OCREngine rasterizes pages with pdftoppm and recognizes them with
// tesseract. The expensive path: the cascade only reaches it when the
// structural engines under-perform or OCR is forced.
type OCREngine struct {
	cfg    OCRConfig
	runner Runner
}

// NewOCREngine creates the OCR engine. A nil runner gets the exec-backed one.
func NewOCREngine(cfg OCRConfig, runner Runner) *OCREngine {
	if runner == nil {
		runner = NewExecRunner()
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	if cfg.PSM == "" {
		cfg.PSM = "6"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &OCREngine{cfg: cfg, runner: runner}
}

func (e *OCREngine) Name() domain.Engine { return domain.EngineOCR }

func (e *OCREngine) Extract(ctx context.Context, doc port.Document) *port.ExtractionAttempt {
	attempt := &port.ExtractionAttempt{Engine: domain.EngineOCR}

	tmpDir, err := os.MkdirTemp("", "cardlens-ocr-*")
	if err != nil {
		attempt.Err = err
		return attempt
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			log.Printf("engine.ocr: remove temp dir %q: %v", tmpDir, err)
		}
	}()

	pdfPath := filepath.Join(tmpDir, "doc.pdf")
	if err := os.WriteFile(pdfPath, doc.Bytes, 0o600); err != nil {
		attempt.Err = err
		return attempt
	}

	prefix := filepath.Join(tmpDir, "page")
	_, errb, err := e.runner.Run(ctx, e.cfg.PdftoppmBin,
		"-r", strconv.Itoa(e.cfg.DPI), "-gray", "-png", pdfPath, prefix)
	if err != nil {
		attempt.Err = fmt.Errorf("pdftoppm: %w: %s", err, truncate(string(errb), 512))
		return attempt
	}

	images, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(images)
	if e.cfg.MaxPages > 0 && len(images) > e.cfg.MaxPages {
		images = images[:e.cfg.MaxPages]
	}
	if len(images) == 0 {
		attempt.Err = fmt.Errorf("pdftoppm produced no images")
		return attempt
	}

	var text strings.Builder
	var confSum float64
	var confWords int
	for _, img := range images {
		if ctx.Err() != nil {
			attempt.Err = ctx.Err()
			break
		}
		out, errb, err := e.runner.Run(ctx, e.cfg.TesseractBin,
			img, "stdout", "-l", e.cfg.Lang, "--psm", e.cfg.PSM, "tsv")
		if err != nil {
			log.Printf("engine.ocr: tesseract %s: %v: %s", filepath.Base(img), err, truncate(string(errb), 512))
			continue
		}
		pageText, sum, words := parseTSV(string(out))
		if pageText == "" {
			continue
		}
		if text.Len() > 0 {
			text.WriteString("\n\n")
		}
		text.WriteString(pageText)
		confSum += sum
		confWords += words
	}

	attempt.Text = cleanText(text.String())
	attempt.Pages = len(images)
	if confWords > 0 {
		// mean per-word recognition confidence, 0-1
		attempt.Quality = confSum / float64(confWords) / 100.0
	}
	if attempt.Text == "" && attempt.Err == nil {
		attempt.Err = fmt.Errorf("ocr produced no text")
	}
	return attempt
}

// parseTSV reconstructs line text and accumulates word confidences from
// tesseract's tsv output (level 5 rows are recognized words).
func parseTSV(tsv string) (text string, confSum float64, words int) {
	var b strings.Builder
	var lastLine string
	for _, row := range strings.Split(tsv, "\n") {
		cols := strings.Split(row, "\t")
		if len(cols) < 12 || cols[0] != "5" {
			continue
		}
		word := strings.TrimSpace(cols[11])
		if word == "" {
			continue
		}
		lineKey := cols[1] + ":" + cols[2] + ":" + cols[3] + ":" + cols[4]
		if b.Len() > 0 {
			if lineKey != lastLine {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		lastLine = lineKey
		b.WriteString(word)

		if conf, err := strconv.ParseFloat(cols[10], 64); err == nil && conf >= 0 {
			confSum += conf
			words++
		}
	}
	return b.String(), confSum, words
}
