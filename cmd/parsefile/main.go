// Command parsefile runs the parsing pipeline over one local PDF and
// prints the result as JSON. Useful for tuning extractors against a new
// statement layout without a running server.
// Usage: go run ./cmd/parsefile [-ocr] statement.pdf
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"cardlens/internal/config"
	"cardlens/internal/engine"
	"cardlens/internal/port"
	"cardlens/internal/statement"
)

func main() {
	forceOCR := flag.Bool("ocr", false, "skip structural extraction and run OCR")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: parsefile [-ocr] statement.pdf")
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *forceOCR); err != nil {
		log.Fatal(err)
	}
}

func run(path string, forceOCR bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	cascade := engine.NewCascade(engine.CascadeConfig{
		QualityThreshold: cfg.Engine.QualityThreshold,
		MinTextChars:     cfg.Engine.MinTextChars,
		OCRTimeout:       cfg.Engine.OCRTimeout,
	},
		engine.NewStructuralEngine(),
		engine.NewTableEngine(),
		engine.NewOCREngine(engine.OCRConfig{
			TesseractBin: cfg.Engine.TesseractBin,
			PdftoppmBin:  cfg.Engine.PdftoppmBin,
			DPI:          cfg.Engine.OCRDPI,
			MaxPages:     cfg.Engine.OCRMaxPages,
		}, nil),
	)
	orch := statement.NewOrchestrator(cfg.Parse, cascade)

	res, err := orch.Parse(context.Background(), port.Document{
		Bytes:    data,
		Filename: filepath.Base(path),
	}, forceOCR)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
