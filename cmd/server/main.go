package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	_ "cardlens/docs"
	"cardlens/internal/config"
	"cardlens/internal/engine"
	"cardlens/internal/handler"
	"cardlens/internal/port"
	"cardlens/internal/repository/postgres"
	"cardlens/internal/router"
	"cardlens/internal/service"
	"cardlens/internal/statement"
	s3storage "cardlens/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Repositories
	jobRepo := postgres.NewJobRepo(db)
	stmtRepo := postgres.NewStatementRepo(db)

	// Storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Parsing core
	orch := statement.NewOrchestrator(cfg.Parse, buildCascade(&cfg.Engine))

	// Services
	parseSvc := service.NewParseService(jobRepo, stmtRepo, s3Client, orch, &cfg.S3, cfg.Queue.MaxRetries)

	// Queue worker
	worker := service.NewParseQueueWorker(jobRepo, parseSvc, service.ParseQueueConfig{
		PollInterval: time.Duration(cfg.Queue.PollIntervalSecs) * time.Second,
		Concurrency:  cfg.Queue.Concurrency,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go worker.Start(ctx)

	// Handlers
	parseH := handler.NewParseHandler(parseSvc)
	resultsH := handler.NewResultsHandler(parseSvc)
	healthH := handler.NewHealthHandler(db)

	r := router.Setup(parseH, resultsH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// buildCascade assembles the text engines in escalation order from config.
func buildCascade(cfg *config.EngineConfig) *engine.Cascade {
	var engines []port.TextEngine
	if cfg.StructuralEnabled {
		engines = append(engines, engine.NewStructuralEngine())
	}
	if cfg.TableEnabled {
		engines = append(engines, engine.NewTableEngine())
	}
	if cfg.OCREnabled {
		engines = append(engines, engine.NewOCREngine(engine.OCRConfig{
			TesseractBin: cfg.TesseractBin,
			PdftoppmBin:  cfg.PdftoppmBin,
			DPI:          cfg.OCRDPI,
			MaxPages:     cfg.OCRMaxPages,
		}, nil))
	}
	return engine.NewCascade(engine.CascadeConfig{
		QualityThreshold: cfg.QualityThreshold,
		MinTextChars:     cfg.MinTextChars,
		OCRTimeout:       cfg.OCRTimeout,
	}, engines...)
}
