package service

import (
	"context"
	"log"
	"sync"
	"time"

	"cardlens/internal/port"
)

// ParseQueueConfig holds settings for the parse queue worker. Retry
// policy lives in the service; the worker only dispatches whatever
// ClaimQueued hands back.
type ParseQueueConfig struct {
	PollInterval time.Duration
	Concurrency  int
	JobTimeout   time.Duration
}

// ParseQueueWorker polls for pending jobs and dispatches them for parsing.
type ParseQueueWorker struct {
	jobRepo port.JobRepository
	svc     ParseService
	cfg     ParseQueueConfig
	wg      sync.WaitGroup
}

// NewParseQueueWorker creates a new ParseQueueWorker.
func NewParseQueueWorker(jobRepo port.JobRepository, svc ParseService, cfg ParseQueueConfig) *ParseQueueWorker {
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 5 * time.Minute
	}
	return &ParseQueueWorker{
		jobRepo: jobRepo,
		svc:     svc,
		cfg:     cfg,
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight parse goroutines have finished.
func (w *ParseQueueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, w.cfg.Concurrency)

	log.Printf("parseQueueWorker: started (poll=%s, concurrency=%d)",
		w.cfg.PollInterval, w.cfg.Concurrency)

	for {
		select {
		case <-ctx.Done():
			log.Printf("parseQueueWorker: shutting down, waiting for in-flight parses...")
			w.wg.Wait()
			log.Printf("parseQueueWorker: shutdown complete")
			return
		case <-ticker.C:
			available := w.cfg.Concurrency - len(sem)
			if available <= 0 {
				continue
			}

			jobs, err := w.jobRepo.ClaimQueued(ctx, available)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				log.Printf("parseQueueWorker: ClaimQueued error: %v", err)
				continue
			}

			for i := range jobs {
				job := jobs[i] // copy for goroutine

				sem <- struct{}{} // acquire
				w.wg.Add(1)
				go func() {
					defer w.wg.Done()
					defer func() { <-sem }() // release

					// Use a fresh context independent of the poll context
					// so in-flight parses complete even during shutdown.
					parseCtx, cancel := context.WithTimeout(context.Background(), w.cfg.JobTimeout)
					defer cancel()

					log.Printf("parseQueueWorker: dispatching job %s (attempt %d)", job.ID, job.Attempts)
					w.svc.ProcessJob(parseCtx, &job)
				}()
			}
		}
	}
}
