package notification

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// WorkerConfig tunes the queue draining loop.
type WorkerConfig struct {
	// IdleInterval is how long the loop sleeps after observing an
	// empty queue, to avoid busy-polling.
	IdleInterval time.Duration

	// SweepTimeout bounds the wall-clock time of each retry sweep.
	SweepTimeout time.Duration
}

// Worker is the single long-lived consumer of the notification queue.
// Redelivery ordering depends on exactly one of these running per
// queue.
type Worker struct {
	service Service
	config  WorkerConfig
	logger  *zap.SugaredLogger
}

// NewWorker creates a worker over the notification service.
func NewWorker(service Service, config WorkerConfig, logger *zap.SugaredLogger) *Worker {
	if config.IdleInterval <= 0 {
		config.IdleInterval = 5 * time.Second
	}
	if config.SweepTimeout <= 0 {
		config.SweepTimeout = 10 * time.Second
	}

	return &Worker{
		service: service,
		config:  config,
		logger:  logger,
	}
}

// Run drains the queue until ctx is cancelled. Shutdown is
// cooperative: cancellation is observed at iteration boundaries, so an
// in-flight delivery always finishes before the loop exits.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Infow("notification worker started",
		"idle_interval", w.config.IdleInterval,
		"sweep_timeout", w.config.SweepTimeout)

	for {
		if err := ctx.Err(); err != nil {
			w.logger.Infow("notification worker stopping")
			return nil
		}

		processed, err := w.service.ProcessOne(ctx)
		if err != nil {
			w.logger.Errorw("failed to process notification", "error", err)
		}

		swept, err := w.service.RetryFailed(ctx, w.config.SweepTimeout)
		if err != nil && ctx.Err() == nil {
			w.logger.Errorw("retry sweep failed", "error", err)
		}

		if processed+swept > 0 {
			w.logger.Infow("processed notifications", "count", processed+swept)
			continue
		}

		select {
		case <-ctx.Done():
			w.logger.Infow("notification worker stopping")
			return nil
		case <-time.After(w.config.IdleInterval):
		}
	}
}
