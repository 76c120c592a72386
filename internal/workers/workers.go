package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-meal-log/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers skips nil entries so optional workers can be passed as is.
func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	ws := make([]Worker, 0, len(workers))
	for _, w := range workers {
		if w != nil {
			ws = append(ws, w)
		}
	}
	return &Workers{workers: ws, logger: logger}
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and waits for all of them.
// The first failure cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}

	err := g.Wait()
	if err != nil {
		w.logger.Err(err).Str("func", "*Workers.Run").Msg("worker stopped with error")
	}
	return err
}
