// Package workers runs long-lived background workers of the client, such as
// the CSV import watcher, under one lifecycle.
package workers

import "context"

// Worker is a long-lived background task.
//
// Run blocks until ctx is cancelled or the worker fails. Returning nil after
// cancellation is a clean stop.
//
// Example implementation:
//
//	type tickWorker struct{}
//
//	func (w *tickWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
