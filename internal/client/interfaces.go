// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of a wired client runtime.
type Client interface {
	// Run starts the background workers and blocks until ctx is cancelled.
	Run(ctx context.Context) error
	// Close releases local resources.
	Close() error
}

var _ Client = (*App)(nil)
