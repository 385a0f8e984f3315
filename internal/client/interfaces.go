// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract for runnable API clients.
type Client interface {
	// Run executes the client against the server and blocks until done.
	Run(ctx context.Context) error
}
