// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a stop signal
	// arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight
	// requests, at most until ctx expires.
	Shutdown(ctx context.Context) error
}
