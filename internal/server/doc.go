// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of dev-connector.
//
// It owns the listener lifecycle: startup, waiting for SIGTERM, SIGINT or
// SIGQUIT, and graceful shutdown bounded by the configured timeout.
package server
