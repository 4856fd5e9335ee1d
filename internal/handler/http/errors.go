// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors produced by the transport layer itself. Their messages are sent to
// API clients.
var (
	// ErrInvalidJSON wraps any failure to decode a request body.
	ErrInvalidJSON = errors.New("invalid JSON body")

	errRouteNotFound    = errors.New("route not found")
	errMethodNotAllowed = errors.New("method not allowed")
)

// serverErrorMessage replaces the message of every unmapped error.
const serverErrorMessage = "server error"
