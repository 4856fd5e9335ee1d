// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the application.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, panic recovery, request timeouts, response compression and
// x-auth-token authentication are handled in this package before requests
// are delegated to the service layer. Every error reaches the client as a
// JSON body with a message field.
package http
