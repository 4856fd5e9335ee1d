// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic body for informational and error replies.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by login and registration.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ProfileResponse wraps a profile together with a status message.
type ProfileResponse struct {
	Message string  `json:"message,omitempty"`
	Profile Profile `json:"profile"`
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx reply.
// Errors is only filled for validation failures.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}
