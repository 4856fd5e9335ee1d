// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/dev-connector/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrValidation      = errors.New("validation failed")
)

// ValidationError lists every rejected field of a request. It matches
// ErrValidation with errors.Is.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
