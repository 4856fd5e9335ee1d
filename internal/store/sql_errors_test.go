// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: UniqueViolation},
		{name: "wrapped unique violation", err: fmt.Errorf("%w: %w", ErrExecutingStatement, pgError(pgerrcode.UniqueViolation)), want: UniqueViolation},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, want: UniqueViolation},
		{name: "primary key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, want: UniqueViolation},
		{name: "foreign key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, want: NonRetryable},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "unique_violation", UniqueViolation.String())
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non_retryable", NonRetryable.String())
}

func TestSQLiteDSN(t *testing.T) {
	tests := map[string]string{
		":memory:":                   "file::memory:?_foreign_keys=on",
		"sqlite://:memory:":          "file::memory:?_foreign_keys=on",
		"sqlite://connector.db":      "connector.db?_foreign_keys=on",
		"file:dev.db?cache=shared":   "file:dev.db?cache=shared&_foreign_keys=on",
		"sqlite:///tmp/connector.db": "/tmp/connector.db?_foreign_keys=on",
	}

	for in, want := range tests {
		assert.Equal(t, want, sqliteDSN(in), in)
	}
}

func TestNewConnect_UnsupportedDSN(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{DSN: "mysql://root@localhost/db"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}
