// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite using the
// extended result codes reported by mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch {
	case sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqliteErr.Code == sqlite3.ErrBusy,
		sqliteErr.Code == sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}
