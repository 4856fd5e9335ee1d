// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, syntax
	// errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable

	// UniqueViolation indicates a unique or primary key constraint failure.
	UniqueViolation
)

func (c ErrorClassification) String() string {
	switch c {
	case Retryable:
		return "retryable"
	case UniqueViolation:
		return "unique_violation"
	default:
		return "non_retryable"
	}
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
