// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because the email is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrProfileNotFound is returned when the user has no profile.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrExperienceNotFound is returned when no experience entry with the
	// given id belongs to the user's profile.
	ErrExperienceNotFound = errors.New("experience was not found")

	// ErrEducationNotFound is returned when no education entry with the
	// given id belongs to the user's profile.
	ErrEducationNotFound = errors.New("education was not found")

	// ErrPostNotFound is returned when no post has the given id.
	ErrPostNotFound = errors.New("post was not found")

	// ErrCommentNotFound is returned when the post has no comment with the
	// given id.
	ErrCommentNotFound = errors.New("comment was not found")

	// ErrLikeAlreadyExists is returned when the (post, user) pair is already
	// present in the likes table.
	ErrLikeAlreadyExists = errors.New("like already exists")

	// ErrLikeNotFound is returned when removing a like that was never made.
	ErrLikeNotFound = errors.New("like was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrUnsupportedDSN is returned when the DSN matches no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingColumn is returned when a JSON column cannot be encoded or
	// decoded.
	ErrEncodingColumn = errors.New("failed to encode json column")
)
