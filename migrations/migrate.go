// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema for every supported database and
// applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Dialect names accepted by Migrate. They match the embedded directories.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var ErrUnknownDialect = errors.New("unknown migration dialect")

// Migrate applies all pending migrations of the given dialect and returns
// the number of migrations applied.
func Migrate(ctx context.Context, db *sql.DB, dialect string) (int, error) {
	if db == nil {
		return 0, errors.New("migration error: db is nil")
	}

	var gooseDialect goose.Dialect
	switch dialect {
	case DialectPostgres:
		gooseDialect = goose.DialectPostgres
	case DialectSQLite:
		gooseDialect = goose.DialectSQLite3
	default:
		return 0, fmt.Errorf("migration error: %w: %q", ErrUnknownDialect, dialect)
	}

	fsys, err := fs.Sub(embedMigrations, dialect)
	if err != nil {
		return 0, fmt.Errorf("migration error opening %s migrations: %w", dialect, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("migration error creating provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	return len(results), nil
}
