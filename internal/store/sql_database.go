// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/migrations"
)

// DB is an open connection pool together with everything that differs
// between the supported databases: the squirrel placeholder format, the
// driver error classifier and the migration dialect.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// querier is satisfied by both *sql.DB and *sql.Tx so that repository
// helpers run unchanged inside and outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewConnect opens the database selected by the DSN scheme:
// "postgres://" and "postgresql://" use pgx, "sqlite://", "file:" and
// ":memory:" use SQLite.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := cfg.DSN
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewConnect").Msg("unsupported database DSN")
		return nil, ErrUnsupportedDSN
	}
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Dialect returns the migration dialect name of the connected database.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema for the connected database.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB, db.dialect)
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error applying migrations")
		return err
	}

	db.logger.Info().Str("func", "*DB.Migrate").Int("applied", applied).Msg("database schema is up to date")
	return nil
}

// classify reports the classification of a driver error.
func (db *DB) classify(err error) ErrorClassification {
	return db.errorClassificator.Classify(err)
}

// inTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// execAffected builds and runs a DML statement and returns the number of
// affected rows.
func (db *DB) execAffected(ctx context.Context, q querier, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return n, nil
}
