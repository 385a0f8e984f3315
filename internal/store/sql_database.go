// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/campus-found/internal/config"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/migrations"
)

const (
	maxRetryAttempts = 3
	retryBaseDelay   = 20 * time.Millisecond
)

// DB wraps *sql.DB with the dialect it talks to and a classifier deciding
// which driver errors are worth retrying.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens PostgreSQL for "postgres://" and "postgresql://" DSNs and
// SQLite for anything else.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Dialect returns migrations.DialectPostgres or migrations.DialectSQLite.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs fn until it succeeds, fails with an error the classifier
// does not consider retryable, or maxRetryAttempts is reached.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < maxRetryAttempts; attempt++ {
		err = fn()
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt+1).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", err, ctx.Err())
		case <-time.After(retryBaseDelay * time.Duration(1<<attempt)):
		}
	}

	return err
}
