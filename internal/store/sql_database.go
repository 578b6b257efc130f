package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/migrations"
)

const (
	retryAttempts = 3
	retryBackoff  = 100 * time.Millisecond
)

// DB wraps *sql.DB with the driver name and the error classifier of the
// backend it was opened against.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the DB's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// CheckSchema verifies that every table the bot relies on is queryable.
func (db *DB) CheckSchema(ctx context.Context) error {
	for _, table := range schemaTables {
		if _, err := db.ExecContext(ctx, fmt.Sprintf(checkTableExists, table)); err != nil {
			db.logger.Err(err).Str("func", "*DB.CheckSchema").Str("table", table).Msg("table is not queryable")
			return fmt.Errorf("%w: %s: %v", ErrSchemaNotReady, table, err)
		}
	}
	return nil
}

// withRetry runs fn up to retryAttempts times while the classifier reports
// the error as retryable.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= retryAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable || attempt == retryAttempts {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("retrying database operation")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
	return err
}

// isUniqueViolation reports a uniqueness or primary key conflict for either
// backend.
func (db *DB) isUniqueViolation(err error) bool {
	return postgresUniqueViolation(err) || sqliteUniqueViolation(err)
}
