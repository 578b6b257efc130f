package store

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/cyphers-laptop/internal/config"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_CheckSchema(t *testing.T) {
	db, mock := newTestDB(t)
	for range schemaTables {
		mock.ExpectExec("SELECT 1 FROM").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, db.CheckSchema(testContext()))
}

func TestDB_CheckSchema_MissingTable(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec("SELECT 1 FROM valorant_login").WillReturnError(pgError(pgerrcode.UndefinedTable))

	err := db.CheckSchema(testContext())
	assert.ErrorIs(t, err, ErrSchemaNotReady)
}

func TestDB_withRetry_StopsOnContextCancel(t *testing.T) {
	db, _ := newTestDB(t)
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	calls := 0
	err := db.withRetry(ctx, func() error {
		calls++
		return pgError(pgerrcode.DeadlockDetected)
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDB_withRetry_GivesUp(t *testing.T) {
	db, _ := newTestDB(t)

	calls := 0
	err := db.withRetry(testContext(), func() error {
		calls++
		return pgError(pgerrcode.SerializationFailure)
	})
	require.Error(t, err)
	assert.Equal(t, retryAttempts, calls)
}

func TestIsUniqueViolation(t *testing.T) {
	db, _ := newTestDB(t)

	assert.True(t, db.isUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.True(t, db.isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.True(t, db.isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.False(t, db.isUniqueViolation(pgError(pgerrcode.NotNullViolation)))
	assert.False(t, db.isUniqueViolation(errors.New("plain")))
}

func TestClassifiers(t *testing.T) {
	pg := NewPostgresErrorClassifier()
	assert.Equal(t, Retryable, pg.Classify(pgError(pgerrcode.ConnectionException)))
	assert.Equal(t, NonRetryable, pg.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, pg.Classify(nil))

	lite := NewSQLiteErrorClassifier()
	assert.Equal(t, Retryable, lite.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, NonRetryable, lite.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
