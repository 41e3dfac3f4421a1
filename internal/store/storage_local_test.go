// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/portal-frontend-config/internal/config"
	"github.com/MKhiriev/portal-frontend-config/internal/logger"
	"github.com/MKhiriev/portal-frontend-config/migrations"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestLocalStorage(t *testing.T, placeholder sq.PlaceholderFormat, classifier ErrorClassificator) (LocalStorage, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{
		DB:                 conn,
		dialect:            migrations.DialectPostgres,
		placeholder:        placeholder,
		errorClassificator: classifier,
		logger:             logger.Nop(),
	}
	return NewLocalStorage(db, logger.Nop()), mock
}

const (
	getItemSQL    = "SELECT item_value FROM local_storage WHERE item_key = $1"
	removeItemSQL = "DELETE FROM local_storage WHERE item_key = $1"
	setItemSQL    = "INSERT INTO local_storage (item_key,item_value,updated_at) VALUES ($1,$2,CURRENT_TIMESTAMP) " +
		"ON CONFLICT (item_key) DO UPDATE SET item_value = excluded.item_value, updated_at = excluded.updated_at"
)

// ── GetItem ───────────────────────────────────────────────────────────────────

func TestGetItem_Found(t *testing.T) {
	s, mock := newTestLocalStorage(t, sq.Dollar, NewPostgresErrorClassifier())

	mock.ExpectQuery(getItemSQL).
		WithArgs(FrontendConfigKey).
		WillReturnRows(sqlmock.NewRows([]string{"item_value"}).AddRow(`{"apiRoot":"//x/"}`))

	got, err := s.GetItem(context.Background(), FrontendConfigKey)
	require.NoError(t, err)
	assert.Equal(t, `{"apiRoot":"//x/"}`, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetItem_NotFound(t *testing.T) {
	s, mock := newTestLocalStorage(t, sq.Dollar, NewPostgresErrorClassifier())

	mock.ExpectQuery(getItemSQL).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"item_value"}))

	_, err := s.GetItem(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestGetItem_NotMigrated(t *testing.T) {
	s, mock := newTestLocalStorage(t, sq.Dollar, NewPostgresErrorClassifier())

	mock.ExpectQuery(getItemSQL).
		WithArgs(FrontendConfigKey).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable})

	_, err := s.GetItem(context.Background(), FrontendConfigKey)
	assert.ErrorIs(t, err, ErrStorageNotMigrated)
}

func TestGetItem_UnclassifiedError(t *testing.T) {
	s, mock := newTestLocalStorage(t, sq.Dollar, NewPostgresErrorClassifier())

	mock.ExpectQuery(getItemSQL).
		WithArgs(FrontendConfigKey).
		WillReturnError(errors.New("boom"))

	_, err := s.GetItem(context.Background(), FrontendConfigKey)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── SetItem ───────────────────────────────────────────────────────────────────

func TestSetItem_Upserts(t *testing.T) {
	s, mock := newTestLocalStorage(t, sq.Dollar, NewPostgresErrorClassifier())

	mock.ExpectExec(setItemSQL).
		WithArgs(FrontendConfigKey, `{}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.SetItem(context.Background(), FrontendConfigKey, `{}`))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetItem_Unavailable(t *testing.T) {
	s, mock := newTestLocalStorage(t, sq.Dollar, NewPostgresErrorClassifier())

	mock.ExpectExec(setItemSQL).
		WithArgs(FrontendConfigKey, `{}`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.CannotConnectNow})

	err := s.SetItem(context.Background(), FrontendConfigKey, `{}`)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestSetItem_WithoutClassifier(t *testing.T) {
	s, mock := newTestLocalStorage(t, sq.Dollar, nil)

	mock.ExpectExec(setItemSQL).
		WithArgs("k", "v").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable})

	err := s.SetItem(context.Background(), "k", "v")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── RemoveItem ────────────────────────────────────────────────────────────────

func TestRemoveItem(t *testing.T) {
	s, mock := newTestLocalStorage(t, sq.Dollar, NewPostgresErrorClassifier())

	mock.ExpectExec(removeItemSQL).
		WithArgs(FrontendConfigKey).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.RemoveItem(context.Background(), FrontendConfigKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveItem_Error(t *testing.T) {
	s, mock := newTestLocalStorage(t, sq.Dollar, NewPostgresErrorClassifier())

	mock.ExpectExec(removeItemSQL).
		WithArgs(FrontendConfigKey).
		WillReturnError(errors.New("boom"))

	err := s.RemoveItem(context.Background(), FrontendConfigKey)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── SQLite round trip ─────────────────────────────────────────────────────────

// TestSQLite_RoundTrip verifies the storage against a real SQLite file with
// migrations applied.
func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "portal.db")

	db, err := NewConnect(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, migrations.DialectSQLite, db.Dialect())

	s := NewLocalStorage(db, logger.Nop())

	_, err = s.GetItem(ctx, FrontendConfigKey)
	assert.ErrorIs(t, err, ErrStorageNotMigrated)

	require.NoError(t, db.Migrate())

	_, err = s.GetItem(ctx, FrontendConfigKey)
	assert.ErrorIs(t, err, ErrItemNotFound)

	require.NoError(t, s.SetItem(ctx, FrontendConfigKey, `{"a":1}`))
	require.NoError(t, s.SetItem(ctx, FrontendConfigKey, `{"a":2}`))

	got, err := s.GetItem(ctx, FrontendConfigKey)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, got)

	require.NoError(t, s.RemoveItem(ctx, FrontendConfigKey))
	_, err = s.GetItem(ctx, FrontendConfigKey)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestNewConnect_EmptyDSN(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{DSN: "  "}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, isPostgresDSN("postgresql://localhost/db"))
	assert.False(t, isPostgresDSN("file:portal.db"))
	assert.False(t, isPostgresDSN(":memory:"))
}

// ── classifiers ───────────────────────────────────────────────────────────────

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{pgerrcode.UndefinedTable, ErrStorageNotMigrated},
		{pgerrcode.ConnectionFailure, ErrStorageUnavailable},
		{pgerrcode.CannotConnectNow, ErrStorageUnavailable},
		{pgerrcode.UniqueViolation, nil},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPgError(&pgconn.PgError{Code: tt.code}))
		})
	}
}

func TestPostgresErrorClassifier_NonPgError(t *testing.T) {
	c := NewPostgresErrorClassifier()
	assert.Nil(t, c.Classify(nil))
	assert.Nil(t, c.Classify(errors.New("plain")))
}

func TestSQLiteErrorClassifier_NonSQLiteError(t *testing.T) {
	assert.Nil(t, NewSQLiteErrorClassifier().Classify(errors.New("no such table: x")))
}
