// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/portal-frontend-config/internal/logger"
)

// localStorage is the SQL implementation of [LocalStorage] over the
// local_storage table.
type localStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalStorage constructs a [LocalStorage] backed by db.
func NewLocalStorage(db *DB, logger *logger.Logger) LocalStorage {
	logger.Debug().Msg("creating local storage")
	return &localStorage{
		db:     db,
		logger: logger,
	}
}

func (s *localStorage) GetItem(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetItemQuery(s.db.builder(), key)
	if err != nil {
		return "", err
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrItemNotFound
	case err != nil:
		log.Err(err).Str("func", "*localStorage.GetItem").Str("key", key).Msg("error reading item")
		return "", s.wrap(ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *localStorage) SetItem(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetItemQuery(s.db.builder(), key, value)
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*localStorage.SetItem").Str("key", key).Msg("error saving item")
		return s.wrap(ErrExecutingStatement, err)
	}

	return nil
}

func (s *localStorage) RemoveItem(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRemoveItemQuery(s.db.builder(), key)
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*localStorage.RemoveItem").Str("key", key).Msg("error removing item")
		return s.wrap(ErrExecutingStatement, err)
	}

	return nil
}

// wrap prefers a classified sentinel over the generic operation error.
func (s *localStorage) wrap(op, err error) error {
	if sentinel := s.db.classify(err); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}
