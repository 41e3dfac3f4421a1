// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	localStorageTable = "local_storage"

	columnKey       = "item_key"
	columnValue     = "item_value"
	columnUpdatedAt = "updated_at"

	// supported by PostgreSQL and SQLite >= 3.24
	upsertLocalStorageSuffix = "ON CONFLICT (" + columnKey + ") DO UPDATE SET " +
		columnValue + " = excluded." + columnValue + ", " +
		columnUpdatedAt + " = excluded." + columnUpdatedAt
)

func buildGetItemQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	query, args, err := b.
		Select(columnValue).
		From(localStorageTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSetItemQuery(b sq.StatementBuilderType, key, value string) (string, []any, error) {
	query, args, err := b.
		Insert(localStorageTable).
		Columns(columnKey, columnValue, columnUpdatedAt).
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix(upsertLocalStorageSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildRemoveItemQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	query, args, err := b.
		Delete(localStorageTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
