// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [LocalStorage] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned by GetItem when no value is stored under
	// the requested key.
	ErrItemNotFound = errors.New("local storage item not found")

	// ErrStorageNotMigrated is returned when the local_storage table does
	// not exist, i.e. migrations have not been applied.
	ErrStorageNotMigrated = errors.New("local storage is not migrated")

	// ErrStorageUnavailable is returned for transient backend failures such
	// as a lost connection or a locked SQLite file.
	ErrStorageUnavailable = errors.New("local storage is unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan local storage row")

	// ErrUnsupportedDSN is returned by [NewConnect] for an empty DSN.
	ErrUnsupportedDSN = errors.New("unsupported local storage dsn")
)
