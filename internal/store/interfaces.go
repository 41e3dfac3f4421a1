// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the "local storage" of the front-end: a key/value
// table whose values survive restarts, in the way a browser keeps
// localStorage between page loads.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/local_storage_mock.go -package=mock

// LocalStorage is a string key/value store.
type LocalStorage interface {
	// GetItem returns the value stored under key, or [ErrItemNotFound].
	GetItem(ctx context.Context, key string) (string, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// ErrorClassificator maps driver errors to the sentinel errors of this
// package. It returns nil for errors it does not recognise.
type ErrorClassificator interface {
	Classify(err error) error
}
