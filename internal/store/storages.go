// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/portal-frontend-config/internal/logger"

// FrontendConfigKey is the local storage key holding the JSON-encoded
// front-end configuration override.
const FrontendConfigKey = "frontendConfig"

type Storages struct {
	LocalStorage LocalStorage
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		LocalStorage: NewLocalStorage(db, logger),
	}
}
