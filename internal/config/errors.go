// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [GetStructuredConfig] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBuildConfigs indicates that CBIOPORTAL_URL is missing.
	ErrInvalidBuildConfigs = errors.New("invalid build configuration")
	// ErrInvalidStorageConfigs indicates an empty local storage DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidFrontendConfigs indicates an unsupported URL scheme.
	ErrInvalidFrontendConfigs = errors.New("invalid frontend configuration")
)
