// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	// ErrInvalidLocalConfig is returned when a local front-end config is not
	// a JSON object.
	ErrInvalidLocalConfig = errors.New("local config must be a JSON object")

	ErrLocalConfigNotFound = errors.New("no local config is stored")
)
