// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appconfig

import "errors"

var (
	// ErrParse is returned (wrapped with the name of the offending value)
	// when a JSON-encoded configuration value cannot be decoded.
	ErrParse = errors.New("cannot parse configuration value")

	// ErrServerConfigNotObject is returned when a partial configuration
	// carries a serverConfig value that is not an object.
	ErrServerConfigNotObject = errors.New("serverConfig must be an object")
)
