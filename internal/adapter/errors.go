// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrConfigServiceUnavailable is returned when the configuration service
	// cannot be reached or answers with a 5xx status.
	ErrConfigServiceUnavailable = errors.New("configuration service unavailable")

	// ErrUnexpectedStatus is returned for any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrEmptyEndpoint is returned when no endpoint could be derived.
	ErrEmptyEndpoint = errors.New("empty endpoint")
)
