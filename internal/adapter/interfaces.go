// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP side of the service: the client
// of the remote configuration service and the named external API clients the
// front-end talks to.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is].
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_service_adapter_mock.go -package=mock

// ConfigServiceAdapter fetches the server configuration published by the
// portal backend.
type ConfigServiceAdapter interface {
	// FetchServerConfig GETs endpoint and decodes the body as a flat JSON
	// object of setting name to value. Protocol-relative endpoints are
	// resolved with the adapter's scheme.
	FetchServerConfig(ctx context.Context, endpoint string) (map[string]any, error)
}
