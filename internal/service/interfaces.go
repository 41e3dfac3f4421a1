// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the application logic behind the HTTP layer:
// resolving the front-end configuration at startup, exposing read-only views
// of it, and managing the locally stored override.
package service

import (
	"context"

	"github.com/MKhiriev/portal-frontend-config/internal/appconfig"
	"github.com/MKhiriev/portal-frontend-config/models"
)

type ConfigService interface {
	// InitializeConfiguration resolves the shared configuration from local
	// storage, the build-time portal addresses and the remote configuration
	// service, then points the API clients at the result. It must run once,
	// before the configuration is read.
	InitializeConfiguration(ctx context.Context) error

	// Config returns the shared resolved configuration.
	Config(ctx context.Context) *appconfig.Config

	// ServerConfig returns a copy of the resolved server configuration.
	ServerConfig(ctx context.Context) map[string]any

	// Features returns values derived from the server configuration.
	Features(ctx context.Context) (models.Features, error)
}

// LocalConfigService manages the front-end config override kept in local
// storage. Changes take effect the next time the configuration is
// initialized.
type LocalConfigService interface {
	GetLocalConfig(ctx context.Context) (string, error)
	SetLocalConfig(ctx context.Context, raw string) error
	RemoveLocalConfig(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// APIClientsInitializer points outbound API clients at the URLs of a
// resolved configuration.
type APIClientsInitializer interface {
	InitializeAPIClients(cfg *appconfig.Config)
}
