// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/portal-frontend-config/internal/adapter"
	"github.com/MKhiriev/portal-frontend-config/internal/appconfig"
	"github.com/MKhiriev/portal-frontend-config/internal/config"
	"github.com/MKhiriev/portal-frontend-config/internal/logger"
	"github.com/MKhiriev/portal-frontend-config/internal/store"
	"github.com/MKhiriev/portal-frontend-config/internal/validators"
	"github.com/MKhiriev/portal-frontend-config/models"
)

type Services struct {
	ConfigService      ConfigService
	LocalConfigService LocalConfigService
	AppInfoService     AppInfoService
}

// NewServices wires the services. The returned ConfigService still has to be
// initialized with InitializeConfiguration.
func NewServices(
	resolver *appconfig.Resolver,
	storages *store.Storages,
	remote adapter.ConfigServiceAdapter,
	apiClients APIClientsInitializer,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ConfigService:      NewConfigService(resolver, storages.LocalStorage, remote, apiClients, cfg, logger),
		LocalConfigService: NewLocalConfigService(storages.LocalStorage, validators.NewFrontendConfigValidator(), logger),
		AppInfoService:     appInfoService,
	}, nil
}
