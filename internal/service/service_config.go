// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/portal-frontend-config/internal/adapter"
	"github.com/MKhiriev/portal-frontend-config/internal/appconfig"
	"github.com/MKhiriev/portal-frontend-config/internal/config"
	"github.com/MKhiriev/portal-frontend-config/internal/logger"
	"github.com/MKhiriev/portal-frontend-config/internal/store"
	"github.com/MKhiriev/portal-frontend-config/models"
)

// localDevServer is the address of the local front-end development server.
const (
	localDevServer   = "//localhost:3000"
	localFrontendURL = localDevServer + "/"
)

type configService struct {
	resolver   *appconfig.Resolver
	storage    store.LocalStorage
	remote     adapter.ConfigServiceAdapter
	apiClients APIClientsInitializer

	build    config.Build
	frontend config.Frontend

	logger *logger.Logger
}

func NewConfigService(
	resolver *appconfig.Resolver,
	storage store.LocalStorage,
	remote adapter.ConfigServiceAdapter,
	apiClients APIClientsInitializer,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) ConfigService {
	return &configService{
		resolver:   resolver,
		storage:    storage,
		remote:     remote,
		apiClients: apiClients,
		build:      cfg.Build,
		frontend:   cfg.Frontend,
		logger:     logger,
	}
}

func (s *configService) InitializeConfiguration(ctx context.Context) error {
	log := logger.FromContext(ctx)
	cfg := s.resolver.Config()

	s.applyLocalConfig(ctx)

	apiRoot := "//" + appconfig.TrimTrailingSlash(s.build.CBioPortalURL) + "/"
	frontendURL := cfg.FrontendURL()
	if frontendURL == "" {
		if strings.Contains(s.frontend.PageLocation, localDevServer) {
			frontendURL = localFrontendURL
		} else {
			frontendURL = apiRoot
		}
	}

	if err := s.resolver.UpdateConfig(appconfig.Partial{
		appconfig.KeyAPIRoot:     apiRoot,
		appconfig.KeyFrontendURL: frontendURL,
	}); err != nil {
		return fmt.Errorf("apply portal addresses: %w", err)
	}

	if s.build.GenomeNexusURL != "" {
		cfg.SetServerValue(appconfig.SettingGenomeNexusURL, "//"+appconfig.TrimTrailingSlash(s.build.GenomeNexusURL)+"/")
	}

	serverConfig, err := s.remote.FetchServerConfig(ctx, cfg.ConfigurationServiceAPIURL())
	if err != nil {
		log.Warn().Err(err).
			Str("func", "*configService.InitializeConfiguration").
			Str("endpoint", cfg.ConfigurationServiceAPIURL()).
			Msg("remote server config is unavailable, using defaults")
		serverConfig = map[string]any{}
	}
	if err = s.resolver.SetServerConfig(serverConfig); err != nil {
		return fmt.Errorf("apply server config: %w", err)
	}

	s.apiClients.InitializeAPIClients(cfg)

	log.Info().
		Str("func", "*configService.InitializeConfiguration").
		Str("api_root", cfg.APIRoot()).
		Str("frontend_url", cfg.FrontendURL()).
		Msg("configuration initialized")
	return nil
}

// applyLocalConfig merges the frontendConfig local storage entry. Every
// failure is logged and skipped.
func (s *configService) applyLocalConfig(ctx context.Context) {
	log := logger.FromContext(ctx)

	raw, err := s.storage.GetItem(ctx, store.FrontendConfigKey)
	if errors.Is(err, store.ErrItemNotFound) {
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("func", "*configService.applyLocalConfig").Msg("error reading local config")
		return
	}
	if raw == "" {
		return
	}

	partial, err := appconfig.DecodePartial([]byte(raw))
	if err != nil {
		log.Error().Err(err).Str("func", "*configService.applyLocalConfig").Msg("local config is not valid JSON, ignoring it")
		return
	}

	if err = s.resolver.UpdateConfig(partial); err != nil {
		log.Error().Err(err).Str("func", "*configService.applyLocalConfig").Msg("error applying local config")
		return
	}

	log.Info().Str("func", "*configService.applyLocalConfig").Msg("local config applied")
}

func (s *configService) Config(ctx context.Context) *appconfig.Config {
	return s.resolver.Config()
}

func (s *configService) ServerConfig(ctx context.Context) map[string]any {
	return s.resolver.Config().ServerConfig()
}

func (s *configService) Features(ctx context.Context) (models.Features, error) {
	querySets, err := s.resolver.QuerySetsOfGenes()
	if err != nil {
		return models.Features{}, fmt.Errorf("derive features: %w", err)
	}

	email, _ := s.resolver.UserEmailAddress()

	return models.Features{
		SessionServiceEnabled: s.resolver.SessionServiceIsEnabled(),
		UserEmailAddress:      email,
		PriorityStudies:       s.resolver.PriorityStudies(),
		ExampleStudyQueries:   s.resolver.ExampleStudyQueries(),
		DisabledTabs:          s.resolver.DisabledTabs(),
		QuerySetsOfGenes:      querySets,
	}, nil
}
