// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/portal-frontend-config/internal/adapter"
	"github.com/MKhiriev/portal-frontend-config/internal/appconfig"
	"github.com/MKhiriev/portal-frontend-config/internal/config"
	"github.com/MKhiriev/portal-frontend-config/internal/handler"
	"github.com/MKhiriev/portal-frontend-config/internal/logger"
	"github.com/MKhiriev/portal-frontend-config/internal/server"
	"github.com/MKhiriev/portal-frontend-config/internal/service"
	"github.com/MKhiriev/portal-frontend-config/internal/store"
	"github.com/MKhiriev/portal-frontend-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	ctx := context.Background()
	log := logger.NewLogger("portal-config")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to local storage")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating local storage")
	}

	storages := store.NewStorages(db, log)

	injected, err := appconfig.LoadInjected(cfg.Frontend.InjectedConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading injected config")
	}

	resolver, err := appconfig.NewResolver(injected)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating config resolver")
	}

	remote := adapter.NewHTTPConfigServiceAdapter(cfg.Adapter, cfg.Frontend.URLScheme, log)
	apiClients := adapter.NewAPIClients(cfg.Adapter, cfg.Frontend.URLScheme, log)

	services, err := service.NewServices(resolver, storages, remote, apiClients, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.ConfigService.InitializeConfiguration(ctx); err != nil {
		log.Fatal().Err(err).Msg("error initializing configuration")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
