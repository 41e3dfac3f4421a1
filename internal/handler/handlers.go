// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the service.
package handler

import (
	"github.com/MKhiriev/portal-frontend-config/internal/config"
	"github.com/MKhiriev/portal-frontend-config/internal/handler/http"
	"github.com/MKhiriev/portal-frontend-config/internal/logger"
	"github.com/MKhiriev/portal-frontend-config/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
