// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/portal-frontend-config/internal/logger"
	"github.com/MKhiriev/portal-frontend-config/internal/service"
	"github.com/MKhiriev/portal-frontend-config/internal/utils"
)

type Handler struct {
	services    *service.Services
	idGenerator utils.IDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}
