// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/portal-frontend-config/internal/app"
	"github.com/MKhiriev/portal-frontend-config/internal/logger"
	"github.com/MKhiriev/portal-frontend-config/internal/utils"
)

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.services.ConfigService.Config(r.Context())

	if _, err := utils.WriteJSON(w, cfg, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getConfig").Msg("error writing config")
	}
}

func (h *Handler) getServerConfig(w http.ResponseWriter, r *http.Request) {
	serverConfig := h.services.ConfigService.ServerConfig(r.Context())

	if _, err := utils.WriteJSON(w, serverConfig, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerConfig").Msg("error writing server config")
	}
}

func (h *Handler) getFeatures(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	features, err := h.services.ConfigService.Features(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFeatures").Msg("error deriving features")
		http.Error(w, app.MsgErrorDerivingFeatures, statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, features, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getFeatures").Msg("error writing features")
	}
}
