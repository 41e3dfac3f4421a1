// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/portal-frontend-config/internal/app"
	"github.com/MKhiriev/portal-frontend-config/internal/logger"
	"github.com/MKhiriev/portal-frontend-config/internal/service"
	"github.com/MKhiriev/portal-frontend-config/internal/utils"
)

// maxLocalConfigSize caps the body accepted by PUT /api/config/local.
const maxLocalConfigSize = 1 << 20

func (h *Handler) getLocalConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	raw, err := h.services.LocalConfigService.GetLocalConfig(r.Context())
	if errors.Is(err, service.ErrLocalConfigNotFound) {
		http.Error(w, app.MsgNoLocalConfig, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.getLocalConfig").Msg("error reading local config")
		http.Error(w, app.MsgErrorReadingLocalConfig, statusFromError(err))
		return
	}

	utils.WriteRawJSON(w, []byte(raw), http.StatusOK)
}

func (h *Handler) putLocalConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxLocalConfigSize))
	if err != nil {
		log.Err(err).Str("func", "*Handler.putLocalConfig").Msg("error reading request body")
		http.Error(w, app.MsgErrorReadingRequestBody, http.StatusRequestEntityTooLarge)
		return
	}

	if err = h.services.LocalConfigService.SetLocalConfig(r.Context(), string(body)); err != nil {
		log.Err(err).Str("func", "*Handler.putLocalConfig").Msg("error storing local config")
		http.Error(w, app.MsgErrorStoringLocalConfig, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteLocalConfig(w http.ResponseWriter, r *http.Request) {
	if err := h.services.LocalConfigService.RemoveLocalConfig(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.deleteLocalConfig").Msg("error removing local config")
		http.Error(w, app.MsgErrorRemovingLocalConfig, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
