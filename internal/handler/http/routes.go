// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	// resolved configuration
	router.Group(func(r chi.Router) {
		r.Get("/api/config", h.getConfig)
		r.Get("/api/config/server", h.getServerConfig)
		r.Get("/api/config/features", h.getFeatures)
	})

	// local storage override, applied on next start
	router.Group(func(r chi.Router) {
		r.Get("/api/config/local", h.getLocalConfig)
		r.Put("/api/config/local", h.putLocalConfig)
		r.Delete("/api/config/local", h.deleteLocalConfig)
	})

	router.Get("/api/version/", h.getServerVersion)
	router.Get("/api/version/build", h.getBuildInfo)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
