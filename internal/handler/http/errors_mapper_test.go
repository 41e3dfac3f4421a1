// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/portal-frontend-config/internal/appconfig"
	"github.com/MKhiriev/portal-frontend-config/internal/service"
	"github.com/MKhiriev/portal-frontend-config/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid local config", service.ErrInvalidLocalConfig, http.StatusBadRequest},
		{"invalid local config wrapping parse error", fmt.Errorf("%w: %w", service.ErrInvalidLocalConfig, appconfig.ErrParse), http.StatusBadRequest},
		{"local config not found", service.ErrLocalConfigNotFound, http.StatusNotFound},
		{"parse error", appconfig.ErrParse, http.StatusInternalServerError},
		{"storage not migrated", fmt.Errorf("x: %w", store.ErrStorageNotMigrated), http.StatusServiceUnavailable},
		{"storage unavailable", store.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{"query failed", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
