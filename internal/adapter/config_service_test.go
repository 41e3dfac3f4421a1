// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/portal-frontend-config/internal/appconfig"
	"github.com/MKhiriev/portal-frontend-config/internal/config"
	"github.com/MKhiriev/portal-frontend-config/internal/logger"
)

func newTestConfigServiceAdapter(t *testing.T) ConfigServiceAdapter {
	t.Helper()
	return NewHTTPConfigServiceAdapter(config.Adapter{RequestTimeout: 5 * time.Second}, "http", logger.Nop())
}

// protocolRelative turns an httptest URL into the "//host/" form used by the
// resolved configuration.
func protocolRelative(serverURL string) string {
	return strings.TrimPrefix(serverURL, "http:")
}

// ── FetchServerConfig ─────────────────────────────────────────────────────────

func TestFetchServerConfig_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/config_service.jsp", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"app_name":"public-portal","show_oncokb":true,"api_cache_limit":450}`))
	}))
	defer srv.Close()

	a := newTestConfigServiceAdapter(t)
	got, err := a.FetchServerConfig(context.Background(), protocolRelative(srv.URL)+"/config_service.jsp")

	require.NoError(t, err)
	assert.Equal(t, "public-portal", got["app_name"])
	assert.Equal(t, true, got["show_oncokb"])
	assert.Equal(t, 450.0, got["api_cache_limit"])
}

func TestFetchServerConfig_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"internal error", http.StatusInternalServerError, ErrConfigServiceUnavailable},
		{"bad gateway", http.StatusBadGateway, ErrConfigServiceUnavailable},
		{"not found", http.StatusNotFound, ErrUnexpectedStatus},
		{"forbidden", http.StatusForbidden, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestConfigServiceAdapter(t)
			_, err := a.FetchServerConfig(context.Background(), srv.URL+"/config_service.jsp")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchServerConfig_BadBody(t *testing.T) {
	for _, body := range []string{"<html>", "[1,2]", "null"} {
		t.Run(body, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			a := newTestConfigServiceAdapter(t)
			_, err := a.FetchServerConfig(context.Background(), srv.URL)

			assert.ErrorIs(t, err, appconfig.ErrParse)
		})
	}
}

func TestFetchServerConfig_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestConfigServiceAdapter(t)
	_, err := a.FetchServerConfig(context.Background(), url)

	assert.ErrorIs(t, err, ErrConfigServiceUnavailable)
}

func TestFetchServerConfig_EmptyEndpoint(t *testing.T) {
	a := newTestConfigServiceAdapter(t)
	_, err := a.FetchServerConfig(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyEndpoint)
}
