// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/portal-frontend-config/internal/appconfig"
	"github.com/MKhiriev/portal-frontend-config/internal/logger"
	"github.com/MKhiriev/portal-frontend-config/internal/service"
	"github.com/MKhiriev/portal-frontend-config/models"
)

// ── Mock: service.ConfigService ──────────────────────────────────────────────

type mockConfigService struct {
	cfg        *appconfig.Config
	features   models.Features
	featureErr error
}

func (m *mockConfigService) InitializeConfiguration(_ context.Context) error { return nil }

func (m *mockConfigService) Config(_ context.Context) *appconfig.Config { return m.cfg }

func (m *mockConfigService) ServerConfig(_ context.Context) map[string]any {
	return m.cfg.ServerConfig()
}

func (m *mockConfigService) Features(_ context.Context) (models.Features, error) {
	return m.features, m.featureErr
}

// ── Mock: service.LocalConfigService ─────────────────────────────────────────

type mockLocalConfigService struct {
	raw     string
	getErr  error
	setErr  error
	delErr  error
	stored  string
	removed bool
}

func (m *mockLocalConfigService) GetLocalConfig(_ context.Context) (string, error) {
	return m.raw, m.getErr
}

func (m *mockLocalConfigService) SetLocalConfig(_ context.Context, raw string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.stored = raw
	return nil
}

func (m *mockLocalConfigService) RemoveLocalConfig(_ context.Context) error {
	if m.delErr != nil {
		return m.delErr
	}
	m.removed = true
	return nil
}

// ── Mock: service.AppInfoService ─────────────────────────────────────────────

type mockAppInfoService struct {
	version   string
	buildInfo models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string { return m.version }

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.buildInfo
}

// ── helpers ──────────────────────────────────────────────────────────────────

// newResolvedConfig builds a Config the way startup would leave it.
func newResolvedConfig(injected appconfig.Partial) *appconfig.Config {
	r, err := appconfig.NewResolver(injected)
	if err != nil {
		panic(err)
	}
	return r.Config()
}

type testServices struct {
	config  *mockConfigService
	local   *mockLocalConfigService
	appInfo *mockAppInfoService
}

func newTestServices() testServices {
	return testServices{
		config: &mockConfigService{cfg: newResolvedConfig(appconfig.Partial{
			"apiRoot":      "//www.cbioportal.org/",
			"serverConfig": map[string]any{"app_name": "public-portal"},
		})},
		local:   &mockLocalConfigService{},
		appInfo: &mockAppInfoService{version: "test-version"},
	}
}

func (s testServices) handler() *Handler {
	return NewHandler(&service.Services{
		ConfigService:      s.config,
		LocalConfigService: s.local,
		AppInfoService:     s.appInfo,
	}, logger.Nop())
}
