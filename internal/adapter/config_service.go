// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/portal-frontend-config/internal/appconfig"
	"github.com/MKhiriev/portal-frontend-config/internal/config"
	"github.com/MKhiriev/portal-frontend-config/internal/logger"
	"github.com/MKhiriev/portal-frontend-config/internal/utils"
)

type httpConfigServiceAdapter struct {
	client *utils.HTTPClient
	scheme string

	logger *logger.Logger
}

// NewHTTPConfigServiceAdapter constructs a resty-backed [ConfigServiceAdapter].
// scheme resolves protocol-relative endpoints such as "//host/config_service.jsp".
func NewHTTPConfigServiceAdapter(adapterCfg config.Adapter, scheme string, logger *logger.Logger) ConfigServiceAdapter {
	client := utils.NewHTTPClient(
		utils.WithTimeout(adapterCfg.RequestTimeout),
		utils.WithHeader("Accept", "application/json"),
	)

	return &httpConfigServiceAdapter{client: client, scheme: scheme, logger: logger}
}

// FetchServerConfig implements [ConfigServiceAdapter].
func (a *httpConfigServiceAdapter) FetchServerConfig(ctx context.Context, endpoint string) (map[string]any, error) {
	url := appconfig.ResolveURL(a.scheme, endpoint)
	if url == "" {
		return nil, ErrEmptyEndpoint
	}

	log := logger.FromContext(ctx)
	log.Debug().Str("func", "*httpConfigServiceAdapter.FetchServerConfig").Str("url", url).Msg("fetching server config")

	resp, err := a.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch server config: %w", ErrConfigServiceUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body any
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: server config: %w", appconfig.ErrParse, err)
	}

	serverConfig, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: server config is %T, not an object", appconfig.ErrParse, body)
	}

	return serverConfig, nil
}
