// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/portal-frontend-config/internal/appconfig"
	"github.com/MKhiriev/portal-frontend-config/internal/config"
	"github.com/MKhiriev/portal-frontend-config/internal/logger"
	"github.com/MKhiriev/portal-frontend-config/internal/utils"
)

// APIClients holds the external API clients used by the front-end. Base URLs
// are empty until [APIClients.InitializeAPIClients] runs.
type APIClients struct {
	CBioPortal          *utils.HTTPClient
	CBioPortalInternal  *utils.HTTPClient
	GenomeNexus         *utils.HTTPClient
	GenomeNexusInternal *utils.HTTPClient
	OncoKB              *utils.HTTPClient
	Genome2Structure    *utils.HTTPClient
	Civic               *utils.HTTPClient
	SessionService      *utils.HTTPClient

	scheme string
	cache  *PostCache
	logger *logger.Logger
}

// NewAPIClients creates the clients with the adapter timeout applied. All
// clients share one [PostCache].
func NewAPIClients(adapterCfg config.Adapter, scheme string, logger *logger.Logger) *APIClients {
	c := &APIClients{
		scheme: scheme,
		cache:  NewPostCache(),
		logger: logger,
	}
	for _, client := range c.all() {
		*client = utils.NewHTTPClient(utils.WithTimeout(adapterCfg.RequestTimeout))
	}
	return c
}

// InitializeAPIClients points every client at the URL derived from cfg and
// installs the POST caching transport. The transport is installed once per
// client, so calling this again only refreshes base URLs.
func (c *APIClients) InitializeAPIClients(cfg *appconfig.Config) {
	c.setBaseURL(c.CBioPortal, cfg.CBioPortalAPIURL())
	c.setBaseURL(c.CBioPortalInternal, cfg.CBioPortalAPIURL())
	c.setBaseURL(c.GenomeNexus, cfg.GenomeNexusAPIURL())
	c.setBaseURL(c.GenomeNexusInternal, cfg.GenomeNexusAPIURL())
	c.setBaseURL(c.OncoKB, cfg.OncoKBAPIURL())
	c.setBaseURL(c.Genome2Structure, cfg.G2SAPIURL())

	for _, client := range c.all() {
		c.installPostCache(*client)
	}

	c.logger.Info().
		Str("func", "*APIClients.InitializeAPIClients").
		Str("cbioportal", c.CBioPortal.BaseURL).
		Str("genome_nexus", c.GenomeNexus.BaseURL).
		Str("oncokb", c.OncoKB.BaseURL).
		Str("g2s", c.Genome2Structure.BaseURL).
		Msg("api clients initialized")
}

// PostCache returns the cache shared by all clients.
func (c *APIClients) PostCache() *PostCache {
	return c.cache
}

func (c *APIClients) all() []**utils.HTTPClient {
	return []**utils.HTTPClient{
		&c.CBioPortal,
		&c.CBioPortalInternal,
		&c.Civic,
		&c.Genome2Structure,
		&c.GenomeNexus,
		&c.GenomeNexusInternal,
		&c.OncoKB,
		&c.SessionService,
	}
}

func (c *APIClients) setBaseURL(client *utils.HTTPClient, url string) {
	client.SetBaseURL(appconfig.TrimTrailingSlash(appconfig.ResolveURL(c.scheme, url)))
}

func (c *APIClients) installPostCache(client *utils.HTTPClient) {
	current := client.GetClient().Transport
	if _, ok := current.(*cachingTransport); ok {
		return
	}
	client.SetTransport(newCachingTransport(current, c.cache))
}
