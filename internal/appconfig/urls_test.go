// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimTrailingSlash(t *testing.T) {
	assert.Equal(t, "www.cbioportal.org", TrimTrailingSlash("www.cbioportal.org/"))
	assert.Equal(t, "www.cbioportal.org", TrimTrailingSlash("www.cbioportal.org"))
	assert.Equal(t, "host/", TrimTrailingSlash("host//"))
	assert.Equal(t, "", TrimTrailingSlash(""))
}

func TestProtocolRelative(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.genomenexus.org/", "//www.genomenexus.org/"},
		{"http://www.genomenexus.org", "//www.genomenexus.org/"},
		{"www.genomenexus.org", "//www.genomenexus.org/"},
		{"//www.genomenexus.org/", "//www.genomenexus.org/"},
		{"localhost:8888/gn", "//localhost:8888/gn/"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ProtocolRelative(tt.input))
		})
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"protocol relative", "//www.cbioportal.org/", "https://www.cbioportal.org/"},
		{"absolute", "http://localhost:8080/", "http://localhost:8080/"},
		{"bare host", "g2s.genomenexus.org", "https://g2s.genomenexus.org"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveURL("https", tt.input))
		})
	}
}

func TestConfig_APIURLs(t *testing.T) {
	r := newTestResolver(t, Partial{
		"apiRoot": "//www.cbioportal.org/",
		"serverConfig": map[string]any{
			SettingGenomeNexusURL:     "https://www.genomenexus.org",
			SettingOncoKBPublicAPIURL: "",
			SettingG2SURL:             "https://g2s.genomenexus.org",
		},
	})
	cfg := r.Config()

	assert.Equal(t, "//www.cbioportal.org/", cfg.CBioPortalAPIURL())
	assert.Equal(t, "//www.genomenexus.org/", cfg.GenomeNexusAPIURL())
	assert.Equal(t, "", cfg.OncoKBAPIURL())
	assert.Equal(t, "https://g2s.genomenexus.org", cfg.G2SAPIURL())
	assert.Equal(t, "//www.cbioportal.org/config_service.jsp", cfg.ConfigurationServiceAPIURL())
}

func TestConfig_ConfigurationServiceURLPreferred(t *testing.T) {
	r := newTestResolver(t, Partial{
		"apiRoot":                 "//api.example.org/",
		"configurationServiceUrl": "//config.example.org",
	})

	assert.Equal(t, "//config.example.org/config_service.jsp", r.Config().ConfigurationServiceAPIURL())
}
