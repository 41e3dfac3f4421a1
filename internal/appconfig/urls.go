// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appconfig

import (
	"regexp"
	"strings"
)

const configServicePath = "config_service.jsp"

var schemePrefix = regexp.MustCompile(`^https?://`)

// TrimTrailingSlash removes a single trailing slash from s.
func TrimTrailingSlash(s string) string {
	return strings.TrimSuffix(s, "/")
}

// ProtocolRelative turns a host or URL into the protocol-relative form
// "//host/path/".
func ProtocolRelative(u string) string {
	u = schemePrefix.ReplaceAllString(u, "")
	u = strings.TrimPrefix(u, "//")
	return "//" + TrimTrailingSlash(u) + "/"
}

// ResolveURL makes u absolute for an HTTP client. Protocol-relative URLs get
// scheme prepended, bare hosts get "scheme://". Absolute URLs and "" are
// returned unchanged.
func ResolveURL(scheme, u string) string {
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "//"):
		return scheme + ":" + u
	case strings.Contains(u, "://"):
		return u
	default:
		return scheme + "://" + u
	}
}

// CBioPortalAPIURL returns the API root with exactly one trailing slash.
func (c *Config) CBioPortalAPIURL() string {
	return TrimTrailingSlash(c.APIRoot()) + "/"
}

// GenomeNexusAPIURL returns the Genome Nexus URL in protocol-relative form,
// or "" when it is not configured.
func (c *Config) GenomeNexusAPIURL() string {
	return c.protocolRelativeSetting(SettingGenomeNexusURL)
}

// OncoKBAPIURL returns the public OncoKB URL in protocol-relative form, or ""
// when it is not configured.
func (c *Config) OncoKBAPIURL() string {
	return c.protocolRelativeSetting(SettingOncoKBPublicAPIURL)
}

// G2SAPIURL returns the configured Genome2Structure URL verbatim.
func (c *Config) G2SAPIURL() string {
	return c.ServerString(SettingG2SURL)
}

// ConfigurationServiceAPIURL returns the endpoint serving the remote server
// configuration. The API root is used when no configuration service URL is
// set.
func (c *Config) ConfigurationServiceAPIURL() string {
	base := c.ConfigurationServiceURL()
	if base == "" {
		base = c.APIRoot()
	}
	return TrimTrailingSlash(base) + "/" + configServicePath
}

func (c *Config) protocolRelativeSetting(key string) string {
	u := c.ServerString(key)
	if u == "" {
		return ""
	}
	return ProtocolRelative(u)
}
