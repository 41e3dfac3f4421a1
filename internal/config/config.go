// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level settings container of the portal-config
// binary. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version.
	App App `envPrefix:"APP_"`

	// Build holds the values baked into the front-end bundle at build time.
	// They are read without a prefix, under the same names the bundler uses.
	Build Build

	// Frontend describes the page the configuration is resolved for.
	Frontend Frontend `envPrefix:"FRONTEND_"`

	// Storage holds the local storage backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for outbound HTTP clients.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON settings file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Build holds the build-time portal addresses.
type Build struct {
	// CBioPortalURL is the portal host the API root is derived from
	// (e.g. "www.cbioportal.org"). Required.
	// Env: CBIOPORTAL_URL
	CBioPortalURL string `env:"CBIOPORTAL_URL"`

	// GenomeNexusURL optionally overrides the Genome Nexus host.
	// Env: GENOME_NEXUS_URL
	GenomeNexusURL string `env:"GENOME_NEXUS_URL"`
}

// Frontend describes the page hosting the front-end.
type Frontend struct {
	// InjectedConfigPath points to a JSON or YAML file holding the global
	// configuration object injected into the page.
	// Env: FRONTEND_INJECTED_CONFIG
	InjectedConfigPath string `env:"INJECTED_CONFIG"`

	// PageLocation is the URL of the page the front-end runs on. It decides
	// whether the local development front-end URL is used.
	// Env: FRONTEND_PAGE_LOCATION
	PageLocation string `env:"PAGE_LOCATION"`

	// URLScheme is the scheme used to resolve protocol-relative URLs for
	// outbound requests ("http" or "https").
	// Env: FRONTEND_URL_SCHEME
	URLScheme string `env:"URL_SCHEME"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the local storage database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local storage database.
type DB struct {
	// DSN selects the backend: "postgres://" or "postgresql://" open
	// PostgreSQL, anything else is treated as a SQLite file or URI
	// (e.g. "file:portal-config.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings shared by outbound HTTP clients.
type Adapter struct {
	// RequestTimeout bounds every outbound request, including the remote
	// configuration service call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the settings from all
// available sources. For every field the first source holding a non-zero
// value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
