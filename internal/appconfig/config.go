// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appconfig

import (
	"encoding/json"
	"maps"
)

// Well-known top-level keys.
const (
	KeyAPIRoot                 = "apiRoot"
	KeyFrontendURL             = "frontendUrl"
	KeyConfigurationServiceURL = "configurationServiceUrl"

	serverConfigKey = "serverConfig"
)

// Partial is a partially populated configuration as decoded from JSON. It may
// carry a "serverConfig" object next to arbitrary top-level fields.
type Partial map[string]any

// Config is the resolved front-end configuration.
//
// Values use the types produced by encoding/json: string, bool, float64,
// nil, []any and map[string]any. The zero value is not usable; obtain a
// Config from [NewResolver].
type Config struct {
	fields       map[string]any
	serverConfig map[string]any
}

func newConfig() *Config {
	return &Config{
		fields:       make(map[string]any),
		serverConfig: make(map[string]any),
	}
}

// Get returns the top-level value stored under key.
func (c *Config) Get(key string) (any, bool) {
	v, ok := c.fields[key]
	return v, ok
}

// String returns the top-level value under key if it is a string, or "".
func (c *Config) String(key string) string {
	s, _ := c.fields[key].(string)
	return s
}

// APIRoot returns the configured API root ("//host/").
func (c *Config) APIRoot() string {
	return c.String(KeyAPIRoot)
}

// FrontendURL returns the URL the front-end bundle is served from.
func (c *Config) FrontendURL() string {
	return c.String(KeyFrontendURL)
}

// ConfigurationServiceURL returns the explicit configuration service base
// URL, or "" when the API root should be used instead.
func (c *Config) ConfigurationServiceURL() string {
	return c.String(KeyConfigurationServiceURL)
}

// ServerValue returns the serverConfig value stored under key.
func (c *Config) ServerValue(key string) (any, bool) {
	v, ok := c.serverConfig[key]
	return v, ok
}

// ServerString returns the serverConfig value under key if it is a string,
// or "".
func (c *Config) ServerString(key string) string {
	s, _ := c.serverConfig[key].(string)
	return s
}

// ServerBool returns the serverConfig value under key if it is a bool, or
// false.
func (c *Config) ServerBool(key string) bool {
	b, _ := c.serverConfig[key].(bool)
	return b
}

// SetServerValue assigns a single serverConfig value directly, bypassing
// default substitution and precedence rules.
func (c *Config) SetServerValue(key string, value any) {
	c.serverConfig[key] = value
}

// ServerConfig returns a shallow copy of the serverConfig mapping.
func (c *Config) ServerConfig() map[string]any {
	return maps.Clone(c.serverConfig)
}

// MarshalJSON encodes the top-level fields together with the serverConfig
// object.
func (c *Config) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.fields)+1)
	maps.Copy(out, c.fields)
	out[serverConfigKey] = c.serverConfig
	return json.Marshal(out)
}

// cloneValue deep-copies JSON-shaped values so that the configuration never
// aliases maps or slices owned by a caller.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = cloneValue(e)
		}
		return m
	case Partial:
		return cloneValue(map[string]any(t))
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return v
	}
}

// asObject reports whether v is a JSON object and returns it as a map.
func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Partial:
		return t, true
	default:
		return nil, false
	}
}
