// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appconfig

import (
	"encoding/json"
	"fmt"
	"maps"
)

// Resolver owns the shared [Config] and applies configuration sources to it
// in a fixed precedence order.
type Resolver struct {
	config   *Config
	defaults []Setting
	helpers  *Helpers
}

// Option customises a [Resolver].
type Option func(*Resolver)

// WithDefaults replaces the built-in [ServerConfigDefaults] schema.
func WithDefaults(settings []Setting) Option {
	return func(r *Resolver) {
		r.defaults = settings
	}
}

// WithHelpers makes the resolver's convenience readers use h instead of the
// package-wide memoized helpers.
func WithHelpers(h *Helpers) Option {
	return func(r *Resolver) {
		r.helpers = h
	}
}

// NewResolver creates the shared configuration from the injected global
// value. A nil injected value yields an empty skeleton. An injected
// serverConfig object becomes the initial, locally fixed server config.
func NewResolver(injected Partial, opts ...Option) (*Resolver, error) {
	r := &Resolver{
		config:   newConfig(),
		defaults: ServerConfigDefaults,
		helpers:  defaultHelpers,
	}
	for _, opt := range opts {
		opt(r)
	}

	for key, value := range injected {
		if key != serverConfigKey {
			r.config.fields[key] = cloneValue(value)
			continue
		}
		if value == nil {
			continue
		}
		sc, ok := asObject(value)
		if !ok {
			return nil, fmt.Errorf("injected config: %w (got %T)", ErrServerConfigNotObject, value)
		}
		r.config.serverConfig = cloneValue(sc).(map[string]any)
	}

	return r, nil
}

// Config returns the shared configuration. The pointer stays the same for
// the lifetime of the resolver.
func (r *Resolver) Config() *Config {
	return r.config
}

// UpdateConfig merges partial into the shared configuration.
//
// A serverConfig object carried by partial is applied first through
// [Resolver.SetServerConfig]. Top-level fields are then merged with
// first-write-wins semantics: keys already present are never overwritten.
// partial itself is not modified.
func (r *Resolver) UpdateConfig(partial Partial) error {
	if raw, ok := partial[serverConfigKey]; ok && raw != nil {
		sc, ok := asObject(raw)
		if !ok {
			return fmt.Errorf("update config: %w (got %T)", ErrServerConfigNotObject, raw)
		}
		if err := r.SetServerConfig(sc); err != nil {
			return fmt.Errorf("update config: %w", err)
		}
	}

	for key, value := range partial {
		if key == serverConfigKey {
			continue
		}
		if _, exists := r.config.fields[key]; exists {
			continue
		}
		r.config.fields[key] = cloneValue(value)
	}

	return nil
}

// SetServerConfig resolves a server configuration delivered by the remote
// configuration service and stores it on the shared configuration.
//
// Precedence, lowest to highest: the remote values after default
// substitution, the decoded frontendConfigOverride, and the server config
// already present on the shared configuration. If frontendConfigOverride
// cannot be decoded the error wraps [ErrParse] and nothing is changed.
func (r *Resolver) SetServerConfig(serverConfig map[string]any) error {
	remote := make(map[string]any, len(serverConfig)+len(r.defaults))
	for key, value := range serverConfig {
		remote[key] = cloneValue(value)
	}
	for _, setting := range r.defaults {
		setting.apply(remote)
	}

	override, err := decodeOverride(remote[SettingFrontendConfigOverride])
	if err != nil {
		return err
	}

	merged := make(map[string]any, len(remote)+len(override))
	maps.Copy(merged, remote)
	maps.Copy(merged, override)
	maps.Copy(merged, r.config.serverConfig)

	r.config.serverConfig = merged
	return nil
}

// decodeOverride decodes the frontendConfigOverride value. Falsy values
// (nil, "", false, 0) mean "no override".
func decodeOverride(raw any) (map[string]any, error) {
	var text string
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		text = v
	case bool:
		if !v {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s is a bool", ErrParse, SettingFrontendConfigOverride)
	case float64:
		if v == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s is a number", ErrParse, SettingFrontendConfigOverride)
	default:
		return nil, fmt.Errorf("%w: %s is %T", ErrParse, SettingFrontendConfigOverride, raw)
	}
	if text == "" {
		return nil, nil
	}

	var override map[string]any
	if err := json.Unmarshal([]byte(text), &override); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, SettingFrontendConfigOverride, err)
	}
	return override, nil
}

// SessionServiceIsEnabled reports whether a session service URL is
// configured.
func (r *Resolver) SessionServiceIsEnabled() bool {
	v, _ := r.config.ServerValue(SettingSessionServiceURL)
	switch t := v.(type) {
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return false
	}
}

// UserEmailAddress returns the configured user email address. ok is false
// when no address is configured or the session is anonymous.
func (r *Resolver) UserEmailAddress() (email string, ok bool) {
	email = r.config.ServerString(SettingUserEmailAddress)
	if email == "" || email == AnonymousUser {
		return "", false
	}
	return email, true
}

// PriorityStudies parses the configured priority_studies setting.
func (r *Resolver) PriorityStudies() PriorityStudies {
	return r.helpers.PriorityStudies(r.config.ServerString(SettingPriorityStudies))
}

// ExampleStudyQueries parses the configured skin_example_study_queries
// setting.
func (r *Resolver) ExampleStudyQueries() []string {
	return r.helpers.SkinExampleStudyQueries(r.config.ServerString(SettingSkinExampleStudyQueries))
}

// DisabledTabs parses the configured disabled_tabs setting. An empty
// setting yields no tabs.
func (r *Resolver) DisabledTabs() []string {
	text := r.config.ServerString(SettingDisabledTabs)
	if text == "" {
		return []string{}
	}
	return r.helpers.ParseDisabledTabs(text)
}

// QuerySetsOfGenes decodes the configured query_sets_of_genes setting. It
// returns nil without error when the setting is not a non-empty string.
func (r *Resolver) QuerySetsOfGenes() (any, error) {
	text := r.config.ServerString(SettingQuerySetsOfGenes)
	if text == "" {
		return nil, nil
	}
	return r.helpers.ParseQuerySetsOfGenes(text)
}
