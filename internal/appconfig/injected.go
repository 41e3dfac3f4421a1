// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadInjected reads the injected global configuration from a JSON or YAML
// file. YAML files (".yaml", ".yml") are normalised to JSON value types. An
// empty path or an empty YAML document yields a nil Partial, which
// [NewResolver] turns into an empty skeleton.
func LoadInjected(path string) (Partial, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading injected config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAMLPartial(data)
	default:
		return decodeJSONPartial(data)
	}
}

// DecodePartial decodes a JSON object into a Partial. The error wraps
// [ErrParse].
func DecodePartial(data []byte) (Partial, error) {
	return decodeJSONPartial(data)
}

func decodeJSONPartial(data []byte) (Partial, error) {
	var p Partial
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return p, nil
}

func decodeYAMLPartial(data []byte) (Partial, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if raw == nil {
		return nil, nil
	}

	// round-trip through JSON so numbers become float64 and nested
	// mappings become map[string]any
	normalized, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return decodeJSONPartial(normalized)
}
