// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/portal-frontend-config/internal/appconfig"
)

// Field names accepted by [FrontendConfigValidator].
const (
	FieldAPIRoot                 = appconfig.KeyAPIRoot
	FieldFrontendURL             = appconfig.KeyFrontendURL
	FieldConfigurationServiceURL = appconfig.KeyConfigurationServiceURL
	FieldServerConfig            = "serverConfig"
)

var defaultFrontendConfigFields = []string{
	FieldAPIRoot,
	FieldFrontendURL,
	FieldConfigurationServiceURL,
	FieldServerConfig,
}

// FrontendConfigValidator checks a partial front-end configuration.
//
// Missing and null fields are valid. Present URL fields must be strings, and
// serverConfig must be an object whose well-known settings carry values of
// the kind the defaults schema declares.
type FrontendConfigValidator struct {
	settings map[string]appconfig.Kind
}

func NewFrontendConfigValidator() Validator {
	settings := make(map[string]appconfig.Kind, len(appconfig.ServerConfigDefaults))
	for _, s := range appconfig.ServerConfigDefaults {
		settings[s.Name] = s.Kind
	}
	return &FrontendConfigValidator{settings: settings}
}

func (v *FrontendConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case appconfig.Partial:
		return v.validatePartial(ctx, value, fields...)
	case map[string]any:
		return v.validatePartial(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FrontendConfigValidator) validatePartial(ctx context.Context, partial appconfig.Partial, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultFrontendConfigFields
	}

	for _, f := range fields {
		switch f {
		case FieldAPIRoot, FieldFrontendURL, FieldConfigurationServiceURL:
			if raw, ok := partial[f]; ok && raw != nil {
				if _, isString := raw.(string); !isString {
					return fmt.Errorf("%w: %s is %T", ErrNotAString, f, raw)
				}
			}
		case FieldServerConfig:
			if err := v.validateServerConfig(ctx, partial[FieldServerConfig]); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FrontendConfigValidator) validateServerConfig(ctx context.Context, raw any) error {
	if raw == nil {
		return nil
	}
	sc, ok := raw.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: got %T", ErrServerConfigNotObject, raw)
	}

	for name, value := range sc {
		if value == nil {
			continue
		}
		if name == appconfig.SettingFrontendConfigOverride {
			if err := validateOverride(value); err != nil {
				return err
			}
			continue
		}
		kind, known := v.settings[name]
		if !known || kind == appconfig.KindBool {
			// bool settings accept anything, the resolver substitutes the default
			continue
		}
		if !hasKind(value, kind) {
			return fmt.Errorf("%w: %s is %T", ErrInvalidSettingType, name, value)
		}
	}

	return nil
}

// validateOverride accepts the same values the resolver decodes: falsy
// values or a string holding a JSON object.
func validateOverride(value any) error {
	var text string
	switch v := value.(type) {
	case string:
		text = v
	case bool:
		if !v {
			return nil
		}
		return fmt.Errorf("%w: got bool", ErrInvalidOverride)
	case float64:
		if v == 0 {
			return nil
		}
		return fmt.Errorf("%w: got number", ErrInvalidOverride)
	default:
		return fmt.Errorf("%w: got %T", ErrInvalidOverride, value)
	}
	if text == "" {
		return nil
	}
	var override map[string]any
	if err := json.Unmarshal([]byte(text), &override); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOverride, err)
	}
	return nil
}

func hasKind(value any, kind appconfig.Kind) bool {
	switch kind {
	case appconfig.KindString:
		_, ok := value.(string)
		return ok
	case appconfig.KindNumber:
		_, ok := value.(float64)
		return ok
	default:
		return true
	}
}
