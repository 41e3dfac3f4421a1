// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/portal-frontend-config/internal/appconfig"
	"github.com/MKhiriev/portal-frontend-config/internal/logger"
	"github.com/MKhiriev/portal-frontend-config/internal/store"
	"github.com/MKhiriev/portal-frontend-config/internal/validators"
)

type localConfigService struct {
	storage   store.LocalStorage
	validator validators.Validator

	logger *logger.Logger
}

func NewLocalConfigService(storage store.LocalStorage, validator validators.Validator, logger *logger.Logger) LocalConfigService {
	return &localConfigService{
		storage:   storage,
		validator: validator,
		logger:    logger,
	}
}

func (s *localConfigService) GetLocalConfig(ctx context.Context) (string, error) {
	raw, err := s.storage.GetItem(ctx, store.FrontendConfigKey)
	if errors.Is(err, store.ErrItemNotFound) {
		return "", ErrLocalConfigNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get local config: %w", err)
	}
	return raw, nil
}

// SetLocalConfig stores raw after checking that it decodes to a JSON object
// the validator accepts. The stored text is kept byte for byte.
func (s *localConfigService) SetLocalConfig(ctx context.Context, raw string) error {
	partial, err := appconfig.DecodePartial([]byte(raw))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLocalConfig, err)
	}
	if partial == nil {
		return ErrInvalidLocalConfig
	}
	if err = s.validator.Validate(ctx, partial); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLocalConfig, err)
	}

	if err = s.storage.SetItem(ctx, store.FrontendConfigKey, raw); err != nil {
		return fmt.Errorf("set local config: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*localConfigService.SetLocalConfig").
		Int("size", len(raw)).
		Msg("local config stored")
	return nil
}

func (s *localConfigService) RemoveLocalConfig(ctx context.Context) error {
	if err := s.storage.RemoveItem(ctx, store.FrontendConfigKey); err != nil {
		return fmt.Errorf("remove local config: %w", err)
	}
	return nil
}
