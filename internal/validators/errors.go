// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNotAString            = errors.New("value must be a string")
	ErrServerConfigNotObject = errors.New("serverConfig must be an object")
	ErrInvalidOverride       = errors.New("frontendConfigOverride must be a JSON object")
	ErrInvalidSettingType    = errors.New("server setting has the wrong type")
)
