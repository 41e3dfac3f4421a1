// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the HTTP handlers.
//
// The Msg* constants are written into response bodies when a request fails.
package app

const (
	// MsgErrorDerivingFeatures is returned when the feature values cannot be
	// derived from the server configuration.
	MsgErrorDerivingFeatures = "error deriving features"

	// MsgNoLocalConfig is returned when no local config override is stored.
	MsgNoLocalConfig = "no local config is stored"

	MsgErrorReadingLocalConfig  = "error reading local config"
	MsgErrorReadingRequestBody  = "error reading request body"
	MsgErrorStoringLocalConfig  = "error storing local config"
	MsgErrorRemovingLocalConfig = "error removing local config"
)
