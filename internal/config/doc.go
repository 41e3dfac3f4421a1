// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides loading, merging, and validation of the settings
// of the portal-config binary itself.
//
// Settings are assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON settings file
//  4. Built-in defaults
//
// The front-end configuration served by the binary is resolved separately by
// package appconfig; this package only carries the inputs it needs, such as
// CBIOPORTAL_URL and the injected configuration path.
package config
