// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the portal-config
// service.
//
// It exposes the resolved front-end configuration, the values derived from
// it, and management of the locally stored override. Request tracing, access
// logging and panic recovery are handled here before requests reach the
// service layer.
package http
