// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/portal-frontend-config/internal/appconfig"
	"github.com/MKhiriev/portal-frontend-config/internal/service"
	"github.com/MKhiriev/portal-frontend-config/internal/store"
)

// errorStatuses is checked in order; the first match wins. Wrapping errors
// such as ErrInvalidLocalConfig come before the errors they wrap.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrInvalidLocalConfig, http.StatusBadRequest},
	{service.ErrLocalConfigNotFound, http.StatusNotFound},

	{appconfig.ErrParse, http.StatusInternalServerError},
	{appconfig.ErrServerConfigNotObject, http.StatusInternalServerError},

	{store.ErrItemNotFound, http.StatusNotFound},
	{store.ErrStorageNotMigrated, http.StatusServiceUnavailable},
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
