// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_InitialState(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Zero(t, rw.status)
	assert.Zero(t, rw.size)
	assert.False(t, rw.wroteHeader)
}

func TestResponseWriter_WriteHeader_TableTest(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"200 OK", http.StatusOK},
		{"204 No Content", http.StatusNoContent},
		{"400 Bad Request", http.StatusBadRequest},
		{"404 Not Found", http.StatusNotFound},
		{"503 Service Unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rw := &responseWriter{ResponseWriter: rec}

			rw.WriteHeader(tt.status)

			assert.Equal(t, tt.status, rw.status)
			assert.Equal(t, tt.status, rec.Code)
			assert.True(t, rw.wroteHeader)
		})
	}
}

// TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond verifies that only
// the first status reaches the underlying writer.
func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_Write_SetsImplicit200(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	_, err := rw.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rw.status)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	_, _ = rw.Write([]byte("abc"))
	_, _ = rw.Write([]byte("defgh"))
	_, _ = rw.Write(nil)

	assert.Equal(t, 8, rw.size)
	assert.Equal(t, "abcdefgh", rec.Body.String())
}

func TestResponseWriter_Write_AfterExplicitWriteHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusAccepted)
	_, _ = rw.Write([]byte("body"))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 4, rw.size)
}

func TestResponseWriter_ProxiesHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.Header().Set("X-Trace-ID", "abc")
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, "abc", rec.Header().Get("X-Trace-ID"))
	assert.Same(t, rec, rw.Unwrap())
}
