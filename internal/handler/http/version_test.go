// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/dev-connector/models"
)

func TestAPIRunning(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	rr := doRequest(t, router, http.MethodGet, "/", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "API running...", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestGetServerVersion(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	rr := doRequest(t, router, http.MethodGet, "/api/version", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	info := decodeBody[models.AppInfo](t, rr)
	assert.Equal(t, "test", info.Version)
	assert.Equal(t, "1s", info.Uptime)
}
