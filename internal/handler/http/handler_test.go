// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
)

func TestNewHandler_StoresDependencies(t *testing.T) {
	services := newTestServices()
	log := logger.Nop()

	h := NewHandler(services, config.Server{RequestTimeout: 3 * time.Second}, log)

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(newTestServices(), config.Server{}, logger.Nop())
	h2 := NewHandler(newTestServices(), config.Server{}, logger.Nop())

	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.services, h2.services)
}
