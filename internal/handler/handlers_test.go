// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/service"
)

// newTestServices returns an empty container. NewHandlers only stores the
// pointer, so no service is called during construction.
func newTestServices() *service.Services {
	return &service.Services{}
}

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":5010"}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_NilServices(t *testing.T) {
	h, err := NewHandlers(nil, config.Server{HTTPAddress: ":5010"}, logger.Nop())

	require.ErrorIs(t, err, errNoServices)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":5010"}

	h1, err1 := NewHandlers(newTestServices(), cfg, logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
