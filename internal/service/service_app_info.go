// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
)

// appInfoService reports build and runtime facts about the running server.
type appInfoService struct {
	version   string
	startedAt time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version:   cfg.Version,
		startedAt: time.Now().UTC(),
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return models.AppInfo{
		Version:   s.version,
		StartedAt: s.startedAt,
		Uptime:    time.Since(s.startedAt).Round(time.Second).String(),
	}
}
