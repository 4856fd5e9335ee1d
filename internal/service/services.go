// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/validators"
)

type Services struct {
	AppInfoService AppInfoService
	AuthService    AuthService
	ProfileService ProfileService
	PostService    PostService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()

	return &Services{
		AppInfoService: appInfoService,
		AuthService:    NewAuthService(repositories.UserRepository, validator, cfg.App, logger),
		ProfileService: NewProfileService(repositories.ProfileRepository, repositories.UserRepository, validator, logger),
		PostService:    NewPostService(repositories.PostRepository, repositories.UserRepository, validator, logger),
	}, nil
}
