// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/dev-connector/internal/logger"

// Repositories groups every repository built on one [DB].
type Repositories struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
	PostRepository    PostRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		ProfileRepository: NewProfileRepository(db, logger),
		PostRepository:    NewPostRepository(db, logger),
	}
}
