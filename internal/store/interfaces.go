// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user. A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) error
	// FindUserByEmail returns the user with that email or [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns the user with that id or [ErrUserNotFound].
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// DeleteUser removes the user together with the profile, posts and likes
	// in one transaction.
	DeleteUser(ctx context.Context, userID string) error
}

// ProfileRepository persists profiles and their experience and education
// entries.
type ProfileRepository interface {
	FindProfileByUserID(ctx context.Context, userID string) (models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	// SaveProfile inserts the profile or, when the user already has one,
	// overwrites its scalar fields.
	SaveProfile(ctx context.Context, profile models.Profile) error
	AddExperience(ctx context.Context, profileID string, exp models.Experience) error
	DeleteExperience(ctx context.Context, userID, experienceID string) error
	AddEducation(ctx context.Context, profileID string, edu models.Education) error
	DeleteEducation(ctx context.Context, userID, educationID string) error
}

// PostRepository persists posts, likes and comments.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) error
	ListPosts(ctx context.Context) ([]models.Post, error)
	FindPostByID(ctx context.Context, postID string) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error
	// AddLike yields [ErrLikeAlreadyExists] when the pair already exists.
	AddLike(ctx context.Context, like models.Like) error
	// RemoveLike yields [ErrLikeNotFound] when nothing was deleted.
	RemoveLike(ctx context.Context, postID, userID string) error
	AddComment(ctx context.Context, comment models.Comment) error
	FindComment(ctx context.Context, postID, commentID string) (models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID string) error
}
