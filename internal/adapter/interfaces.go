// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the dev-connector REST API.
//
// [ServerAdapter] hides the transport from callers: it serializes requests,
// attaches the x-auth-token header once a token is known and maps non-2xx
// replies onto the sentinel errors in errors.go, so callers can branch with
// [errors.Is] (e.g. [ErrForbidden] for 403, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a dev-connector server.
type ServerAdapter interface {
	// SetToken stores the token attached to every following request.
	SetToken(token string)

	// Token returns the stored token, or "" when none is set.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// CurrentUser returns the account the stored token belongs to.
	CurrentUser(ctx context.Context) (models.User, error)

	// Version returns the server build and uptime.
	Version(ctx context.Context) (models.AppInfo, error)

	MyProfile(ctx context.Context) (models.Profile, error)
	UpsertProfile(ctx context.Context, req models.ProfileRequest) (models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	GetProfileByUserID(ctx context.Context, userID string) (models.Profile, error)
	AddExperience(ctx context.Context, req models.ExperienceRequest) (models.Profile, error)
	DeleteExperience(ctx context.Context, experienceID string) (models.Profile, error)
	AddEducation(ctx context.Context, req models.EducationRequest) (models.Profile, error)
	DeleteEducation(ctx context.Context, educationID string) (models.Profile, error)

	// DeleteAccount removes the caller's user, profile and posts.
	DeleteAccount(ctx context.Context) error

	CreatePost(ctx context.Context, req models.PostRequest) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error
	LikePost(ctx context.Context, postID string) (models.Post, error)
	UnlikePost(ctx context.Context, postID string) (models.Post, error)
	AddComment(ctx context.Context, postID string, req models.CommentRequest) (models.Post, error)
	DeleteComment(ctx context.Context, postID, commentID string) (models.Post, error)
}
