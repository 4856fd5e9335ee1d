// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken verifies a raw token from the x-auth-token header.
	// It never touches the database.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	CurrentUser(ctx context.Context, userID string) (models.User, error)
}

type ProfileService interface {
	GetMyProfile(ctx context.Context, userID string) (models.Profile, error)
	// UpsertProfile reports whether a new profile was created.
	UpsertProfile(ctx context.Context, userID string, req models.ProfileRequest) (models.Profile, bool, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	GetProfileByUserID(ctx context.Context, userID string) (models.Profile, error)
	DeleteAccount(ctx context.Context, userID string) error

	AddExperience(ctx context.Context, userID string, req models.ExperienceRequest) (models.Profile, error)
	DeleteExperience(ctx context.Context, userID, experienceID string) (models.Profile, error)
	AddEducation(ctx context.Context, userID string, req models.EducationRequest) (models.Profile, error)
	DeleteEducation(ctx context.Context, userID, educationID string) (models.Profile, error)
}

type PostService interface {
	CreatePost(ctx context.Context, userID string, req models.PostRequest) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	DeletePost(ctx context.Context, userID, postID string) error

	LikePost(ctx context.Context, userID, postID string) (models.Post, error)
	UnlikePost(ctx context.Context, userID, postID string) (models.Post, error)

	AddComment(ctx context.Context, userID, postID string, req models.CommentRequest) (models.Post, error)
	DeleteComment(ctx context.Context, userID, postID, commentID string) (models.Post, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}
