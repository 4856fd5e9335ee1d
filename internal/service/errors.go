// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// The messages of these errors are sent to API clients as is.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("user already exists")

	ErrMissingToken        = errors.New("no token, authorization denied")
	ErrInvalidToken        = errors.New("token is not valid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrForbidden = errors.New("user not authorized")

	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("there is no profile for this user")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrEducationNotFound  = errors.New("education not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment does not exist")

	ErrAlreadyLiked = errors.New("post already liked")
	ErrNotLiked     = errors.New("post has not yet been liked")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
