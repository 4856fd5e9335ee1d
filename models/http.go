// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/users.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body of POST /api/auth.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PostRequest is the body of POST /api/posts.
type PostRequest struct {
	Text string `json:"text" validate:"required"`
}

// CommentRequest is the body of POST /api/posts/comment/{id}.
type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// ProfileRequest is the body of POST /api/profile.
//
// Skills is a comma separated list, e.g. "go, sql,docker".
type ProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status" validate:"required"`
	Skills         string `json:"skills" validate:"required"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"github_username"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// ExperienceRequest is the body of PUT /api/profile/experience.
type ExperienceRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required,datetime=2006-01-02"`
	To          string `json:"to" validate:"omitempty,datetime=2006-01-02"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationRequest is the body of PUT /api/profile/education.
type EducationRequest struct {
	School       string `json:"school" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"field_of_study" validate:"required"`
	From         string `json:"from" validate:"required,datetime=2006-01-02"`
	To           string `json:"to" validate:"omitempty,datetime=2006-01-02"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}
