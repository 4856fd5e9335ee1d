// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	// ID is the application-generated UUIDv7 identifier of the user.
	ID string `json:"id"`

	// Name is the display name shown next to posts and comments.
	Name string `json:"name"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// Password is the bcrypt hash of the user's password.
	// It must never leave the server.
	Password string `json:"-"`

	// Avatar is the gravatar URL derived from Email at registration time.
	Avatar string `json:"avatar"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserRef is the short form of a user embedded into profiles.
type UserRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
