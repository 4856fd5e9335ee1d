// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Profile is the developer profile of a user. Every user has at most one.
type Profile struct {
	ID             string       `json:"id"`
	User           UserRef      `json:"user"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Status         string       `json:"status"`
	Skills         []string     `json:"skills"`
	Bio            string       `json:"bio,omitempty"`
	GithubUsername string       `json:"github_username,omitempty"`
	Social         Social       `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	CreatedAt      time.Time    `json:"date"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// Social holds links to the user's social network pages.
type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is a single job entry of a profile.
type Experience struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	From        string    `json:"from"`
	To          string    `json:"to,omitempty"`
	Current     bool      `json:"current"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"-"`
}

// Education is a single school entry of a profile.
type Education struct {
	ID           string    `json:"id"`
	School       string    `json:"school"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"field_of_study"`
	From         string    `json:"from"`
	To           string    `json:"to,omitempty"`
	Current      bool      `json:"current"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"-"`
}
