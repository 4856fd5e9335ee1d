// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Table and column lists shared by the query builders.
const (
	usersTable       = "users"
	profilesTable    = "profiles"
	experiencesTable = "experiences"
	educationsTable  = "educations"
	postsTable       = "posts"
	likesTable       = "likes"
	commentsTable    = "comments"
)

var (
	userColumns = []string{"id", "name", "email", "password", "avatar", "created_at"}

	profileColumns = []string{
		"p.id", "p.company", "p.website", "p.location", "p.status", "p.skills",
		"p.bio", "p.github_username", "p.social", "p.created_at",
		"u.id", "u.name", "u.avatar",
	}

	experienceColumns = []string{
		"id", "profile_id", "title", "company", "location",
		"date_from", "date_to", "current", "description", "created_at",
	}

	educationColumns = []string{
		"id", "profile_id", "school", "degree", "field_of_study",
		"date_from", "date_to", "current", "description", "created_at",
	}

	postColumns    = []string{"id", "user_id", "text", "name", "avatar", "created_at"}
	likeColumns    = []string{"post_id", "user_id", "created_at"}
	commentColumns = []string{"id", "post_id", "user_id", "text", "name", "avatar", "created_at"}
)

// upsertProfileSuffix overwrites the scalar profile fields of an existing
// row. Both PostgreSQL and SQLite (3.24+) accept this form.
const upsertProfileSuffix = `ON CONFLICT (user_id) DO UPDATE SET
	company = excluded.company,
	website = excluded.website,
	location = excluded.location,
	status = excluded.status,
	skills = excluded.skills,
	bio = excluded.bio,
	github_username = excluded.github_username,
	social = excluded.social`
