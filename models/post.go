// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a feed entry. Name and Avatar are copied from the author at
// creation time and are not kept in sync with later user edits.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// Like marks that a user liked a post. A user likes a post at most once.
type Like struct {
	PostID    string    `json:"-"`
	UserID    string    `json:"user"`
	CreatedAt time.Time `json:"-"`
}

// Comment is a reply to a post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"-"`
	UserID    string    `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}
