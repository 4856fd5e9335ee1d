// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
)

// newSQLiteRepos opens a migrated in-memory database.
func newSQLiteRepos(t *testing.T) *Repositories {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnect(ctx, config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))
	return NewRepositories(db, logger.Nop())
}

type fixture struct {
	ids  *utils.UUIDGenerator
	now  time.Time
	tick time.Duration
}

func newFixture() *fixture {
	return &fixture{ids: utils.NewUUIDGenerator(), now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

// at returns strictly increasing timestamps so ordering is deterministic.
func (f *fixture) at() time.Time {
	f.tick += time.Second
	return f.now.Add(f.tick)
}

func (f *fixture) user(t *testing.T, repos *Repositories, email string) models.User {
	t.Helper()
	u := models.User{ID: f.ids.Generate(), Name: email, Email: email, Password: "hash", Avatar: "a", CreatedAt: f.at()}
	require.NoError(t, repos.UserRepository.CreateUser(context.Background(), u))
	return u
}

func TestSQLite_UserLifecycle(t *testing.T) {
	repos := newSQLiteRepos(t)
	f := newFixture()
	ctx := context.Background()

	ann := f.user(t, repos, "ann@example.com")

	dup := ann
	dup.ID = f.ids.Generate()
	assert.ErrorIs(t, repos.UserRepository.CreateUser(ctx, dup), ErrEmailAlreadyExists)

	found, err := repos.UserRepository.FindUserByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, ann.ID, found.ID)
	assert.True(t, ann.CreatedAt.Equal(found.CreatedAt))

	_, err = repos.UserRepository.FindUserByID(ctx, f.ids.Generate())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLite_ProfileUpsertAndEntries(t *testing.T) {
	repos := newSQLiteRepos(t)
	f := newFixture()
	ctx := context.Background()
	profiles := repos.ProfileRepository

	ann := f.user(t, repos, "ann@example.com")

	_, err := profiles.FindProfileByUserID(ctx, ann.ID)
	require.ErrorIs(t, err, ErrProfileNotFound)

	profile := models.Profile{
		ID:        f.ids.Generate(),
		User:      models.UserRef{ID: ann.ID},
		Status:    "Developer",
		Skills:    []string{"go", "sql"},
		Social:    models.Social{Twitter: "@ann"},
		CreatedAt: f.at(),
	}
	require.NoError(t, profiles.SaveProfile(ctx, profile))

	// second save with a fresh id updates the existing row
	profile.Company = "Acme"
	update := profile
	update.ID = f.ids.Generate()
	require.NoError(t, profiles.SaveProfile(ctx, update))

	got, err := profiles.FindProfileByUserID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, []string{"go", "sql"}, got.Skills)
	assert.Equal(t, "@ann", got.Social.Twitter)
	assert.Equal(t, ann.Name, got.User.Name)
	assert.Empty(t, got.Experience)

	first := models.Experience{ID: f.ids.Generate(), Title: "Junior", Company: "A", From: "2019-01-01", CreatedAt: f.at()}
	second := models.Experience{ID: f.ids.Generate(), Title: "Senior", Company: "B", From: "2021-01-01", Current: true, CreatedAt: f.at()}
	require.NoError(t, profiles.AddExperience(ctx, got.ID, first))
	require.NoError(t, profiles.AddExperience(ctx, got.ID, second))
	require.NoError(t, profiles.AddEducation(ctx, got.ID, models.Education{
		ID: f.ids.Generate(), School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2015-09-01", CreatedAt: f.at(),
	}))

	got, err = profiles.FindProfileByUserID(ctx, ann.ID)
	require.NoError(t, err)
	require.Len(t, got.Experience, 2)
	assert.Equal(t, "Senior", got.Experience[0].Title, "newest entry first")
	assert.True(t, got.Experience[0].Current)
	require.Len(t, got.Education, 1)

	// another user cannot delete Ann's entry
	bob := f.user(t, repos, "bob@example.com")
	assert.ErrorIs(t, profiles.DeleteExperience(ctx, bob.ID, first.ID), ErrExperienceNotFound)

	require.NoError(t, profiles.DeleteExperience(ctx, ann.ID, first.ID))
	assert.ErrorIs(t, profiles.DeleteExperience(ctx, ann.ID, first.ID), ErrExperienceNotFound)
	assert.ErrorIs(t, profiles.DeleteEducation(ctx, ann.ID, f.ids.Generate()), ErrEducationNotFound)

	got, err = profiles.FindProfileByUserID(ctx, ann.ID)
	require.NoError(t, err)
	require.Len(t, got.Experience, 1)
	assert.Equal(t, second.ID, got.Experience[0].ID)

	all, err := profiles.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSQLite_PostsLikesComments(t *testing.T) {
	repos := newSQLiteRepos(t)
	f := newFixture()
	ctx := context.Background()
	posts := repos.PostRepository

	ann := f.user(t, repos, "ann@example.com")
	bob := f.user(t, repos, "bob@example.com")

	older := models.Post{ID: f.ids.Generate(), UserID: ann.ID, Text: "first", Name: ann.Name, CreatedAt: f.at()}
	newer := models.Post{ID: f.ids.Generate(), UserID: bob.ID, Text: "second", Name: bob.Name, CreatedAt: f.at()}
	require.NoError(t, posts.CreatePost(ctx, older))
	require.NoError(t, posts.CreatePost(ctx, newer))

	list, err := posts.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Text)

	require.NoError(t, posts.AddLike(ctx, models.Like{PostID: older.ID, UserID: bob.ID, CreatedAt: f.at()}))
	assert.ErrorIs(t, posts.AddLike(ctx, models.Like{PostID: older.ID, UserID: bob.ID, CreatedAt: f.at()}), ErrLikeAlreadyExists)

	comment := models.Comment{ID: f.ids.Generate(), PostID: older.ID, UserID: bob.ID, Text: "nice", Name: bob.Name, CreatedAt: f.at()}
	require.NoError(t, posts.AddComment(ctx, comment))

	got, err := posts.FindPostByID(ctx, older.ID)
	require.NoError(t, err)
	require.Len(t, got.Likes, 1)
	assert.Equal(t, bob.ID, got.Likes[0].UserID)
	require.Len(t, got.Comments, 1)

	c, err := posts.FindComment(ctx, older.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, c.UserID)
	_, err = posts.FindComment(ctx, newer.ID, comment.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	require.NoError(t, posts.RemoveLike(ctx, older.ID, bob.ID))
	assert.ErrorIs(t, posts.RemoveLike(ctx, older.ID, bob.ID), ErrLikeNotFound)

	require.NoError(t, posts.DeleteComment(ctx, older.ID, comment.ID))
	assert.ErrorIs(t, posts.DeleteComment(ctx, older.ID, comment.ID), ErrCommentNotFound)

	require.NoError(t, posts.DeletePost(ctx, older.ID))
	_, err = posts.FindPostByID(ctx, older.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.ErrorIs(t, posts.DeletePost(ctx, older.ID), ErrPostNotFound)
}

func TestSQLite_DeleteUserCascades(t *testing.T) {
	repos := newSQLiteRepos(t)
	f := newFixture()
	ctx := context.Background()

	ann := f.user(t, repos, "ann@example.com")
	bob := f.user(t, repos, "bob@example.com")

	profileID := f.ids.Generate()
	require.NoError(t, repos.ProfileRepository.SaveProfile(ctx, models.Profile{
		ID: profileID, User: models.UserRef{ID: ann.ID}, Status: "Dev", Skills: []string{"go"}, CreatedAt: f.at(),
	}))
	require.NoError(t, repos.ProfileRepository.AddExperience(ctx, profileID, models.Experience{
		ID: f.ids.Generate(), Title: "Dev", Company: "A", From: "2020-01-01", CreatedAt: f.at(),
	}))

	annPost := models.Post{ID: f.ids.Generate(), UserID: ann.ID, Text: "ann's", CreatedAt: f.at()}
	bobPost := models.Post{ID: f.ids.Generate(), UserID: bob.ID, Text: "bob's", CreatedAt: f.at()}
	require.NoError(t, repos.PostRepository.CreatePost(ctx, annPost))
	require.NoError(t, repos.PostRepository.CreatePost(ctx, bobPost))

	require.NoError(t, repos.PostRepository.AddLike(ctx, models.Like{PostID: annPost.ID, UserID: bob.ID, CreatedAt: f.at()}))
	require.NoError(t, repos.PostRepository.AddLike(ctx, models.Like{PostID: bobPost.ID, UserID: ann.ID, CreatedAt: f.at()}))
	require.NoError(t, repos.PostRepository.AddComment(ctx, models.Comment{
		ID: f.ids.Generate(), PostID: bobPost.ID, UserID: ann.ID, Text: "hi", CreatedAt: f.at(),
	}))

	require.NoError(t, repos.UserRepository.DeleteUser(ctx, ann.ID))

	_, err := repos.UserRepository.FindUserByID(ctx, ann.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repos.ProfileRepository.FindProfileByUserID(ctx, ann.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	_, err = repos.PostRepository.FindPostByID(ctx, annPost.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	remaining, err := repos.PostRepository.FindPostByID(ctx, bobPost.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining.Likes, "likes made by the removed user are gone")
	assert.Len(t, remaining.Comments, 1, "comments on other posts are kept")

	assert.ErrorIs(t, repos.UserRepository.DeleteUser(ctx, ann.ID), ErrUserNotFound)
}
