// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation, lookup and removal against the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record. ID and CreatedAt are set by the
// caller.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	insert := r.db.builder.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.Password, user.Avatar, user.CreatedAt)

	if _, err := r.db.execAffected(ctx, r.db, insert); err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email is already registered")
			return ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return err
	}

	return nil
}

// FindUserByEmail retrieves the user whose email matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := r.findUser(ctx, sq.Eq{"email": email})
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
	}

	return user, err
}

// FindUserByID retrieves the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	user, err := r.findUser(ctx, sq.Eq{"id": userID})
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByID").Str("user_id", userID).Msg("error finding user")
	}

	return user, err
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	query, args, err := r.db.builder.Select(userColumns...).From(usersTable).Where(where).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Avatar, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// DeleteUser removes everything the user owns, in dependency order, inside
// one transaction: experience and education entries, the profile, likes the
// user made, likes and comments on the user's posts, the posts, and finally
// the user. Comments the user left on other posts are kept.
//
// Returns [ErrUserNotFound] if no user row was deleted.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	profileIDs := r.db.builder.Select("id").From(profilesTable).Where(sq.Eq{"user_id": userID})
	postIDs := r.db.builder.Select("id").From(postsTable).Where(sq.Eq{"user_id": userID})

	steps := []sq.Sqlizer{
		r.db.builder.Delete(experiencesTable).Where(sq.Expr("profile_id IN (?)", profileIDs)),
		r.db.builder.Delete(educationsTable).Where(sq.Expr("profile_id IN (?)", profileIDs)),
		r.db.builder.Delete(profilesTable).Where(sq.Eq{"user_id": userID}),
		r.db.builder.Delete(likesTable).Where(sq.Or{sq.Eq{"user_id": userID}, sq.Expr("post_id IN (?)", postIDs)}),
		r.db.builder.Delete(commentsTable).Where(sq.Expr("post_id IN (?)", postIDs)),
		r.db.builder.Delete(postsTable).Where(sq.Eq{"user_id": userID}),
	}

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		for _, step := range steps {
			if _, err := r.db.execAffected(ctx, tx, step); err != nil {
				return err
			}
		}

		n, err := r.db.execAffected(ctx, tx, r.db.builder.Delete(usersTable).Where(sq.Eq{"id": userID}))
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrUserNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", userID).Msg("error deleting user")
	}

	return err
}
