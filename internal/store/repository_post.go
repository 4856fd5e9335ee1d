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

// postRepository is the SQL implementation of [PostRepository].
//
// Likes are keyed by (post_id, user_id), so a second like by the same user
// fails at the database even when two requests race.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

func (r *postRepository) CreatePost(ctx context.Context, post models.Post) error {
	insert := r.db.builder.Insert(postsTable).
		Columns(postColumns...).
		Values(post.ID, post.UserID, post.Text, post.Name, post.Avatar, post.CreatedAt)

	if _, err := r.db.execAffected(ctx, r.db, insert); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postRepository.CreatePost").Str("user_id", post.UserID).Msg("error creating post")
		return err
	}

	return nil
}

// ListPosts returns all posts newest first, each with likes and comments
// newest first.
func (r *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := r.queryPosts(ctx, r.db.builder.Select(postColumns...).From(postsTable).OrderBy("created_at DESC", "id DESC"))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postRepository.ListPosts").Msg("error listing posts")
		return nil, err
	}

	return posts, nil
}

// FindPostByID returns the post or [ErrPostNotFound].
func (r *postRepository) FindPostByID(ctx context.Context, postID string) (models.Post, error) {
	posts, err := r.queryPosts(ctx, r.db.builder.Select(postColumns...).From(postsTable).Where(sq.Eq{"id": postID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postRepository.FindPostByID").Str("post_id", postID).Msg("error finding post")
		return models.Post{}, err
	}
	if len(posts) == 0 {
		return models.Post{}, ErrPostNotFound
	}

	return posts[0], nil
}

func (r *postRepository) queryPosts(ctx context.Context, b sq.SelectBuilder) ([]models.Post, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err = rows.Scan(&p.ID, &p.UserID, &p.Text, &p.Name, &p.Avatar, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		p.Likes = []models.Like{}
		p.Comments = []models.Comment{}
		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(posts) == 0 {
		return posts, nil
	}

	if err = r.attachChildren(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepository) attachChildren(ctx context.Context, posts []models.Post) error {
	index := make(map[string]int, len(posts))
	ids := make([]string, 0, len(posts))
	for i, p := range posts {
		index[p.ID] = i
		ids = append(ids, p.ID)
	}

	likes := r.db.builder.Select(likeColumns...).
		From(likesTable).
		Where(sq.Eq{"post_id": ids}).
		OrderBy("created_at DESC")

	err := r.eachRow(ctx, likes, func(rows *sql.Rows) error {
		var l models.Like
		if err := rows.Scan(&l.PostID, &l.UserID, &l.CreatedAt); err != nil {
			return err
		}
		i := index[l.PostID]
		posts[i].Likes = append(posts[i].Likes, l)
		return nil
	})
	if err != nil {
		return err
	}

	comments := r.db.builder.Select(commentColumns...).
		From(commentsTable).
		Where(sq.Eq{"post_id": ids}).
		OrderBy("created_at DESC", "id DESC")

	return r.eachRow(ctx, comments, func(rows *sql.Rows) error {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Text, &c.Name, &c.Avatar, &c.CreatedAt); err != nil {
			return err
		}
		i := index[c.PostID]
		posts[i].Comments = append(posts[i].Comments, c)
		return nil
	})
}

func (r *postRepository) eachRow(ctx context.Context, b sq.SelectBuilder, scan func(*sql.Rows) error) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err = scan(rows); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

// DeletePost removes the post with its likes and comments in one
// transaction. Returns [ErrPostNotFound] if the post does not exist.
func (r *postRepository) DeletePost(ctx context.Context, postID string) error {
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.db.execAffected(ctx, tx, r.db.builder.Delete(likesTable).Where(sq.Eq{"post_id": postID})); err != nil {
			return err
		}
		if _, err := r.db.execAffected(ctx, tx, r.db.builder.Delete(commentsTable).Where(sq.Eq{"post_id": postID})); err != nil {
			return err
		}

		n, err := r.db.execAffected(ctx, tx, r.db.builder.Delete(postsTable).Where(sq.Eq{"id": postID}))
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrPostNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrPostNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*postRepository.DeletePost").Str("post_id", postID).Msg("error deleting post")
	}

	return err
}

// AddLike inserts the like. A unique violation on (post_id, user_id) means
// the user already liked the post and yields [ErrLikeAlreadyExists].
func (r *postRepository) AddLike(ctx context.Context, like models.Like) error {
	insert := r.db.builder.Insert(likesTable).
		Columns(likeColumns...).
		Values(like.PostID, like.UserID, like.CreatedAt)

	if _, err := r.db.execAffected(ctx, r.db, insert); err != nil {
		if r.db.classify(err) == UniqueViolation {
			return ErrLikeAlreadyExists
		}

		logger.FromContext(ctx).Err(err).
			Str("func", "*postRepository.AddLike").
			Str("post_id", like.PostID).
			Str("user_id", like.UserID).
			Msg("error adding like")
		return err
	}

	return nil
}

// RemoveLike deletes the like by filter. Zero affected rows yields
// [ErrLikeNotFound].
func (r *postRepository) RemoveLike(ctx context.Context, postID, userID string) error {
	del := r.db.builder.Delete(likesTable).Where(sq.Eq{"post_id": postID, "user_id": userID})

	n, err := r.db.execAffected(ctx, r.db, del)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*postRepository.RemoveLike").
			Str("post_id", postID).
			Str("user_id", userID).
			Msg("error removing like")
		return err
	}
	if n == 0 {
		return ErrLikeNotFound
	}

	return nil
}

func (r *postRepository) AddComment(ctx context.Context, comment models.Comment) error {
	insert := r.db.builder.Insert(commentsTable).
		Columns(commentColumns...).
		Values(comment.ID, comment.PostID, comment.UserID, comment.Text, comment.Name, comment.Avatar, comment.CreatedAt)

	if _, err := r.db.execAffected(ctx, r.db, insert); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postRepository.AddComment").Str("post_id", comment.PostID).Msg("error adding comment")
		return err
	}

	return nil
}

// FindComment returns the comment of the post or [ErrCommentNotFound].
func (r *postRepository) FindComment(ctx context.Context, postID, commentID string) (models.Comment, error) {
	query, args, err := r.db.builder.Select(commentColumns...).
		From(commentsTable).
		Where(sq.Eq{"id": commentID, "post_id": postID}).
		ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Comment
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&c.ID, &c.PostID, &c.UserID, &c.Text, &c.Name, &c.Avatar, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrCommentNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postRepository.FindComment").Str("comment_id", commentID).Msg("error finding comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

// DeleteComment removes the comment. Returns [ErrCommentNotFound] if
// nothing was deleted.
func (r *postRepository) DeleteComment(ctx context.Context, postID, commentID string) error {
	del := r.db.builder.Delete(commentsTable).Where(sq.Eq{"id": commentID, "post_id": postID})

	n, err := r.db.execAffected(ctx, r.db, del)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postRepository.DeleteComment").Str("comment_id", commentID).Msg("error deleting comment")
		return err
	}
	if n == 0 {
		return ErrCommentNotFound
	}

	return nil
}
