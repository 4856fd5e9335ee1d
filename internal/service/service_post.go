// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/internal/validators"
	"github.com/MKhiriev/dev-connector/models"
)

// postService manages the feed: posts, likes and comments.
type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository

	validator validators.Validator
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		userRepository: userRepository,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreatePost stores a post with the author's current name and avatar.
func (p *postService) CreatePost(ctx context.Context, userID string, req models.PostRequest) (models.Post, error) {
	if err := p.validator.Validate(ctx, req); err != nil {
		return models.Post{}, err
	}

	author, err := p.findUser(ctx, userID)
	if err != nil {
		return models.Post{}, err
	}

	post := models.Post{
		ID:        p.ids.Generate(),
		UserID:    author.ID,
		Text:      req.Text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		Likes:     []models.Like{},
		Comments:  []models.Comment{},
		CreatedAt: time.Now().UTC(),
	}
	if err = p.postRepository.CreatePost(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("creating post failed: %w", err)
	}

	return post, nil
}

func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	return posts, nil
}

// GetPost returns ErrPostNotFound for absent and malformed ids alike.
func (p *postService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	if !utils.IsValidID(postID) {
		return models.Post{}, ErrPostNotFound
	}

	post, err := p.postRepository.FindPostByID(ctx, postID)
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("post search failed: %w", err)
	}

	return post, nil
}

// DeletePost removes the post with its likes and comments. Only the author
// may delete a post.
func (p *postService) DeletePost(ctx context.Context, userID, postID string) error {
	post, err := p.GetPost(ctx, postID)
	if err != nil {
		return err
	}

	if err = CheckOwnership(userID, post.UserID); err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "*postService.DeletePost").
			Str("user_id", userID).
			Str("post_id", postID).
			Msg("attempt to delete a post of another user")
		return err
	}

	err = p.postRepository.DeletePost(ctx, postID)
	if errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting post failed: %w", err)
	}

	return nil
}

// LikePost adds the user's like. A second like by the same user fails with
// ErrAlreadyLiked, also when two requests race past the check.
func (p *postService) LikePost(ctx context.Context, userID, postID string) (models.Post, error) {
	post, err := p.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	if slices.ContainsFunc(post.Likes, likedBy(userID)) {
		return models.Post{}, ErrAlreadyLiked
	}

	like := models.Like{PostID: post.ID, UserID: userID, CreatedAt: time.Now().UTC()}
	err = p.postRepository.AddLike(ctx, like)
	if errors.Is(err, store.ErrLikeAlreadyExists) {
		return models.Post{}, ErrAlreadyLiked
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("adding like failed: %w", err)
	}

	post.Likes = append([]models.Like{like}, post.Likes...)
	return post, nil
}

// UnlikePost removes the user's like, or fails with ErrNotLiked.
func (p *postService) UnlikePost(ctx context.Context, userID, postID string) (models.Post, error) {
	post, err := p.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	err = p.postRepository.RemoveLike(ctx, post.ID, userID)
	if errors.Is(err, store.ErrLikeNotFound) {
		return models.Post{}, ErrNotLiked
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("removing like failed: %w", err)
	}

	post.Likes = slices.DeleteFunc(post.Likes, likedBy(userID))
	return post, nil
}

func (p *postService) AddComment(ctx context.Context, userID, postID string, req models.CommentRequest) (models.Post, error) {
	if err := p.validator.Validate(ctx, req); err != nil {
		return models.Post{}, err
	}

	post, err := p.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	author, err := p.findUser(ctx, userID)
	if err != nil {
		return models.Post{}, err
	}

	comment := models.Comment{
		ID:        p.ids.Generate(),
		PostID:    post.ID,
		UserID:    author.ID,
		Text:      req.Text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		CreatedAt: time.Now().UTC(),
	}
	if err = p.postRepository.AddComment(ctx, comment); err != nil {
		return models.Post{}, fmt.Errorf("adding comment failed: %w", err)
	}

	post.Comments = append([]models.Comment{comment}, post.Comments...)
	return post, nil
}

// DeleteComment removes a comment. Only its author may do that.
func (p *postService) DeleteComment(ctx context.Context, userID, postID, commentID string) (models.Post, error) {
	post, err := p.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	if !utils.IsValidID(commentID) {
		return models.Post{}, ErrCommentNotFound
	}

	comment, err := p.postRepository.FindComment(ctx, post.ID, commentID)
	if errors.Is(err, store.ErrCommentNotFound) {
		return models.Post{}, ErrCommentNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("comment search failed: %w", err)
	}

	if err = CheckOwnership(userID, comment.UserID); err != nil {
		return models.Post{}, err
	}

	err = p.postRepository.DeleteComment(ctx, post.ID, commentID)
	if errors.Is(err, store.ErrCommentNotFound) {
		return models.Post{}, ErrCommentNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("deleting comment failed: %w", err)
	}

	post.Comments = slices.DeleteFunc(post.Comments, func(c models.Comment) bool { return c.ID == commentID })
	return post, nil
}

func (p *postService) findUser(ctx context.Context, userID string) (models.User, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search failed: %w", err)
	}

	return user, nil
}

func likedBy(userID string) func(models.Like) bool {
	return func(l models.Like) bool { return l.UserID == userID }
}
