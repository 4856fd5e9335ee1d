// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
)

// httpServerAdapter is not safe for calling SetToken concurrently with
// requests.
type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a [ServerAdapter] for cfg.HTTPAddress, which may
// omit the scheme ("localhost:5010"). cfg.Token, when set, is used from the
// first request on.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
	h.client.SetAuthToken(h.token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	var tokenResp models.TokenResponse
	if err := h.do(ctx, resty.MethodPost, "/api/users", req, &tokenResp); err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}

	h.SetToken(tokenResp.Token)
	return tokenResp.Token, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var tokenResp models.TokenResponse
	if err := h.do(ctx, resty.MethodPost, "/api/auth", req, &tokenResp); err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}

	h.SetToken(tokenResp.Token)
	return tokenResp.Token, nil
}

func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := h.do(ctx, resty.MethodGet, "/api/auth", nil, &user); err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo
	if err := h.do(ctx, resty.MethodGet, "/api/version", nil, &info); err != nil {
		return models.AppInfo{}, fmt.Errorf("version request: %w", err)
	}
	return info, nil
}

// ── profiles ─────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) MyProfile(ctx context.Context) (models.Profile, error) {
	return h.profile(ctx, resty.MethodGet, "/api/profile/me", nil)
}

func (h *httpServerAdapter) UpsertProfile(ctx context.Context, req models.ProfileRequest) (models.Profile, error) {
	var resp models.ProfileResponse
	if err := h.do(ctx, resty.MethodPost, "/api/profile", req, &resp); err != nil {
		return models.Profile{}, fmt.Errorf("upsert profile request: %w", err)
	}
	return resp.Profile, nil
}

func (h *httpServerAdapter) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := h.do(ctx, resty.MethodGet, "/api/profile", nil, &profiles); err != nil {
		return nil, fmt.Errorf("list profiles request: %w", err)
	}
	return profiles, nil
}

func (h *httpServerAdapter) GetProfileByUserID(ctx context.Context, userID string) (models.Profile, error) {
	return h.profile(ctx, resty.MethodGet, "/api/profile/user/"+url.PathEscape(userID), nil)
}

func (h *httpServerAdapter) AddExperience(ctx context.Context, req models.ExperienceRequest) (models.Profile, error) {
	return h.profile(ctx, resty.MethodPut, "/api/profile/experience", req)
}

func (h *httpServerAdapter) DeleteExperience(ctx context.Context, experienceID string) (models.Profile, error) {
	return h.profile(ctx, resty.MethodDelete, "/api/profile/experience/"+url.PathEscape(experienceID), nil)
}

func (h *httpServerAdapter) AddEducation(ctx context.Context, req models.EducationRequest) (models.Profile, error) {
	return h.profile(ctx, resty.MethodPut, "/api/profile/education", req)
}

func (h *httpServerAdapter) DeleteEducation(ctx context.Context, educationID string) (models.Profile, error) {
	return h.profile(ctx, resty.MethodDelete, "/api/profile/education/"+url.PathEscape(educationID), nil)
}

func (h *httpServerAdapter) DeleteAccount(ctx context.Context) error {
	if err := h.do(ctx, resty.MethodDelete, "/api/profile", nil, nil); err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) profile(ctx context.Context, method, path string, body any) (models.Profile, error) {
	var profile models.Profile
	if err := h.do(ctx, method, path, body, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return profile, nil
}

// ── posts ────────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) CreatePost(ctx context.Context, req models.PostRequest) (models.Post, error) {
	return h.post(ctx, resty.MethodPost, "/api/posts", req)
}

func (h *httpServerAdapter) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := h.do(ctx, resty.MethodGet, "/api/posts", nil, &posts); err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	return posts, nil
}

func (h *httpServerAdapter) GetPost(ctx context.Context, postID string) (models.Post, error) {
	return h.post(ctx, resty.MethodGet, "/api/posts/"+url.PathEscape(postID), nil)
}

func (h *httpServerAdapter) DeletePost(ctx context.Context, postID string) error {
	if err := h.do(ctx, resty.MethodDelete, "/api/posts/"+url.PathEscape(postID), nil, nil); err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) LikePost(ctx context.Context, postID string) (models.Post, error) {
	return h.post(ctx, resty.MethodPut, "/api/posts/like/"+url.PathEscape(postID), nil)
}

func (h *httpServerAdapter) UnlikePost(ctx context.Context, postID string) (models.Post, error) {
	return h.post(ctx, resty.MethodPut, "/api/posts/unlike/"+url.PathEscape(postID), nil)
}

func (h *httpServerAdapter) AddComment(ctx context.Context, postID string, req models.CommentRequest) (models.Post, error) {
	return h.post(ctx, resty.MethodPost, "/api/posts/comment/"+url.PathEscape(postID), req)
}

func (h *httpServerAdapter) DeleteComment(ctx context.Context, postID, commentID string) (models.Post, error) {
	return h.post(ctx, resty.MethodDelete,
		"/api/posts/comment/"+url.PathEscape(postID)+"/"+url.PathEscape(commentID), nil)
}

func (h *httpServerAdapter) post(ctx context.Context, method, path string, body any) (models.Post, error) {
	var post models.Post
	if err := h.do(ctx, method, path, body, &post); err != nil {
		return models.Post{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return post, nil
}

// do sends one request. A non-nil body is sent as JSON and a non-nil result
// receives the decoded 2xx reply.
func (h *httpServerAdapter) do(ctx context.Context, method, path string, body, result any) error {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("server replied")

	return mapHTTPError(resp)
}
