// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
)

// ─────────────────────────────────────────────
// Fake services
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService. Each method field can be
// overridden per test case; ParseToken accepts "token-<user id>" by default.
type fakeAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	currentUserFn  func(ctx context.Context, userID string) (models.User, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return f.registerUserFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createTokenFn != nil {
		return f.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "token-" + user.ID, UserID: user.ID}, nil
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, tokenString)
	}
	if tokenString == "" {
		return models.Token{}, service.ErrMissingToken
	}
	userID, ok := strings.CutPrefix(tokenString, "token-")
	if !ok {
		return models.Token{}, service.ErrInvalidToken
	}
	return models.Token{SignedString: tokenString, UserID: userID}, nil
}

func (f *fakeAuthService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	return f.currentUserFn(ctx, userID)
}

type fakeProfileService struct {
	getMyProfileFn       func(ctx context.Context, userID string) (models.Profile, error)
	upsertProfileFn      func(ctx context.Context, userID string, req models.ProfileRequest) (models.Profile, bool, error)
	listProfilesFn       func(ctx context.Context) ([]models.Profile, error)
	getProfileByUserIDFn func(ctx context.Context, userID string) (models.Profile, error)
	deleteAccountFn      func(ctx context.Context, userID string) error
	addExperienceFn      func(ctx context.Context, userID string, req models.ExperienceRequest) (models.Profile, error)
	deleteExperienceFn   func(ctx context.Context, userID, experienceID string) (models.Profile, error)
	addEducationFn       func(ctx context.Context, userID string, req models.EducationRequest) (models.Profile, error)
	deleteEducationFn    func(ctx context.Context, userID, educationID string) (models.Profile, error)
}

func (f *fakeProfileService) GetMyProfile(ctx context.Context, userID string) (models.Profile, error) {
	return f.getMyProfileFn(ctx, userID)
}

func (f *fakeProfileService) UpsertProfile(ctx context.Context, userID string, req models.ProfileRequest) (models.Profile, bool, error) {
	return f.upsertProfileFn(ctx, userID, req)
}

func (f *fakeProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return f.listProfilesFn(ctx)
}

func (f *fakeProfileService) GetProfileByUserID(ctx context.Context, userID string) (models.Profile, error) {
	return f.getProfileByUserIDFn(ctx, userID)
}

func (f *fakeProfileService) DeleteAccount(ctx context.Context, userID string) error {
	return f.deleteAccountFn(ctx, userID)
}

func (f *fakeProfileService) AddExperience(ctx context.Context, userID string, req models.ExperienceRequest) (models.Profile, error) {
	return f.addExperienceFn(ctx, userID, req)
}

func (f *fakeProfileService) DeleteExperience(ctx context.Context, userID, experienceID string) (models.Profile, error) {
	return f.deleteExperienceFn(ctx, userID, experienceID)
}

func (f *fakeProfileService) AddEducation(ctx context.Context, userID string, req models.EducationRequest) (models.Profile, error) {
	return f.addEducationFn(ctx, userID, req)
}

func (f *fakeProfileService) DeleteEducation(ctx context.Context, userID, educationID string) (models.Profile, error) {
	return f.deleteEducationFn(ctx, userID, educationID)
}

type fakePostService struct {
	createPostFn    func(ctx context.Context, userID string, req models.PostRequest) (models.Post, error)
	listPostsFn     func(ctx context.Context) ([]models.Post, error)
	getPostFn       func(ctx context.Context, postID string) (models.Post, error)
	deletePostFn    func(ctx context.Context, userID, postID string) error
	likePostFn      func(ctx context.Context, userID, postID string) (models.Post, error)
	unlikePostFn    func(ctx context.Context, userID, postID string) (models.Post, error)
	addCommentFn    func(ctx context.Context, userID, postID string, req models.CommentRequest) (models.Post, error)
	deleteCommentFn func(ctx context.Context, userID, postID, commentID string) (models.Post, error)
}

func (f *fakePostService) CreatePost(ctx context.Context, userID string, req models.PostRequest) (models.Post, error) {
	return f.createPostFn(ctx, userID, req)
}

func (f *fakePostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return f.listPostsFn(ctx)
}

func (f *fakePostService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	return f.getPostFn(ctx, postID)
}

func (f *fakePostService) DeletePost(ctx context.Context, userID, postID string) error {
	return f.deletePostFn(ctx, userID, postID)
}

func (f *fakePostService) LikePost(ctx context.Context, userID, postID string) (models.Post, error) {
	return f.likePostFn(ctx, userID, postID)
}

func (f *fakePostService) UnlikePost(ctx context.Context, userID, postID string) (models.Post, error) {
	return f.unlikePostFn(ctx, userID, postID)
}

func (f *fakePostService) AddComment(ctx context.Context, userID, postID string, req models.CommentRequest) (models.Post, error) {
	return f.addCommentFn(ctx, userID, postID, req)
}

func (f *fakePostService) DeleteComment(ctx context.Context, userID, postID, commentID string) (models.Post, error) {
	return f.deleteCommentFn(ctx, userID, postID, commentID)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppInfo(context.Context) models.AppInfo {
	return models.AppInfo{Version: f.version, StartedAt: time.Unix(0, 0).UTC(), Uptime: "1s"}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestServices returns services where every method not set by the test
// panics, which Recoverer turns into a 500.
func newTestServices() *service.Services {
	return &service.Services{
		AppInfoService: &fakeAppInfoService{version: "test"},
		AuthService:    &fakeAuthService{},
		ProfileService: &fakeProfileService{},
		PostService:    &fakePostService{},
	}
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	return NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop()).Init()
}

// doRequest sends a request through router. A non-empty userID is sent as
// the fake token the default fakeAuthService accepts.
func doRequest(t *testing.T, router http.Handler, method, target, body, userID string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if userID != "" {
		req.Header.Set(utils.AuthTokenHeader, "token-"+userID)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}
