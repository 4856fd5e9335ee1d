// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/mock"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/internal/validators"
	"github.com/MKhiriev/dev-connector/models"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "dev-connector",
	TokenDuration: time.Hour,
	Version:       "test",
}

// newTestAuthSvc is a helper that builds authService around a mocked
// UserRepository.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	return NewAuthService(users, validators.NewRequestValidator(), testAppConfig, logger.Nop()), users
}

func hashedUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return models.User{ID: "0195f0b2-6c1e-7a3b-9c4d-1e2f3a4b5c6d", Name: "Ann", Email: "ann@example.com", Password: hash}
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"}

	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) error {
			assert.True(t, utils.IsValidID(u.ID))
			assert.Equal(t, "Ann", u.Name)
			assert.NotEqual(t, req.Password, u.Password, "password must be stored hashed")
			assert.NoError(t, utils.ComparePassword(u.Password, req.Password))
			assert.Equal(t, utils.GravatarURL(req.Email), u.Avatar)
			assert.Equal(t, time.UTC, u.CreatedAt.Location())
			return nil
		},
	)

	user, err := svc.RegisterUser(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)
}

func TestAuthService_RegisterUser_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Email: "not-an-email", Password: "123"})

	require.ErrorIs(t, err, validators.ErrValidation)
	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 3)
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users := newTestAuthSvc(t, ctrl)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_RegisterUser_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users := newTestAuthSvc(t, ctrl)

	dbErr := errors.New("connection reset")
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(dbErr)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users := newTestAuthSvc(t, ctrl)
	stored := hashedUser(t, "secret1")

	users.EXPECT().FindUserByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)

	user, err := svc.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(users *mock.MockUserRepository, stored models.User)
	}{
		{
			name: "unknown email",
			setup: func(users *mock.MockUserRepository, _ models.User) {
				users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(users *mock.MockUserRepository, stored models.User) {
				users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(stored, nil)
			},
		},
	}

	stored := hashedUser(t, "secret1")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users := newTestAuthSvc(t, ctrl)
			tt.setup(users, stored)

			_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "wrong-one"})
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_MissingPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ann@example.com"})
	assert.ErrorIs(t, err, validators.ErrValidation)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: "user-42"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user-42", parsed.UserID)
}

func TestAuthService_CreateToken_NoUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.CreateToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = svc.ParseToken(ctx, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	foreign, err := utils.GenerateJWTToken("dev-connector", "user-42", time.Hour, "another-key")
	require.NoError(t, err)
	_, err = svc.ParseToken(ctx, foreign.SignedString)
	assert.ErrorIs(t, err, ErrInvalidToken)

	otherIssuer, err := utils.GenerateJWTToken("someone-else", "user-42", time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)
	_, err = svc.ParseToken(ctx, otherIssuer.SignedString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// ── CurrentUser ──────────────────────────────────────────────────────────────

func TestAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		users.EXPECT().FindUserByID(ctx, "u1").Return(models.User{ID: "u1", Name: "Ann"}, nil),
		users.EXPECT().FindUserByID(ctx, "gone").Return(models.User{}, store.ErrUserNotFound),
	)

	user, err := svc.CurrentUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)

	_, err = svc.CurrentUser(ctx, "gone")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
