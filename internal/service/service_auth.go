// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/internal/validators"
	"github.com/MKhiriev/dev-connector/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator
	ids       *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The password is stored as a bcrypt hash and the avatar is the gravatar URL
// of the email.
//
// Returns the persisted user or:
//   - a *validators.ValidationError for missing or malformed fields.
//   - ErrEmailAlreadyExists if the email is taken.
//   - a wrapped storage error otherwise.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		ID:        a.ids.Generate(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		Avatar:    utils.GravatarURL(req.Email),
		CreatedAt: time.Now().UTC(),
	}

	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login authenticates an existing user by email and password.
//
// Unknown email and wrong password both yield ErrInvalidCredentials; only the
// log tells them apart.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("func", "*authService.Login").Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.ComparePassword(foundUser.Password, req.Password); err != nil {
		log.Info().Str("func", "*authService.Login").Str("user_id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An empty string yields ErrMissingToken. Any validation failure (expired,
// wrong issuer, wrong algorithm, malformed, no user id) is normalised to
// ErrInvalidToken so that callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrMissingToken
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}

// CurrentUser returns the account of an authenticated user.
func (a *authService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
