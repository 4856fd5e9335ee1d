// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"dario.cat/mergo"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/internal/validators"
	"github.com/MKhiriev/dev-connector/models"
)

// profileService manages developer profiles. Every operation is scoped by
// the id of the calling user, so no separate ownership check is needed.
type profileService struct {
	profileRepository store.ProfileRepository
	userRepository    store.UserRepository

	validator validators.Validator
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		userRepository:    userRepository,
		validator:         validator,
		ids:               utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

func (p *profileService) GetMyProfile(ctx context.Context, userID string) (models.Profile, error) {
	return p.findProfile(ctx, userID)
}

// UpsertProfile creates the user's profile or merges req into the existing
// one: non-empty fields overwrite stored values, social links are replaced
// as a whole, experience and education are kept.
func (p *profileService) UpsertProfile(ctx context.Context, userID string, req models.ProfileRequest) (models.Profile, bool, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, false, err
	}

	incoming := profileFromRequest(req)

	existing, err := p.profileRepository.FindProfileByUserID(ctx, userID)
	created := errors.Is(err, store.ErrProfileNotFound)
	if err != nil && !created {
		return models.Profile{}, false, fmt.Errorf("profile search failed: %w", err)
	}

	profile := incoming
	if created {
		profile.ID = p.ids.Generate()
		profile.User.ID = userID
		profile.CreatedAt = time.Now().UTC()
	} else {
		profile = existing
		if err = mergo.Merge(&profile, incoming, mergo.WithOverride, mergo.WithTransformers(timeTransformer{})); err != nil {
			log.Err(err).Str("func", "*profileService.UpsertProfile").Msg("error merging profile fields")
			return models.Profile{}, false, fmt.Errorf("error merging profile fields: %w", err)
		}
		profile.Social = incoming.Social
	}

	if err = p.profileRepository.SaveProfile(ctx, profile); err != nil {
		return models.Profile{}, false, fmt.Errorf("saving profile failed: %w", err)
	}

	saved, err := p.findProfile(ctx, userID)
	if err != nil {
		return models.Profile{}, false, err
	}

	return saved, created, nil
}

func (p *profileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	profiles, err := p.profileRepository.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing profiles failed: %w", err)
	}

	return profiles, nil
}

// GetProfileByUserID returns ErrProfileNotFound for malformed ids without
// querying the store.
func (p *profileService) GetProfileByUserID(ctx context.Context, userID string) (models.Profile, error) {
	if !utils.IsValidID(userID) {
		return models.Profile{}, ErrProfileNotFound
	}

	return p.findProfile(ctx, userID)
}

// DeleteAccount removes the profile, posts, likes and the user itself.
func (p *profileService) DeleteAccount(ctx context.Context, userID string) error {
	err := p.userRepository.DeleteUser(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting account failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*profileService.DeleteAccount").Str("user_id", userID).Msg("account deleted")
	return nil
}

func (p *profileService) AddExperience(ctx context.Context, userID string, req models.ExperienceRequest) (models.Profile, error) {
	if err := p.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, err
	}

	profile, err := p.findProfile(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}

	exp := models.Experience{
		ID:          p.ids.Generate(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err = p.profileRepository.AddExperience(ctx, profile.ID, exp); err != nil {
		return models.Profile{}, fmt.Errorf("adding experience failed: %w", err)
	}

	profile.Experience = append([]models.Experience{exp}, profile.Experience...)
	return profile, nil
}

func (p *profileService) DeleteExperience(ctx context.Context, userID, experienceID string) (models.Profile, error) {
	if !utils.IsValidID(experienceID) {
		return models.Profile{}, ErrExperienceNotFound
	}

	err := p.profileRepository.DeleteExperience(ctx, userID, experienceID)
	if errors.Is(err, store.ErrExperienceNotFound) {
		return models.Profile{}, ErrExperienceNotFound
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("deleting experience failed: %w", err)
	}

	return p.findProfile(ctx, userID)
}

func (p *profileService) AddEducation(ctx context.Context, userID string, req models.EducationRequest) (models.Profile, error) {
	if err := p.validator.Validate(ctx, req); err != nil {
		return models.Profile{}, err
	}

	profile, err := p.findProfile(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}

	edu := models.Education{
		ID:           p.ids.Generate(),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
		CreatedAt:    time.Now().UTC(),
	}
	if err = p.profileRepository.AddEducation(ctx, profile.ID, edu); err != nil {
		return models.Profile{}, fmt.Errorf("adding education failed: %w", err)
	}

	profile.Education = append([]models.Education{edu}, profile.Education...)
	return profile, nil
}

func (p *profileService) DeleteEducation(ctx context.Context, userID, educationID string) (models.Profile, error) {
	if !utils.IsValidID(educationID) {
		return models.Profile{}, ErrEducationNotFound
	}

	err := p.profileRepository.DeleteEducation(ctx, userID, educationID)
	if errors.Is(err, store.ErrEducationNotFound) {
		return models.Profile{}, ErrEducationNotFound
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("deleting education failed: %w", err)
	}

	return p.findProfile(ctx, userID)
}

func (p *profileService) findProfile(ctx context.Context, userID string) (models.Profile, error) {
	profile, err := p.profileRepository.FindProfileByUserID(ctx, userID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile search failed: %w", err)
	}

	return profile, nil
}

func profileFromRequest(req models.ProfileRequest) models.Profile {
	return models.Profile{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         splitSkills(req.Skills),
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social: models.Social{
			Youtube:   req.Youtube,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
			Linkedin:  req.Linkedin,
			Instagram: req.Instagram,
		},
	}
}

// splitSkills turns "go, sql,,docker " into [go sql docker].
func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	result := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}
	return result
}

// timeTransformer keeps non-zero timestamps of the destination when merging;
// mergo cannot see into time.Time and would otherwise copy a zero value.
type timeTransformer struct{}

func (timeTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeOf(time.Time{}) {
		return nil
	}

	return func(dst, src reflect.Value) error {
		if dst.CanSet() && !src.Interface().(time.Time).IsZero() {
			dst.Set(src)
		}
		return nil
	}
}
