// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
)

// profileRepository is the SQL implementation of [ProfileRepository].
// Skills and social links are stored as JSON documents; experience and
// education entries live in their own tables and are loaded in one query per
// table for any number of profiles.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *profileRepository) selectProfiles() sq.SelectBuilder {
	return r.db.builder.Select(profileColumns...).
		From(profilesTable + " p").
		Join(usersTable + " u ON u.id = p.user_id")
}

// FindProfileByUserID returns the user's profile with its entries, or
// [ErrProfileNotFound].
func (r *profileRepository) FindProfileByUserID(ctx context.Context, userID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profiles, err := r.queryProfiles(ctx, r.selectProfiles().Where(sq.Eq{"p.user_id": userID}))
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindProfileByUserID").Str("user_id", userID).Msg("error finding profile")
		return models.Profile{}, err
	}
	if len(profiles) == 0 {
		return models.Profile{}, ErrProfileNotFound
	}

	return profiles[0], nil
}

// ListProfiles returns every profile in creation order.
func (r *profileRepository) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	profiles, err := r.queryProfiles(ctx, r.selectProfiles().OrderBy("p.created_at ASC", "p.id ASC"))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileRepository.ListProfiles").Msg("error listing profiles")
		return nil, err
	}

	return profiles, nil
}

func (r *profileRepository) queryProfiles(ctx context.Context, b sq.SelectBuilder) ([]models.Profile, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0)
	for rows.Next() {
		var (
			p             models.Profile
			skills, social []byte
		)
		if err = rows.Scan(
			&p.ID, &p.Company, &p.Website, &p.Location, &p.Status, &skills,
			&p.Bio, &p.GithubUsername, &social, &p.CreatedAt,
			&p.User.ID, &p.User.Name, &p.User.Avatar,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if err = json.Unmarshal(skills, &p.Skills); err != nil {
			return nil, fmt.Errorf("%w: skills: %w", ErrEncodingColumn, err)
		}
		if err = json.Unmarshal(social, &p.Social); err != nil {
			return nil, fmt.Errorf("%w: social: %w", ErrEncodingColumn, err)
		}
		p.Experience = []models.Experience{}
		p.Education = []models.Education{}

		profiles = append(profiles, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(profiles) == 0 {
		return profiles, nil
	}

	if err = r.attachEntries(ctx, profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}

// attachEntries loads experience and education entries of all profiles,
// newest first.
func (r *profileRepository) attachEntries(ctx context.Context, profiles []models.Profile) error {
	index := make(map[string]int, len(profiles))
	ids := make([]string, 0, len(profiles))
	for i, p := range profiles {
		index[p.ID] = i
		ids = append(ids, p.ID)
	}

	expQuery, expArgs, err := r.db.builder.Select(experienceColumns...).
		From(experiencesTable).
		Where(sq.Eq{"profile_id": ids}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.eachRow(ctx, expQuery, expArgs, func(rows *sql.Rows) error {
		var (
			e         models.Experience
			profileID string
		)
		if err := rows.Scan(&e.ID, &profileID, &e.Title, &e.Company, &e.Location,
			&e.From, &e.To, &e.Current, &e.Description, &e.CreatedAt); err != nil {
			return err
		}
		i := index[profileID]
		profiles[i].Experience = append(profiles[i].Experience, e)
		return nil
	})
	if err != nil {
		return err
	}

	eduQuery, eduArgs, err := r.db.builder.Select(educationColumns...).
		From(educationsTable).
		Where(sq.Eq{"profile_id": ids}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.eachRow(ctx, eduQuery, eduArgs, func(rows *sql.Rows) error {
		var (
			e         models.Education
			profileID string
		)
		if err := rows.Scan(&e.ID, &profileID, &e.School, &e.Degree, &e.FieldOfStudy,
			&e.From, &e.To, &e.Current, &e.Description, &e.CreatedAt); err != nil {
			return err
		}
		i := index[profileID]
		profiles[i].Education = append(profiles[i].Education, e)
		return nil
	})
}

func (r *profileRepository) eachRow(ctx context.Context, query string, args []any, scan func(*sql.Rows) error) error {
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

// SaveProfile inserts profile or overwrites the scalar fields of the user's
// existing profile. Entries are not touched.
func (r *profileRepository) SaveProfile(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	skills := profile.Skills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return fmt.Errorf("%w: skills: %w", ErrEncodingColumn, err)
	}
	socialJSON, err := json.Marshal(profile.Social)
	if err != nil {
		return fmt.Errorf("%w: social: %w", ErrEncodingColumn, err)
	}

	upsert := r.db.builder.Insert(profilesTable).
		Columns("id", "user_id", "company", "website", "location", "status",
			"skills", "bio", "github_username", "social", "created_at").
		Values(profile.ID, profile.User.ID, profile.Company, profile.Website, profile.Location, profile.Status,
			string(skillsJSON), profile.Bio, profile.GithubUsername, string(socialJSON), profile.CreatedAt).
		Suffix(upsertProfileSuffix)

	if _, err = r.db.execAffected(ctx, r.db, upsert); err != nil {
		log.Err(err).Str("func", "*profileRepository.SaveProfile").Str("user_id", profile.User.ID).Msg("error saving profile")
		return err
	}

	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, profileID string, exp models.Experience) error {
	insert := r.db.builder.Insert(experiencesTable).
		Columns(experienceColumns...).
		Values(exp.ID, profileID, exp.Title, exp.Company, exp.Location,
			exp.From, exp.To, exp.Current, exp.Description, exp.CreatedAt)

	if _, err := r.db.execAffected(ctx, r.db, insert); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileRepository.AddExperience").Str("profile_id", profileID).Msg("error adding experience")
		return err
	}

	return nil
}

// DeleteExperience removes the entry only if it belongs to the user's
// profile, otherwise returns [ErrExperienceNotFound].
func (r *profileRepository) DeleteExperience(ctx context.Context, userID, experienceID string) error {
	return r.deleteEntry(ctx, experiencesTable, userID, experienceID, ErrExperienceNotFound)
}

func (r *profileRepository) AddEducation(ctx context.Context, profileID string, edu models.Education) error {
	insert := r.db.builder.Insert(educationsTable).
		Columns(educationColumns...).
		Values(edu.ID, profileID, edu.School, edu.Degree, edu.FieldOfStudy,
			edu.From, edu.To, edu.Current, edu.Description, edu.CreatedAt)

	if _, err := r.db.execAffected(ctx, r.db, insert); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileRepository.AddEducation").Str("profile_id", profileID).Msg("error adding education")
		return err
	}

	return nil
}

// DeleteEducation removes the entry only if it belongs to the user's
// profile, otherwise returns [ErrEducationNotFound].
func (r *profileRepository) DeleteEducation(ctx context.Context, userID, educationID string) error {
	return r.deleteEntry(ctx, educationsTable, userID, educationID, ErrEducationNotFound)
}

func (r *profileRepository) deleteEntry(ctx context.Context, table, userID, entryID string, notFound error) error {
	owned := r.db.builder.Select("id").From(profilesTable).Where(sq.Eq{"user_id": userID})

	del := r.db.builder.Delete(table).
		Where(sq.Eq{"id": entryID}).
		Where(sq.Expr("profile_id IN (?)", owned))

	n, err := r.db.execAffected(ctx, r.db, del)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*profileRepository.deleteEntry").
			Str("table", table).
			Str("user_id", userID).
			Msg("error deleting profile entry")
		return err
	}
	if n == 0 {
		return notFound
	}

	return nil
}

