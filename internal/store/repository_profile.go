package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/models"
	"github.com/jackc/pgerrcode"
)

type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] over "profiles".
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *profileRepository) InsertProfile(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertProfile,
		profile.ID, profile.FullName, profile.Phone, profile.UserType, profile.Email)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.InsertProfile").Str("id", profile.ID).Msg("error inserting profile")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrProfileAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return ErrNoUserWasFound
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *profileRepository) GetProfile(ctx context.Context, id string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var p models.Profile
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, getProfile, id).
			Scan(&p.ID, &p.FullName, &p.Phone, &p.UserType, &p.Email)
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Profile{}, ErrProfileNotFound
	case err != nil:
		log.Err(err).Str("func", "*profileRepository.GetProfile").Str("id", id).Msg("error getting profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return p, nil
}

func (r *profileRepository) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Msg("error building query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var p models.Profile
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&p.ID, &p.FullName, &p.Phone, &p.UserType, &p.Email)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Profile{}, ErrProfileNotFound
	case err != nil:
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Str("id", id).Msg("error updating profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return p, nil
}
