package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/store"
	"github.com/MKhiriev/health-vault/internal/validators"
	"github.com/MKhiriev/health-vault/models"
)

type profileService struct {
	profileRepository store.ProfileRepository
	validator         validators.Validator

	logger *logger.Logger
}

// NewProfileService constructs a ProfileService over the profiles table.
func NewProfileService(profileRepository store.ProfileRepository, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		validator:         validator,
		logger:            logger,
	}
}

// InsertProfile stores the caller's profile. The profile id must be the
// caller's account id and user_type must name a known role.
func (p *profileService) InsertProfile(ctx context.Context, callerID string, profile models.Profile) error {
	log := logger.FromContext(ctx)

	if profile.ID != callerID {
		log.Error().Str("caller", callerID).Str("profile", profile.ID).Msg("profile insert for another account")
		return ErrAccessDenied
	}

	if err := p.validator.Validate(ctx, profile); err != nil {
		log.Err(err).Msg("invalid profile provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := p.profileRepository.InsertProfile(ctx, profile); err != nil {
		return fmt.Errorf("profile insert failed: %w", err)
	}

	return nil
}

// GetProfile returns the caller's own profile.
func (p *profileService) GetProfile(ctx context.Context, callerID, id string) (models.Profile, error) {
	if id != callerID {
		return models.Profile{}, ErrAccessDenied
	}

	profile, err := p.profileRepository.GetProfile(ctx, id)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile fetch failed: %w", err)
	}

	return profile, nil
}

// UpdateProfile applies the non-nil fields of update to the caller's profile
// and returns the stored result.
func (p *profileService) UpdateProfile(ctx context.Context, callerID, id string, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if id != callerID {
		return models.Profile{}, ErrAccessDenied
	}

	if err := p.validator.Validate(ctx, update); err != nil {
		log.Err(err).Msg("invalid profile update provided")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	profile, err := p.profileRepository.UpdateProfile(ctx, id, update)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile update failed: %w", err)
	}

	return profile, nil
}
