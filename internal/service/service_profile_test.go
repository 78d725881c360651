package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/mock"
	"github.com/MKhiriev/health-vault/internal/store"
	"github.com/MKhiriev/health-vault/internal/validators"
	"github.com/MKhiriev/health-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfileService(t *testing.T) (ProfileService, *mock.MockProfileRepository) {
	t.Helper()
	repo := mock.NewMockProfileRepository(gomock.NewController(t))
	return NewProfileService(repo, validators.NewRequestValidator(), logger.Nop()), repo
}

func TestProfileService_InsertProfile(t *testing.T) {
	profile := models.Profile{ID: "u-1", FullName: "Asha Rao", Phone: "9000000001", UserType: "doctor"}

	t.Run("own profile", func(t *testing.T) {
		svc, repo := newTestProfileService(t)
		repo.EXPECT().InsertProfile(gomock.Any(), profile).Return(nil)

		assert.NoError(t, svc.InsertProfile(context.Background(), "u-1", profile))
	})

	t.Run("another account", func(t *testing.T) {
		svc, _ := newTestProfileService(t)

		assert.ErrorIs(t, svc.InsertProfile(context.Background(), "u-2", profile), ErrAccessDenied)
	})

	t.Run("invalid user type", func(t *testing.T) {
		svc, _ := newTestProfileService(t)
		bad := profile
		bad.UserType = "nurse"

		err := svc.InsertProfile(context.Background(), "u-1", bad)

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrInvalidUserType)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc, repo := newTestProfileService(t)
		repo.EXPECT().InsertProfile(gomock.Any(), profile).Return(store.ErrProfileAlreadyExists)

		assert.ErrorIs(t, svc.InsertProfile(context.Background(), "u-1", profile), store.ErrProfileAlreadyExists)
	})
}

func TestProfileService_GetProfile(t *testing.T) {
	svc, repo := newTestProfileService(t)

	_, err := svc.GetProfile(context.Background(), "u-1", "u-2")
	assert.ErrorIs(t, err, ErrAccessDenied)

	repo.EXPECT().GetProfile(gomock.Any(), "u-1").Return(models.Profile{ID: "u-1", FullName: "Asha Rao"}, nil)
	got, err := svc.GetProfile(context.Background(), "u-1", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", got.FullName)

	repo.EXPECT().GetProfile(gomock.Any(), "u-1").Return(models.Profile{}, store.ErrProfileNotFound)
	_, err = svc.GetProfile(context.Background(), "u-1", "u-1")
	assert.ErrorIs(t, err, store.ErrProfileNotFound)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	svc, repo := newTestProfileService(t)
	name := "Asha R."
	badPhone := "12"

	_, err := svc.UpdateProfile(context.Background(), "u-1", "u-2", models.ProfileUpdate{FullName: &name})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.UpdateProfile(context.Background(), "u-1", "u-1", models.ProfileUpdate{Phone: &badPhone})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.UpdateProfile(context.Background(), "u-1", "u-1", models.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	update := models.ProfileUpdate{FullName: &name}
	repo.EXPECT().UpdateProfile(gomock.Any(), "u-1", update).Return(models.Profile{ID: "u-1", FullName: name}, nil)
	got, err := svc.UpdateProfile(context.Background(), "u-1", "u-1", update)
	require.NoError(t, err)
	assert.Equal(t, name, got.FullName)
}
