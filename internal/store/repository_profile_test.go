package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileColumns = []string{"id", "full_name", "phone", "user_type", "email"}

func newTestProfileRepo(t *testing.T) (*profileRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &profileRepository{db: db, logger: logger.Nop()}, mock
}

func TestInsertProfile(t *testing.T) {
	profile := models.Profile{ID: "p1", FullName: "Priya Sharma", Phone: "9123456789", UserType: "patient"}

	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "success"},
		{name: "duplicate", execErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrProfileAlreadyExists},
		{name: "no account", execErr: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrNoUserWasFound},
		{name: "other", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestProfileRepo(t)

			exp := mock.ExpectExec("INSERT INTO profiles").
				WithArgs(profile.ID, profile.FullName, profile.Phone, profile.UserType, profile.Email)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.InsertProfile(context.Background(), profile)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetProfile(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery("SELECT id, full_name").
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow("p1", "Raj Patel", "9000000001", "doctor", "raj@example.com"))

	p, err := repo.GetProfile(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, models.Profile{ID: "p1", FullName: "Raj Patel", Phone: "9000000001", UserType: "doctor", Email: "raj@example.com"}, p)
}

func TestGetProfile_NotFound(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery("SELECT id, full_name").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProfile(t *testing.T) {
	repo, mock := newTestProfileRepo(t)
	name := "Priya S."

	mock.ExpectQuery(`UPDATE profiles SET updated_at = NOW\(\), full_name = \$1 WHERE id = \$2 RETURNING`).
		WithArgs(name, "p1").
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow("p1", name, "9123456789", "patient", ""))

	p, err := repo.UpdateProfile(context.Background(), "p1", models.ProfileUpdate{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, p.FullName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile_NotFound(t *testing.T) {
	repo, mock := newTestProfileRepo(t)
	phone := "9000000000"

	mock.ExpectQuery("UPDATE profiles").WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateProfile(context.Background(), "missing", models.ProfileUpdate{Phone: &phone})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
