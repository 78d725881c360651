// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/health-vault/internal/config"
	"github.com/MKhiriev/health-vault/internal/crypto"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/mock"
	"github.com/MKhiriev/health-vault/internal/store"
	"github.com/MKhiriev/health-vault/internal/utils"
	"github.com/MKhiriev/health-vault/internal/validators"
	"github.com/MKhiriev/health-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "health-vault-test",
	TokenDuration: time.Hour,
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockAccountRepository, crypto.PasswordHasher) {
	t.Helper()
	repo := mock.NewMockAccountRepository(gomock.NewController(t))
	hasher := crypto.NewPasswordHasherWithCost(bcrypt.MinCost)

	return NewAuthService(repo, hasher, validators.NewRequestValidator(), testAppConfig, logger.Nop()), repo, hasher
}

func validSignUp() models.SignUpRequest {
	return models.SignUpRequest{
		Email:    "  Asha@Example.com ",
		Password: "secret1",
		Data:     models.SignUpMetadata{FullName: "Asha Rao", Phone: "9000000001", UserType: "patient"},
	}
}

// ── SignUp ───────────────────────────────────────────────────────────────────

func TestAuthService_SignUp_Success(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)

	repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Account) (models.Account, error) {
			assert.Equal(t, "asha@example.com", a.Email)
			assert.Len(t, a.ID, 36)
			assert.NoError(t, hasher.Compare(a.PasswordHash, "secret1"))
			return a, nil
		},
	)

	account, err := svc.SignUp(context.Background(), validSignUp())

	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", account.Email)
}

func TestAuthService_SignUp_InvalidData(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *models.SignUpRequest)
	}{
		{"bad email", func(r *models.SignUpRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *models.SignUpRequest) { r.Password = "abc" }},
		{"bad phone", func(r *models.SignUpRequest) { r.Data.Phone = "12345" }},
		{"unknown user type", func(r *models.SignUpRequest) { r.Data.UserType = "admin" }},
		{"empty name", func(r *models.SignUpRequest) { r.Data.FullName = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestAuthService(t)
			req := validSignUp()
			tt.modify(&req)

			_, err := svc.SignUp(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
		Return(models.Account{}, fmt.Errorf("%w: duplicate", store.ErrEmailAlreadyExists))

	_, err := svc.SignUp(context.Background(), validSignUp())

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── SignIn ───────────────────────────────────────────────────────────────────

func TestAuthService_SignIn(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)
	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	stored := models.Account{ID: "u-1", Email: "asha@example.com", PasswordHash: hash}

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().FindAccountByEmail(gomock.Any(), "asha@example.com").Return(stored, nil)

		account, err := svc.SignIn(context.Background(), models.SignInRequest{Email: "ASHA@example.com", Password: "secret1"})

		require.NoError(t, err)
		assert.Equal(t, "u-1", account.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().FindAccountByEmail(gomock.Any(), "asha@example.com").Return(stored, nil)

		_, err := svc.SignIn(context.Background(), models.SignInRequest{Email: "asha@example.com", Password: "other1"})

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo.EXPECT().FindAccountByEmail(gomock.Any(), "nobody@example.com").Return(models.Account{}, store.ErrNoUserWasFound)

		_, err := svc.SignIn(context.Background(), models.SignInRequest{Email: "nobody@example.com", Password: "secret1"})

		assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	})

	t.Run("missing password", func(t *testing.T) {
		_, err := svc.SignIn(context.Background(), models.SignInRequest{Email: "asha@example.com"})

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

// ── tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	token, err := svc.CreateToken(context.Background(), models.Account{ID: "u-1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, "u-1", parsed.UserID)
}

func TestAuthService_ParseToken_Errors(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	expired, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "u-1", -time.Minute, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	foreign, err := utils.GenerateJWTToken("someone-else", "u-1", time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), expired.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = svc.ParseToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
