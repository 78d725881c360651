package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/health-vault/internal/app"
	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/internal/store"
	"github.com/MKhiriev/health-vault/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testExpiry = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func issuingAuth() *mockAuthService {
	m := authAs("acc-1")
	m.createTokenFn = func(_ context.Context, a models.Account) (models.Token, error) {
		return models.Token{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(testExpiry)},
			SignedString:     "signed-" + a.ID,
			UserID:           a.ID,
		}, nil
	}
	return m
}

func TestSignUp(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		signUpErr  error
		wantStatus int
		wantBody   string
		wantHeader string
	}{
		{
			name:       "created",
			body:       `{"email":"a@b.c","password":"secret1","data":{"full_name":"Priya","phone":"9123456789","user_type":"patient"}}`,
			wantStatus: http.StatusCreated,
			wantHeader: "Bearer signed-acc-1",
		},
		{
			name:       "invalid json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name:       "duplicate email",
			body:       `{"email":"a@b.c","password":"secret1"}`,
			signUpErr:  store.ErrEmailAlreadyExists,
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgEmailAlreadyExists,
		},
		{
			name:       "validation failure",
			body:       `{"email":"nope","password":"x"}`,
			signUpErr:  service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name:       "unexpected error",
			body:       `{"email":"a@b.c","password":"secret1"}`,
			signUpErr:  errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := issuingAuth()
			auth.signUpFn = func(_ context.Context, r models.SignUpRequest) (models.Account, error) {
				if tt.signUpErr != nil {
					return models.Account{}, tt.signUpErr
				}
				assert.Equal(t, "a@b.c", r.Email)
				assert.Equal(t, "patient", r.Data.UserType)
				return models.Account{ID: "acc-1", Email: r.Email}, nil
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			rec := do(t, h, http.MethodPost, "/api/auth/signup", tt.body, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Authorization"))
			if tt.wantBody != "" {
				requireBody(t, rec, tt.wantBody)
				return
			}

			var resp models.SessionResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, models.BackendUser{ID: "acc-1", Email: "a@b.c"}, resp.User)
			assert.True(t, resp.ExpiresAt.Equal(testExpiry))
		})
	}
}

func TestSignIn(t *testing.T) {
	tests := []struct {
		name       string
		signInErr  error
		wantStatus int
		wantBody   string
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{name: "wrong password", signInErr: service.ErrWrongPassword, wantStatus: http.StatusUnauthorized, wantBody: app.MsgInvalidLoginPassword},
		{name: "unknown email", signInErr: store.ErrNoUserWasFound, wantStatus: http.StatusUnauthorized, wantBody: app.MsgInvalidLoginPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := issuingAuth()
			auth.signInFn = func(_ context.Context, r models.SignInRequest) (models.Account, error) {
				if tt.signInErr != nil {
					return models.Account{}, tt.signInErr
				}
				return models.Account{ID: "acc-1", Email: r.Email}, nil
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			rec := do(t, h, http.MethodPost, "/api/auth/signin", `{"email":"a@b.c","password":"secret1"}`, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				requireBody(t, rec, tt.wantBody)
				assert.Empty(t, rec.Header().Get("Authorization"))
				return
			}
			assert.Equal(t, "Bearer signed-acc-1", rec.Header().Get("Authorization"))
		})
	}
}

func TestSignIn_TokenCreationFails(t *testing.T) {
	auth := issuingAuth()
	auth.signInFn = func(context.Context, models.SignInRequest) (models.Account, error) {
		return models.Account{ID: "acc-1"}, nil
	}
	auth.createTokenFn = func(context.Context, models.Account) (models.Token, error) {
		return models.Token{}, service.ErrTokenCreationFailed
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rec := do(t, h, http.MethodPost, "/api/auth/signin", `{"email":"a@b.c","password":"secret1"}`, nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

func TestSignOut(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: authAs("acc-1")})

	rec := do(t, h, http.MethodPost, "/api/auth/signout", "", bearer())
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/auth/signout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSession(t *testing.T) {
	auth := authAs("acc-1")
	auth.parseTokenFn = func(_ context.Context, s string) (models.Token, error) {
		if s != testToken {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(testExpiry)},
			UserID:           "acc-1",
		}, nil
	}

	t.Run("known account", func(t *testing.T) {
		auth.getAccountFn = func(_ context.Context, id string) (models.Account, error) {
			return models.Account{ID: id, Email: "a@b.c"}, nil
		}
		h := newTestHandler(&service.Services{AuthService: auth})

		rec := do(t, h, http.MethodGet, "/api/auth/session", "", bearer())

		require.Equal(t, http.StatusOK, rec.Code)
		var info sessionInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "acc-1", info.UserID)
		assert.Equal(t, "a@b.c", info.Email)
		assert.True(t, info.ExpiresAt.Equal(testExpiry))
	})

	t.Run("account deleted", func(t *testing.T) {
		auth.getAccountFn = func(context.Context, string) (models.Account, error) {
			return models.Account{}, store.ErrNoUserWasFound
		}
		h := newTestHandler(&service.Services{AuthService: auth})

		rec := do(t, h, http.MethodGet, "/api/auth/session", "", bearer())

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
