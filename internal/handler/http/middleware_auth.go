package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/health-vault/internal/app"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the account id in the
// request context with [utils.WithUserID].
//
// Requests are rejected with 401 when the header is absent or malformed and
// when the token is expired or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// callerID returns the authenticated account id, answering 400 when the auth
// middleware did not run.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return "", false
	}
	return userID, true
}
