package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/health-vault/internal/app"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/utils"
	"github.com/MKhiriev/health-vault/models"
)

// sessionInfo is the body of GET /api/auth/session.
type sessionInfo struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(errInvalidJSON.Error())
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.SignUp(ctx, request)
	if err != nil {
		writeError(w, r, err, "sign up failed")
		return
	}

	h.issueSession(w, r, account, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(errInvalidJSON.Error())
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.SignIn(ctx, request)
	if err != nil {
		writeError(w, r, err, "sign in failed")
		return
	}

	log.Debug().Str("id", account.ID).Msg("account signed in")

	h.issueSession(w, r, account, http.StatusOK)
}

// issueSession answers with a fresh bearer token in the Authorization header
// and the session JSON in the body.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, account models.Account, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), account)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	response := models.SessionResponse{
		User: models.BackendUser{ID: account.ID, Email: account.Email},
	}
	if token.ExpiresAt != nil {
		response.ExpiresAt = token.ExpiresAt.Time
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, response, status)
}

// signOut only acknowledges: tokens are stateless and expire on their own.
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	logger.FromRequest(r).Info().Str("user_id", userID).Msg("signed out")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		writeError(w, r, err, "token parsing failed")
		return
	}

	account, err := h.services.AuthService.GetAccount(ctx, token.UserID)
	if err != nil {
		writeError(w, r, err, "account lookup failed")
		return
	}

	info := sessionInfo{UserID: account.ID, Email: account.Email}
	if token.ExpiresAt != nil {
		info.ExpiresAt = token.ExpiresAt.Time
	}

	utils.WriteJSON(w, info, http.StatusOK)
}
