package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/health-vault/internal/app"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/utils"
	"github.com/MKhiriev/health-vault/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "profile fetch failed")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) insertProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}

	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		logger.FromRequest(r).Err(err).Msg(errInvalidJSON.Error())
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.ProfileService.InsertProfile(r.Context(), caller, profile); err != nil {
		writeError(w, r, err, "profile insert failed")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.FromRequest(r).Err(err).Msg(errInvalidJSON.Error())
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.UpdateProfile(r.Context(), caller, chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err, "profile update failed")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
