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

func (h *Handler) bookAppointment(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}

	var request models.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.FromRequest(r).Err(err).Msg(errInvalidJSON.Error())
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	appointment, err := h.services.AppointmentService.Book(r.Context(), caller, request)
	if err != nil {
		writeError(w, r, err, "booking failed")
		return
	}

	utils.WriteJSON(w, appointment, http.StatusCreated)
}

func (h *Handler) listAppointments(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}

	appointments, err := h.services.AppointmentService.List(r.Context(), caller)
	if err != nil {
		writeError(w, r, err, "listing appointments failed")
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}

	utils.WriteJSON(w, appointments, http.StatusOK)
}

func (h *Handler) cancelAppointment(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.services.AppointmentService.Cancel(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "cancelling appointment failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
