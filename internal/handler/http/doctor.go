package http

import (
	"net/http"

	"github.com/MKhiriev/health-vault/internal/utils"
	"github.com/MKhiriev/health-vault/models"
)

func (h *Handler) searchDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.DoctorFilter{
		Query:     query.Get("q"),
		Specialty: query.Get("specialty"),
		Location:  query.Get("location"),
	}

	doctors, err := h.services.DoctorService.SearchDoctors(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "doctor search failed")
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}

	utils.WriteJSON(w, doctors, http.StatusOK)
}
