package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/health-vault/internal/app"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/internal/store"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order; the first errors.Is match wins.
var errorStatusMap = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrSlotUnavailable, http.StatusBadRequest, app.MsgSlotUnavailable},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrOnlyPatientsCanBook, http.StatusForbidden, app.MsgOnlyPatientsCanBook},
	{service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},

	{store.ErrProfileNotFound, http.StatusNotFound, app.MsgProfileNotFound},
	{store.ErrDoctorNotFound, http.StatusNotFound, app.MsgDoctorNotFound},
	{store.ErrAppointmentNotFound, http.StatusNotFound, app.MsgAppointmentNotFound},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrProfileAlreadyExists, http.StatusConflict, app.MsgProfileAlreadyExists},
	{store.ErrSlotTaken, http.StatusConflict, app.MsgSlotTaken},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with its status and plain-text message.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, body := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	http.Error(w, body, status)
}
