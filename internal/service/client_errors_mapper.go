// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/health-vault/internal/adapter"
	"github.com/MKhiriev/health-vault/internal/app"
	"github.com/MKhiriev/health-vault/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrNoSession):
		return ErrNoBackendSession

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgSlotUnavailable:
			return ErrSlotUnavailable
		case app.MsgNoUserIDProvided:
			return ErrNoBackendSession
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		if msg == app.MsgOnlyPatientsCanBook {
			return ErrOnlyPatientsCanBook
		}
		return ErrAccessDenied

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgProfileNotFound:
			return store.ErrProfileNotFound
		case app.MsgDoctorNotFound:
			return store.ErrDoctorNotFound
		case app.MsgAppointmentNotFound:
			return store.ErrAppointmentNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgEmailAlreadyExists:
			return store.ErrEmailAlreadyExists
		case app.MsgProfileAlreadyExists:
			return store.ErrProfileAlreadyExists
		case app.MsgSlotTaken:
			return store.ErrSlotTaken
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
