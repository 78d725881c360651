// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the health-vault server.
//
// The primary abstraction is [BackendClient]: the account/session part the
// Auth Context relies on (current session, session change notifications,
// profile fetch, sign-up) plus the portal calls used by the pages (doctor
// search, appointments). The package ships an HTTP/REST implementation
// ([NewHTTPBackendClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/health-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_client_mock.go -package=mock

// BackendClient defines communication with the health-vault server.
//
// The current session is persisted client-side, so it survives a restart.
// Every change of it (sign-in, sign-up, sign-out, expiry, profile writes) is
// pushed to the listeners registered with OnSessionChange.
type BackendClient interface {
	// GetCurrentSession returns the stored session, or nil when there is
	// none. An expired session is discarded, listeners are notified with nil
	// and nil is returned.
	GetCurrentSession(ctx context.Context) (*models.BackendSession, error)

	// OnSessionChange registers fn for session changes. fn receives nil when
	// the session ends. The returned function unregisters fn and may be
	// called more than once.
	OnSessionChange(fn func(*models.BackendSession)) (unsubscribe func())

	// GetProfile fetches the profile row of userID.
	GetProfile(ctx context.Context, userID string) (models.Profile, error)

	// SignUp creates an account with data as sign-up metadata and starts a
	// session for it.
	SignUp(ctx context.Context, email, password string, data models.SignUpMetadata) (models.BackendUser, error)

	// InsertProfile stores the profile row of the signed-in account.
	InsertProfile(ctx context.Context, profile models.Profile) error

	// SignIn starts a session with email and password.
	SignIn(ctx context.Context, email, password string) (models.BackendSession, error)

	// SignOut ends the session. The local session is dropped even when the
	// server cannot be reached.
	SignOut(ctx context.Context) error

	// UpdateProfile changes the signed-in account's profile.
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.Profile, error)

	// SearchDoctors queries the public directory.
	SearchDoctors(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, error)

	// BookAppointment books a slot for the signed-in patient. The body is
	// signed with the HashSHA256 header when a hash key is configured.
	BookAppointment(ctx context.Context, request models.BookAppointmentRequest) (models.Appointment, error)

	// ListAppointments returns the signed-in account's appointments.
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	// CancelAppointment cancels one of the signed-in patient's bookings.
	CancelAppointment(ctx context.Context, id string) error

	// ServerVersion returns the server build version.
	ServerVersion(ctx context.Context) (string, error)
}
