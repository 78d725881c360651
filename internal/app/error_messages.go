// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// health-vault server handlers, middleware and the client adapter.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// The client adapter maps some of them back to sentinel errors, so the
// wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied email/password
	// combination does not match any existing account.
	MsgInvalidLoginPassword = "invalid email/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires an account id
	// but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the caller touches another account's
	// profile or appointment.
	MsgAccessDenied = "access denied"

	// MsgRegistrationFailed is returned when the sign-up handler encounters
	// an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the sign-in handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgEmailAlreadyExists is returned when a sign-up attempt is rejected
	// because the email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgProfileNotFound is returned when no profile exists for the id.
	MsgProfileNotFound = "profile not found"

	// MsgProfileAlreadyExists is returned when a profile is inserted twice.
	MsgProfileAlreadyExists = "profile already exists"

	// MsgDoctorNotFound is returned when a booking names an unknown doctor.
	MsgDoctorNotFound = "doctor not found"

	// MsgSlotUnavailable is returned when a booking names a slot the doctor
	// does not offer.
	MsgSlotUnavailable = "slot is not available for this doctor"

	// MsgSlotTaken is returned when the slot already holds a booking.
	MsgSlotTaken = "slot is already booked"

	// MsgAppointmentNotFound is returned when a cancellation targets an
	// appointment the caller does not own.
	MsgAppointmentNotFound = "appointment not found"

	// MsgOnlyPatientsCanBook is returned when a doctor tries to book.
	MsgOnlyPatientsCanBook = "only patients can book appointments"

	// MsgInvalidHash is returned when the HashSHA256 header does not match
	// the request body.
	MsgInvalidHash = "invalid request hash"
)
