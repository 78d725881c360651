// Package http is the REST surface of the portal server: account sign-up and
// sign-in, profiles, the doctor directory and appointments.
//
// Requests pass through trace id, logging, gzip and bearer token middleware
// before reaching the handlers, which only decode, call the service layer
// and map its errors to statuses.
package http
