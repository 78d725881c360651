package tui

import (
	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/models"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page as the next message.
type NavigateTo struct {
	Route   models.Route
	Payload any
}

// authChangedMsg carries a new Auth Context snapshot into the program.
type authChangedMsg struct {
	state service.AuthState
}

// noticeMsg is a one-line status shown by the receiving page.
type noticeMsg struct {
	text  string
	isErr bool
}

type otpSentMsg struct {
	gen int
}

type cooldownTickMsg struct {
	gen int
}

type loginResultMsg struct {
	gen   int
	phone string
	ok    bool
}

type signInResultMsg struct {
	err error
}

type signUpResultMsg struct {
	email string
	err   error
}

type doctorsLoadedMsg struct {
	doctors []models.Doctor
	err     error
}

type bookedMsg struct {
	appointment models.Appointment
	err         error
}

type appointmentsLoadedMsg struct {
	appointments []models.Appointment
	err          error
}

type cancelledMsg struct {
	id  string
	err error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type versionLoadedMsg struct {
	version string
	err     error
}

type clearStatusMsg struct{}
