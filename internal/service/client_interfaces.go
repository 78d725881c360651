package service

import (
	"context"
	"time"

	"github.com/MKhiriev/health-vault/models"
)

// AuthState is a point-in-time copy of the Auth Context state.
type AuthState struct {
	// User is the current portal user, or nil.
	User *models.User
	// BackendSession is the server session, or nil for demo users and
	// signed-out clients.
	BackendSession *models.BackendSession
	// IsLoading is true until initialization has finished.
	IsLoading bool
}

// ClientAuthService is the client's authentication state machine. Pages and
// the login flow read and change the current user only through it.
type ClientAuthService interface {
	// Init restores the session. It runs once; later calls return at once.
	Init(ctx context.Context)

	// Login performs the demo phone + OTP login. A wrong code returns false
	// and changes nothing.
	Login(ctx context.Context, phone, code string) bool

	// Logout clears the user locally at once; the server sign-out runs in
	// the background and its outcome is only logged.
	Logout(ctx context.Context)

	// SignUp creates a backend account and its profile.
	SignUp(ctx context.Context, input SignUpInput) error

	// SignIn starts a backend session with email and password.
	SignIn(ctx context.Context, email, password string) error

	// UpdateProfile edits the current user's name, phone or email.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	// Snapshot returns a copy of the current state.
	Snapshot() AuthState

	// Subscribe registers fn for state changes and returns a function that
	// unregisters it.
	Subscribe(fn func(AuthState)) (unsubscribe func())

	// Close drops the backend subscription. Results arriving afterwards are
	// ignored.
	Close()
}

// ClientPortalService serves the patient and doctor pages.
type ClientPortalService interface {
	// SearchDoctors queries the directory. When the server is unreachable
	// the built-in directory is filtered locally.
	SearchDoctors(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, error)

	// BookAppointment books a slot. It needs a backend session.
	BookAppointment(ctx context.Context, request models.BookAppointmentRequest) (models.Appointment, error)

	// ListAppointments returns the current user's appointments. Demo users
	// have none.
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	// CancelAppointment cancels a booking of the current patient.
	CancelAppointment(ctx context.Context, id string) error

	// ServerVersion reports the server build version.
	ServerVersion(ctx context.Context) (string, error)
}

// ClientSessionJob defines the contract for a background worker that
// periodically re-checks the backend session, so an expired session is
// dropped and the Auth Context notified while the client runs.
type ClientSessionJob interface {
	// Start launches the background goroutine. It checks every interval,
	// defaulting to 1 minute if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// SignUpInput is the sign-up form.
type SignUpInput struct {
	Email          string
	Password       string
	RepeatPassword string
	FullName       string
	Phone          string
	UserType       string
}
