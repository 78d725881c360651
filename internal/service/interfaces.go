package service

import (
	"context"

	"github.com/MKhiriev/health-vault/models"
)

// AuthService manages server-side accounts and the tokens issued for them.
type AuthService interface {
	SignUp(ctx context.Context, request models.SignUpRequest) (models.Account, error)
	SignIn(ctx context.Context, request models.SignInRequest) (models.Account, error)
	GetAccount(ctx context.Context, id string) (models.Account, error)
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService manages the caller's own profile row. callerID is the
// authenticated account id; touching any other id yields ErrAccessDenied.
type ProfileService interface {
	InsertProfile(ctx context.Context, callerID string, profile models.Profile) error
	GetProfile(ctx context.Context, callerID, id string) (models.Profile, error)
	UpdateProfile(ctx context.Context, callerID, id string, update models.ProfileUpdate) (models.Profile, error)
}

// DoctorService exposes the public doctor directory.
type DoctorService interface {
	SearchDoctors(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, error)
}

// AppointmentService books, lists and cancels appointments for the caller.
type AppointmentService interface {
	Book(ctx context.Context, patientID string, request models.BookAppointmentRequest) (models.Appointment, error)
	List(ctx context.Context, callerID string) ([]models.Appointment, error)
	Cancel(ctx context.Context, callerID, appointmentID string) error
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AppointmentServiceWrapper defines middleware composition for
// AppointmentService. Implementations wrap an existing AppointmentService to
// add behavior such as validation.
type AppointmentServiceWrapper interface {
	Wrap(AppointmentService) AppointmentService
}
