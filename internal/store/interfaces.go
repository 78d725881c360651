package store

import (
	"context"

	"github.com/MKhiriev/health-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists sign-in credentials.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	FindAccountByID(ctx context.Context, id string) (models.Account, error)
}

// ProfileRepository persists the profiles (users) table.
type ProfileRepository interface {
	InsertProfile(ctx context.Context, profile models.Profile) error
	GetProfile(ctx context.Context, id string) (models.Profile, error)
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Profile, error)
}

// DoctorRepository reads the doctor directory.
type DoctorRepository interface {
	SearchDoctors(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, error)
	GetDoctor(ctx context.Context, id int64) (models.Doctor, error)
}

// AppointmentRepository persists bookings.
type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment models.Appointment) (models.Appointment, error)
	ListAppointments(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, id, patientID string) error
}
