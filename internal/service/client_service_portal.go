package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/health-vault/internal/adapter"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/models"
)

type clientPortalService struct {
	backend adapter.BackendClient
	auth    ClientAuthService
	logger  *logger.Logger
}

// NewClientPortalService creates a ClientPortalService. auth decides whether
// the current user may reach the authenticated endpoints at all.
func NewClientPortalService(backend adapter.BackendClient, auth ClientAuthService, logger *logger.Logger) ClientPortalService {
	return &clientPortalService{backend: backend, auth: auth, logger: logger}
}

func (p *clientPortalService) SearchDoctors(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, error) {
	doctors, err := p.backend.SearchDoctors(ctx, filter)
	if err == nil {
		return doctors, nil
	}

	if errors.Is(err, adapter.ErrUnreachable) {
		p.logger.Warn().Err(err).Msg("server unreachable, filtering built-in directory")
		return models.FilterDoctors(models.DirectoryDoctors(), filter), nil
	}

	return nil, mapAdapterError(err)
}

func (p *clientPortalService) BookAppointment(ctx context.Context, request models.BookAppointmentRequest) (models.Appointment, error) {
	state := p.auth.Snapshot()
	if state.User == nil {
		return models.Appointment{}, ErrNotSignedIn
	}
	if state.User.Role != models.RolePatient {
		return models.Appointment{}, ErrOnlyPatientsCanBook
	}
	if state.BackendSession == nil {
		return models.Appointment{}, ErrNoBackendSession
	}

	appointment, err := p.backend.BookAppointment(ctx, request)
	if err != nil {
		p.logger.Err(err).Str("func", "*clientPortalService.BookAppointment").Int64("doctor_id", request.DoctorID).Msg("booking failed")
		return models.Appointment{}, mapAdapterError(err)
	}

	return appointment, nil
}

func (p *clientPortalService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	state := p.auth.Snapshot()
	if state.User == nil {
		return nil, ErrNotSignedIn
	}
	if state.BackendSession == nil {
		return []models.Appointment{}, nil
	}

	appointments, err := p.backend.ListAppointments(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return appointments, nil
}

func (p *clientPortalService) CancelAppointment(ctx context.Context, id string) error {
	if p.auth.Snapshot().BackendSession == nil {
		return ErrNoBackendSession
	}

	return mapAdapterError(p.backend.CancelAppointment(ctx, id))
}

func (p *clientPortalService) ServerVersion(ctx context.Context) (string, error) {
	version, err := p.backend.ServerVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return version, nil
}
