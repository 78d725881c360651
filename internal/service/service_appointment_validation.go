package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/health-vault/internal/validators"
	"github.com/MKhiriev/health-vault/models"
)

// AppointmentValidationService checks requests before they reach the wrapped
// AppointmentService.
type AppointmentValidationService struct {
	inner     AppointmentService
	validator validators.Validator
}

func NewAppointmentValidationService(validator validators.Validator) AppointmentServiceWrapper {
	return &AppointmentValidationService{validator: validator}
}

func (v *AppointmentValidationService) Book(ctx context.Context, patientID string, request models.BookAppointmentRequest) (models.Appointment, error) {
	if patientID == "" {
		return models.Appointment{}, ErrInvalidDataProvided
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Appointment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Book(ctx, patientID, request)
}

func (v *AppointmentValidationService) List(ctx context.Context, callerID string) ([]models.Appointment, error) {
	if callerID == "" {
		return nil, ErrInvalidDataProvided
	}

	return v.inner.List(ctx, callerID)
}

func (v *AppointmentValidationService) Cancel(ctx context.Context, callerID, appointmentID string) error {
	if callerID == "" || strings.TrimSpace(appointmentID) == "" {
		return ErrInvalidDataProvided
	}

	return v.inner.Cancel(ctx, callerID, appointmentID)
}

func (v *AppointmentValidationService) Wrap(wrapped AppointmentService) AppointmentService {
	v.inner = wrapped
	return v
}
