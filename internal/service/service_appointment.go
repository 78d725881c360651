package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/store"
	"github.com/MKhiriev/health-vault/internal/utils"
	"github.com/MKhiriev/health-vault/models"
)

type appointmentService struct {
	appointmentRepository store.AppointmentRepository
	doctorRepository      store.DoctorRepository
	profileRepository     store.ProfileRepository

	ids *utils.UUIDGenerator

	logger *logger.Logger
}

// NewAppointmentService constructs the AppointmentService. Input validation
// is applied by the wrapper from NewAppointmentValidationService.
func NewAppointmentService(appointments store.AppointmentRepository, doctors store.DoctorRepository, profiles store.ProfileRepository, logger *logger.Logger) AppointmentService {
	return &appointmentService{
		appointmentRepository: appointments,
		doctorRepository:      doctors,
		profileRepository:     profiles,
		ids:                   utils.NewUUIDGenerator(),
		logger:                logger,
	}
}

// Book reserves request.Slot with the doctor for the patient.
//
// Errors:
//   - ErrOnlyPatientsCanBook when the caller's profile is a doctor's.
//   - store.ErrDoctorNotFound for an unknown doctor.
//   - ErrSlotUnavailable when the doctor does not offer the slot.
//   - store.ErrSlotTaken when someone already holds it on that date.
func (s *appointmentService) Book(ctx context.Context, patientID string, request models.BookAppointmentRequest) (models.Appointment, error) {
	log := logger.FromContext(ctx)

	patient, err := s.callerProfile(ctx, patientID)
	if err != nil {
		return models.Appointment{}, err
	}
	if patient.UserType != string(models.RolePatient) {
		log.Error().Str("caller", patientID).Msg("non-patient tried to book")
		return models.Appointment{}, ErrOnlyPatientsCanBook
	}

	doctor, err := s.doctorRepository.GetDoctor(ctx, request.DoctorID)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("doctor lookup failed: %w", err)
	}
	if !doctor.HasSlot(request.Slot) {
		return models.Appointment{}, ErrSlotUnavailable
	}

	appointment, err := s.appointmentRepository.CreateAppointment(ctx, models.Appointment{
		ID:          s.ids.Generate(),
		PatientID:   patient.ID,
		PatientName: patient.FullName,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		Date:        request.Date,
		Slot:        request.Slot,
		Status:      models.AppointmentBooked,
	})
	if err != nil {
		log.Err(err).Int64("doctor_id", doctor.ID).Str("slot", request.Slot).Msg("booking failed")
		return models.Appointment{}, fmt.Errorf("booking failed: %w", err)
	}

	log.Info().Str("appointment_id", appointment.ID).Int64("doctor_id", doctor.ID).Msg("appointment booked")

	return appointment, nil
}

// List returns the caller's appointments: the bookings a patient made, or the
// bookings against the directory doctor whose name is the caller's full name.
func (s *appointmentService) List(ctx context.Context, callerID string) ([]models.Appointment, error) {
	profile, err := s.callerProfile(ctx, callerID)
	if err != nil {
		return nil, err
	}

	filter := models.AppointmentFilter{PatientID: profile.ID}
	if profile.UserType == string(models.RoleDoctor) {
		filter = models.AppointmentFilter{DoctorName: profile.FullName}
	}

	appointments, err := s.appointmentRepository.ListAppointments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing appointments failed: %w", err)
	}

	return appointments, nil
}

// Cancel marks the caller's booked appointment as cancelled.
func (s *appointmentService) Cancel(ctx context.Context, callerID, appointmentID string) error {
	if err := s.appointmentRepository.CancelAppointment(ctx, appointmentID, callerID); err != nil {
		return fmt.Errorf("cancelling appointment failed: %w", err)
	}

	return nil
}

func (s *appointmentService) callerProfile(ctx context.Context, callerID string) (models.Profile, error) {
	profile, err := s.profileRepository.GetProfile(ctx, callerID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("caller profile lookup failed: %w", err)
	}

	return profile, nil
}
