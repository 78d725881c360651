// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/mock"
	"github.com/MKhiriev/health-vault/internal/store"
	"github.com/MKhiriev/health-vault/internal/validators"
	"github.com/MKhiriev/health-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type appointmentMocks struct {
	appointments *mock.MockAppointmentRepository
	doctors      *mock.MockDoctorRepository
	profiles     *mock.MockProfileRepository
}

func newTestAppointmentService(t *testing.T) (AppointmentService, appointmentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appointmentMocks{
		appointments: mock.NewMockAppointmentRepository(ctrl),
		doctors:      mock.NewMockDoctorRepository(ctrl),
		profiles:     mock.NewMockProfileRepository(ctrl),
	}

	svc := NewAppointmentValidationService(validators.NewRequestValidator()).
		Wrap(NewAppointmentService(m.appointments, m.doctors, m.profiles, logger.Nop()))

	return svc, m
}

var (
	testPatient = models.Profile{ID: "p-1", FullName: "Vikram Iyer", Phone: "9000000002", UserType: "patient"}
	testDoctor  = models.Doctor{ID: 1, Name: "Dr. Sarah Johnson", AvailableSlots: []string{"9:00 AM", "10:30 AM"}}
)

// ── Book ─────────────────────────────────────────────────────────────────────

func TestAppointmentService_Book_Success(t *testing.T) {
	svc, m := newTestAppointmentService(t)
	req := models.BookAppointmentRequest{DoctorID: 1, Date: "2026-11-02", Slot: "9:00 AM"}

	m.profiles.EXPECT().GetProfile(gomock.Any(), "p-1").Return(testPatient, nil)
	m.doctors.EXPECT().GetDoctor(gomock.Any(), int64(1)).Return(testDoctor, nil)
	m.appointments.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Appointment) (models.Appointment, error) {
			assert.NotEmpty(t, a.ID)
			assert.Equal(t, "p-1", a.PatientID)
			assert.Equal(t, "Vikram Iyer", a.PatientName)
			assert.Equal(t, "Dr. Sarah Johnson", a.DoctorName)
			assert.Equal(t, models.AppointmentBooked, a.Status)
			return a, nil
		},
	)

	got, err := svc.Book(context.Background(), "p-1", req)

	require.NoError(t, err)
	assert.Equal(t, "9:00 AM", got.Slot)
}

func TestAppointmentService_Book_Rejections(t *testing.T) {
	valid := models.BookAppointmentRequest{DoctorID: 1, Date: "2026-11-02", Slot: "9:00 AM"}

	t.Run("invalid date", func(t *testing.T) {
		svc, _ := newTestAppointmentService(t)
		req := valid
		req.Date = "02/11/2026"

		_, err := svc.Book(context.Background(), "p-1", req)

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("doctor account", func(t *testing.T) {
		svc, m := newTestAppointmentService(t)
		doctor := testPatient
		doctor.UserType = "doctor"
		m.profiles.EXPECT().GetProfile(gomock.Any(), "p-1").Return(doctor, nil)

		_, err := svc.Book(context.Background(), "p-1", valid)

		assert.ErrorIs(t, err, ErrOnlyPatientsCanBook)
	})

	t.Run("slot not offered", func(t *testing.T) {
		svc, m := newTestAppointmentService(t)
		req := valid
		req.Slot = "11:00 PM"
		m.profiles.EXPECT().GetProfile(gomock.Any(), "p-1").Return(testPatient, nil)
		m.doctors.EXPECT().GetDoctor(gomock.Any(), int64(1)).Return(testDoctor, nil)

		_, err := svc.Book(context.Background(), "p-1", req)

		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		svc, m := newTestAppointmentService(t)
		m.profiles.EXPECT().GetProfile(gomock.Any(), "p-1").Return(testPatient, nil)
		m.doctors.EXPECT().GetDoctor(gomock.Any(), int64(1)).Return(models.Doctor{}, store.ErrDoctorNotFound)

		_, err := svc.Book(context.Background(), "p-1", valid)

		assert.ErrorIs(t, err, store.ErrDoctorNotFound)
	})

	t.Run("slot taken", func(t *testing.T) {
		svc, m := newTestAppointmentService(t)
		m.profiles.EXPECT().GetProfile(gomock.Any(), "p-1").Return(testPatient, nil)
		m.doctors.EXPECT().GetDoctor(gomock.Any(), int64(1)).Return(testDoctor, nil)
		m.appointments.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).Return(models.Appointment{}, store.ErrSlotTaken)

		_, err := svc.Book(context.Background(), "p-1", valid)

		assert.ErrorIs(t, err, store.ErrSlotTaken)
	})
}

// ── List / Cancel ────────────────────────────────────────────────────────────

func TestAppointmentService_List(t *testing.T) {
	t.Run("patient", func(t *testing.T) {
		svc, m := newTestAppointmentService(t)
		m.profiles.EXPECT().GetProfile(gomock.Any(), "p-1").Return(testPatient, nil)
		m.appointments.EXPECT().ListAppointments(gomock.Any(), models.AppointmentFilter{PatientID: "p-1"}).
			Return([]models.Appointment{{ID: "a-1"}}, nil)

		got, err := svc.List(context.Background(), "p-1")

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("doctor", func(t *testing.T) {
		svc, m := newTestAppointmentService(t)
		m.profiles.EXPECT().GetProfile(gomock.Any(), "d-1").
			Return(models.Profile{ID: "d-1", FullName: "Dr. Sarah Johnson", UserType: "doctor"}, nil)
		m.appointments.EXPECT().ListAppointments(gomock.Any(), models.AppointmentFilter{DoctorName: "Dr. Sarah Johnson"}).
			Return(nil, nil)

		_, err := svc.List(context.Background(), "d-1")

		require.NoError(t, err)
	})

	t.Run("no caller", func(t *testing.T) {
		svc, _ := newTestAppointmentService(t)

		_, err := svc.List(context.Background(), "")

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestAppointmentService_Cancel(t *testing.T) {
	svc, m := newTestAppointmentService(t)

	assert.ErrorIs(t, svc.Cancel(context.Background(), "p-1", " "), ErrInvalidDataProvided)

	m.appointments.EXPECT().CancelAppointment(gomock.Any(), "a-1", "p-1").Return(store.ErrAppointmentNotFound)
	assert.ErrorIs(t, svc.Cancel(context.Background(), "p-1", "a-1"), store.ErrAppointmentNotFound)

	m.appointments.EXPECT().CancelAppointment(gomock.Any(), "a-1", "p-1").Return(nil)
	assert.NoError(t, svc.Cancel(context.Background(), "p-1", "a-1"))
}
