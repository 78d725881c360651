package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  Role
	}{
		{"9876543210", RoleDoctor},
		{"9123456789", RolePatient},
		{"", RolePatient},
		{"98765432100", RolePatient},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPhone(tt.phone))
		})
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("doctor")
	require.NoError(t, err)
	assert.Equal(t, RoleDoctor, r)

	r, err = ParseRole("patient")
	require.NoError(t, err)
	assert.Equal(t, RolePatient, r)

	for _, bad := range []string{"", "admin", "Doctor", " patient"} {
		_, err := ParseRole(bad)
		assert.ErrorIs(t, err, ErrInvalidRole, bad)
	}
}

func TestDashboardRoute_AgreesWithClassifyPhone(t *testing.T) {
	assert.Equal(t, RouteDoctorDashboard, DashboardRoute(ClassifyPhone(DemoDoctorPhone)))
	assert.Equal(t, RoutePatientDashboard, DashboardRoute(ClassifyPhone("9123456789")))
	assert.Equal(t, RouteDoctorAppointment, AppointmentsRoute(RoleDoctor))
	assert.Equal(t, RoutePatientAppointment, AppointmentsRoute(RolePatient))
}
