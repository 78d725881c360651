// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/health-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSearchDoctorsQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.DoctorFilter
		wantWhere []string
		wantArgs  []any
	}{
		{
			name:     "no filter",
			filter:   models.DoctorFilter{},
			wantArgs: nil,
		},
		{
			name:     "all sentinels",
			filter:   models.DoctorFilter{Specialty: models.AllSpecialties, Location: models.AllLocations},
			wantArgs: nil,
		},
		{
			name:      "query matches name or specialty",
			filter:    models.DoctorFilter{Query: "  heart "},
			wantWhere: []string{"(name ILIKE $1 OR specialty ILIKE $2)"},
			wantArgs:  []any{"%heart%", "%heart%"},
		},
		{
			name:      "every criterion",
			filter:    models.DoctorFilter{Query: "sh", Specialty: "Dermatologist", Location: "Mumbai"},
			wantWhere: []string{"specialty = $3", "location LIKE $4"},
			wantArgs:  []any{"%sh%", "%sh%", "Dermatologist", "%Mumbai%"},
		},
		{
			name:      "like wildcards escaped",
			filter:    models.DoctorFilter{Query: "50%_"},
			wantWhere: []string{"ILIKE $1"},
			wantArgs:  []any{`%50\%\_%`, `%50\%\_%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSearchDoctorsQuery(tt.filter)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query, "SELECT id, name, specialty"))
			assert.Contains(t, query, "FROM doctors")
			assert.True(t, strings.HasSuffix(query, "ORDER BY id"))
			for _, part := range tt.wantWhere {
				assert.Contains(t, query, part)
			}
			if tt.wantArgs == nil {
				assert.NotContains(t, query, "WHERE")
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildListAppointmentsQuery(t *testing.T) {
	query, args, err := buildListAppointmentsQuery(models.AppointmentFilter{
		DoctorName: "Dr. Raj Patel",
		Status:     models.AppointmentBooked,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "FROM appointments WHERE doctor_name = $1 AND status = $2")
	assert.Contains(t, query, "to_char(appointment_date, 'YYYY-MM-DD')")
	assert.Contains(t, query, "ORDER BY appointment_date DESC, slot")
	assert.Equal(t, []any{"Dr. Raj Patel", "booked"}, args)
}

func Test_buildUpdateProfileQuery(t *testing.T) {
	name, email := "Raj", "raj@example.com"

	query, args, err := buildUpdateProfileQuery("p1", models.ProfileUpdate{FullName: &name, Email: &email})
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE profiles SET updated_at = NOW(), full_name = $1, email = $2 WHERE id = $3 RETURNING id, full_name, phone, user_type, email",
		query)
	assert.Equal(t, []any{"Raj", "raj@example.com", "p1"}, args)
}
