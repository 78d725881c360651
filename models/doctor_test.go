package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorFilter_Matches(t *testing.T) {
	cardio := Doctor{Name: "Dr. Sarah Johnson", Specialty: "Cardiologist", Location: "Heart Care Clinic, Mumbai"}

	tests := []struct {
		name   string
		filter DoctorFilter
		want   bool
	}{
		{"empty filter", DoctorFilter{}, true},
		{"name substring any case", DoctorFilter{Query: "sarah"}, true},
		{"specialty substring", DoctorFilter{Query: "CARDIO"}, true},
		{"query miss", DoctorFilter{Query: "skin"}, false},
		{"all specialties", DoctorFilter{Specialty: AllSpecialties}, true},
		{"specialty exact", DoctorFilter{Specialty: "Cardiologist"}, true},
		{"specialty mismatch", DoctorFilter{Specialty: "Orthopedic"}, false},
		{"all locations", DoctorFilter{Location: AllLocations}, true},
		{"location contained", DoctorFilter{Location: "Mumbai"}, true},
		{"location miss", DoctorFilter{Location: "Delhi"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(cardio))
		})
	}
}

func TestDoctor_HasSlot(t *testing.T) {
	d := Doctor{AvailableSlots: []string{"9:00 AM", "2:00 PM"}}
	assert.True(t, d.HasSlot("2:00 PM"))
	assert.False(t, d.HasSlot("3:00 PM"))
}

func TestFilterDoctors_Directory(t *testing.T) {
	all := DirectoryDoctors()
	assert.Len(t, all, 5)

	assert.Len(t, FilterDoctors(all, DoctorFilter{Location: "Mumbai"}), 5)
	assert.Empty(t, FilterDoctors(all, DoctorFilter{Location: "Delhi"}))

	peds := FilterDoctors(all, DoctorFilter{Specialty: "Pediatrician"})
	if assert.Len(t, peds, 1) {
		assert.Equal(t, "Dr. Meera Joshi", peds[0].Name)
	}

	assert.True(t, all[0].HasSlot("10:30 AM"))
	assert.False(t, all[0].HasSlot("10:00 AM"))
}
