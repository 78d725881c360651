package models

import "strings"

// Filter values meaning "no filter".
const (
	AllSpecialties = "All Specialties"
	AllLocations   = "All Locations"
)

// Specialties lists the specialty filter options in display order.
var Specialties = []string{
	AllSpecialties,
	"Cardiologist",
	"General Physician",
	"Dermatologist",
	"Orthopedic",
	"Pediatrician",
}

// Locations lists the location filter options in display order.
var Locations = []string{AllLocations, "Mumbai", "Delhi", "Bangalore", "Chennai"}

// Doctor is a directory entry patients can book with.
type Doctor struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	ExperienceYears int      `json:"experience"`
	Rating          float64  `json:"rating"`
	Location        string   `json:"location"`
	Image           string   `json:"image"`
	AvailableSlots  []string `json:"available_slots"`
	ConsultationFee int      `json:"consultation_fee"`
}

// TableName returns the name of the database table
// associated with the Doctor model.
func (d Doctor) TableName() string {
	return "doctors"
}

// HasSlot reports whether slot is one of the doctor's available slots.
func (d Doctor) HasSlot(slot string) bool {
	for _, s := range d.AvailableSlots {
		if s == slot {
			return true
		}
	}

	return false
}

// DoctorFilter holds the directory search criteria.
type DoctorFilter struct {
	// Query matches doctor name or specialty, case-insensitively.
	Query string `json:"q,omitempty"`
	// Specialty matches exactly unless empty or AllSpecialties.
	Specialty string `json:"specialty,omitempty"`
	// Location is a substring of the doctor's location unless empty or
	// AllLocations.
	Location string `json:"location,omitempty"`
}

// Normalize maps the "All ..." sentinels to empty values and trims the query.
func (f DoctorFilter) Normalize() DoctorFilter {
	f.Query = strings.TrimSpace(f.Query)
	if f.Specialty == AllSpecialties {
		f.Specialty = ""
	}
	if f.Location == AllLocations {
		f.Location = ""
	}

	return f
}

// Matches reports whether d satisfies the filter.
func (f DoctorFilter) Matches(d Doctor) bool {
	f = f.Normalize()

	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.Specialty), q) {
			return false
		}
	}

	if f.Specialty != "" && d.Specialty != f.Specialty {
		return false
	}

	if f.Location != "" && !strings.Contains(d.Location, f.Location) {
		return false
	}

	return true
}
