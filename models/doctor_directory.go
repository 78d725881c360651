package models

// DirectoryDoctors returns the built-in doctor directory. The server seeds
// the same rows; the client falls back to this list when the server cannot
// be reached.
func DirectoryDoctors() []Doctor {
	return []Doctor{
		{
			ID: 1, Name: "Dr. Sarah Johnson", Specialty: "Cardiologist", ExperienceYears: 15, Rating: 4.8,
			Location: "Heart Care Clinic, Mumbai", Image: "/placeholder.svg",
			AvailableSlots: []string{"9:00 AM", "10:30 AM", "2:00 PM", "3:30 PM"}, ConsultationFee: 800,
		},
		{
			ID: 2, Name: "Dr. Raj Patel", Specialty: "General Physician", ExperienceYears: 12, Rating: 4.6,
			Location: "City Hospital, Mumbai", Image: "/placeholder.svg",
			AvailableSlots: []string{"10:00 AM", "11:30 AM", "4:00 PM", "5:30 PM"}, ConsultationFee: 500,
		},
		{
			ID: 3, Name: "Dr. Priya Sharma", Specialty: "Dermatologist", ExperienceYears: 8, Rating: 4.7,
			Location: "Skin Care Center, Mumbai", Image: "/placeholder.svg",
			AvailableSlots: []string{"9:30 AM", "11:00 AM", "2:30 PM", "4:00 PM"}, ConsultationFee: 700,
		},
		{
			ID: 4, Name: "Dr. Amit Kumar", Specialty: "Orthopedic", ExperienceYears: 20, Rating: 4.9,
			Location: "Bone & Joint Clinic, Mumbai", Image: "/placeholder.svg",
			AvailableSlots: []string{"8:00 AM", "9:30 AM", "1:00 PM", "2:30 PM"}, ConsultationFee: 900,
		},
		{
			ID: 5, Name: "Dr. Meera Joshi", Specialty: "Pediatrician", ExperienceYears: 10, Rating: 4.5,
			Location: "Children's Hospital, Mumbai", Image: "/placeholder.svg",
			AvailableSlots: []string{"10:00 AM", "11:30 AM", "3:00 PM", "4:30 PM"}, ConsultationFee: 600,
		},
	}
}

// FilterDoctors returns the doctors matching filter, in input order.
func FilterDoctors(doctors []Doctor, filter DoctorFilter) []Doctor {
	out := make([]Doctor, 0, len(doctors))
	for _, d := range doctors {
		if filter.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}
