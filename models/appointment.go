package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	// AppointmentBooked holds the slot.
	AppointmentBooked AppointmentStatus = "booked"
	// AppointmentCancelled releases the slot.
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booked consultation between a patient and a doctor.
type Appointment struct {
	// ID is a UUID v7, so ids sort by creation time.
	ID string `json:"id"`

	// PatientID is the profile id of the patient who booked.
	PatientID string `json:"patient_id"`

	// PatientName is denormalized for the doctor's list.
	PatientName string `json:"patient_name"`

	// DoctorID references the directory entry.
	DoctorID int64 `json:"doctor_id"`

	// DoctorName is denormalized for the patient's list.
	DoctorName string `json:"doctor_name"`

	// Date is the consultation day, formatted as YYYY-MM-DD.
	Date string `json:"date"`

	// Slot is one of the doctor's available slots (e.g. "10:30 AM").
	Slot string `json:"slot"`

	// Status is booked or cancelled.
	Status AppointmentStatus `json:"status"`

	// CreatedAt is set by the server.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Appointment model.
func (a Appointment) TableName() string {
	return "appointments"
}

// BookAppointmentRequest is the body of POST /api/appointments.
type BookAppointmentRequest struct {
	DoctorID int64  `json:"doctor_id"`
	Date     string `json:"date"`
	Slot     string `json:"slot"`
}

// AppointmentFilter narrows appointment listings. Exactly one of PatientID
// and DoctorName is expected to be set.
type AppointmentFilter struct {
	PatientID  string
	DoctorName string
	Status     AppointmentStatus
}
