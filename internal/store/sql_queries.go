package store

import (
	"strings"

	"github.com/MKhiriev/health-vault/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createAccount = `INSERT INTO accounts (id, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, email, password_hash, created_at;`

	findAccountByEmail = `SELECT id, email, password_hash, created_at
    FROM accounts
    WHERE email = $1;`

	findAccountByID = `SELECT id, email, password_hash, created_at
    FROM accounts
    WHERE id = $1;`

	insertProfile = `INSERT INTO profiles (id, full_name, phone, user_type, email)
    VALUES ($1, $2, $3, $4, $5);`

	getProfile = `SELECT id, full_name, phone, user_type, email
    FROM profiles
    WHERE id = $1;`

	getDoctor = `SELECT id, name, specialty, experience_years, rating, location, image, available_slots, consultation_fee
    FROM doctors
    WHERE id = $1;`

	createAppointment = `INSERT INTO appointments (id, patient_id, patient_name, doctor_id, doctor_name, appointment_date, slot, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING created_at;`

	cancelAppointment = `UPDATE appointments
    SET status = 'cancelled'
    WHERE id = $1 AND patient_id = $2 AND status = 'booked';`
)

// bookedSlotConstraint is the partial unique index guarding doctor slots.
const bookedSlotConstraint = "appointments_booked_slot_uidx"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var doctorColumns = []string{
	"id",
	"name",
	"specialty",
	"experience_years",
	"rating",
	"location",
	"image",
	"available_slots",
	"consultation_fee",
}

var appointmentColumns = []string{
	"id",
	"patient_id",
	"patient_name",
	"doctor_id",
	"doctor_name",
	"to_char(appointment_date, 'YYYY-MM-DD') AS appointment_date",
	"slot",
	"status",
	"created_at",
}

// buildSearchDoctorsQuery translates the directory filter into SQL. The
// "All ..." sentinels and empty values add no condition.
func buildSearchDoctorsQuery(filter models.DoctorFilter) (string, []any, error) {
	filter = filter.Normalize()
	q := psql.Select(doctorColumns...).From("doctors")

	if filter.Query != "" {
		pattern := "%" + escapeLike(filter.Query) + "%"
		q = q.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"specialty": pattern},
		})
	}

	if filter.Specialty != "" {
		q = q.Where(sq.Eq{"specialty": filter.Specialty})
	}

	if filter.Location != "" {
		q = q.Where(sq.Like{"location": "%" + escapeLike(filter.Location) + "%"})
	}

	return q.OrderBy("id").ToSql()
}

// buildListAppointmentsQuery selects a patient's or a doctor's bookings,
// newest date first.
func buildListAppointmentsQuery(filter models.AppointmentFilter) (string, []any, error) {
	q := psql.Select(appointmentColumns...).From("appointments")

	if filter.PatientID != "" {
		q = q.Where(sq.Eq{"patient_id": filter.PatientID})
	}

	if filter.DoctorName != "" {
		q = q.Where(sq.Eq{"doctor_name": filter.DoctorName})
	}

	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": string(filter.Status)})
	}

	return q.OrderBy("appointment_date DESC", "slot").ToSql()
}

// buildUpdateProfileQuery sets only the non-nil fields of update.
func buildUpdateProfileQuery(id string, update models.ProfileUpdate) (string, []any, error) {
	q := psql.Update("profiles").Set("updated_at", sq.Expr("NOW()"))

	if update.FullName != nil {
		q = q.Set("full_name", *update.FullName)
	}

	if update.Phone != nil {
		q = q.Set("phone", *update.Phone)
	}

	if update.Email != nil {
		q = q.Set("email", *update.Email)
	}

	return q.Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, full_name, phone, user_type, email").
		ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
