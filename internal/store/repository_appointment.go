package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/models"
	"github.com/jackc/pgerrcode"
)

type appointmentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAppointmentRepository constructs an [AppointmentRepository] over
// "appointments".
func NewAppointmentRepository(db *DB, logger *logger.Logger) AppointmentRepository {
	logger.Debug().Msg("creating appointment repository")
	return &appointmentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAppointment stores a booking. A concurrent booking of the same slot
// trips the partial unique index and yields [ErrSlotTaken].
func (r *appointmentRepository) CreateAppointment(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	log := logger.FromContext(ctx)

	err := r.db.QueryRowContext(ctx, createAppointment,
		a.ID, a.PatientID, a.PatientName, a.DoctorID, a.DoctorName, a.Date, a.Slot, string(a.Status),
	).Scan(&a.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*appointmentRepository.CreateAppointment").
			Int64("doctor_id", a.DoctorID).
			Str("date", a.Date).
			Str("slot", a.Slot).
			Msg("error inserting appointment")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			if c := postgresConstraint(err); c == "" || c == bookedSlotConstraint {
				return models.Appointment{}, ErrSlotTaken
			}
			return models.Appointment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		case pgerrcode.ForeignKeyViolation:
			return models.Appointment{}, ErrDoctorNotFound
		default:
			return models.Appointment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return a, nil
}

func (r *appointmentRepository) ListAppointments(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAppointmentsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*appointmentRepository.ListAppointments").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result []models.Appointment
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		result = result[:0]
		for rows.Next() {
			var a models.Appointment
			if err := rows.Scan(&a.ID, &a.PatientID, &a.PatientName, &a.DoctorID, &a.DoctorName,
				&a.Date, &a.Slot, &a.Status, &a.CreatedAt); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			result = append(result, a)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*appointmentRepository.ListAppointments").Msg("error listing appointments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result, nil
}

// CancelAppointment marks the patient's booked appointment as cancelled.
func (r *appointmentRepository) CancelAppointment(ctx context.Context, id, patientID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, cancelAppointment, id, patientID)
	if err != nil {
		log.Err(err).Str("func", "*appointmentRepository.CancelAppointment").Str("id", id).Msg("error cancelling appointment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}
