package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/models"
)

type doctorRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDoctorRepository constructs a [DoctorRepository] over "doctors".
func NewDoctorRepository(db *DB, logger *logger.Logger) DoctorRepository {
	logger.Debug().Msg("creating doctor repository")
	return &doctorRepository{
		db:     db,
		logger: logger,
	}
}

func (r *doctorRepository) SearchDoctors(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchDoctorsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*doctorRepository.SearchDoctors").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var doctors []models.Doctor
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		doctors = doctors[:0]
		for rows.Next() {
			d, err := scanDoctor(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			doctors = append(doctors, d)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*doctorRepository.SearchDoctors").Msg("error searching doctors")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doctors, nil
}

func (r *doctorRepository) GetDoctor(ctx context.Context, id int64) (models.Doctor, error) {
	log := logger.FromContext(ctx)

	d, err := scanDoctor(r.db.QueryRowContext(ctx, getDoctor, id))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Doctor{}, ErrDoctorNotFound
	case err != nil:
		log.Err(err).Str("func", "*doctorRepository.GetDoctor").Int64("id", id).Msg("error getting doctor")
		return models.Doctor{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return d, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDoctor(row rowScanner) (models.Doctor, error) {
	var (
		d     models.Doctor
		slots []byte
	)

	if err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.ExperienceYears, &d.Rating,
		&d.Location, &d.Image, &slots, &d.ConsultationFee); err != nil {
		return models.Doctor{}, err
	}

	if len(slots) > 0 {
		if err := json.Unmarshal(slots, &d.AvailableSlots); err != nil {
			return models.Doctor{}, fmt.Errorf("decoding available slots: %w", err)
		}
	}

	return d, nil
}
