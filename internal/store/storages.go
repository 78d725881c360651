package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/health-vault/internal/config"
	"github.com/MKhiriev/health-vault/internal/logger"
)

// Storages groups the server repositories for injection into the service
// layer.
type Storages struct {
	AccountRepository     AccountRepository
	ProfileRepository     ProfileRepository
	DoctorRepository      DoctorRepository
	AppointmentRepository AppointmentRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and wires the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository:     NewAccountRepository(db, logger),
		ProfileRepository:     NewProfileRepository(db, logger),
		DoctorRepository:      NewDoctorRepository(db, logger),
		AppointmentRepository: NewAppointmentRepository(db, logger),
		db:                    db,
	}
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
