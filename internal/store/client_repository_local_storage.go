package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/health-vault/internal/logger"
)

type localStorageRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalStorageRepository constructs a [LocalStorage] over the SQLite
// "local_storage" table.
func NewLocalStorageRepository(db *DB, logger *logger.Logger) LocalStorage {
	return &localStorageRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (l *localStorageRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := l.DB.QueryRowContext(ctx, getLocalValue, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrKeyNotFound
	case err != nil:
		log.Err(err).Str("func", "*localStorageRepository.Get").Str("key", key).Msg("failed to read local value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (l *localStorageRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, setLocalValue, key, value, l.now().UTC()); err != nil {
		log.Err(err).Str("func", "*localStorageRepository.Set").Str("key", key).Msg("failed to write local value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localStorageRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, deleteLocalValue, key); err != nil {
		log.Err(err).Str("func", "*localStorageRepository.Delete").Str("key", key).Msg("failed to delete local value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
