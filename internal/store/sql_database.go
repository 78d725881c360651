package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/health-vault/internal/logger"
)

// Retry policy for transient database failures.
const (
	maxRetries   = 3
	retryBackoff = 100 * time.Millisecond
)

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a *sql.DB with the driver-specific error classifier and the
// migration set of its dialect.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	migrate            func(*sql.DB) error
	logger             *logger.Logger
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate() error {
	return db.migrate(db.DB)
}

// withRetry runs op, repeating it with a linear backoff while the classifier
// reports the error as retryable. Without a classifier op runs once.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if db.errorClassificator == nil {
		return err
	}

	for attempt := 1; err != nil && attempt <= maxRetries; attempt++ {
		if db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}

		err = op()
	}

	return err
}
