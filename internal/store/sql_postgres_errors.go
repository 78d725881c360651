package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells withRetry whether another attempt makes sense.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier retries lost connections, rolled back
// transactions (serialization failures, deadlocks) and a server that is
// still starting up. Everything else, constraint violations included, fails
// immediately.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError classifies by SQLSTATE. Class 08 and class 40 are retried
// as a whole; from class 57 only 57P03 is.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code
	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}
