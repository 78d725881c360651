package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository] over the "accounts" table.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository].
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount inserts the account and returns the stored row.
//
// Error handling:
//   - unique_violation (23505) → [ErrEmailAlreadyExists].
//   - any other driver error → wrapped as "unexpected DB error".
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount, account.ID, account.Email, account.PasswordHash)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrEmailAlreadyExists
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var created models.Account
	if err := row.Scan(&created.ID, &created.Email, &created.PasswordHash, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindAccountByEmail looks an account up by its email.
// A missing row yields [ErrNoUserWasFound].
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	var found models.Account
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, findAccountByEmail, email).
			Scan(&found.ID, &found.Email, &found.PasswordHash, &found.CreatedAt)
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Account{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*accountRepository.FindAccountByEmail").Msg("error finding account")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindAccountByID looks an account up by its id. The session endpoint uses it
// to report the email behind a token.
func (r *accountRepository) FindAccountByID(ctx context.Context, id string) (models.Account, error) {
	log := logger.FromContext(ctx)

	var found models.Account
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, findAccountByID, id).
			Scan(&found.ID, &found.Email, &found.PasswordHash, &found.CreatedAt)
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Account{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*accountRepository.FindAccountByID").Msg("error finding account")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
