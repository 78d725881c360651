package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/health-vault/internal/config"
	"github.com/MKhiriev/health-vault/internal/crypto"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/store"
	"github.com/MKhiriev/health-vault/internal/utils"
	"github.com/MKhiriev/health-vault/internal/validators"
	"github.com/MKhiriev/health-vault/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles account sign-up, credential verification, and JWT token
// lifecycle using an AccountRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// accountRepository is the data-access layer used to create and look up accounts.
	accountRepository store.AccountRepository

	// hasher hashes passwords at sign-up and checks them at sign-in.
	hasher crypto.PasswordHasher

	validator validators.Validator
	ids       *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AccountRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accountRepository store.AccountRepository, hasher crypto.PasswordHasher, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		hasher:            hasher,
		validator:         validator,
		ids:               utils.NewUUIDGenerator(),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// SignUp creates a new account.
//
// The request is validated (email, password length, and the metadata that
// the client later inserts as a profile), the password is hashed and the
// account is stored under a fresh UUID v7.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided (wrapping the validator error) on bad input.
//   - A wrapped store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) SignUp(ctx context.Context, request models.SignUpRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	request.Email = normalizeEmail(request.Email)
	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("email", request.Email).Msg("invalid sign up data provided")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		ID:           a.ids.Generate(),
		Email:        request.Email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return account, nil
}

// SignIn authenticates an existing account.
//
// Returns the account or:
//   - ErrInvalidDataProvided if email or password is missing.
//   - A wrapped store.ErrNoUserWasFound if the email is unknown.
//   - ErrWrongPassword if the password does not match.
func (a *authService) SignIn(ctx context.Context, request models.SignInRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	request.Email = normalizeEmail(request.Email)
	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("email", request.Email).Msg("invalid sign in data provided")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.accountRepository.FindAccountByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if err = a.hasher.Compare(account.PasswordHash, request.Password); err != nil {
		log.Err(err).Str("id", account.ID).Msg("wrong password")
		return models.Account{}, ErrWrongPassword
	}

	return account, nil
}

// GetAccount returns the account with the given id.
func (a *authService) GetAccount(ctx context.Context, id string) (models.Account, error) {
	account, err := a.accountRepository.FindAccountByID(ctx, id)
	if err != nil {
		return models.Account{}, fmt.Errorf("account search by id failed: %w", err)
	}

	return account, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An expired token yields ErrTokenIsExpired; any other validation failure
// (wrong issuer, bad signature, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
