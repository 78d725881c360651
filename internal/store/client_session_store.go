package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/models"
)

// Local storage keys.
const (
	// DemoUserKey holds the JSON session record of the demo login.
	DemoUserKey = "healthvault-demo-user"
	// BackendSessionKey holds the server-issued session.
	BackendSessionKey = "healthvault-backend-session"
)

type sessionStore struct {
	storage LocalStorage
	logger  *logger.Logger
}

// NewSessionStore constructs the demo-login [SessionStore].
func NewSessionStore(storage LocalStorage, logger *logger.Logger) SessionStore {
	return &sessionStore{
		storage: storage,
		logger:  logger,
	}
}

func (s *sessionStore) Save(ctx context.Context, user models.User) {
	payload, err := json.Marshal(user)
	if err != nil {
		s.logger.Err(err).Str("func", "*sessionStore.Save").Msg("failed to encode session record")
		return
	}

	if err := s.storage.Set(ctx, DemoUserKey, string(payload)); err != nil {
		s.logger.Err(err).Str("func", "*sessionStore.Save").Msg("failed to persist session record")
	}
}

func (s *sessionStore) Load(ctx context.Context) (models.User, bool) {
	raw, err := s.storage.Get(ctx, DemoUserKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.logger.Err(err).Str("func", "*sessionStore.Load").Msg("failed to read session record")
		}
		return models.User{}, false
	}

	var user models.User
	if err = json.Unmarshal([]byte(raw), &user); err == nil {
		err = user.Validate()
	}

	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*sessionStore.Load").Msg("discarding corrupt session record")
		s.Clear(ctx)
		return models.User{}, false
	}

	return user, true
}

func (s *sessionStore) Clear(ctx context.Context) {
	if err := s.storage.Delete(ctx, DemoUserKey); err != nil {
		s.logger.Err(err).Str("func", "*sessionStore.Clear").Msg("failed to clear session record")
	}
}

type backendSessionStore struct {
	storage LocalStorage
	logger  *logger.Logger
}

// NewBackendSessionStore constructs a [BackendSessionStore].
func NewBackendSessionStore(storage LocalStorage, logger *logger.Logger) BackendSessionStore {
	return &backendSessionStore{
		storage: storage,
		logger:  logger,
	}
}

func (s *backendSessionStore) Save(ctx context.Context, session models.BackendSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.storage.Set(ctx, BackendSessionKey, string(payload))
}

func (s *backendSessionStore) Load(ctx context.Context) (models.BackendSession, bool) {
	raw, err := s.storage.Get(ctx, BackendSessionKey)
	if err != nil {
		return models.BackendSession{}, false
	}

	var session models.BackendSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil || session.AccessToken == "" {
		s.logger.Warn().Str("func", "*backendSessionStore.Load").Msg("discarding corrupt backend session")
		_ = s.storage.Delete(ctx, BackendSessionKey)
		return models.BackendSession{}, false
	}

	return session, true
}

func (s *backendSessionStore) Clear(ctx context.Context) error {
	return s.storage.Delete(ctx, BackendSessionKey)
}
