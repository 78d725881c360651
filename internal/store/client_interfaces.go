package store

import (
	"context"

	"github.com/MKhiriev/health-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStorage is the client-local string key/value table.
type LocalStorage interface {
	// Get returns [ErrKeyNotFound] when key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete is idempotent.
	Delete(ctx context.Context, key string) error
}

// SessionStore persists the demo login across client runs under a single
// fixed key. None of its operations report errors: failures are logged.
type SessionStore interface {
	// Save writes user. Storage failures are logged and swallowed.
	Save(ctx context.Context, user models.User)
	// Load returns the stored user. A record that does not decode or fails
	// validation is deleted and reported as absent.
	Load(ctx context.Context) (models.User, bool)
	// Clear removes the record; clearing an empty store is a no-op.
	Clear(ctx context.Context)
}

// BackendSessionStore persists the server-issued session so it survives a
// client restart.
type BackendSessionStore interface {
	Save(ctx context.Context, session models.BackendSession) error
	Load(ctx context.Context) (models.BackendSession, bool)
	Clear(ctx context.Context) error
}
