package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/health-vault/internal/config"
	"github.com/MKhiriev/health-vault/internal/logger"
)

// ClientStorages groups all client-side stores into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// LocalStorage is the raw key/value table.
	LocalStorage LocalStorage
	// SessionStore holds the demo login record.
	SessionStore SessionStore
	// BackendSessionStore holds the server-issued session.
	BackendSessionStore BackendSessionStore

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the stores over a single [LocalStorage].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	local := NewLocalStorageRepository(db, logger)

	return &ClientStorages{
		LocalStorage:        local,
		SessionStore:        NewSessionStore(local, logger),
		BackendSessionStore: NewBackendSessionStore(local, logger),
		db:                  db,
	}
}

// Close releases the SQLite connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
