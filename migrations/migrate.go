// Package migrations embeds the goose schema migrations of the server
// (PostgreSQL) and the client (SQLite).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql
var postgresMigrations embed.FS

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

// ErrNilDB is returned when a migration is requested without a connection.
var ErrNilDB = errors.New("db is nil")

// MigratePostgres brings the server schema up to date.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, postgresMigrations, "pgx", "postgres")
}

// MigrateSQLite brings the client-local schema up to date.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, sqliteMigrations, "sqlite3", "sqlite")
}

func migrate(db *sql.DB, fsys embed.FS, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
