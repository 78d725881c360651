// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigratePostgres_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: goose's first query fails
	err = MigratePostgres(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	assert.ErrorIs(t, MigratePostgres(db), ErrNilDB)
	assert.ErrorIs(t, MigrateSQLite(db), ErrNilDB)
}

func TestMigrateSQLite_CreatesLocalStorage(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, MigrateSQLite(db))
	// second run is a no-op
	require.NoError(t, MigrateSQLite(db))

	_, err = db.Exec(`INSERT INTO local_storage (key, value) VALUES ('k', 'v')`)
	require.NoError(t, err)

	var value string
	require.NoError(t, db.QueryRow(`SELECT value FROM local_storage WHERE key = 'k'`).Scan(&value))
	assert.Equal(t, "v", value)
}
