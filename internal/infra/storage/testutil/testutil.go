package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PickupService/migrator/sqlite"
)

// SetupTestDB создает in-memory SQLite БД с применёнными миграциями
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err, "Failed to create test database")

	// Каждое соединение к :memory: получает свою БД
	db.SetMaxOpenConns(1)

	err = sqlite.Migrate(db)
	require.NoError(t, err, "Failed to run migrations on test database")

	t.Cleanup(func() {
		require.NoError(t, db.Close(), "Failed to close test database")
	})

	return db
}
