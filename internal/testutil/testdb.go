package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/mooncyc/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory mooncyc database, closed on cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "open in-memory mooncyc db")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
