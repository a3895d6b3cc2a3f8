package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/fitloop/internal/db"
)

// NewTestDB returns a migrated in-memory fitloop database. It is closed when
// t finishes; a close failure fails the test.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(); err != nil {
			t.Errorf("closing test database: %v", err)
		}
	})
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
