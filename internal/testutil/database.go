package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/ndewijer/portfolio-tracker/internal/database"
)

// SetupTestDB creates a file-backed SQLite database in the test's temp
// directory with all migrations applied.
// The database is automatically closed when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// A temp file rather than :memory:, which gives every pooled connection its own database
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}
