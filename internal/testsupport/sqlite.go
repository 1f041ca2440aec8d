// Package testsupport opens throwaway, fully migrated stores for tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/db"
)

// NewSQLite returns a migrated SQLite store in the test's temp dir with
// foreign keys enforced. It is closed when the test ends.
func NewSQLite(t testing.TB) *sqlx.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "fittrack.db") + "?_pragma=foreign_keys(1)&_time_format=sqlite"
	database, err := db.Init("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	return database
}
