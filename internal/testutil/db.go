// Package testutil holds helpers shared by package tests.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/gnote-tools/cli/internal/store"
	"github.com/gnote-tools/cli/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, migrations.Run(db), "failed to run migrations")
	return db
}

// NewTestStore returns a cache backed by NewTestDB.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedSearch stores a search result in the cache as `find` would.
func SeedSearch(t *testing.T, s *store.Store, request string, notes ...string) {
	t.Helper()

	result := searchResult(request, notes)
	require.NoError(t, s.SetSearch(result))
	for _, n := range result.Notes {
		require.NoError(t, s.SetNote(n), "failed to seed note %s", n.GUID)
	}
}
