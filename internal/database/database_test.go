package database

import (
	"path/filepath"
	"testing"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestNewRunsSchema(t *testing.T) {
	db := newTestDatabase(t)

	for _, table := range []string{"users", "tasks", "sessions"} {
		var name string
		err := db.DB.Get(&name, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		if err != nil {
			t.Errorf("table %q missing after init: %v", table, err)
		}
	}
}
