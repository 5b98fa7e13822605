package database

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"bvdu-bank/internal/config"
)

// TestNow is the clock reading used for seeded test data
var TestNow = time.Date(2024, 3, 14, 11, 0, 0, 0, time.Local)

// SetupTestDB opens a seeded data directory under t.TempDir()
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := config.Default(t.TempDir())
	return SetupTestDBWithConfig(t, cfg)
}

// SetupTestDBWithConfig opens and seeds a data directory described by cfg
func SetupTestDBWithConfig(t *testing.T, cfg *config.Config) *DB {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := Open(cfg, logger)
	if err != nil {
		t.Fatalf("failed to open test data directory: %v", err)
	}

	if err := NewSeeder(db, func() time.Time { return TestNow }).EnsureDefaults(); err != nil {
		t.Fatalf("failed to seed test data directory: %v", err)
	}
	return db
}

// ReopenTestDB loads the same data directory into fresh repositories
func ReopenTestDB(t *testing.T, db *DB) *DB {
	t.Helper()

	reopened, err := Open(db.Config, db.logger)
	if err != nil {
		t.Fatalf("failed to reopen test data directory: %v", err)
	}
	return reopened
}
