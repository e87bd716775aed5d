package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMigrateAppliesOnce(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	applied := 0
	migrations := []Migration{
		{
			Version:     1,
			Description: "create t",
			Up: func(tx *sql.Tx) error {
				applied++
				_, err := tx.Exec("CREATE TABLE t (id INTEGER PRIMARY KEY)")
				return err
			},
		},
	}

	if err := s.Migrate(ctx, "test", migrations); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if err := s.Migrate(ctx, "test", migrations); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
	if applied != 1 {
		t.Errorf("migration applied %d times, want 1", applied)
	}
}

func TestMigrateFailureRollsBack(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	migrations := []Migration{
		{
			Version:     1,
			Description: "broken",
			Up: func(tx *sql.Tx) error {
				return errors.New("boom")
			},
		},
	}

	if err := s.Migrate(ctx, "test", migrations); err == nil {
		t.Fatal("Migrate() expected error, got nil")
	}

	// The failed migration must not be recorded as applied.
	var count int
	err := s.DB().QueryRow(
		"SELECT COUNT(*) FROM _migrations WHERE module_name = 'test'",
	).Scan(&count)
	if err != nil {
		t.Fatalf("query migrations: %v", err)
	}
	if count != 0 {
		t.Errorf("recorded migrations = %d, want 0", count)
	}
}

func TestTxCommitAndRollback(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if _, err := s.DB().Exec("CREATE TABLE t (v TEXT)"); err != nil {
		t.Fatalf("create table: %v", err)
	}

	if err := s.Tx(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO t (v) VALUES ('kept')")
		return err
	}); err != nil {
		t.Fatalf("Tx() error = %v", err)
	}

	wantErr := errors.New("abort")
	err := s.Tx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec("INSERT INTO t (v) VALUES ('discarded')"); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Tx() error = %v, want %v", err, wantErr)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM t").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want 1 (rollback should discard second insert)", count)
	}
}
