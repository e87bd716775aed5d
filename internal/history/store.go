// Package history records served recommendation queries for later review.
// It observes advisor events over the bus; the recommendation pipeline itself
// stays stateless.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/HerbHall/netadvisor/internal/store"
)

// Entry is one recorded query.
type Entry struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	Categories  []string  `json:"categories,omitempty"`
	Scale       string    `json:"scale,omitempty"`
	ResultCount int       `json:"result_count"`
	Degraded    bool      `json:"degraded"`
	ServedAt    time.Time `json:"served_at"`
}

// Store persists history entries in the shared SQLite store.
type Store struct {
	db *store.SQLiteStore
}

// NewStore wraps the shared SQLite store.
func NewStore(db *store.SQLiteStore) *Store {
	return &Store{db: db}
}

// migrations is the history schema, applied via the shared migration table.
var migrations = []store.Migration{
	{
		Version:     1,
		Description: "create query_history",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS query_history (
					id           TEXT PRIMARY KEY,
					query        TEXT NOT NULL,
					categories   TEXT NOT NULL DEFAULT '',
					scale        TEXT NOT NULL DEFAULT '',
					result_count INTEGER NOT NULL,
					degraded     INTEGER NOT NULL DEFAULT 0,
					served_at    DATETIME NOT NULL
				)
			`)
			return err
		},
	},
	{
		Version:     2,
		Description: "index query_history by served_at",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE INDEX IF NOT EXISTS idx_query_history_served_at
				ON query_history (served_at DESC)
			`)
			return err
		},
	},
}

// Migrate applies the history schema.
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.Migrate(ctx, "history", migrations)
}

// Insert records one entry.
func (s *Store) Insert(ctx context.Context, e *Entry) error {
	_, err := s.db.DB().ExecContext(ctx, `
		INSERT INTO query_history (id, query, categories, scale, result_count, degraded, served_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Query, strings.Join(e.Categories, ","), e.Scale,
		e.ResultCount, boolToInt(e.Degraded), e.ServedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit < 1 {
		limit = 50
	}

	rows, err := s.db.DB().QueryContext(ctx, `
		SELECT id, query, categories, scale, result_count, degraded, served_at
		FROM query_history
		ORDER BY served_at DESC, rowid DESC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e          Entry
			categories string
			degraded   int
			servedAt   string
		)
		if err := rows.Scan(&e.ID, &e.Query, &categories, &e.Scale, &e.ResultCount, &degraded, &servedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		if categories != "" {
			e.Categories = strings.Split(categories, ",")
		}
		e.Degraded = degraded != 0
		if t, err := time.Parse(time.RFC3339Nano, servedAt); err == nil {
			e.ServedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune removes the oldest entries beyond keep.
func (s *Store) Prune(ctx context.Context, keep int) error {
	if keep < 1 {
		return nil
	}
	_, err := s.db.DB().ExecContext(ctx, `
		DELETE FROM query_history WHERE id NOT IN (
			SELECT id FROM query_history ORDER BY served_at DESC, rowid DESC LIMIT ?
		)`, keep,
	)
	if err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
