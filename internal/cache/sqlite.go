// Package cache persists the most recent successful list fetches so the
// client can show stale data when a refresh fails and serve lists
// offline. Snapshots are wholesale: each save replaces the previous one.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Snapshot collections.
const (
	CollectionLeads     = "leads"
	CollectionFollowUps = "followups"
)

// Store is a SQLite-backed snapshot cache.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens (or creates) the cache database and applies the schema.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("cache path is required")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping cache database: %w", err)
	}

	store := &Store{db: db, dbPath: dbPath}
	if err := store.migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate cache schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS leads (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			mobile TEXT NOT NULL,
			email TEXT,
			status TEXT NOT NULL,
			branch TEXT,
			lead_source TEXT,
			course TEXT,
			specialization TEXT,
			handled_by TEXT,
			created_at DATETIME,
			position INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS followups (
			id TEXT PRIMARY KEY,
			lead_id TEXT NOT NULL,
			lead_name TEXT,
			lead_mobile TEXT,
			date TEXT,
			time TEXT,
			followed_by TEXT,
			feedback TEXT,
			status TEXT NOT NULL,
			next_date TEXT,
			next_time TEXT,
			position INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS snapshot_meta (
			collection TEXT PRIMARY KEY,
			fetched_at DATETIME NOT NULL
		)`,
	}

	for _, q := range queries {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	return nil
}
