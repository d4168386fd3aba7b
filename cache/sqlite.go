package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists entries in a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite cache: path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS cache_entries (
			cache_key TEXT PRIMARY KEY,
			payload   BLOB NOT NULL,
			cached_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("sqlite cache: migrate: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	var (
		payload  []byte
		cachedAt int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, cached_at FROM cache_entries WHERE cache_key = ?`, key,
	).Scan(&payload, &cachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("sqlite cache: get %s: %w", key, err)
	}
	return Entry{Payload: payload, CachedAt: time.UnixMilli(cachedAt).UTC()}, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, entry Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (cache_key, payload, cached_at) VALUES (?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			payload = excluded.payload,
			cached_at = excluded.cached_at
	`, key, []byte(entry.Payload), entry.CachedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("sqlite cache: set %s: %w", key, err)
	}
	return nil
}
