// Package history persists the queries a user has searched for.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/storesearch/internal/db"
	"github.com/llehouerou/storesearch/internal/itunes"
)

const (
	appName     = "storesearch"
	dbFileName  = "storesearch.db"
	DefaultSize = 50
)

// Entry is one remembered search.
type Entry struct {
	Query    string
	Category itunes.Category
	LastUsed time.Time
	Uses     int
}

// Store is a search history backed by SQLite. It keeps at most size entries.
type Store struct {
	db   *sql.DB
	size int
	now  func() time.Time
}

// Open opens the history database in the XDG data directory.
func Open(size int) (*Store, error) {
	path, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("history path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return OpenPath(path, size)
}

// OpenPath opens the history database at path (":memory:" works).
func OpenPath(path string, size int) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)

	ctx := context.Background()
	if err := db.Configure(ctx, conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("configure history db: %w", err)
	}
	if err := initSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}

	if size <= 0 {
		size = DefaultSize
	}
	return &Store{db: conn, size: size, now: time.Now}, nil
}

func initSchema(ctx context.Context, conn *sql.DB) error {
	_, err := conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS search_history (
			query TEXT PRIMARY KEY,
			category TEXT NOT NULL DEFAULT '',
			last_used_at INTEGER NOT NULL,
			uses INTEGER NOT NULL DEFAULT 1
		);
		CREATE INDEX IF NOT EXISTS idx_history_last_used ON search_history(last_used_at);
	`)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add records query, bumping it to the top if already present, and trims the
// history to its size.
func (s *Store) Add(ctx context.Context, query string, category itunes.Category) error {
	if query == "" {
		return nil
	}
	now := s.now().UnixNano()
	return db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO search_history (query, category, last_used_at, uses)
			VALUES (?, ?, ?, 1)
			ON CONFLICT(query) DO UPDATE SET
				category = excluded.category,
				last_used_at = excluded.last_used_at,
				uses = uses + 1
		`, query, category.String(), now)
		if err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			DELETE FROM search_history WHERE query NOT IN (
				SELECT query FROM search_history ORDER BY last_used_at DESC LIMIT ?
			)
		`, s.size)
		if err != nil {
			return fmt.Errorf("trim: %w", err)
		}
		return nil
	})
}

// Recent returns up to limit entries, most recent first. limit <= 0 returns all.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.size
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT query, category, last_used_at, uses
		FROM search_history
		ORDER BY last_used_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e        Entry
			category sql.NullString
			lastUsed int64
		)
		if err := rows.Scan(&e.Query, &category, &lastUsed, &e.Uses); err != nil {
			return nil, err
		}
		e.Category, _ = itunes.ParseCategory(db.NullStringValue(category))
		e.LastUsed = time.Unix(0, lastUsed)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM search_history`)
	return err
}
