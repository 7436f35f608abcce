// Package history records per-item scan outcomes in sqlite. The store is
// write-mostly observability: the pipeline never reads it to make decisions,
// duplicate avoidance is filesystem-state based.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed sql/001_initial.sql
var initialSQL string

// Entry is one recorded outcome.
type Entry struct {
	ID        int64
	Kind      string
	Title     string
	Year      int
	Season    int
	Candidate string
	Source    string
	Status    string
	Detail    string
	CreatedAt time.Time
}

// Store persists outcomes.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path and runs
// migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(initialSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one outcome. A nil store is a no-op so callers don't need
// to branch on whether history is enabled.
func (s *Store) Record(e Entry) error {
	if s == nil {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO outcomes (kind, title, year, season, candidate, source, status, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Kind, e.Title, e.Year, e.Season, e.Candidate, e.Source, e.Status, e.Detail, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert outcome: %w", err)
	}
	return nil
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if s == nil {
		return nil, nil
	}
	rows, err := s.db.Query(
		`SELECT id, kind, title, year, season, candidate, source, status, detail, created_at
		 FROM outcomes ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Kind, &e.Title, &e.Year, &e.Season,
			&e.Candidate, &e.Source, &e.Status, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
