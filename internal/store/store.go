// Package store provides a SQLite-backed record of the last page viewed in
// each deck, so a deck reopens where it was left.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store persists per-deck session state.
type Store struct {
	db *sql.DB
}

// Open opens or creates the session database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DefaultPath returns the XDG-compliant location for the session database.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "swipedeck", "state.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "swipedeck", "state.db")
}

// LastPage returns the saved page for a deck key. The second return is false
// when the deck has never been opened.
func (s *Store) LastPage(key string) (int, bool, error) {
	var page int
	err := s.db.QueryRow("SELECT last_page FROM decks WHERE deck_key = ?", key).Scan(&page)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return page, true, nil
}

// SaveLastPage records the current page for a deck key.
func (s *Store) SaveLastPage(key, name string, page, pageCount int) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT OR REPLACE INTO decks (deck_key, name, last_page, page_count, opened_at)
		VALUES (?, ?, ?, ?, ?)`, key, name, page, pageCount, now)
	return err
}

// DeckRecord is one row of the session history.
type DeckRecord struct {
	Key       string
	Name      string
	LastPage  int
	PageCount int
	OpenedAt  time.Time
}

// Recent returns deck records ordered by most recently opened.
func (s *Store) Recent(limit int) ([]DeckRecord, error) {
	rows, err := s.db.Query(`SELECT deck_key, name, last_page, page_count, opened_at
		FROM decks ORDER BY opened_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []DeckRecord
	for rows.Next() {
		var r DeckRecord
		var opened string
		if err := rows.Scan(&r.Key, &r.Name, &r.LastPage, &r.PageCount, &opened); err != nil {
			return nil, err
		}
		r.OpenedAt, _ = time.Parse(time.RFC3339, opened)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Forget removes the saved state for a deck key.
func (s *Store) Forget(key string) error {
	_, err := s.db.Exec("DELETE FROM decks WHERE deck_key = ?", key)
	return err
}
