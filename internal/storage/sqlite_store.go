package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists the mirror in a single-table SQLite database. It is
// selected when the config path ends in ".db".
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = s.db.Exec(`
CREATE TABLE IF NOT EXISTS mirror (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("failed to create mirror table: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'jivana init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetRaw(key string) ([]byte, bool) {
	if s.db == nil {
		return nil, false
	}
	var value string
	err := s.db.QueryRow("SELECT value FROM mirror WHERE key = ?", key).Scan(&value)
	if err != nil {
		return nil, false
	}
	return []byte(value), true
}

func (s *SQLiteStore) SetRaw(key string, value []byte) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`
INSERT INTO mirror (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(value))
	return err
}

func (s *SQLiteStore) Remove(key string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec("DELETE FROM mirror WHERE key = ?", key)
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
