package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jivana-app/jivana/internal/logger"
)

type store struct {
	Version int                        `json:"version"`
	Items   map[string]json.RawMessage `json:"items"`
}

// JSONStore persists the mirror as a single JSON file, rewritten atomically
// on every mutation.
type JSONStore struct {
	path  string
	store *store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &store{
		Version: 1,
		Items:   make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'jivana init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// A corrupt mirror degrades to an empty one; every key read then
		// yields the caller's default.
		logger.Warn("Local mirror is corrupt, starting empty", "path", s.path, "error", err)
		s.store = &store{Version: 1}
	}

	if s.store.Items == nil {
		s.store.Items = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetRaw(key string) ([]byte, bool) {
	if s.store == nil {
		return nil, false
	}
	raw, ok := s.store.Items[key]
	if !ok {
		return nil, false
	}
	return raw, true
}

func (s *JSONStore) SetRaw(key string, value []byte) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Items[key] = json.RawMessage(value)
	return s.save()
}

func (s *JSONStore) Remove(key string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	delete(s.store.Items, key)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
