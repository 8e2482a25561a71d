// Package storage implements the local mirror store: a typed key-value
// store over a per-user persistent file, mirroring every collection the
// remote tenant store holds. Reads fail soft (caller-supplied default),
// writes are synchronous; the mirror is always written before any remote
// operation is issued.
package storage

import (
	"encoding/json"

	"github.com/jivana-app/jivana/internal/logger"
)

// Provider is the raw key-value surface. Two implementations exist: a JSON
// file store and a SQLite store.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// GetRaw returns the stored raw JSON for key, or false if absent.
	GetRaw(key string) ([]byte, bool)
	// SetRaw stores raw JSON under key and persists synchronously.
	SetRaw(key string, value []byte) error
	// Remove deletes key and persists synchronously.
	Remove(key string) error

	// GetConfigPath returns the backing file path.
	GetConfigPath() string
}

// GetItem reads and decodes the value at key. Missing keys and corrupt
// values both yield the default; corruption is logged, never surfaced.
func GetItem[T any](p Provider, key string, def T) T {
	raw, ok := p.GetRaw(key)
	if !ok {
		return def
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		logger.Warn("Discarding corrupt local mirror value", "key", key, "error", err)
		return def
	}
	return out
}

// SetItem encodes and stores the value at key.
func SetItem[T any](p Provider, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return p.SetRaw(key, raw)
}
