package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/jivana-app/jivana/internal/constants"
)

var (
	// ErrNotFound is returned when no credential is found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

func get(user string) (string, error) {
	val, err := keyring.Get(constants.AppName, user)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return val, nil
}

func set(user, val string) error {
	if val == "" {
		return errors.New("credential cannot be empty")
	}
	if err := keyring.Set(constants.AppName, user, val); err != nil {
		return fmt.Errorf("failed to store credential in keyring: %w", err)
	}
	return nil
}

func del(user string) error {
	if err := keyring.Delete(constants.AppName, user); err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credential from keyring: %w", err)
	}
	return nil
}

// GetConnectionString retrieves the remote store connection string.
// Returns ErrNotFound if none is stored.
func GetConnectionString() (string, error) {
	return get(constants.KeyringUserConnection)
}

// SetConnectionString stores the remote store connection string.
func SetConnectionString(connStr string) error {
	return set(constants.KeyringUserConnection, connStr)
}

// DeleteConnectionString removes the remote store connection string.
func DeleteConnectionString() error {
	return del(constants.KeyringUserConnection)
}

// GetContentAPIKey retrieves the content completion service API key.
// Returns ErrNotFound if none is stored.
func GetContentAPIKey() (string, error) {
	return get(constants.KeyringUserContentKey)
}

// SetContentAPIKey stores the content completion service API key.
func SetContentAPIKey(key string) error {
	return set(constants.KeyringUserContentKey, key)
}

// DeleteContentAPIKey removes the content completion service API key.
func DeleteContentAPIKey() error {
	return del(constants.KeyringUserContentKey)
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, constants.KeyringUserConnection)
	return err == nil || err == keyring.ErrNotFound
}
