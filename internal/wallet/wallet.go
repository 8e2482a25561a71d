// Package wallet manages the tenant identity: a wallet address persisted in
// the local mirror. The app works fully without one; absence simply keeps
// every collection local-only.
package wallet

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/errors"
	"github.com/jivana-app/jivana/internal/logger"
	"github.com/jivana-app/jivana/internal/storage"
)

// base58 alphabet used by wallet addresses; 0, O, I and l are excluded.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

type Manager struct {
	store storage.Provider
}

func NewManager(store storage.Provider) *Manager {
	return &Manager{store: store}
}

// ValidateAddress checks that addr looks like a base58 wallet address.
func ValidateAddress(addr string) error {
	if len(addr) < 32 || len(addr) > 44 {
		return fmt.Errorf("%w: address must be 32-44 characters", errors.ErrIdentityRejected)
	}
	for _, c := range addr {
		if !strings.ContainsRune(base58Alphabet, c) {
			return fmt.Errorf("%w: address contains invalid character %q", errors.ErrIdentityRejected, c)
		}
	}
	return nil
}

// Connect validates and persists the wallet address as the tenant id.
func (m *Manager) Connect(addr string) error {
	addr = strings.TrimSpace(addr)
	if err := ValidateAddress(addr); err != nil {
		return err
	}
	if err := storage.SetItem(m.store, constants.KeyWallet, addr); err != nil {
		return fmt.Errorf("failed to persist wallet address: %w", err)
	}
	logger.Info("Wallet connected", "address", addr)
	return nil
}

// Reconnect silently returns the persisted address, or "" when none is
// stored. It never errors; a missing identity is local-only mode.
func (m *Manager) Reconnect() string {
	return storage.GetItem(m.store, constants.KeyWallet, "")
}

// Disconnect clears the persisted address.
func (m *Manager) Disconnect() error {
	if err := m.store.Remove(constants.KeyWallet); err != nil {
		return fmt.Errorf("failed to clear wallet address: %w", err)
	}
	logger.Info("Wallet disconnected")
	return nil
}

// DeviceID returns a stable per-install identifier, generating and
// persisting one on first use.
func (m *Manager) DeviceID() string {
	id := storage.GetItem(m.store, constants.KeyDeviceID, "")
	if id != "" {
		return id
	}
	id = uuid.NewString()
	if err := storage.SetItem(m.store, constants.KeyDeviceID, id); err != nil {
		logger.Warn("Failed to persist device id", "error", err)
	}
	return id
}
