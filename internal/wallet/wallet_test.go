package wallet

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/jivana-app/jivana/internal/errors"
	"github.com/jivana-app/jivana/internal/storage"
)

const testAddr = "7sPnk3qzbRYkVb8vTpLy2cJm4HdXw9KgQe5uNiZoAaBc"

func newStore(t *testing.T) storage.Provider {
	t.Helper()
	s := storage.NewJSONStore(filepath.Join(t.TempDir(), "jivana.json"))
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestConnectReconnect(t *testing.T) {
	m := NewManager(newStore(t))

	if got := m.Reconnect(); got != "" {
		t.Errorf("Reconnect() before connect = %q, want empty", got)
	}

	if err := m.Connect(testAddr); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if got := m.Reconnect(); got != testAddr {
		t.Errorf("Reconnect() = %q, want %q", got, testAddr)
	}

	if err := m.Disconnect(); err != nil {
		t.Fatalf("Disconnect() error = %v", err)
	}
	if got := m.Reconnect(); got != "" {
		t.Errorf("Reconnect() after disconnect = %q, want empty", got)
	}
}

func TestConnectRejectsMalformedAddress(t *testing.T) {
	m := NewManager(newStore(t))

	tests := []struct {
		name string
		addr string
	}{
		{"too short", "abc"},
		{"invalid characters", "0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl"},
		{"too long", testAddr + testAddr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.Connect(tt.addr)
			if err == nil {
				t.Fatal("Connect() expected error")
			}
			if !stderrors.Is(err, errors.ErrIdentityRejected) {
				t.Errorf("Connect() error = %v, want ErrIdentityRejected", err)
			}
		})
	}
}

func TestDeviceIDStable(t *testing.T) {
	m := NewManager(newStore(t))

	first := m.DeviceID()
	if first == "" {
		t.Fatal("DeviceID() returned empty id")
	}
	if second := m.DeviceID(); second != first {
		t.Errorf("DeviceID() = %q, want stable %q", second, first)
	}
}
