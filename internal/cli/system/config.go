package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jivana-app/jivana/internal/cli"
	"github.com/jivana-app/jivana/internal/keyring"
	"github.com/jivana-app/jivana/internal/storage/remote"
)

// ConfigSetConnectionStringCmd stores the remote store connection string in
// the OS keyring.
type ConfigSetConnectionStringCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in the keyring."`
}

func (c *ConfigSetConnectionStringCmd) Run(ctx *cli.Context) error {
	if !strings.HasPrefix(c.ConnectionString, "postgres://") &&
		!strings.HasPrefix(c.ConnectionString, "postgresql://") &&
		!strings.Contains(c.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if _, err := remote.ValidateConnString(c.ConnectionString); err != nil {
		if errors.Is(err, remote.ErrEmbeddedCredentials) {
			// The keyring is encrypted, so embedded credentials are
			// tolerated here with a warning.
			cli.PrintWarn("Connection string contains embedded credentials; it will be stored in the encrypted OS keyring.")
		} else {
			return fmt.Errorf("invalid connection string: %w", err)
		}
	}

	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	fmt.Println("Connection string stored in OS keyring.")
	return nil
}

// ConfigSetKeyCmd stores the content service API key in the OS keyring.
type ConfigSetKeyCmd struct {
	APIKey string `arg:"" help:"Content service API key to store in the keyring."`
}

func (c *ConfigSetKeyCmd) Run(ctx *cli.Context) error {
	if strings.TrimSpace(c.APIKey) == "" {
		return errors.New("API key cannot be empty")
	}
	if err := keyring.SetContentAPIKey(c.APIKey); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}
	fmt.Println("API key stored in OS keyring.")
	return nil
}

// ConfigClearCmd removes stored credentials from the OS keyring.
type ConfigClearCmd struct {
	ConnectionString bool `help:"Remove the stored connection string."`
	APIKey           bool `help:"Remove the stored API key."`
}

func (c *ConfigClearCmd) Run(ctx *cli.Context) error {
	if !c.ConnectionString && !c.APIKey {
		return errors.New("specify --connection-string and/or --api-key")
	}
	if c.ConnectionString {
		if err := keyring.DeleteConnectionString(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("failed to delete connection string: %w", err)
		}
		fmt.Println("Connection string removed.")
	}
	if c.APIKey {
		if err := keyring.DeleteContentAPIKey(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("failed to delete API key: %w", err)
		}
		fmt.Println("API key removed.")
	}
	return nil
}
