// Package system implements init and credential management commands.
package system

import (
	"fmt"
	"os"

	"github.com/jivana-app/jivana/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Delete the existing mirror before initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized jivana storage at: %s\n", ctx.Store.GetConfigPath())

	if r := ctx.Remote; r != nil {
		if err := r.Init(); err != nil {
			cli.PrintWarn(fmt.Sprintf("Remote store setup failed (%v); you can rerun init once it is reachable.", err))
		} else {
			fmt.Println("Remote store ready.")
		}
	}
	return nil
}
