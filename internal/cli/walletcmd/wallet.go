// Package walletcmd implements the wallet identity commands.
package walletcmd

import (
	"fmt"

	"github.com/jivana-app/jivana/internal/cli"
)

type WalletConnectCmd struct {
	Address       string `arg:"" optional:"" help:"Wallet address to connect."`
	OnlyIfTrusted bool   `help:"Only reuse a previously connected address, never prompt."`
}

func (c *WalletConnectCmd) Run(ctx *cli.Context) error {
	if c.OnlyIfTrusted {
		addr := ctx.Wallet.Reconnect()
		if addr == "" {
			fmt.Println(cli.Dim("No trusted wallet; staying in local-only mode."))
			return nil
		}
		fmt.Printf("Reconnected wallet: %s\n", addr)
		return nil
	}

	if c.Address == "" {
		return fmt.Errorf("an address is required unless --only-if-trusted is set")
	}
	if err := ctx.Wallet.Connect(c.Address); err != nil {
		return err
	}
	fmt.Printf("Connected wallet: %s\n", c.Address)
	fmt.Println(cli.Dim("Your collections will now sync to the remote store."))
	return nil
}

type WalletStatusCmd struct{}

func (c *WalletStatusCmd) Run(ctx *cli.Context) error {
	addr := ctx.Wallet.Reconnect()
	if addr == "" {
		fmt.Println("No wallet connected (local-only mode).")
		return nil
	}
	fmt.Printf("Connected: %s\n", addr)
	fmt.Printf("Device:    %s\n", cli.Dim(ctx.Wallet.DeviceID()))
	return nil
}

type WalletDisconnectCmd struct{}

func (c *WalletDisconnectCmd) Run(ctx *cli.Context) error {
	if ctx.Wallet.Reconnect() == "" {
		fmt.Println("No wallet connected.")
		return nil
	}
	if err := ctx.Wallet.Disconnect(); err != nil {
		return err
	}
	fmt.Println("Wallet disconnected. Local data is untouched.")
	return nil
}
