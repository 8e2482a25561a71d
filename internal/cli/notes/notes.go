// Package notes implements the notepad commands.
package notes

import (
	"context"
	"fmt"
	"strings"

	"github.com/jivana-app/jivana/internal/cli"
)

type NoteShowCmd struct {
	Refresh bool `short:"r" help:"Fetch the newest saved note from the remote store."`
}

func (c *NoteShowCmd) Run(ctx *cli.Context) error {
	note := ctx.Note()
	content := note.LoadLocal()
	if c.Refresh {
		content = note.Hydrate(context.Background())
	}

	if strings.TrimSpace(content) == "" {
		fmt.Println(cli.Dim("Notepad is empty."))
		return nil
	}
	fmt.Println(content)
	return nil
}

type NoteSaveCmd struct {
	Text string `arg:"" help:"Note content. Replaces the previous note."`
}

func (c *NoteSaveCmd) Run(ctx *cli.Context) error {
	if err := ctx.Note().Save(context.Background(), c.Text); err != nil {
		return err
	}
	fmt.Println("Note saved.")
	return nil
}
