// Package lifestyle implements the lifestyle-practice commands.
package lifestyle

import (
	"context"
	"fmt"
	"strings"

	"github.com/jivana-app/jivana/internal/catalog"
	"github.com/jivana-app/jivana/internal/cli"
	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/models"
	"github.com/jivana-app/jivana/internal/storage"
)

type LifestyleAddCmd struct {
	Title       string `arg:"" help:"Practice title."`
	Category    string `short:"c" help:"Category." required:""`
	Description string `short:"d" help:"What the practice involves." required:""`
	Benefits    string `short:"b" help:"Comma-separated benefits."`
}

func (c *LifestyleAddCmd) Run(ctx *cli.Context) error {
	practice := models.LifestylePractice{
		Title:       c.Title,
		Category:    c.Category,
		Description: c.Description,
		IsUserAdded: true,
	}
	if c.Benefits != "" {
		for _, b := range strings.Split(c.Benefits, ",") {
			practice.Benefits = append(practice.Benefits, strings.TrimSpace(b))
		}
	}
	if err := practice.Validate(); err != nil {
		return fmt.Errorf("invalid practice: %w", err)
	}

	created, err := ctx.Lifestyle().Create(context.Background(), practice)
	if err != nil {
		return err
	}
	fmt.Printf("Added practice: %s (ID: %s)\n", created.Title, created.ID)
	return nil
}

type LifestyleListCmd struct {
	Refresh bool `short:"r" help:"Refresh from the remote store first."`
}

func (c *LifestyleListCmd) Run(ctx *cli.Context) error {
	col := ctx.Lifestyle()
	practices := col.LoadLocal()
	if c.Refresh {
		practices = col.Hydrate(context.Background())
	}

	rows := make([]string, 0, len(practices))
	for _, p := range practices {
		rows = append(rows, fmt.Sprintf("[%s] %s %s", p.Category, p.Title, cli.Dim(p.ID)))
	}
	cli.PrintList("Your Practices", rows)
	return nil
}

type LifestyleDeleteCmd struct {
	ID    string `arg:"" help:"Practice ID to delete."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *LifestyleDeleteCmd) Run(ctx *cli.Context) error {
	col := ctx.Lifestyle()
	var practice models.LifestylePractice
	found := false
	for _, p := range col.LoadLocal() {
		if p.ID == c.ID {
			practice, found = p, true
			break
		}
	}
	if !found {
		return fmt.Errorf("no practice with ID %s", c.ID)
	}

	if !c.Force {
		ok, err := cli.ConfirmDelete(fmt.Sprintf("practice %q", practice.Title))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := col.Delete(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted practice: %s\n", practice.Title)
	return nil
}

type LifestyleTipsCmd struct {
	Category string `short:"c" help:"Only show tips in this category."`
	Refresh  bool   `help:"Ask the content service for fresh tips."`
}

func (c *LifestyleTipsCmd) Run(ctx *cli.Context) error {
	tips := storage.GetItem(ctx.Store, constants.KeyLifestyleTips, catalog.LifestyleTips)

	if c.Refresh {
		client, err := ctx.Content()
		if err != nil {
			return err
		}
		fresh, err := client.RefreshLifestyle(context.Background())
		if err != nil {
			cli.PrintWarn(fmt.Sprintf("Content service unavailable (%v), showing cached tips.", err))
		} else {
			tips = fresh
			if err := storage.SetItem(ctx.Store, constants.KeyLifestyleTips, tips); err != nil {
				return err
			}
		}
	}

	rows := make([]string, 0, len(tips))
	for _, tip := range tips {
		if c.Category != "" && !strings.EqualFold(tip.Category, c.Category) {
			continue
		}
		rows = append(rows, fmt.Sprintf("[%s] %s %s", tip.Category, tip.Title, cli.Dim(tip.Description)))
	}
	cli.PrintList("Lifestyle Tips", rows)
	return nil
}
