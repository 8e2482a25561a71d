// Package words implements the vocabulary commands.
package words

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jivana-app/jivana/internal/cli"
	"github.com/jivana-app/jivana/internal/daily"
	"github.com/jivana-app/jivana/internal/models"
)

type WordAddCmd struct {
	Word     string `arg:"" help:"The word itself."`
	Meaning  string `arg:"" help:"What it means."`
	Phonetic string `help:"Phonetic spelling."`
	Example  string `help:"Example sentence."`
}

func (c *WordAddCmd) Run(ctx *cli.Context) error {
	word := models.Word{
		Word:        c.Word,
		Meaning:     c.Meaning,
		Phonetic:    c.Phonetic,
		Example:     c.Example,
		IsUserAdded: true,
	}
	if err := word.Validate(); err != nil {
		return fmt.Errorf("invalid word: %w", err)
	}

	created, err := ctx.Words().Create(context.Background(), word)
	if err != nil {
		return err
	}
	fmt.Printf("Added word: %s (ID: %s)\n", created.Word, created.ID)
	return nil
}

type WordListCmd struct {
	Refresh bool `short:"r" help:"Refresh from the remote store first."`
}

func (c *WordListCmd) Run(ctx *cli.Context) error {
	col := ctx.Words()
	words := col.LoadLocal()
	if c.Refresh {
		words = col.Hydrate(context.Background())
	}

	rows := make([]string, 0, len(words))
	for _, w := range words {
		rows = append(rows, fmt.Sprintf("%s %s %s", w.Word, cli.Dim(w.Meaning), cli.Dim(w.ID)))
	}
	cli.PrintList("Your Words", rows)
	return nil
}

type WordDeleteCmd struct {
	ID    string `arg:"" help:"Word ID to delete."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *WordDeleteCmd) Run(ctx *cli.Context) error {
	col := ctx.Words()
	var word models.Word
	found := false
	for _, w := range col.LoadLocal() {
		if w.ID == c.ID {
			word, found = w, true
			break
		}
	}
	if !found {
		return fmt.Errorf("no word with ID %s", c.ID)
	}

	if !c.Force {
		ok, err := cli.ConfirmDelete(fmt.Sprintf("word %q", word.Word))
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
	fmt.Printf("Deleted word: %s\n", word.Word)
	return nil
}

type WordDailyCmd struct {
	Refresh bool `help:"Ask the content service for a brand-new word instead of the daily pick."`
}

func (c *WordDailyCmd) Run(ctx *cli.Context) error {
	if c.Refresh {
		client, err := ctx.Content()
		if err != nil {
			return err
		}
		w, err := client.RefreshWord(context.Background())
		if err != nil {
			cli.PrintWarn(fmt.Sprintf("Content service unavailable (%v), showing the daily pick instead.", err))
		} else {
			printWord(w)
			return nil
		}
	}

	w := daily.Word(ctx.Store, ctx.Today(), ctx.Words().LoadLocal(), rand.New(rand.NewSource(ctx.Now().UnixNano())))
	printWord(w)
	return nil
}

func printWord(w models.Word) {
	fmt.Printf("%s %s\n", w.Word, cli.Dim(w.Phonetic))
	fmt.Printf("  %s\n", w.Meaning)
	if w.Example != "" {
		fmt.Printf("  %s\n", cli.Dim("\""+w.Example+"\""))
	}
}
