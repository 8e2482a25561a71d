// Package pages implements the daily content commands: wisdom, diet, and
// the stats overview.
package pages

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jivana-app/jivana/internal/cli"
	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/daily"
	"github.com/jivana-app/jivana/internal/models"
	"github.com/jivana-app/jivana/internal/progress"
	"github.com/jivana-app/jivana/internal/storage"
)

type WisdomCmd struct {
	Refresh bool `help:"Ask the content service for a brand-new quote instead of the daily pick."`
}

func (c *WisdomCmd) Run(ctx *cli.Context) error {
	if c.Refresh {
		client, err := ctx.Content()
		if err != nil {
			return err
		}
		q, err := client.RefreshWisdom(context.Background())
		if err != nil {
			cli.PrintWarn(fmt.Sprintf("Content service unavailable (%v), showing the daily pick instead.", err))
		} else {
			printQuote(q)
			return nil
		}
	}

	q := daily.Wisdom(ctx.Store, ctx.Today(), rand.New(rand.NewSource(ctx.Now().UnixNano())))
	printQuote(q)
	return nil
}

func printQuote(q models.WisdomQuote) {
	fmt.Printf("%q\n", q.Quote)
	if q.Author != "" {
		fmt.Printf("  %s\n", cli.Dim("— "+q.Author))
	}
}

type DietCmd struct {
	Refresh bool   `help:"Ask the content service for fresh dish lists before picking."`
	Recipe  string `help:"Fetch a recipe for the named dish instead of showing the plan."`
}

func (c *DietCmd) Run(ctx *cli.Context) error {
	if c.Recipe != "" {
		client, err := ctx.Content()
		if err != nil {
			return err
		}
		r, err := client.Recipe(context.Background(), c.Recipe)
		if err != nil {
			return err
		}
		printRecipe(r)
		return nil
	}

	if c.Refresh {
		client, err := ctx.Content()
		if err != nil {
			return err
		}
		lists, err := client.RefreshDiet(context.Background())
		if err != nil {
			cli.PrintWarn(fmt.Sprintf("Content service unavailable (%v), using cached dish lists.", err))
		} else {
			if err := storage.SetItem(ctx.Store, constants.KeyDietLists, lists); err != nil {
				return err
			}
			// Force a re-pick from the fresh lists.
			if err := ctx.Store.Remove(constants.KeyDailyDiet); err != nil {
				return err
			}
		}
	}

	plan := daily.Diet(ctx.Store, ctx.Today(), rand.New(rand.NewSource(ctx.Now().UnixNano())))
	rows := make([]string, 0, len(plan))
	for _, m := range plan {
		rows = append(rows, fmt.Sprintf("%-10s %s %s", m.MealType, m.Dish, cli.Dim(m.Nutrition)))
	}
	cli.PrintList("Today's Meals", rows)
	return nil
}

func printRecipe(r models.Recipe) {
	fmt.Printf("%s %s\n", r.Dish, cli.Dim(fmt.Sprintf("(serves %d, prep %s, cook %s)", r.Serves, r.PrepTime, r.CookTime)))
	fmt.Println("Ingredients:")
	for _, ing := range r.Ingredients {
		fmt.Printf("  - %s\n", ing)
	}
	fmt.Println("Steps:")
	for i, step := range r.Steps {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
}

type StatsCmd struct {
	Refresh bool `short:"r" help:"Merge the remote history before showing."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	tasks := ctx.Tasks().LoadLocal()
	habits := ctx.Habits().LoadLocal()
	now := ctx.Now()

	if c.Refresh {
		if r := ctx.RemoteStore(); r != nil {
			row, ok, err := r.GetStats(context.Background(), ctx.WalletID())
			if err != nil {
				cli.PrintWarn(fmt.Sprintf("Remote stats unavailable (%v), showing local history.", err))
			} else if ok {
				ctx.Stats().MergeRemoteHistory(row.ProgressOverTime)
			}
		}
	}

	row := ctx.Stats().Recompute(tasks, habits, now)
	defer ctx.Stats().Flush(context.Background())

	prior := progress.PriorWeekCompletion(row.ProgressOverTime, now)

	fmt.Println("Progress")
	fmt.Printf("  Overall:          %.0f%%\n", row.OverallProgress)
	fmt.Printf("  Today:            %.0f%%\n", progress.TodayProgress(tasks, habits, now))
	fmt.Printf("  Tasks:            %.0f%%\n", row.TaskCompletion)
	fmt.Printf("  This week:        %.0f%%\n", row.WeeklyCompletion)
	fmt.Printf("  Prior week:       %.0f%%\n", prior)
	fmt.Printf("  History points:   %d\n", len(row.ProgressOverTime))
	return nil
}
