// Package habits implements the habit commands.
package habits

import (
	"context"
	"fmt"

	"github.com/jivana-app/jivana/internal/cli"
	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/models"
	"github.com/jivana-app/jivana/internal/progress"
	"github.com/jivana-app/jivana/internal/utils"
)

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `short:"d" help:"What this habit is about."`
	Frequency   string `short:"f" help:"Target frequency, free-form." default:"7 days/week"`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	habit := models.Habit{
		Name:            c.Name,
		Description:     c.Description,
		TargetFrequency: c.Frequency,
		StartDate:       ctx.Today(),
		Status:          constants.HabitActive,
	}
	if err := habit.Validate(); err != nil {
		return fmt.Errorf("invalid habit: %w", err)
	}

	created, err := ctx.Habits().Create(context.Background(), habit)
	if err != nil {
		return err
	}
	ctx.SyncStats(context.Background())

	fmt.Printf("Added habit: %s (ID: %s)\n", created.Name, created.ID)
	return nil
}

type HabitListCmd struct {
	Refresh bool `short:"r" help:"Refresh from the remote store first."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	col := ctx.Habits()
	habits := col.LoadLocal()
	if c.Refresh {
		habits = col.Hydrate(context.Background())
	}

	today := ctx.Today()
	now := ctx.Now()
	rows := make([]string, 0, len(habits))
	for _, h := range habits {
		mark := "[ ]"
		if h.CompletedOn(today) {
			mark = "[x]"
		}
		streak := progress.Streak(h.CompletionDates, h.StartDate, now)
		rows = append(rows, fmt.Sprintf("%s %s %s %s", mark, h.Name,
			cli.Dim(fmt.Sprintf("(streak %d, target %s)", streak, h.TargetFrequency)), cli.Dim(h.ID)))
	}
	cli.PrintList("Habits", rows)
	return nil
}

type HabitToggleCmd struct {
	ID   string `arg:"" help:"Habit ID to toggle."`
	Date string `help:"Date to toggle (YYYY-MM-DD), defaults to today."`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	col := ctx.Habits()
	habit, ok := findHabit(col.LoadLocal(), c.ID)
	if !ok {
		return fmt.Errorf("no habit with ID %s", c.ID)
	}

	date := c.Date
	if date == "" {
		date = ctx.Today()
	} else if !utils.ValidateDateFormat(date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	nowPresent := habit.ToggleCompletion(date)
	habit.Streak = progress.Streak(habit.CompletionDates, habit.StartDate, ctx.Now())
	habit.Status = constants.HabitActive
	if habit.CompletedOn(ctx.Today()) {
		habit.Status = constants.HabitDone
	}

	if err := col.Update(context.Background(), habit); err != nil {
		return err
	}
	ctx.SyncStats(context.Background())

	if nowPresent {
		fmt.Printf("Completed %s on %s (streak %d)\n", habit.Name, date, habit.Streak)
	} else {
		fmt.Printf("Cleared %s on %s (streak %d)\n", habit.Name, date, habit.Streak)
	}
	return nil
}

type HabitDeleteCmd struct {
	ID    string `arg:"" help:"Habit ID to delete."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	col := ctx.Habits()
	habit, ok := findHabit(col.LoadLocal(), c.ID)
	if !ok {
		return fmt.Errorf("no habit with ID %s", c.ID)
	}

	if !c.Force {
		ok, err := cli.ConfirmDelete(fmt.Sprintf("habit %q and its history", habit.Name))
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
	ctx.SyncStats(context.Background())

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

func findHabit(habits []models.Habit, id string) (models.Habit, bool) {
	for _, h := range habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}
