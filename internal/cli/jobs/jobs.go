// Package jobs implements the scheduled-work commands.
package jobs

import (
	"context"
	"fmt"
	"sort"

	"github.com/jivana-app/jivana/internal/cli"
	"github.com/jivana-app/jivana/internal/models"
)

type JobAddCmd struct {
	Title string `arg:"" help:"What the job is."`
	Date  string `short:"d" help:"Date (YYYY-MM-DD)." required:""`
	Time  string `short:"t" help:"Time (HH:MM)." required:""`
}

func (c *JobAddCmd) Run(ctx *cli.Context) error {
	job := models.Job{
		Title: c.Title,
		Date:  c.Date,
		Time:  c.Time,
	}
	if err := job.Validate(); err != nil {
		return fmt.Errorf("invalid job: %w", err)
	}

	created, err := ctx.Jobs().Create(context.Background(), job)
	if err != nil {
		return err
	}
	fmt.Printf("Added job: %s at %s %s (ID: %s)\n", created.Title, created.Date, created.Time, created.ID)
	return nil
}

type JobListCmd struct {
	Refresh bool `short:"r" help:"Refresh from the remote store first."`
}

func (c *JobListCmd) Run(ctx *cli.Context) error {
	col := ctx.Jobs()
	jobs := col.LoadLocal()
	if c.Refresh {
		jobs = col.Hydrate(context.Background())
	}

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Before(jobs[j]) })

	rows := make([]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, fmt.Sprintf("%s %s  %s %s", j.Date, j.Time, j.Title, cli.Dim(j.ID)))
	}
	cli.PrintList("Jobs", rows)
	return nil
}

type JobDeleteCmd struct {
	ID    string `arg:"" help:"Job ID to delete."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *JobDeleteCmd) Run(ctx *cli.Context) error {
	col := ctx.Jobs()
	var job models.Job
	found := false
	for _, j := range col.LoadLocal() {
		if j.ID == c.ID {
			job, found = j, true
			break
		}
	}
	if !found {
		return fmt.Errorf("no job with ID %s", c.ID)
	}

	if !c.Force {
		ok, err := cli.ConfirmDelete(fmt.Sprintf("job %q", job.Title))
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
	fmt.Printf("Deleted job: %s\n", job.Title)
	return nil
}
