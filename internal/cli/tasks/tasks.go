// Package tasks implements the task commands.
package tasks

import (
	"context"
	"fmt"

	"github.com/jivana-app/jivana/internal/cli"
	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/models"
)

type TaskAddCmd struct {
	Title    string `arg:"" help:"Task title."`
	Priority string `short:"p" help:"Priority (high|medium|low)." default:"medium" enum:"high,medium,low"`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	task := models.Task{
		Title:    c.Title,
		Priority: parsePriority(c.Priority),
		Status:   constants.TaskTodo,
	}
	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	created, err := ctx.Tasks().Create(context.Background(), task)
	if err != nil {
		return err
	}
	ctx.SyncStats(context.Background())

	fmt.Printf("Added task: %s (ID: %s)\n", created.Title, created.ID)
	return nil
}

type TaskListCmd struct {
	Refresh bool `short:"r" help:"Refresh from the remote store first."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	col := ctx.Tasks()
	tasks := col.LoadLocal()
	if c.Refresh {
		tasks = col.Hydrate(context.Background())
	}

	rows := make([]string, 0, len(tasks))
	for _, t := range tasks {
		mark := "[ ]"
		if t.Status == constants.TaskCompleted {
			mark = "[x]"
		}
		rows = append(rows, fmt.Sprintf("%s %s %s %s", mark, t.Title, cli.Dim("("+string(t.Priority)+")"), cli.Dim(t.ID)))
	}
	cli.PrintList("Tasks", rows)
	return nil
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID to complete."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	return setStatus(ctx, c.ID, constants.TaskCompleted, "Completed")
}

type TaskReopenCmd struct {
	ID string `arg:"" help:"Task ID to reopen."`
}

func (c *TaskReopenCmd) Run(ctx *cli.Context) error {
	return setStatus(ctx, c.ID, constants.TaskTodo, "Reopened")
}

func setStatus(ctx *cli.Context, id string, status constants.TaskStatus, verb string) error {
	col := ctx.Tasks()
	task, ok := findTask(col.LoadLocal(), id)
	if !ok {
		return fmt.Errorf("no task with ID %s", id)
	}

	task.Status = status
	if err := col.Update(context.Background(), task); err != nil {
		return err
	}
	ctx.SyncStats(context.Background())

	fmt.Printf("%s task: %s\n", verb, task.Title)
	return nil
}

type TaskEditCmd struct {
	ID       string  `arg:"" help:"Task ID to edit."`
	Title    *string `help:"New title."`
	Priority *string `help:"New priority (high|medium|low)." enum:"high,medium,low"`
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	col := ctx.Tasks()
	task, ok := findTask(col.LoadLocal(), c.ID)
	if !ok {
		return fmt.Errorf("no task with ID %s", c.ID)
	}

	if c.Title != nil {
		task.Title = *c.Title
	}
	if c.Priority != nil {
		task.Priority = parsePriority(*c.Priority)
	}
	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	if err := col.Update(context.Background(), task); err != nil {
		return err
	}
	fmt.Printf("Updated task: %s\n", task.Title)
	return nil
}

type TaskDeleteCmd struct {
	ID    string `arg:"" help:"Task ID to delete."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	col := ctx.Tasks()
	task, ok := findTask(col.LoadLocal(), c.ID)
	if !ok {
		return fmt.Errorf("no task with ID %s", c.ID)
	}

	if !c.Force {
		ok, err := cli.ConfirmDelete(fmt.Sprintf("task %q", task.Title))
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

	fmt.Printf("Deleted task: %s\n", task.Title)
	return nil
}

func parsePriority(s string) constants.TaskPriority {
	switch s {
	case "high":
		return constants.PriorityHigh
	case "low":
		return constants.PriorityLow
	default:
		return constants.PriorityMedium
	}
}

func findTask(tasks []models.Task, id string) (models.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}
