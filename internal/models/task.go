package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jivana-app/jivana/internal/constants"
)

// Task is a one-off to-do item. Its id is a temporary client token until the
// remote store acknowledges the insert, after which it carries the
// store-assigned id.
type Task struct {
	ID       string                 `json:"id"`
	Title    string                 `json:"title"`
	Priority constants.TaskPriority `json:"priority"`
	Status   constants.TaskStatus   `json:"status"`
}

func (t Task) GetID() string { return t.ID }

func (t Task) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Title, validation.Required),
		validation.Field(&t.Priority, validation.Required, validation.In(
			constants.PriorityHigh, constants.PriorityMedium, constants.PriorityLow)),
		validation.Field(&t.Status, validation.Required, validation.In(
			constants.TaskTodo, constants.TaskCompleted)),
	)
}

// Job is a scheduled work item, ordered by (date, time) ascending.
type Job struct {
	ID    string `json:"id"`
	Date  string `json:"date"` // YYYY-MM-DD
	Time  string `json:"time"` // HH:MM
	Title string `json:"title"`
}

func (j Job) GetID() string { return j.ID }

func (j Job) Validate() error {
	return validation.ValidateStruct(&j,
		validation.Field(&j.Title, validation.Required),
		validation.Field(&j.Date, validation.Required, validation.Date(constants.DateFormat)),
		validation.Field(&j.Time, validation.Required, validation.Date(constants.TimeFormat)),
	)
}

// Before reports whether j is scheduled before other.
func (j Job) Before(other Job) bool {
	if j.Date != other.Date {
		return j.Date < other.Date
	}
	return j.Time < other.Time
}
