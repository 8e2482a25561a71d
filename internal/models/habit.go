package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jivana-app/jivana/internal/constants"
)

// Habit tracks a recurring practice. CompletionDates is local-only history:
// the remote store carries only the derived streak and status, so a hydrate
// must preserve the local dates for matching ids.
type Habit struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Description     string                `json:"description"`
	TargetFrequency string                `json:"targetFrequency"` // e.g. "7 days/week"
	StartDate       string                `json:"startDate"`       // YYYY-MM-DD
	CompletionDates []string              `json:"completionDates"` // sorted, unique YYYY-MM-DD
	Streak          int                   `json:"streak"`          // derived, recomputable
	Status          constants.HabitStatus `json:"status"`
}

func (h Habit) GetID() string { return h.ID }

func (h Habit) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Name, validation.Required),
		validation.Field(&h.StartDate, validation.Required, validation.Date(constants.DateFormat)),
	)
}

// CompletedOn reports whether the habit has a completion recorded for the
// given date.
func (h Habit) CompletedOn(date string) bool {
	for _, d := range h.CompletionDates {
		if d == date {
			return true
		}
	}
	return false
}

// ToggleCompletion adds the date if absent, removes it if present, keeping
// CompletionDates sorted and duplicate-free. Returns whether the date is now
// present.
func (h *Habit) ToggleCompletion(date string) bool {
	for i, d := range h.CompletionDates {
		if d == date {
			h.CompletionDates = append(h.CompletionDates[:i], h.CompletionDates[i+1:]...)
			return false
		}
	}
	// Insert in sorted position; dates are ISO strings so lexical order is
	// chronological order.
	i := 0
	for i < len(h.CompletionDates) && h.CompletionDates[i] < date {
		i++
	}
	h.CompletionDates = append(h.CompletionDates, "")
	copy(h.CompletionDates[i+1:], h.CompletionDates[i:])
	h.CompletionDates[i] = date
	return true
}
