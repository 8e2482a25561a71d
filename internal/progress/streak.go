// Package progress derives streaks, completion percentages, and the rolling
// history series from the task and habit collections. Everything here is a
// pure function over the in-memory collections.
package progress

import (
	"time"

	"github.com/jivana-app/jivana/internal/constants"
)

// Streak counts consecutive completed days walking backward from today.
// A still-pending today does not zero out yesterday's streak: when today is
// absent from the set the walk starts at yesterday instead. The walk stops
// before startDate and the count is 0 for an empty set.
func Streak(completionDates []string, startDate string, today time.Time) int {
	if len(completionDates) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(completionDates))
	for _, d := range completionDates {
		set[d] = struct{}{}
	}

	day := today
	if _, ok := set[day.Format(constants.DateFormat)]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	count := 0
	for {
		key := day.Format(constants.DateFormat)
		if startDate != "" && key < startDate {
			break
		}
		if _, ok := set[key]; !ok {
			break
		}
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}
