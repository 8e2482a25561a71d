package progress

import (
	"time"

	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/models"
)

// Two habit-completion definitions exist and must stay distinct: the stats
// view counts a habit as complete if it was ever completed, the home view
// only if it was completed today. Unifying them would change observed
// percentages.

// OverallProgress is the stats-view percentage: completed tasks and
// ever-completed habits, averaged over whichever of the two ratios is
// defined, scaled to 0-100.
func OverallProgress(tasks []models.Task, habits []models.Habit) float64 {
	taskRatio, taskDefined := taskCompletionRatio(tasks)

	habitRatio, habitDefined := 0.0, false
	if len(habits) > 0 {
		done := 0
		for _, h := range habits {
			if len(h.CompletionDates) > 0 {
				done++
			}
		}
		habitRatio, habitDefined = float64(done)/float64(len(habits)), true
	}

	return combine(taskRatio, taskDefined, habitRatio, habitDefined)
}

// TodayProgress is the home-view percentage: completed tasks and habits
// completed today.
func TodayProgress(tasks []models.Task, habits []models.Habit, today time.Time) float64 {
	taskRatio, taskDefined := taskCompletionRatio(tasks)

	habitRatio, habitDefined := 0.0, false
	if len(habits) > 0 {
		date := today.Format(constants.DateFormat)
		done := 0
		for _, h := range habits {
			if h.CompletedOn(date) {
				done++
			}
		}
		habitRatio, habitDefined = float64(done)/float64(len(habits)), true
	}

	return combine(taskRatio, taskDefined, habitRatio, habitDefined)
}

// TaskCompletion is the percentage of completed tasks, 0 when there are none.
func TaskCompletion(tasks []models.Task) float64 {
	ratio, defined := taskCompletionRatio(tasks)
	if !defined {
		return 0
	}
	return ratio * 100
}

func taskCompletionRatio(tasks []models.Task) (float64, bool) {
	if len(tasks) == 0 {
		return 0, false
	}
	done := 0
	for _, t := range tasks {
		if t.Status == constants.TaskCompleted {
			done++
		}
	}
	return float64(done) / float64(len(tasks)), true
}

// combine averages only the defined ratios; 0 when neither is defined.
func combine(taskRatio float64, taskDefined bool, habitRatio float64, habitDefined bool) float64 {
	switch {
	case taskDefined && habitDefined:
		return (taskRatio + habitRatio) / 2 * 100
	case taskDefined:
		return taskRatio * 100
	case habitDefined:
		return habitRatio * 100
	default:
		return 0
	}
}
