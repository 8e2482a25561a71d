// Package digest builds the daily notification text from the enabled
// content modules.
package digest

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jivana-app/jivana/internal/catalog"
	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/models"
)

// Fallback is returned when no enabled module produces a clause.
const Fallback = "Your mindful journey awaits!"

const delimiter = ", "

// Build assembles one clause per enabled module. Task and habit counts are
// omitted when zero; the wisdom, diet, word and lifestyle picks are always
// included when their module is on. The rng is injected so callers control
// determinism.
func Build(settings models.NotificationSettings, tasks []models.Task, habits []models.Habit, today time.Time, rng *rand.Rand) string {
	var clauses []string
	mods := settings.IncludeModules

	if mods.Tasks {
		todo := 0
		for _, t := range tasks {
			if t.Status == constants.TaskTodo {
				todo++
			}
		}
		if todo > 0 {
			clauses = append(clauses, fmt.Sprintf("%d %s pending", todo, plural(todo, "task", "tasks")))
		}
	}

	if mods.Habits {
		date := today.Format(constants.DateFormat)
		remaining := 0
		for _, h := range habits {
			if !h.CompletedOn(date) {
				remaining++
			}
		}
		if remaining > 0 {
			clauses = append(clauses, fmt.Sprintf("%d %s to complete", remaining, plural(remaining, "habit", "habits")))
		}
	}

	if mods.Wisdom && len(catalog.WisdomQuotes) > 0 {
		q := catalog.WisdomQuotes[rng.Intn(len(catalog.WisdomQuotes))]
		clauses = append(clauses, fmt.Sprintf("wisdom: %q", q.Quote))
	}

	if mods.Diet {
		meal := constants.MealTypes[rng.Intn(len(constants.MealTypes))]
		if dishes := catalog.DietRecommendations[meal]; len(dishes) > 0 {
			d := dishes[rng.Intn(len(dishes))]
			clauses = append(clauses, fmt.Sprintf("%s idea: %s", meal, d.Dish))
		}
	}

	if mods.Words && len(catalog.VocabularyWords) > 0 {
		w := catalog.VocabularyWords[rng.Intn(len(catalog.VocabularyWords))]
		clauses = append(clauses, fmt.Sprintf("word of the day: %s (%s)", w.Word, w.Meaning))
	}

	if mods.Lifestyle && len(catalog.LifestyleTips) > 0 {
		tip := catalog.LifestyleTips[rng.Intn(len(catalog.LifestyleTips))]
		clauses = append(clauses, "tip: "+tip.Title)
	}

	if len(clauses) == 0 {
		return Fallback
	}
	return strings.Join(clauses, delimiter)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
