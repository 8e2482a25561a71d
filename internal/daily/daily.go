// Package daily serves the per-day content picks. A pick is cached in the
// local mirror keyed by calendar date and rerolled only when the stored
// date differs from today, so repeated reads within a day are stable.
package daily

import (
	"math/rand"

	"github.com/jivana-app/jivana/internal/catalog"
	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/logger"
	"github.com/jivana-app/jivana/internal/models"
	"github.com/jivana-app/jivana/internal/storage"
)

type cached[T any] struct {
	Date string `json:"date"`
	Pick T      `json:"pick"`
}

func pick[T any](store storage.Provider, key, today string, choose func() T) T {
	c := storage.GetItem(store, key, cached[T]{})
	if c.Date == today {
		return c.Pick
	}
	p := choose()
	if err := storage.SetItem(store, key, cached[T]{Date: today, Pick: p}); err != nil {
		logger.Warn("Failed to cache daily pick", "key", key, "error", err)
	}
	return p
}

// Word returns today's vocabulary pick from the built-in list plus any
// user-added words.
func Word(store storage.Provider, today string, userWords []models.Word, rng *rand.Rand) models.Word {
	return pick(store, constants.KeyDailyWord, today, func() models.Word {
		pool := append(append([]models.Word(nil), catalog.VocabularyWords...), userWords...)
		return pool[rng.Intn(len(pool))]
	})
}

// Wisdom returns today's quote pick.
func Wisdom(store storage.Provider, today string, rng *rand.Rand) models.WisdomQuote {
	return pick(store, constants.KeyDailyWisdom, today, func() models.WisdomQuote {
		return catalog.WisdomQuotes[rng.Intn(len(catalog.WisdomQuotes))]
	})
}

// Diet returns today's meal plan: one dish per meal type, drawn from the
// refreshed lists when present and the built-in tables otherwise.
func Diet(store storage.Provider, today string, rng *rand.Rand) []models.MealRecommendation {
	return pick(store, constants.KeyDailyDiet, today, func() []models.MealRecommendation {
		lists := storage.GetItem(store, constants.KeyDietLists, catalog.DietRecommendations)
		out := make([]models.MealRecommendation, 0, len(constants.MealTypes))
		for _, meal := range constants.MealTypes {
			dishes := lists[meal]
			if len(dishes) == 0 {
				dishes = catalog.DietRecommendations[meal]
			}
			if len(dishes) == 0 {
				continue
			}
			d := dishes[rng.Intn(len(dishes))]
			out = append(out, models.MealRecommendation{
				MealType:  meal,
				Dish:      d.Dish,
				Nutrition: d.Nutrition,
				Date:      today,
			})
		}
		return out
	})
}
