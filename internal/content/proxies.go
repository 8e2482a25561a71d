package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jivana-app/jivana/internal/catalog"
	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/errors"
	"github.com/jivana-app/jivana/internal/models"
)

// Entries missing a required field are discarded during coercion rather
// than failing the whole refresh.

const dietSystemPrompt = `You are a nutrition assistant. Respond only with JSON.
All dishes must be strictly vegetarian. Each dish needs a short nutrition summary.`

// RefreshDiet asks for fresh per-mealtype dish lists.
func (c *Client) RefreshDiet(ctx context.Context) (map[constants.MealType][]models.DietDish, error) {
	user := `Suggest 6 vegetarian dishes for each meal. Respond as
{"breakfast": [{"dish": "...", "nutrition": "..."}], "lunch": [...], "snacks": [...], "dinner": [...]}`

	raw, err := c.complete(ctx, dietSystemPrompt, user, 0.8)
	if err != nil {
		return nil, err
	}

	var parsed map[string][]models.DietDish
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, errors.Content("unparsable diet content", err)
	}

	out := make(map[constants.MealType][]models.DietDish, len(constants.MealTypes))
	for _, meal := range constants.MealTypes {
		for _, d := range parsed[string(meal)] {
			if d.Dish == "" || d.Nutrition == "" {
				continue
			}
			out[meal] = append(out[meal], d)
		}
	}
	if len(out) == 0 {
		return nil, errors.Content("diet content missing required fields", nil)
	}
	return out, nil
}

const lifestyleSystemPrompt = `You are a wellness coach. Respond only with JSON.`

// RefreshLifestyle asks for fresh tips across the category taxonomy.
func (c *Client) RefreshLifestyle(ctx context.Context) ([]models.LifestylePractice, error) {
	user := fmt.Sprintf(`Suggest 8 lifestyle practices across these categories: %s. Respond as
{"tips": [{"category": "...", "title": "...", "description": "...", "benefits": ["..."]}]}`,
		strings.Join(catalog.LifestyleCategories, ", "))

	raw, err := c.complete(ctx, lifestyleSystemPrompt, user, 0.8)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Tips []models.LifestylePractice `json:"tips"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, errors.Content("unparsable lifestyle content", err)
	}

	var out []models.LifestylePractice
	for _, tip := range parsed.Tips {
		if tip.Title == "" || tip.Category == "" {
			continue
		}
		out = append(out, tip)
	}
	if len(out) == 0 {
		return nil, errors.Content("lifestyle content missing required fields", nil)
	}
	return out, nil
}

const wordSystemPrompt = `You are an English vocabulary tutor. Respond only with JSON.`

// RefreshWord asks for a single uncommon vocabulary entry.
func (c *Client) RefreshWord(ctx context.Context) (models.Word, error) {
	user := `Suggest one uncommon but useful English word. Respond as
{"word": "...", "phonetic": "...", "meaning": "...", "example": "..."}`

	raw, err := c.complete(ctx, wordSystemPrompt, user, 1.0)
	if err != nil {
		return models.Word{}, err
	}

	var w models.Word
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.Word{}, errors.Content("unparsable word content", err)
	}
	if w.Word == "" || w.Meaning == "" {
		return models.Word{}, errors.Content("word content missing required fields", nil)
	}
	return w, nil
}

const wisdomSystemPrompt = `You are a curator of mindfulness wisdom. Respond only with JSON.`

// RefreshWisdom asks for a single quote with attribution.
func (c *Client) RefreshWisdom(ctx context.Context) (models.WisdomQuote, error) {
	user := `Share one short quote about mindful living. Respond as
{"quote": "...", "author": "..."}`

	raw, err := c.complete(ctx, wisdomSystemPrompt, user, 1.0)
	if err != nil {
		return models.WisdomQuote{}, err
	}

	var q models.WisdomQuote
	if err := json.Unmarshal(raw, &q); err != nil {
		return models.WisdomQuote{}, errors.Content("unparsable wisdom content", err)
	}
	if q.Quote == "" {
		return models.WisdomQuote{}, errors.Content("wisdom content missing required fields", nil)
	}
	return q, nil
}

// Recipe asks for preparation steps for a specific dish.
func (c *Client) Recipe(ctx context.Context, dish string) (models.Recipe, error) {
	user := fmt.Sprintf(`Give a vegetarian recipe for %q. Respond as
{"dish": "...", "serves": 2, "prepTime": "...", "cookTime": "...", "ingredients": ["..."], "steps": ["..."]}`, dish)

	raw, err := c.complete(ctx, dietSystemPrompt, user, 0.5)
	if err != nil {
		return models.Recipe{}, err
	}

	var r models.Recipe
	if err := json.Unmarshal(raw, &r); err != nil {
		return models.Recipe{}, errors.Content("unparsable recipe content", err)
	}
	if r.Dish == "" || len(r.Steps) == 0 {
		return models.Recipe{}, errors.Content("recipe content missing required fields", nil)
	}
	return r, nil
}
