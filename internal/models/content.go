package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jivana-app/jivana/internal/constants"
)

// Word is a vocabulary entry. Static catalog entries are never synced; only
// user-added words (IsUserAdded) flow to the remote store.
type Word struct {
	ID          string `json:"id"`
	Word        string `json:"word"`
	Phonetic    string `json:"phonetic,omitempty"`
	Meaning     string `json:"meaning"`
	Example     string `json:"example,omitempty"`
	IsUserAdded bool   `json:"isUserAdded,omitempty"`
}

func (w Word) GetID() string { return w.ID }

func (w Word) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Word, validation.Required),
		validation.Field(&w.Meaning, validation.Required),
	)
}

// LifestylePractice is a lifestyle tip, either from the static catalog, an
// AI-refreshed list, or user-contributed (IsUserAdded).
type LifestylePractice struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits,omitempty"`
	IsUserAdded bool     `json:"isUserAdded,omitempty"`
}

func (l LifestylePractice) GetID() string { return l.ID }

func (l LifestylePractice) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Title, validation.Required),
		validation.Field(&l.Category, validation.Required),
		validation.Field(&l.Description, validation.Required),
	)
}

// WisdomQuote is a quote/author pair from the static catalog or the content
// service.
type WisdomQuote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// DietDish is a single dish recommendation within a meal type.
type DietDish struct {
	Dish      string `json:"dish"`
	Nutrition string `json:"nutrition"`
}

// MealRecommendation is the day's chosen dish.
type MealRecommendation struct {
	MealType  constants.MealType `json:"mealType"`
	Dish      string             `json:"dish"`
	Nutrition string             `json:"nutrition"`
	Date      string             `json:"date"` // YYYY-MM-DD of the pick
}

// Recipe holds preparation steps for a dish, fetched on demand.
type Recipe struct {
	Dish        string   `json:"dish"`
	Serves      int      `json:"serves"`
	PrepTime    string   `json:"prepTime"`
	CookTime    string   `json:"cookTime"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}
