package models

import (
	"encoding/json"
	"net/url"
	"strconv"
)

type Recipe struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	ImageURL     string          `json:"image_url,omitempty"`
	PrepTime     int             `json:"prep_time"` // minutes
	CookTime     int             `json:"cook_time"` // minutes
	Servings     int             `json:"servings"`
	Difficulty   string          `json:"difficulty"`
	Category     string          `json:"category"`
	Cuisine      string          `json:"cuisine,omitempty"`
	Ingredients  json.RawMessage `json:"ingredients,omitempty"`
	Instructions string          `json:"instructions"`
	Calories     *float64        `json:"calories,omitempty"`
	Protein      *float64        `json:"protein,omitempty"`
	Carbs        *float64        `json:"carbs,omitempty"`
	Fat          *float64        `json:"fat,omitempty"`
	IsHalal      bool            `json:"is_halal"`
	IsVegetarian bool            `json:"is_vegetarian"`
	IsVegan      bool            `json:"is_vegan"`
	Source       string          `json:"source,omitempty"`
	SourceURL    string          `json:"source_url,omitempty"`
	Match        *float64        `json:"match_percentage,omitempty"`
	MissingItems []string        `json:"missing_items,omitempty"`
	Tips         string          `json:"tips,omitempty"`
	CreatedAt    string          `json:"created_at,omitempty"`
}

// RecipeFilter narrows the recommended-recipes listing. Zero fields are not sent.
type RecipeFilter struct {
	Halal       bool
	Vegetarian  bool
	Vegan       bool
	MaxPrepTime int
	Difficulty  string
	Limit       int
}

// Values renders the filter as query parameters.
func (f RecipeFilter) Values() url.Values {
	v := url.Values{}
	if f.Halal {
		v.Set("halal", "true")
	}
	if f.Vegetarian {
		v.Set("vegetarian", "true")
	}
	if f.Vegan {
		v.Set("vegan", "true")
	}
	if f.MaxPrepTime > 0 {
		v.Set("max_prep_time", strconv.Itoa(f.MaxPrepTime))
	}
	if f.Difficulty != "" {
		v.Set("difficulty", f.Difficulty)
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

// RecipeImport is the result of a bulk import from the external catalogue.
type RecipeImport struct {
	Count   int      `json:"count"`
	Recipes []Recipe `json:"recipes"`
}
