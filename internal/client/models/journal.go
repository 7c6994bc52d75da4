package models

import "time"

// FoodJournal is one consumption entry.
type FoodJournal struct {
	ID         string    `json:"id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	FoodID     string    `json:"food_id,omitempty"`
	FoodName   string    `json:"food_name"`
	MealType   string    `json:"meal_type"`
	Portion    float64   `json:"portion"`
	Unit       string    `json:"unit"`
	Calories   *float64  `json:"calories,omitempty"`
	Protein    *float64  `json:"protein,omitempty"`
	Carbs      *float64  `json:"carbs,omitempty"`
	Fat        *float64  `json:"fat,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	ConsumedAt time.Time `json:"consumed_at"`
	CreatedAt  time.Time `json:"created_at,omitzero"`
}

type DailyStats struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
	MealCount     int     `json:"meal_count"`
}
