package models

import "time"

// DonationMarket is a charity or market accepting food donations. Its ID is
// numeric on the backend.
type DonationMarket struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	ImageURL    string `json:"image_url,omitempty"`
	IsActive    bool   `json:"is_active"`
}

type Donation struct {
	ID           uint            `json:"id"`
	UserID       string          `json:"user_id"`
	FoodID       string          `json:"food_id"`
	Food         *Food           `json:"food,omitempty"`
	MarketID     uint            `json:"market_id"`
	Market       *DonationMarket `json:"market,omitempty"`
	Quantity     int             `json:"quantity"`
	PointsEarned int             `json:"points_earned"`
	Status       string          `json:"status"` // pending, confirmed, completed, cancelled
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type DonationRequest struct {
	FoodID   string `json:"food_id"`
	MarketID uint   `json:"market_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}
