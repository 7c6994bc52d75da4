package models

import "time"

// CartItem is a shopping-list entry.
type CartItem struct {
	ID               string     `json:"id,omitempty"`
	UserID           string     `json:"user_id,omitempty"`
	ItemName         string     `json:"item_name"`
	Quantity         float64    `json:"quantity"`
	Unit             string     `json:"unit"`
	Category         string     `json:"category,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	IsPurchased      bool       `json:"is_purchased"`
	RecommendedStore string     `json:"recommended_store,omitempty"`
	EstimatedPrice   float64    `json:"estimated_price,omitempty"`
	PurchasedAt      *time.Time `json:"purchased_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at,omitzero"`
}
