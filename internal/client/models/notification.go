package models

import "time"

type Notification struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"` // expiring_soon, expired, low_stock
	Title           string     `json:"title"`
	Message         string     `json:"message"`
	FoodID          string     `json:"food_id"`
	FoodName        string     `json:"food_name"`
	Quantity        float64    `json:"quantity"`
	Unit            string     `json:"unit"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	DaysUntilExpiry *int       `json:"days_until_expiry,omitempty"`
	Severity        string     `json:"severity"` // info, warning, critical
	CreatedAt       time.Time  `json:"created_at"`
}

// NotificationList is the payload of the notification listings.
type NotificationList struct {
	Count         int            `json:"count"`
	Notifications []Notification `json:"notifications"`
}
