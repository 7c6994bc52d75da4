package models

import "time"

type Supermarket struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Location    string               `json:"location"`
	Address     string               `json:"address,omitempty"`
	PhoneNumber string               `json:"phone_number,omitempty"`
	OpenTime    string               `json:"open_time,omitempty"`
	CloseTime   string               `json:"close_time,omitempty"`
	Rating      float64              `json:"rating"`
	ImageURL    string               `json:"image_url,omitempty"`
	Products    []SupermarketProduct `json:"products,omitempty"`
}

type SupermarketProduct struct {
	ID            string  `json:"id"`
	SupermarketID string  `json:"supermarket_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Unit          string  `json:"unit"`
	Stock         int     `json:"stock"`
	ImageURL      string  `json:"image_url,omitempty"`
	Description   string  `json:"description,omitempty"`
	ExpiryDays    int     `json:"expiry_days"`
}

type PurchaseItem struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

type PurchaseRequest struct {
	SupermarketID string         `json:"supermarket_id"`
	Items         []PurchaseItem `json:"items"`
}

type Transaction struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	SupermarketID string            `json:"supermarket_id"`
	Supermarket   *Supermarket      `json:"supermarket,omitempty"`
	TotalAmount   float64           `json:"total_amount"`
	Status        string            `json:"status"`
	Items         []TransactionItem `json:"items,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

type TransactionItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}
