package models

import "time"

type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	SupermarketID   string      `json:"supermarket_id"`
	SupermarketName string      `json:"supermarket_name"`
	OrderNumber     string      `json:"order_number"`
	Status          string      `json:"status"` // pending_pickup, completed, cancelled
	TotalAmount     float64     `json:"total_amount"`
	DiscountAmount  float64     `json:"discount_amount"`
	FinalAmount     float64     `json:"final_amount"`
	VoucherCode     *string     `json:"voucher_code,omitempty"`
	VoucherTitle    *string     `json:"voucher_title,omitempty"`
	RedemptionID    *string     `json:"redemption_id,omitempty"`
	Items           []OrderItem `json:"items"`
	PickedUpAt      *time.Time  `json:"picked_up_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

type OrderRequest struct {
	SupermarketID   string      `json:"supermarket_id"`
	SupermarketName string      `json:"supermarket_name"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	DiscountAmount  float64     `json:"discount_amount"`
	FinalAmount     float64     `json:"final_amount"`
	VoucherCode     *string     `json:"voucher_code,omitempty"`
	VoucherTitle    *string     `json:"voucher_title,omitempty"`
	RedemptionID    *string     `json:"redemption_id,omitempty"`
}

// NewOrderRequest builds an order from line items, computing subtotals and
// totals. discount is clamped so the final amount never goes negative.
func NewOrderRequest(supermarketID, supermarketName string, items []OrderItem, discount float64) OrderRequest {
	req := OrderRequest{
		SupermarketID:   supermarketID,
		SupermarketName: supermarketName,
		Items:           make([]OrderItem, len(items)),
	}
	for i, it := range items {
		it.Subtotal = float64(it.Quantity) * it.Price
		req.Items[i] = it
		req.TotalAmount += it.Subtotal
	}
	if discount < 0 {
		discount = 0
	}
	req.DiscountAmount = min(discount, req.TotalAmount)
	req.FinalAmount = req.TotalAmount - req.DiscountAmount
	return req
}
