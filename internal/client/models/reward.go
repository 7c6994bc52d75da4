package models

import "time"

type UserPoints struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	TotalPoints     int       `json:"total_points"`
	AvailablePoints int       `json:"available_points"`
	UsedPoints      int       `json:"used_points"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PointTransaction struct {
	ID            string    `json:"id"`
	UserPointsID  string    `json:"user_points_id"`
	Type          string    `json:"type"` // earn, spend, expired
	Amount        int       `json:"amount"`
	Source        string    `json:"source"`
	Description   string    `json:"description"`
	ReferenceID   *string   `json:"reference_id,omitempty"`
	ReferenceType string    `json:"reference_type,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type Voucher struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	DiscountType    string    `json:"discount_type"` // percentage, fixed
	DiscountValue   float64   `json:"discount_value"`
	MinPurchase     float64   `json:"min_purchase"`
	MaxDiscount     *float64  `json:"max_discount,omitempty"`
	PointsRequired  int       `json:"points_required"`
	StoreName       string    `json:"store_name"`
	StoreCategory   string    `json:"store_category,omitempty"`
	TotalStock      int       `json:"total_stock"`
	RemainingStock  int       `json:"remaining_stock"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidUntil      time.Time `json:"valid_until"`
	IsActive        bool      `json:"is_active"`
	TermsConditions string    `json:"terms_conditions,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
}

type VoucherRedemption struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	VoucherID      string     `json:"voucher_id"`
	Voucher        *Voucher   `json:"voucher,omitempty"`
	PointsSpent    int        `json:"points_spent"`
	RedemptionCode string     `json:"redemption_code"`
	Status         string     `json:"status"` // active, used, expired
	RedeemedAt     time.Time  `json:"redeemed_at"`
	UsedAt         *time.Time `json:"used_at,omitempty"`
	ExpiresAt      time.Time  `json:"expires_at"`
}
