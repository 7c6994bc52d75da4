package models

import "time"

// Food is an item in the household inventory.
type Food struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Quantity        float64    `json:"quantity"`
	InitialQuantity float64    `json:"initial_quantity"`
	Unit            string     `json:"unit"`
	Location        string     `json:"location"` // upper, middle, lower, freezer
	ImageURL        string     `json:"image_url,omitempty"`
	Barcode         string     `json:"barcode,omitempty"`
	PurchaseDate    *time.Time `json:"purchase_date,omitempty"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	IsHalal         *bool      `json:"is_halal,omitempty"`
	Calories        *float64   `json:"calories,omitempty"`
	Protein         *float64   `json:"protein,omitempty"`
	Carbs           *float64   `json:"carbs,omitempty"`
	Fat             *float64   `json:"fat,omitempty"`
	AddMethod       string     `json:"add_method,omitempty"` // manual, scan, barcode
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// DaysUntilExpiry returns whole days left before ExpiryDate, relative to now.
// ok is false when the item has no expiry date.
func (f Food) DaysUntilExpiry(now time.Time) (days int, ok bool) {
	if f.ExpiryDate == nil {
		return 0, false
	}
	return int(f.ExpiryDate.Sub(now).Hours() / 24), true
}

// FoodInput is the body of create, update and add-scanned requests. Only
// non-nil fields are sent.
type FoodInput struct {
	Name         *string    `json:"name,omitempty"`
	Category     *string    `json:"category,omitempty"`
	Quantity     *float64   `json:"quantity,omitempty"`
	Unit         *string    `json:"unit,omitempty"`
	Location     *string    `json:"location,omitempty"`
	ImageURL     *string    `json:"image_url,omitempty"`
	Barcode      *string    `json:"barcode,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	IsHalal      *bool      `json:"is_halal,omitempty"`
	Calories     *float64   `json:"calories,omitempty"`
	Protein      *float64   `json:"protein,omitempty"`
	Carbs        *float64   `json:"carbs,omitempty"`
	Fat          *float64   `json:"fat,omitempty"`
}

// ScanFoodRequest submits a photo for recognition. The image travels inline,
// base64-encoded; ImageURL is accepted by the backend as an alternative.
type ScanFoodRequest struct {
	ImageBase64 string `json:"image_base64,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Location    string `json:"location"`
}

// ScanResult is the backend's recognition proposal. Nothing is saved until
// the client posts it back through add-scanned.
type ScanResult struct {
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	ImageURL     string     `json:"image_url"`
	PurchaseDate time.Time  `json:"purchase_date"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	Location     string     `json:"location"`
	IsHalal      *bool      `json:"is_halal"`
	Calories     *float64   `json:"calories"`
	Protein      *float64   `json:"protein"`
	Carbs        *float64   `json:"carbs"`
	Fat          *float64   `json:"fat"`
	Confidence   float64    `json:"confidence"`
}

// Input converts a scan proposal into an add-scanned body, with quantity and
// unit supplied by the user.
func (s ScanResult) Input(quantity float64, unit string) FoodInput {
	in := FoodInput{
		Name:       &s.Name,
		Category:   &s.Category,
		Quantity:   &quantity,
		Unit:       &unit,
		Location:   &s.Location,
		ExpiryDate: s.ExpiryDate,
		IsHalal:    s.IsHalal,
		Calories:   s.Calories,
		Protein:    s.Protein,
		Carbs:      s.Carbs,
		Fat:        s.Fat,
	}
	if s.ImageURL != "" {
		in.ImageURL = &s.ImageURL
	}
	if !s.PurchaseDate.IsZero() {
		in.PurchaseDate = &s.PurchaseDate
	}
	return in
}

type DuplicateCheck struct {
	HasDuplicates bool   `json:"has_duplicates"`
	Duplicates    []Food `json:"duplicates"`
	Count         int    `json:"count"`
}

type Statistics struct {
	TotalItems int            `json:"total_items"`
	NearExpiry int            `json:"near_expiry"`
	Expired    int            `json:"expired"`
	ByCategory map[string]int `json:"by_category"`
	ByLocation map[string]int `json:"by_location"`
}
