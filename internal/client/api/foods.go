package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

func (c *Client) ListFoods(ctx context.Context, page, limit int) (Page[models.Food], error) {
	return list[models.Food](ctx, c, "/foods", pageQuery(page, limit))
}

func (c *Client) GetFood(ctx context.Context, id string) (*models.Food, error) {
	return call[*models.Food](ctx, c, http.MethodGet, "/foods/"+escape(id), nil, nil)
}

func (c *Client) CreateFood(ctx context.Context, in models.FoodInput) (*models.Food, error) {
	return call[*models.Food](ctx, c, http.MethodPost, "/foods", nil, in)
}

func (c *Client) UpdateFood(ctx context.Context, id string, in models.FoodInput) (*models.Food, error) {
	return call[*models.Food](ctx, c, http.MethodPut, "/foods/"+escape(id), nil, in)
}

func (c *Client) DeleteFood(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/foods/"+escape(id), nil, nil)
}

// UpdateStock adds quantity to the stock of an existing item.
func (c *Client) UpdateStock(ctx context.Context, id string, quantity float64) (*models.Food, error) {
	body := map[string]float64{"quantity": quantity}
	return call[*models.Food](ctx, c, http.MethodPatch, "/foods/"+escape(id)+"/stock", nil, body)
}

// ScanFood asks the backend to recognise a photo. Nothing is stored; pass
// the result to AddScannedFood to keep it.
func (c *Client) ScanFood(ctx context.Context, req models.ScanFoodRequest) (*models.ScanResult, error) {
	return call[*models.ScanResult](ctx, c, http.MethodPost, "/foods/scan", nil, req)
}

func (c *Client) AddScannedFood(ctx context.Context, in models.FoodInput) (*models.Food, error) {
	return call[*models.Food](ctx, c, http.MethodPost, "/foods/add-scanned", nil, in)
}

func (c *Client) CheckDuplicate(ctx context.Context, name string) (*models.DuplicateCheck, error) {
	q := url.Values{"name": {name}}
	return call[*models.DuplicateCheck](ctx, c, http.MethodGet, "/foods/check-duplicate", q, nil)
}

// ExpiringFoods lists items expiring within days.
func (c *Client) ExpiringFoods(ctx context.Context, days int) ([]models.Food, error) {
	q := url.Values{"days": {strconv.Itoa(days)}}
	return call[[]models.Food](ctx, c, http.MethodGet, "/foods/expiring", q, nil)
}

func (c *Client) FoodStatistics(ctx context.Context) (*models.Statistics, error) {
	return call[*models.Statistics](ctx, c, http.MethodGet, "/foods/statistics", nil, nil)
}

func (c *Client) DonatableFoods(ctx context.Context) ([]models.Food, error) {
	return call[[]models.Food](ctx, c, http.MethodGet, "/foods/donatable", nil, nil)
}
