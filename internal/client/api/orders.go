package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

func (c *Client) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	return call[*models.Order](ctx, c, http.MethodPost, "/orders", nil, req)
}

// Orders lists the user's orders, optionally filtered by status.
func (c *Client) Orders(ctx context.Context, status string) ([]models.Order, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": {status}}
	}
	return call[[]models.Order](ctx, c, http.MethodGet, "/orders", q, nil)
}

func (c *Client) Order(ctx context.Context, id string) (*models.Order, error) {
	return call[*models.Order](ctx, c, http.MethodGet, "/orders/"+escape(id), nil, nil)
}

func (c *Client) ConfirmPickup(ctx context.Context, id string) (*models.Order, error) {
	return call[*models.Order](ctx, c, http.MethodPost, "/orders/"+escape(id)+"/pickup", nil, nil)
}
