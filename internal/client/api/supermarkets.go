package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

func (c *Client) Supermarkets(ctx context.Context) ([]models.Supermarket, error) {
	return call[[]models.Supermarket](ctx, c, http.MethodGet, "/supermarkets", nil, nil)
}

func (c *Client) Supermarket(ctx context.Context, id string) (*models.Supermarket, error) {
	return call[*models.Supermarket](ctx, c, http.MethodGet, "/supermarkets/"+escape(id), nil, nil)
}

// SupermarketProducts lists a store's products, optionally by category.
func (c *Client) SupermarketProducts(ctx context.Context, id, category string) ([]models.SupermarketProduct, error) {
	var q url.Values
	if category != "" {
		q = url.Values{"category": {category}}
	}
	return call[[]models.SupermarketProduct](ctx, c, http.MethodGet, "/supermarkets/"+escape(id)+"/products", q, nil)
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]models.SupermarketProduct, error) {
	q := url.Values{"q": {query}}
	return call[[]models.SupermarketProduct](ctx, c, http.MethodGet, "/supermarkets/products/search", q, nil)
}

// Purchase buys products; the backend adds them to the user's inventory.
func (c *Client) Purchase(ctx context.Context, req models.PurchaseRequest) (*models.Transaction, error) {
	return call[*models.Transaction](ctx, c, http.MethodPost, "/supermarkets/purchase", nil, req)
}

func (c *Client) Transactions(ctx context.Context, page, limit int) (Page[models.Transaction], error) {
	return list[models.Transaction](ctx, c, "/supermarkets/transactions", pageQuery(page, limit))
}

func (c *Client) Transaction(ctx context.Context, id string) (*models.Transaction, error) {
	return call[*models.Transaction](ctx, c, http.MethodGet, "/supermarkets/transactions/"+escape(id), nil, nil)
}
