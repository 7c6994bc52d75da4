package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

func (c *Client) Cart(ctx context.Context) ([]models.CartItem, error) {
	return call[[]models.CartItem](ctx, c, http.MethodGet, "/cart", nil, nil)
}

func (c *Client) AddToCart(ctx context.Context, item models.CartItem) (*models.CartItem, error) {
	return call[*models.CartItem](ctx, c, http.MethodPost, "/cart", nil, item)
}

func (c *Client) UpdateCartItem(ctx context.Context, id string, item models.CartItem) (*models.CartItem, error) {
	return call[*models.CartItem](ctx, c, http.MethodPut, "/cart/"+escape(id), nil, item)
}

func (c *Client) DeleteCartItem(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/cart/"+escape(id), nil, nil)
}

func (c *Client) MarkPurchased(ctx context.Context, id string) (*models.CartItem, error) {
	return call[*models.CartItem](ctx, c, http.MethodPost, "/cart/"+escape(id)+"/purchase", nil, nil)
}

func (c *Client) PurchaseHistory(ctx context.Context, page, limit int) (Page[models.CartItem], error) {
	return list[models.CartItem](ctx, c, "/cart/history", pageQuery(page, limit))
}
