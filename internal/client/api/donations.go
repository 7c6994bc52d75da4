package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

func (c *Client) DonationMarkets(ctx context.Context) ([]models.DonationMarket, error) {
	return call[[]models.DonationMarket](ctx, c, http.MethodGet, "/donations/markets", nil, nil)
}

func (c *Client) DonationMarket(ctx context.Context, id string) (*models.DonationMarket, error) {
	return call[*models.DonationMarket](ctx, c, http.MethodGet, "/donations/markets/"+escape(id), nil, nil)
}

func (c *Client) CreateDonation(ctx context.Context, req models.DonationRequest) (*models.Donation, error) {
	return call[*models.Donation](ctx, c, http.MethodPost, "/donations", nil, req)
}

func (c *Client) MyDonations(ctx context.Context) ([]models.Donation, error) {
	return call[[]models.Donation](ctx, c, http.MethodGet, "/donations/my-donations", nil, nil)
}

func (c *Client) DonationStats(ctx context.Context) (json.RawMessage, error) {
	return call[json.RawMessage](ctx, c, http.MethodGet, "/donations/stats", nil, nil)
}
