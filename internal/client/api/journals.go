package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

func (c *Client) ListJournals(ctx context.Context, page, limit int) (Page[models.FoodJournal], error) {
	return list[models.FoodJournal](ctx, c, "/journals", pageQuery(page, limit))
}

func (c *Client) CreateJournal(ctx context.Context, j models.FoodJournal) (*models.FoodJournal, error) {
	return call[*models.FoodJournal](ctx, c, http.MethodPost, "/journals", nil, j)
}

func (c *Client) UpdateJournal(ctx context.Context, id string, j models.FoodJournal) (*models.FoodJournal, error) {
	return call[*models.FoodJournal](ctx, c, http.MethodPut, "/journals/"+escape(id), nil, j)
}

func (c *Client) DeleteJournal(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/journals/"+escape(id), nil, nil)
}

// DailyStats returns totals for date (YYYY-MM-DD).
func (c *Client) DailyStats(ctx context.Context, date string) (*models.DailyStats, error) {
	q := url.Values{"date": {date}}
	return call[*models.DailyStats](ctx, c, http.MethodGet, "/journals/daily-stats", q, nil)
}

func (c *Client) WeeklyStats(ctx context.Context) ([]models.DailyStats, error) {
	return call[[]models.DailyStats](ctx, c, http.MethodGet, "/journals/weekly-stats", nil, nil)
}

// NutritionAnalysis returns the backend's free-form analysis untouched.
func (c *Client) NutritionAnalysis(ctx context.Context) (json.RawMessage, error) {
	return call[json.RawMessage](ctx, c, http.MethodGet, "/journals/ai-nutrition-analysis", nil, nil)
}
