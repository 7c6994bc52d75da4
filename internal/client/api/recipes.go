package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

func (c *Client) ListRecipes(ctx context.Context, page, limit int) (Page[models.Recipe], error) {
	return list[models.Recipe](ctx, c, "/recipes", pageQuery(page, limit))
}

func (c *Client) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	return call[*models.Recipe](ctx, c, http.MethodGet, "/recipes/"+escape(id), nil, nil)
}

func (c *Client) SearchRecipes(ctx context.Context, query string, page, limit int) (Page[models.Recipe], error) {
	q := pageQuery(page, limit)
	q.Set("q", query)
	return list[models.Recipe](ctx, c, "/recipes/search", q)
}

// RecommendedRecipes lists recipes matched against the user's inventory.
func (c *Client) RecommendedRecipes(ctx context.Context, f models.RecipeFilter) ([]models.Recipe, error) {
	return call[[]models.Recipe](ctx, c, http.MethodGet, "/recipes/recommended", f.Values(), nil)
}

// YummyRecipes lists the external catalogue; entries are passed through raw.
func (c *Client) YummyRecipes(ctx context.Context, limit int, matchIngredients bool) ([]json.RawMessage, error) {
	q := pageQuery(0, limit)
	q.Set("match_ingredients", strconv.FormatBool(matchIngredients))
	return call[[]json.RawMessage](ctx, c, http.MethodGet, "/recipes/yummy", q, nil)
}

func (c *Client) YummyRecipe(ctx context.Context, slug string) (json.RawMessage, error) {
	return call[json.RawMessage](ctx, c, http.MethodGet, "/recipes/yummy/"+escape(slug), nil, nil)
}

func (c *Client) ImportYummyRecipe(ctx context.Context, slug string) (*models.Recipe, error) {
	return call[*models.Recipe](ctx, c, http.MethodPost, "/recipes/import/yummy/"+escape(slug), nil, nil)
}

func (c *Client) ImportYummyRecipes(ctx context.Context, limit int) (*models.RecipeImport, error) {
	return call[*models.RecipeImport](ctx, c, http.MethodPost, "/recipes/import/yummy", pageQuery(0, limit), nil)
}
