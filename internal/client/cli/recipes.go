package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

const recommendLimit = 10

// Recipes searches when given a query, otherwise shows recommendations based
// on what is in storage.
func (a *App) Recipes(ctx context.Context, args []string) error {
	var recipes []models.Recipe
	if len(args) > 0 {
		res, err := a.api.SearchRecipes(ctx, strings.Join(args, " "), 1, pageSize)
		if err != nil {
			return err
		}
		recipes = res.Items
	} else {
		res, err := a.api.RecommendedRecipes(ctx, models.RecipeFilter{Limit: recommendLimit})
		if err != nil {
			return err
		}
		recipes = res
	}

	if len(recipes) == 0 {
		a.printf("No recipes found.\n")
		return nil
	}
	for _, r := range recipes {
		line := fmt.Sprintf("%s (%s, %d min)", r.Title, r.Difficulty, r.PrepTime+r.CookTime)
		if r.Match != nil {
			line += fmt.Sprintf(" match %.0f%%", *r.Match)
		}
		a.printf("%s  %s\n", r.ID, line)
		if len(r.MissingItems) > 0 {
			a.printf("    missing: %s\n", strings.Join(r.MissingItems, ", "))
		}
	}
	return nil
}
