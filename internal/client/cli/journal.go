package cli

import (
	"context"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

var errMealType = &userError{"Meal type must be breakfast, lunch, dinner or snack"}

// Journal lists consumption entries and today's totals.
func (a *App) Journal(ctx context.Context, args []string) error {
	page, err := intArg(args, 0, 1)
	if err != nil {
		return err
	}

	res, err := a.api.ListJournals(ctx, page, pageSize)
	if err != nil {
		return err
	}
	for _, j := range res.Items {
		a.printf("%s  %-9s  %s  %g %s  kcal %s\n",
			j.ConsumedAt.Local().Format(timeLayout), j.MealType, j.FoodName, j.Portion, j.Unit, optional(j.Calories))
	}
	a.printf("%s\n", pageFooter(page, len(res.Items), res.Total))

	today, err := a.api.DailyStats(ctx, a.now().Format(dateLayout))
	if err != nil {
		return err
	}
	a.printf("today: %d meals, %.0f kcal, protein %.1fg, carbs %.1fg, fat %.1fg\n",
		today.MealCount, today.TotalCalories, today.TotalProtein, today.TotalCarbs, today.TotalFat)
	return nil
}

// Eat records a meal.
func (a *App) Eat(ctx context.Context, _ []string) error {
	name, err := GetSimpleText(a.reader, "What did you eat?", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return errFoodName
	}

	meal, err := a.textOr("Meal type", mealFor(a.now().Hour()))
	if err != nil {
		return err
	}
	switch *meal {
	case "breakfast", "lunch", "dinner", "snack":
	default:
		return errMealType
	}

	portion, err := a.quantity()
	if err != nil {
		return err
	}
	unit, err := a.textOr("Unit", "serving")
	if err != nil {
		return err
	}

	j, err := a.api.CreateJournal(ctx, models.FoodJournal{
		FoodName:   name,
		MealType:   *meal,
		Portion:    portion,
		Unit:       *unit,
		ConsumedAt: a.now(),
	})
	if err != nil {
		return err
	}
	a.printf("Logged %s for %s.\n", j.FoodName, j.MealType)
	return nil
}

func mealFor(hour int) string {
	switch {
	case hour < 11:
		return "breakfast"
	case hour < 15:
		return "lunch"
	case hour < 21:
		return "dinner"
	}
	return "snack"
}
