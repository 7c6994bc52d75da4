package cli

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

const (
	defaultLocation = "Refrigerator"
	defaultUnit     = "pieces"
	defaultCategory = "Other"
	expiringDays    = 3
)

var (
	errFoodName     = &userError{"Please enter food name"}
	errFoodQuantity = &userError{"Please enter valid quantity"}
)

// Foods lists the inventory one page at a time.
func (a *App) Foods(ctx context.Context, args []string) error {
	page, err := intArg(args, 0, 1)
	if err != nil {
		return err
	}

	res, err := a.api.ListFoods(ctx, page, pageSize)
	if err != nil {
		return err
	}

	if len(res.Items) == 0 {
		a.printf("Your storage is empty.\n")
		return nil
	}
	now := a.now()
	for _, f := range res.Items {
		a.printf("%s  %s  %g %s  %s  %s\n", f.ID, f.Name, f.Quantity, f.Unit, f.Location, expiryLabel(f, now))
	}
	a.printf("%s\n", pageFooter(page, len(res.Items), res.Total))
	return nil
}

func (a *App) Food(ctx context.Context, args []string) error {
	id, err := requireArg(args, 0, "food <id>")
	if err != nil {
		return err
	}

	f, err := a.api.GetFood(ctx, id)
	if err != nil {
		return err
	}

	a.printf("%s (%s)\n", f.Name, f.Category)
	a.printf("  quantity: %g %s of %g\n", f.Quantity, f.Unit, f.InitialQuantity)
	a.printf("  location: %s\n", f.Location)
	a.printf("  expiry:   %s\n", expiryLabel(*f, a.now()))
	a.printf("  kcal %s, protein %s, carbs %s, fat %s\n",
		optional(f.Calories), optional(f.Protein), optional(f.Carbs), optional(f.Fat))
	if f.Notes != "" {
		a.printf("  notes:    %s\n", f.Notes)
	}
	return nil
}

// AddFood adds an item by hand. When an item with the same name is already
// stored the user may top up its stock instead.
func (a *App) AddFood(ctx context.Context, _ []string) error {
	name, err := GetSimpleText(a.reader, "Food name", a.out)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errFoodName
	}

	qty, err := a.quantity()
	if err != nil {
		return err
	}

	dup, err := a.api.CheckDuplicate(ctx, name)
	if err != nil {
		return err
	}
	if dup.HasDuplicates && len(dup.Duplicates) > 0 {
		existing := dup.Duplicates[0]
		a.printf("You already have %q: %g %s\n", existing.Name, existing.Quantity, existing.Unit)
		ok, err := Confirm(a.reader, "Update the existing stock instead of adding a new item?", a.out)
		if err != nil {
			return err
		}
		if ok {
			f, err := a.api.UpdateStock(ctx, existing.ID, qty)
			if err != nil {
				return err
			}
			a.printf("Stock updated: %g %s\n", f.Quantity, f.Unit)
			return nil
		}
	}

	in := models.FoodInput{Name: &name, Quantity: &qty}
	if in.Category, err = a.textOr("Category", defaultCategory); err != nil {
		return err
	}
	if in.Unit, err = a.textOr("Unit", defaultUnit); err != nil {
		return err
	}
	if in.Location, err = a.textOr("Location", defaultLocation); err != nil {
		return err
	}
	if in.ExpiryDate, err = GetDate(a.reader, "Expiry date", a.out); err != nil {
		return err
	}

	f, err := a.api.CreateFood(ctx, in)
	if err != nil {
		return err
	}
	a.printf("%s has been added to your storage (id %s).\n", f.Name, f.ID)
	return nil
}

// quantity reads a positive amount; anything else is reported as an
// invalid quantity.
func (a *App) quantity() (float64, error) {
	qty, err := GetFloat(a.reader, "Quantity", 1, a.out)
	var ue *userError
	switch {
	case errors.As(err, &ue):
		return 0, errFoodQuantity
	case err != nil:
		return 0, err
	case qty <= 0:
		return 0, errFoodQuantity
	}
	return qty, nil
}

// textOr prompts with a default shown in brackets.
func (a *App) textOr(prompt, def string) (*string, error) {
	s, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s]", prompt, def), a.out)
	if err != nil {
		return nil, err
	}
	if s == "" {
		s = def
	}
	return &s, nil
}

func (a *App) RemoveFood(ctx context.Context, args []string) error {
	id, err := requireArg(args, 0, "rmfood <id>")
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, "Are you sure you want to delete this item?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.api.DeleteFood(ctx, id); err != nil {
		return err
	}
	a.printf("Food deleted.\n")
	return nil
}

// Scan uploads a photo for recognition, shows the proposal and, once the
// user supplies quantity and unit, stores it.
func (a *App) Scan(ctx context.Context, args []string) error {
	path, err := requireArg(args, 0, "scan <image-file>")
	if err != nil {
		return err
	}
	img, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return &userError{fmt.Sprintf("cannot read %s: %v", path, err)}
	}

	a.printf("Scanning %s ...\n", filepath.Base(path))
	res, err := a.api.ScanFood(ctx, models.ScanFoodRequest{
		ImageBase64: base64.StdEncoding.EncodeToString(img),
		Location:    defaultLocation,
	})
	if err != nil {
		return err
	}

	a.printf("Recognised %s (%s), confidence %.0f%%, kcal %s\n",
		res.Name, res.Category, res.Confidence*100, optional(res.Calories))

	ok, err := Confirm(a.reader, "Add it to your storage?", a.out)
	if err != nil || !ok {
		return err
	}
	qty, err := a.quantity()
	if err != nil {
		return err
	}
	unit, err := a.textOr("Unit", defaultUnit)
	if err != nil {
		return err
	}

	f, err := a.api.AddScannedFood(ctx, res.Input(qty, *unit))
	if err != nil {
		return err
	}
	a.printf("%s has been added to your storage (id %s).\n", f.Name, f.ID)
	return nil
}

func (a *App) Expiring(ctx context.Context, args []string) error {
	days, err := intArg(args, 0, expiringDays)
	if err != nil {
		return err
	}

	foods, err := a.api.ExpiringFoods(ctx, days)
	if err != nil {
		return err
	}
	if len(foods) == 0 {
		a.printf("Nothing expires within %d days.\n", days)
		return nil
	}
	now := a.now()
	for _, f := range foods {
		a.printf("%s  %s  %s\n", f.ID, f.Name, expiryLabel(f, now))
	}
	return nil
}

func (a *App) Stats(ctx context.Context, _ []string) error {
	s, err := a.api.FoodStatistics(ctx)
	if err != nil {
		return err
	}
	a.printf("items: %d, near expiry: %d, expired: %d\n", s.TotalItems, s.NearExpiry, s.Expired)
	printCounts(a, "by category", s.ByCategory)
	printCounts(a, "by location", s.ByLocation)
	return nil
}

func printCounts(a *App, title string, m map[string]int) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	a.printf("%s:\n", title)
	for _, k := range keys {
		a.printf("  %s: %d\n", k, m[k])
	}
}
