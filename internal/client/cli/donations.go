package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

var (
	errSelectFood     = &userError{"Please select a food item to donate"}
	errSelectMarket   = &userError{"Please select a donation market"}
	errDonateQuantity = &userError{"Please enter a valid quantity"}
)

func (a *App) Markets(ctx context.Context, _ []string) error {
	markets, err := a.api.DonationMarkets(ctx)
	if err != nil {
		return err
	}
	for _, m := range markets {
		if !m.IsActive {
			continue
		}
		a.printf("%d  %s, %s  %s\n", m.ID, m.Name, m.Address, m.Phone)
	}
	return nil
}

// Donate offers one of the donatable items to a market. The quantity may not
// exceed what is in storage.
func (a *App) Donate(ctx context.Context, _ []string) error {
	foods, err := a.api.DonatableFoods(ctx)
	if err != nil {
		return err
	}
	if len(foods) == 0 {
		a.printf("You have nothing that can be donated right now.\n")
		return nil
	}
	for i, f := range foods {
		a.printf("%d) %s  %g %s  %s\n", i+1, f.Name, f.Quantity, f.Unit, expiryLabel(f, a.now()))
	}

	s, err := GetSimpleText(a.reader, "Item number", a.out)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > len(foods) {
		return errSelectFood
	}
	food := foods[n-1]

	s, err = GetSimpleText(a.reader, "Market id (see 'markets')", a.out)
	if err != nil {
		return err
	}
	marketID, err := strconv.ParseUint(s, 10, 0)
	if err != nil || marketID == 0 {
		return errSelectMarket
	}

	s, err = GetSimpleText(a.reader, "Quantity", a.out)
	if err != nil {
		return err
	}
	qty, err := strconv.Atoi(s)
	if err != nil || qty < 1 {
		return errDonateQuantity
	}
	if float64(qty) > food.Quantity {
		return &userError{fmt.Sprintf("You only have %g of this item", food.Quantity)}
	}

	d, err := a.api.CreateDonation(ctx, models.DonationRequest{
		FoodID:   food.ID,
		MarketID: uint(marketID),
		Quantity: qty,
	})
	if err != nil {
		return err
	}
	a.printf("Thank you for your donation! You earned %d points.\n", d.PointsEarned)
	return nil
}

func (a *App) Donations(ctx context.Context, _ []string) error {
	ds, err := a.api.MyDonations(ctx)
	if err != nil {
		return err
	}
	if len(ds) == 0 {
		a.printf("No donations yet.\n")
		return nil
	}
	for _, d := range ds {
		food, market := d.FoodID, strconv.FormatUint(uint64(d.MarketID), 10)
		if d.Food != nil {
			food = d.Food.Name
		}
		if d.Market != nil {
			market = d.Market.Name
		}
		a.printf("%s  %d x %s to %s  %s  +%d pts\n",
			d.CreatedAt.Local().Format(dateLayout), d.Quantity, food, market, d.Status, d.PointsEarned)
	}
	return nil
}
