package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

var errItemName = &userError{"Please enter item name"}

func (a *App) Cart(ctx context.Context, _ []string) error {
	items, err := a.api.Cart(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		a.printf("Your cart is empty.\n")
		return nil
	}
	for _, it := range items {
		mark := " "
		if it.IsPurchased {
			mark = "x"
		}
		a.printf("[%s] %s  %s  %g %s\n", mark, it.ID, it.ItemName, it.Quantity, it.Unit)
	}
	return nil
}

func (a *App) AddCart(ctx context.Context, _ []string) error {
	name, err := GetSimpleText(a.reader, "Item name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return errItemName
	}
	qty, err := a.quantity()
	if err != nil {
		return err
	}
	unit, err := a.textOr("Unit", defaultUnit)
	if err != nil {
		return err
	}

	it, err := a.api.AddToCart(ctx, models.CartItem{ItemName: name, Quantity: qty, Unit: *unit})
	if err != nil {
		return err
	}
	a.printf("Added %s to your cart (id %s).\n", it.ItemName, it.ID)
	return nil
}

// Bought marks a cart item as purchased.
func (a *App) Bought(ctx context.Context, args []string) error {
	id, err := requireArg(args, 0, "bought <cart-item-id>")
	if err != nil {
		return err
	}
	it, err := a.api.MarkPurchased(ctx, id)
	if err != nil {
		return err
	}
	a.printf("%s purchased.\n", it.ItemName)
	return nil
}

func (a *App) Supermarkets(ctx context.Context, _ []string) error {
	sms, err := a.api.Supermarkets(ctx)
	if err != nil {
		return err
	}
	for _, sm := range sms {
		hours := ""
		if sm.OpenTime != "" {
			hours = " " + sm.OpenTime + "-" + sm.CloseTime
		}
		a.printf("%s  %s, %s  %.1f*%s\n", sm.ID, sm.Name, sm.Location, sm.Rating, hours)
	}
	return nil
}

func (a *App) Products(ctx context.Context, args []string) error {
	id, err := requireArg(args, 0, "products <supermarket-id> [category]")
	if err != nil {
		return err
	}
	category := strings.Join(args[1:], " ")

	products, err := a.api.SupermarketProducts(ctx, id, category)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		a.printf("No products.\n")
		return nil
	}
	for _, p := range products {
		a.printf("%s  %s  %.2f/%s  stock %d\n", p.ID, p.Name, p.Price, p.Unit, p.Stock)
	}
	return nil
}

func (a *App) Orders(ctx context.Context, args []string) error {
	status := ""
	if len(args) > 0 {
		status = args[0]
	}
	orders, err := a.api.Orders(ctx, status)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		a.printf("No orders.\n")
		return nil
	}
	for _, o := range orders {
		a.printf("%s  %s  %s  %s  %.2f\n", o.ID, o.OrderNumber, o.SupermarketName, o.Status, o.FinalAmount)
	}
	return nil
}

// Pickup confirms an order was collected at the store.
func (a *App) Pickup(ctx context.Context, args []string) error {
	id, err := requireArg(args, 0, "pickup <order-id>")
	if err != nil {
		return err
	}
	o, err := a.api.ConfirmPickup(ctx, id)
	if err != nil {
		return err
	}
	a.printf("Order %s is %s.\n", o.OrderNumber, o.Status)
	return nil
}
