package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

func (a *App) Points(ctx context.Context, _ []string) error {
	p, err := a.api.Points(ctx)
	if err != nil {
		return err
	}
	a.printf("available: %d, earned: %d, spent: %d\n", p.AvailablePoints, p.TotalPoints, p.UsedPoints)

	hist, err := a.api.PointHistory(ctx, 1, 5)
	if err != nil {
		return err
	}
	for _, t := range hist.Items {
		sign := "+"
		if t.Type != "earn" {
			sign = "-"
		}
		a.printf("  %s  %s%d  %s\n", t.CreatedAt.Local().Format(timeLayout), sign, t.Amount, t.Description)
	}
	return nil
}

func (a *App) Vouchers(ctx context.Context, args []string) error {
	var (
		vs  []models.Voucher
		err error
	)
	if len(args) > 0 {
		vs, err = a.api.VouchersByCategory(ctx, strings.Join(args, " "))
	} else {
		vs, err = a.api.Vouchers(ctx)
	}
	if err != nil {
		return err
	}

	if len(vs) == 0 {
		a.printf("No vouchers available.\n")
		return nil
	}
	for _, v := range vs {
		a.printf("%s  %s @ %s  %d pts  %s  (%d left)\n",
			v.ID, v.Title, v.StoreName, v.PointsRequired, discount(v), v.RemainingStock)
	}
	return nil
}

func discount(v models.Voucher) string {
	if v.DiscountType == "percentage" {
		return fmt.Sprintf("%g%% off", v.DiscountValue)
	}
	return fmt.Sprintf("%.2f off", v.DiscountValue)
}

// Redeem spends points on a voucher after showing its cost.
func (a *App) Redeem(ctx context.Context, args []string) error {
	id, err := requireArg(args, 0, "redeem <voucher-id>")
	if err != nil {
		return err
	}

	v, err := a.api.Voucher(ctx, id)
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Redeem %s for %d points?", v.Title, v.PointsRequired), a.out)
	if err != nil || !ok {
		return err
	}

	r, err := a.api.RedeemVoucher(ctx, v.ID)
	if err != nil {
		return err
	}
	a.printf("Redeemed! Code: %s (valid until %s)\n", r.RedemptionCode, r.ExpiresAt.Local().Format(dateLayout))
	return nil
}
