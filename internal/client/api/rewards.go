package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

func (c *Client) Points(ctx context.Context) (*models.UserPoints, error) {
	return call[*models.UserPoints](ctx, c, http.MethodGet, "/rewards/points", nil, nil)
}

func (c *Client) PointHistory(ctx context.Context, page, limit int) (Page[models.PointTransaction], error) {
	return list[models.PointTransaction](ctx, c, "/rewards/history", pageQuery(page, limit))
}

func (c *Client) Vouchers(ctx context.Context) ([]models.Voucher, error) {
	return call[[]models.Voucher](ctx, c, http.MethodGet, "/vouchers", nil, nil)
}

func (c *Client) Voucher(ctx context.Context, id string) (*models.Voucher, error) {
	return call[*models.Voucher](ctx, c, http.MethodGet, "/vouchers/"+escape(id), nil, nil)
}

func (c *Client) VouchersByCategory(ctx context.Context, category string) ([]models.Voucher, error) {
	return call[[]models.Voucher](ctx, c, http.MethodGet, "/vouchers/category/"+escape(category), nil, nil)
}

// RedeemVoucher spends points on a voucher.
func (c *Client) RedeemVoucher(ctx context.Context, voucherID string) (*models.VoucherRedemption, error) {
	return call[*models.VoucherRedemption](ctx, c, http.MethodPost, "/vouchers/"+escape(voucherID)+"/redeem", nil, nil)
}

func (c *Client) Redemptions(ctx context.Context) ([]models.VoucherRedemption, error) {
	return call[[]models.VoucherRedemption](ctx, c, http.MethodGet, "/vouchers/redemptions", nil, nil)
}

func (c *Client) MarkRedemptionUsed(ctx context.Context, redemptionID string) error {
	return c.send(ctx, http.MethodPost, "/vouchers/redemptions/"+escape(redemptionID)+"/use", nil, nil)
}
