package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

func (c *Client) Notifications(ctx context.Context) (*models.NotificationList, error) {
	return call[*models.NotificationList](ctx, c, http.MethodGet, "/notifications", nil, nil)
}

func (c *Client) ExpiringNotifications(ctx context.Context) (*models.NotificationList, error) {
	return call[*models.NotificationList](ctx, c, http.MethodGet, "/notifications/expiring", nil, nil)
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodPost, "/notifications/"+escape(id)+"/read", nil, nil)
}
