package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
)

// Login exchanges credentials for a session. Rejected credentials come back
// as an *APIError matching ErrUnauthorized.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	return call[*models.AuthResponse](ctx, c, http.MethodPost, "/auth/login", nil,
		models.LoginRequest{Email: email, Password: password})
}

// Register creates an account and returns its first session.
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error) {
	return call[*models.AuthResponse](ctx, c, http.MethodPost, "/auth/register", nil,
		models.RegisterRequest{Name: name, Email: email, Password: password})
}

// Me returns the profile of the token holder.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	return call[*models.User](ctx, c, http.MethodGet, "/auth/me", nil, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	return call[*models.User](ctx, c, http.MethodPut, "/auth/profile", nil, upd)
}
