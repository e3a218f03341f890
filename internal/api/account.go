package api

import (
	"context"

	"github.com/cloudprep/cloudprep-client/internal/auth"
	"github.com/cloudprep/cloudprep-client/internal/model"
)

// Login exchanges credentials for a token. Validation errors from the
// collaborator arrive as a message list; the first entry surfaces.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	var resp model.AuthResponse
	if err := c.post(ctx, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns a token.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	var resp model.AuthResponse
	if err := c.post(ctx, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile fetches the authenticated account.
func (c *Client) Profile(ctx context.Context, sess *auth.Session) (*model.User, error) {
	var user model.User
	if err := c.get(ctx, "/auth/me", nil, sess, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
