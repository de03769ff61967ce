package api

import (
	"context"
	"net/http"

	"github.com/saadjs/fitguide-cli/internal/model"
)

// Login exchanges credentials for a token session.
func (c *Client) Login(ctx context.Context, username, password string) (model.Session, error) {
	var out model.Session
	err := c.do(ctx, http.MethodPost, "login/", map[string]string{
		"username": username,
		"password": password,
	}, &out)
	return out, err
}

// Register creates an account and returns a ready session. Email is
// optional on the API side.
func (c *Client) Register(ctx context.Context, username, email, password string) (model.Session, error) {
	var out model.Session
	err := c.do(ctx, http.MethodPost, "register/", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

// Logout invalidates the token server-side. Callers treat failure as
// best-effort and clear local state regardless.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "logout/", nil, nil)
}

// RequestPasswordReset asks the API to email a reset link. The response
// message is intentionally the same whether or not the account exists.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodPost, "password-reset/", map[string]string{"email": email}, &out)
	return out.Message, err
}

// ConfirmPasswordReset completes a reset with the uid/token pair from the
// emailed link.
func (c *Client) ConfirmPasswordReset(ctx context.Context, uid, token, newPassword, confirmPassword string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodPost, "password-reset-confirm/", map[string]string{
		"uid":              uid,
		"token":            token,
		"new_password":     newPassword,
		"confirm_password": confirmPassword,
	}, &out)
	return out.Message, err
}
