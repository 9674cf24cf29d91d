package client

import (
	"context"
	"net/http"
)

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// Credentials authenticates an existing account.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ChangePasswordRequest rotates the authenticated user's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ResetPasswordRequest completes a forgot-password flow with the emailed
// reset token.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// Register creates an account and stores the returned session token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := requireField(req.Email, "email"); err != nil {
		return nil, err
	}
	if err := requireField(req.Password, "password"); err != nil {
		return nil, err
	}
	var out AuthResponse
	err := c.doJSON(ctx, call{
		resource: "auth",
		method:   http.MethodPost,
		path:     "/auth/register",
		body:     req,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.Token != "" {
		c.tokens.SetToken(out.Token)
	}
	return &out, nil
}

// Login authenticates and stores the returned session token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	if err := requireField(creds.Email, "email"); err != nil {
		return nil, err
	}
	if err := requireField(creds.Password, "password"); err != nil {
		return nil, err
	}
	var out AuthResponse
	err := c.doJSON(ctx, call{
		resource: "auth",
		method:   http.MethodPost,
		path:     "/auth/login",
		body:     creds,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.Token != "" {
		c.tokens.SetToken(out.Token)
	}
	return &out, nil
}

// Logout ends the session. The local token is cleared before the network
// call is issued, so the session is invalidated client-side even when the
// backend is unreachable.
func (c *Client) Logout(ctx context.Context) error {
	c.tokens.Clear()
	return c.doJSON(ctx, call{
		resource: "auth",
		method:   http.MethodPost,
		path:     "/auth/logout",
	}, nil)
}

// ChangePassword rotates the authenticated user's password.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	if err := requireField(req.CurrentPassword, "current_password"); err != nil {
		return err
	}
	if err := requireField(req.NewPassword, "new_password"); err != nil {
		return err
	}
	return c.doJSON(ctx, call{
		resource: "auth",
		method:   http.MethodPost,
		path:     "/auth/change-password",
		body:     req,
	}, nil)
}

// ForgotPassword triggers a reset email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	if err := requireField(email, "email"); err != nil {
		return err
	}
	return c.doJSON(ctx, call{
		resource: "auth",
		method:   http.MethodPost,
		path:     "/auth/forgot-password",
		body:     map[string]string{"email": email},
	}, nil)
}

// ResetPassword completes a forgot-password flow.
func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if err := requireField(req.Token, "token"); err != nil {
		return err
	}
	if err := requireField(req.NewPassword, "new_password"); err != nil {
		return err
	}
	return c.doJSON(ctx, call{
		resource: "auth",
		method:   http.MethodPost,
		path:     "/auth/reset-password",
		body:     req,
	}, nil)
}

// GoogleLoginURL returns the OAuth entry point the caller should navigate the
// browser to. It performs no network call and returns no payload; the flow
// completes on the backend.
func (c *Client) GoogleLoginURL() string {
	return c.baseURL + "/api/auth/google"
}
