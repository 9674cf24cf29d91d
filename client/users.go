package client

import (
	"context"
	"io"
	"net/http"
)

// User operations - all methods operate directly on Client

// listUsersResponse mirrors the list endpoint response shape.
type listUsersResponse struct {
	Users []User `json:"users"`
	Count int    `json:"count"`
}

// GetMe returns the account the stored token belongs to.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	var u User
	if err := c.doJSON(ctx, call{resource: "user", path: "/user/me"}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile patches the authenticated user's own profile.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	var u User
	err := c.doJSON(ctx, call{
		resource: "user",
		method:   http.MethodPatch,
		path:     "/user/update",
		body:     req,
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UploadAvatar uploads a new avatar image as multipart/form-data. The
// executor sends the encoded form unmodified, letting the payload carry the
// boundary-qualified content type.
func (c *Client) UploadAvatar(ctx context.Context, filename string, file io.Reader) (*UploadAvatarResponse, error) {
	form, err := NewFileForm("avatar", filename, file, nil)
	if err != nil {
		return nil, err
	}
	var out UploadAvatarResponse
	err = c.doJSON(ctx, call{
		resource: "user",
		method:   http.MethodPost,
		path:     "/user/avatar",
		form:     form,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangeUserStatus suspends or reinstates another account (admin only).
func (c *Client) ChangeUserStatus(ctx context.Context, userID string, req ChangeUserStatusRequest) (*User, error) {
	if err := ValidateID(userID, "userId"); err != nil {
		return nil, err
	}
	if err := requireField(req.Status, "status"); err != nil {
		return nil, err
	}
	var u User
	err := c.doJSON(ctx, call{
		resource: "user",
		method:   http.MethodPatch,
		path:     "/user/status/" + userID,
		body:     req,
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ChangeUserRole assigns a role to another account (admin only).
func (c *Client) ChangeUserRole(ctx context.Context, userID string, req ChangeUserRoleRequest) (*User, error) {
	if err := ValidateID(userID, "userId"); err != nil {
		return nil, err
	}
	if err := requireField(req.Role, "role"); err != nil {
		return nil, err
	}
	var u User
	err := c.doJSON(ctx, call{
		resource: "user",
		method:   http.MethodPatch,
		path:     "/user/role/" + userID,
		body:     req,
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns every account visible to the caller.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var lr listUsersResponse
	if err := c.doJSON(ctx, call{resource: "user", path: "/user/users"}, &lr); err != nil {
		return nil, err
	}
	return lr.Users, nil
}

// GetUser retrieves an account by ID.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	if err := ValidateID(userID, "userId"); err != nil {
		return nil, err
	}
	var u User
	if err := c.doJSON(ctx, call{resource: "user", path: "/user/users/" + userID}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes an account by ID.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	if err := ValidateID(userID, "userId"); err != nil {
		return err
	}
	return c.doJSON(ctx, call{
		resource: "user",
		method:   http.MethodDelete,
		path:     "/user/users/" + userID,
	}, nil)
}
