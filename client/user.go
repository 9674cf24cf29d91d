package client

import "time"

// User represents a staff or customer account as returned by the backend.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateProfileRequest is the payload for PATCH /api/user/update. Zero-value
// fields are omitted so partial updates leave the rest untouched.
type UpdateProfileRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ChangeUserStatusRequest suspends or reinstates an account. Days bounds a
// temporary suspension; zero means indefinite.
type ChangeUserStatusRequest struct {
	Status string `json:"status"`
	Days   int    `json:"days,omitempty"`
}

// ChangeUserRoleRequest assigns a backend role (e.g. "waiter", "manager").
type ChangeUserRoleRequest struct {
	Role string `json:"role"`
}

// UploadAvatarResponse is returned by the avatar upload endpoint.
type UploadAvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}
