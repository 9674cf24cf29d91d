package client

import (
	"context"
	"net/http"
	"net/url"
)

// Notification operations - all methods operate directly on Client

// listNotificationsResponse mirrors the list endpoint response shape.
type listNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	Count         int            `json:"count"`
}

// ListNotifications returns the caller's notifications, optionally only the
// unread ones.
func (c *Client) ListNotifications(ctx context.Context, unreadOnly bool) ([]Notification, error) {
	q := url.Values{}
	if unreadOnly {
		q.Set("unread", "true")
	}
	var lr listNotificationsResponse
	if err := c.doJSON(ctx, call{resource: "notification", path: "/notifications", params: q}, &lr); err != nil {
		return nil, err
	}
	return lr.Notifications, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	if err := ValidateID(notificationID, "notificationId"); err != nil {
		return err
	}
	return c.doJSON(ctx, call{
		resource: "notification",
		method:   http.MethodPatch,
		path:     "/notifications/" + notificationID + "/read",
	}, nil)
}

// MarkAllNotificationsRead marks every notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.doJSON(ctx, call{
		resource: "notification",
		method:   http.MethodPatch,
		path:     "/notifications/mark-all-read",
	}, nil)
}

// DeleteNotification removes a notification.
func (c *Client) DeleteNotification(ctx context.Context, notificationID string) error {
	if err := ValidateID(notificationID, "notificationId"); err != nil {
		return err
	}
	return c.doJSON(ctx, call{
		resource: "notification",
		method:   http.MethodDelete,
		path:     "/notifications/" + notificationID,
	}, nil)
}
