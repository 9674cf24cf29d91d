package client

import (
	"context"
	"net/http"
	"net/url"
)

// Reservation operations - all methods operate directly on Client

// listReservationsResponse mirrors the list endpoint response shape.
type listReservationsResponse struct {
	Reservations []Reservation `json:"reservations"`
	Count        int           `json:"count"`
}

// CheckAvailability asks the backend which tables are free for a slot.
func (c *Client) CheckAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityResponse, error) {
	if err := requireField(req.Date, "date"); err != nil {
		return nil, err
	}
	if err := requireField(req.Time, "time"); err != nil {
		return nil, err
	}
	var out AvailabilityResponse
	err := c.doJSON(ctx, call{
		resource: "reservation",
		method:   http.MethodPost,
		path:     "/reservations/check-availability",
		body:     req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateReservation books a table.
func (c *Client) CreateReservation(ctx context.Context, req CreateReservationRequest) (*Reservation, error) {
	if err := ValidateID(req.TableID, "tableId"); err != nil {
		return nil, err
	}
	if err := requireField(req.GuestName, "guest_name"); err != nil {
		return nil, err
	}
	var r Reservation
	err := c.doJSON(ctx, call{
		resource: "reservation",
		method:   http.MethodPost,
		path:     "/reservations",
		body:     req,
	}, &r)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListReservations returns reservations matching the given filters.
func (c *Client) ListReservations(ctx context.Context, params ListReservationsParams) ([]Reservation, error) {
	q := url.Values{}
	if params.Date != "" {
		q.Set("date", params.Date)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.TableID != "" {
		q.Set("table_id", params.TableID)
	}
	var lr listReservationsResponse
	if err := c.doJSON(ctx, call{resource: "reservation", path: "/reservations", params: q}, &lr); err != nil {
		return nil, err
	}
	return lr.Reservations, nil
}

// GetReservation retrieves a reservation by ID.
func (c *Client) GetReservation(ctx context.Context, reservationID string) (*Reservation, error) {
	if err := ValidateID(reservationID, "reservationId"); err != nil {
		return nil, err
	}
	var r Reservation
	if err := c.doJSON(ctx, call{resource: "reservation", path: "/reservations/" + reservationID}, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateReservation replaces a reservation's mutable attributes.
func (c *Client) UpdateReservation(ctx context.Context, reservationID string, req UpdateReservationRequest) (*Reservation, error) {
	if err := ValidateID(reservationID, "reservationId"); err != nil {
		return nil, err
	}
	var r Reservation
	err := c.doJSON(ctx, call{
		resource: "reservation",
		method:   http.MethodPut,
		path:     "/reservations/" + reservationID,
		body:     req,
	}, &r)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ConfirmReservation transitions a pending reservation to confirmed.
func (c *Client) ConfirmReservation(ctx context.Context, reservationID string) (*Reservation, error) {
	return c.reservationAction(ctx, reservationID, "confirm")
}

// CancelReservation cancels a reservation, releasing its table slot.
func (c *Client) CancelReservation(ctx context.Context, reservationID string) (*Reservation, error) {
	return c.reservationAction(ctx, reservationID, "cancel")
}

func (c *Client) reservationAction(ctx context.Context, reservationID, action string) (*Reservation, error) {
	if err := ValidateID(reservationID, "reservationId"); err != nil {
		return nil, err
	}
	var r Reservation
	err := c.doJSON(ctx, call{
		resource: "reservation",
		method:   http.MethodPost,
		path:     "/reservations/" + reservationID + "/" + action,
	}, &r)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteReservation removes a reservation record entirely.
func (c *Client) DeleteReservation(ctx context.Context, reservationID string) error {
	if err := ValidateID(reservationID, "reservationId"); err != nil {
		return err
	}
	return c.doJSON(ctx, call{
		resource: "reservation",
		method:   http.MethodDelete,
		path:     "/reservations/" + reservationID,
	}, nil)
}
