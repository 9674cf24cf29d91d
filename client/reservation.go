package client

import "time"

// Reservation represents a booked time slot on a table.
type Reservation struct {
	ID         string    `json:"id"`
	TableID    string    `json:"table_id"`
	UserID     string    `json:"user_id,omitempty"`
	GuestName  string    `json:"guest_name"`
	GuestPhone string    `json:"guest_phone,omitempty"`
	PartySize  int       `json:"party_size"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateReservationRequest books a table. Conflict detection happens on the
// backend; the client only relays the outcome.
type CreateReservationRequest struct {
	TableID    string    `json:"table_id"`
	GuestName  string    `json:"guest_name"`
	GuestPhone string    `json:"guest_phone,omitempty"`
	PartySize  int       `json:"party_size"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	Notes      string    `json:"notes,omitempty"`
}

// UpdateReservationRequest replaces a reservation's mutable attributes.
type UpdateReservationRequest struct {
	TableID    string    `json:"table_id,omitempty"`
	GuestName  string    `json:"guest_name,omitempty"`
	GuestPhone string    `json:"guest_phone,omitempty"`
	PartySize  int       `json:"party_size,omitempty"`
	StartsAt   time.Time `json:"starts_at,omitzero"`
	EndsAt     time.Time `json:"ends_at,omitzero"`
	Notes      string    `json:"notes,omitempty"`
}

// AvailabilityRequest is the payload for POST /api/reservations/check-availability.
type AvailabilityRequest struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"party_size"`
}

// AvailabilityResponse lists tables free for the requested slot.
type AvailabilityResponse struct {
	Available bool    `json:"available"`
	Tables    []Table `json:"tables"`
}

// ListReservationsParams filters the reservation listing.
type ListReservationsParams struct {
	Date    string
	Status  string
	TableID string
}
