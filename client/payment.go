package client

import "time"

// Payment represents a charge against an order or reservation. Amounts are
// integer cents; the client never does arithmetic on them.
type Payment struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id,omitempty"`
	ReservationID string    `json:"reservation_id,omitempty"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreatePaymentRequest records a charge. Processing happens on the backend.
type CreatePaymentRequest struct {
	OrderID       string `json:"order_id,omitempty"`
	ReservationID string `json:"reservation_id,omitempty"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Method        string `json:"method"`
}

// AdjustPaymentRequest corrects a recorded amount (tip added, comped item).
type AdjustPaymentRequest struct {
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

// RefundPaymentRequest refunds a payment, fully when Amount is zero.
type RefundPaymentRequest struct {
	Amount int64  `json:"amount,omitempty"`
	Reason string `json:"reason"`
}

// ListPaymentsParams filters the payment listing.
type ListPaymentsParams struct {
	Status  string
	OrderID string
}
