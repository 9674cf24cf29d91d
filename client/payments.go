package client

import (
	"context"
	"net/http"
	"net/url"
)

// Payment operations - all methods operate directly on Client

// listPaymentsResponse mirrors the list endpoint response shape.
type listPaymentsResponse struct {
	Payments []Payment `json:"payments"`
	Count    int       `json:"count"`
}

// CreatePayment records a charge against an order or reservation.
func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	if req.Amount <= 0 {
		return nil, errAmountRequired
	}
	var p Payment
	err := c.doJSON(ctx, call{
		resource: "payment",
		method:   http.MethodPost,
		path:     "/payments",
		body:     req,
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPayments returns payments matching the given filters.
func (c *Client) ListPayments(ctx context.Context, params ListPaymentsParams) ([]Payment, error) {
	q := url.Values{}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.OrderID != "" {
		q.Set("order_id", params.OrderID)
	}
	var lr listPaymentsResponse
	if err := c.doJSON(ctx, call{resource: "payment", path: "/payments", params: q}, &lr); err != nil {
		return nil, err
	}
	return lr.Payments, nil
}

// GetPayment retrieves a payment by ID.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	if err := ValidateID(paymentID, "paymentId"); err != nil {
		return nil, err
	}
	var p Payment
	if err := c.doJSON(ctx, call{resource: "payment", path: "/payments/" + paymentID}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// AdjustPayment corrects a recorded payment amount.
func (c *Client) AdjustPayment(ctx context.Context, paymentID string, req AdjustPaymentRequest) (*Payment, error) {
	if err := ValidateID(paymentID, "paymentId"); err != nil {
		return nil, err
	}
	if err := requireField(req.Reason, "reason"); err != nil {
		return nil, err
	}
	var p Payment
	err := c.doJSON(ctx, call{
		resource: "payment",
		method:   http.MethodPost,
		path:     "/payments/" + paymentID + "/adjust",
		body:     req,
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// RefundPayment refunds a payment, fully when req.Amount is zero.
func (c *Client) RefundPayment(ctx context.Context, paymentID string, req RefundPaymentRequest) (*Payment, error) {
	if err := ValidateID(paymentID, "paymentId"); err != nil {
		return nil, err
	}
	if err := requireField(req.Reason, "reason"); err != nil {
		return nil, err
	}
	var p Payment
	err := c.doJSON(ctx, call{
		resource: "payment",
		method:   http.MethodPost,
		path:     "/payments/" + paymentID + "/refund",
		body:     req,
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
