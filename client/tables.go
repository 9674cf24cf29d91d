package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Table operations - all methods operate directly on Client

// listTablesResponse mirrors the list endpoint response shape.
type listTablesResponse struct {
	Tables []Table `json:"tables"`
	Count  int     `json:"count"`
}

// CreateTable registers a new table.
func (c *Client) CreateTable(ctx context.Context, req CreateTableRequest) (*Table, error) {
	var t Table
	err := c.doJSON(ctx, call{
		resource: "table",
		method:   http.MethodPost,
		path:     "/table/tables",
		body:     req,
	}, &t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTables returns tables matching the given filters.
func (c *Client) ListTables(ctx context.Context, params ListTablesParams) ([]Table, error) {
	q := url.Values{}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Capacity > 0 {
		q.Set("capacity", strconv.Itoa(params.Capacity))
	}
	var lr listTablesResponse
	if err := c.doJSON(ctx, call{resource: "table", path: "/table/tables", params: q}, &lr); err != nil {
		return nil, err
	}
	return lr.Tables, nil
}

// GetTable retrieves a table by ID.
func (c *Client) GetTable(ctx context.Context, tableID string) (*Table, error) {
	if err := ValidateID(tableID, "tableId"); err != nil {
		return nil, err
	}
	var t Table
	if err := c.doJSON(ctx, call{resource: "table", path: "/table/tables/" + tableID}, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTable replaces a table's attributes.
func (c *Client) UpdateTable(ctx context.Context, tableID string, req UpdateTableRequest) (*Table, error) {
	if err := ValidateID(tableID, "tableId"); err != nil {
		return nil, err
	}
	var t Table
	err := c.doJSON(ctx, call{
		resource: "table",
		method:   http.MethodPut,
		path:     "/table/tables/" + tableID,
		body:     req,
	}, &t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ChangeTableStatus transitions a table's state.
func (c *Client) ChangeTableStatus(ctx context.Context, tableID string, req ChangeTableStatusRequest) (*Table, error) {
	if err := ValidateID(tableID, "tableId"); err != nil {
		return nil, err
	}
	if err := requireField(req.Status, "status"); err != nil {
		return nil, err
	}
	var t Table
	err := c.doJSON(ctx, call{
		resource: "table",
		method:   http.MethodPatch,
		path:     "/table/tables/" + tableID + "/status",
		body:     req,
	}, &t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTable removes a table. Backend returns 204 No Content on success.
func (c *Client) DeleteTable(ctx context.Context, tableID string) error {
	if err := ValidateID(tableID, "tableId"); err != nil {
		return err
	}
	return c.doJSON(ctx, call{
		resource: "table",
		method:   http.MethodDelete,
		path:     "/table/tables/" + tableID,
	}, nil)
}
