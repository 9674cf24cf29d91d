package client

import "time"

// Table represents a physical table in the dining room.
type Table struct {
	ID        string    `json:"id"`
	Number    int       `json:"number"`
	Capacity  int       `json:"capacity"`
	Location  string    `json:"location,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTableRequest is the payload for POST /api/table/tables.
type CreateTableRequest struct {
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	Location string `json:"location,omitempty"`
}

// UpdateTableRequest replaces a table's attributes.
type UpdateTableRequest struct {
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	Location string `json:"location,omitempty"`
	Status   string `json:"status,omitempty"`
}

// ChangeTableStatusRequest transitions a table between states such as
// "available", "occupied" and "reserved".
type ChangeTableStatusRequest struct {
	Status string `json:"status"`
}

// ListTablesParams filters the table listing. Zero values are omitted from
// the query string.
type ListTablesParams struct {
	Status   string
	Capacity int
}
