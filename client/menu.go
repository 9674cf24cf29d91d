package client

import "time"

// ------------------------------
// Menu domain types
// ------------------------------

// MenuCategory groups menu items ("Starters", "Mains", "Drinks").
type MenuCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Position    int    `json:"position"`
}

// MenuItem is a sellable dish or drink. Price is integer cents.
type MenuItem struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	Available   bool      `json:"available"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Order is a running bill for a table.
type Order struct {
	ID            string      `json:"id"`
	TableID       string      `json:"table_id"`
	ReservationID string      `json:"reservation_id,omitempty"`
	Status        string      `json:"status"`
	Total         int64       `json:"total"`
	Items         []OrderItem `json:"items,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderItem is one line on an order.
type OrderItem struct {
	ID         string `json:"id"`
	OrderID    string `json:"order_id"`
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
	Notes      string `json:"notes,omitempty"`
}

// ------------------------------
// Request payloads
// ------------------------------

type CreateMenuCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Position    int    `json:"position,omitempty"`
}

type UpdateMenuCategoryRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Position    int    `json:"position,omitempty"`
}

type CreateMenuItemRequest struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	Available   bool   `json:"available"`
	ImageURL    string `json:"image_url,omitempty"`
}

type UpdateMenuItemRequest struct {
	CategoryID  string `json:"category_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price,omitempty"`
	Available   *bool  `json:"available,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type CreateOrderRequest struct {
	TableID       string `json:"table_id"`
	ReservationID string `json:"reservation_id,omitempty"`
}

type UpdateOrderRequest struct {
	TableID string `json:"table_id,omitempty"`
}

type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

type AddOrderItemRequest struct {
	OrderID    string `json:"order_id"`
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
}

type UpdateOrderItemRequest struct {
	Quantity int    `json:"quantity,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// ListMenuItemsParams filters the item listing.
type ListMenuItemsParams struct {
	CategoryID    string
	AvailableOnly bool
}
