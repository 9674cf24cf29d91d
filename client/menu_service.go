package client

import (
	"context"
	"net/http"
	"net/url"
)

// Menu operations span four collections under /api/menu: categories, items,
// orders and order-items. All methods operate directly on Client.

type listMenuCategoriesResponse struct {
	Categories []MenuCategory `json:"categories"`
	Count      int            `json:"count"`
}

type listMenuItemsResponse struct {
	Items []MenuItem `json:"items"`
	Count int        `json:"count"`
}

type listOrdersResponse struct {
	Orders []Order `json:"orders"`
	Count  int     `json:"count"`
}

type listOrderItemsResponse struct {
	Items []OrderItem `json:"items"`
	Count int         `json:"count"`
}

// ------------------------------
// Categories
// ------------------------------

// ListMenuCategories returns all categories ordered by position.
func (c *Client) ListMenuCategories(ctx context.Context) ([]MenuCategory, error) {
	var lr listMenuCategoriesResponse
	if err := c.doJSON(ctx, call{resource: "menu", path: "/menu/categories"}, &lr); err != nil {
		return nil, err
	}
	return lr.Categories, nil
}

// CreateMenuCategory adds a category.
func (c *Client) CreateMenuCategory(ctx context.Context, req CreateMenuCategoryRequest) (*MenuCategory, error) {
	if err := requireField(req.Name, "name"); err != nil {
		return nil, err
	}
	var out MenuCategory
	err := c.doJSON(ctx, call{
		resource: "menu",
		method:   http.MethodPost,
		path:     "/menu/categories",
		body:     req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMenuCategory updates a category.
func (c *Client) UpdateMenuCategory(ctx context.Context, categoryID string, req UpdateMenuCategoryRequest) (*MenuCategory, error) {
	if err := ValidateID(categoryID, "categoryId"); err != nil {
		return nil, err
	}
	var out MenuCategory
	err := c.doJSON(ctx, call{
		resource: "menu",
		method:   http.MethodPut,
		path:     "/menu/categories/" + categoryID,
		body:     req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMenuCategory removes a category.
func (c *Client) DeleteMenuCategory(ctx context.Context, categoryID string) error {
	if err := ValidateID(categoryID, "categoryId"); err != nil {
		return err
	}
	return c.doJSON(ctx, call{
		resource: "menu",
		method:   http.MethodDelete,
		path:     "/menu/categories/" + categoryID,
	}, nil)
}

// ------------------------------
// Items
// ------------------------------

// ListMenuItems returns items matching the given filters.
func (c *Client) ListMenuItems(ctx context.Context, params ListMenuItemsParams) ([]MenuItem, error) {
	q := url.Values{}
	if params.CategoryID != "" {
		q.Set("category_id", params.CategoryID)
	}
	if params.AvailableOnly {
		q.Set("available", "true")
	}
	var lr listMenuItemsResponse
	if err := c.doJSON(ctx, call{resource: "menu", path: "/menu/items", params: q}, &lr); err != nil {
		return nil, err
	}
	return lr.Items, nil
}

// GetMenuItem retrieves an item by ID.
func (c *Client) GetMenuItem(ctx context.Context, itemID string) (*MenuItem, error) {
	if err := ValidateID(itemID, "itemId"); err != nil {
		return nil, err
	}
	var out MenuItem
	if err := c.doJSON(ctx, call{resource: "menu", path: "/menu/items/" + itemID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMenuItem adds an item to a category.
func (c *Client) CreateMenuItem(ctx context.Context, req CreateMenuItemRequest) (*MenuItem, error) {
	if err := ValidateID(req.CategoryID, "categoryId"); err != nil {
		return nil, err
	}
	if err := requireField(req.Name, "name"); err != nil {
		return nil, err
	}
	var out MenuItem
	err := c.doJSON(ctx, call{
		resource: "menu",
		method:   http.MethodPost,
		path:     "/menu/items",
		body:     req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMenuItem updates an item.
func (c *Client) UpdateMenuItem(ctx context.Context, itemID string, req UpdateMenuItemRequest) (*MenuItem, error) {
	if err := ValidateID(itemID, "itemId"); err != nil {
		return nil, err
	}
	var out MenuItem
	err := c.doJSON(ctx, call{
		resource: "menu",
		method:   http.MethodPut,
		path:     "/menu/items/" + itemID,
		body:     req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMenuItem removes an item.
func (c *Client) DeleteMenuItem(ctx context.Context, itemID string) error {
	if err := ValidateID(itemID, "itemId"); err != nil {
		return err
	}
	return c.doJSON(ctx, call{
		resource: "menu",
		method:   http.MethodDelete,
		path:     "/menu/items/" + itemID,
	}, nil)
}

// ------------------------------
// Orders
// ------------------------------

// ListOrders returns orders, optionally filtered by status.
func (c *Client) ListOrders(ctx context.Context, status string) ([]Order, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	var lr listOrdersResponse
	if err := c.doJSON(ctx, call{resource: "menu", path: "/menu/orders", params: q}, &lr); err != nil {
		return nil, err
	}
	return lr.Orders, nil
}

// GetOrder retrieves an order with its line items.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	if err := ValidateID(orderID, "orderId"); err != nil {
		return nil, err
	}
	var out Order
	if err := c.doJSON(ctx, call{resource: "menu", path: "/menu/orders/" + orderID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrder opens a running bill for a table.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	if err := ValidateID(req.TableID, "tableId"); err != nil {
		return nil, err
	}
	var out Order
	err := c.doJSON(ctx, call{
		resource: "menu",
		method:   http.MethodPost,
		path:     "/menu/orders",
		body:     req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrder updates an order's mutable attributes.
func (c *Client) UpdateOrder(ctx context.Context, orderID string, req UpdateOrderRequest) (*Order, error) {
	if err := ValidateID(orderID, "orderId"); err != nil {
		return nil, err
	}
	var out Order
	err := c.doJSON(ctx, call{
		resource: "menu",
		method:   http.MethodPut,
		path:     "/menu/orders/" + orderID,
		body:     req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangeOrderStatus transitions an order ("open", "served", "paid", "void").
func (c *Client) ChangeOrderStatus(ctx context.Context, orderID string, req ChangeOrderStatusRequest) (*Order, error) {
	if err := ValidateID(orderID, "orderId"); err != nil {
		return nil, err
	}
	if err := requireField(req.Status, "status"); err != nil {
		return nil, err
	}
	var out Order
	err := c.doJSON(ctx, call{
		resource: "menu",
		method:   http.MethodPatch,
		path:     "/menu/orders/" + orderID + "/status",
		body:     req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteOrder removes an order record.
func (c *Client) DeleteOrder(ctx context.Context, orderID string) error {
	if err := ValidateID(orderID, "orderId"); err != nil {
		return err
	}
	return c.doJSON(ctx, call{
		resource: "menu",
		method:   http.MethodDelete,
		path:     "/menu/orders/" + orderID,
	}, nil)
}

// ------------------------------
// Order items
// ------------------------------

// ListOrderItems returns the line items of one order.
func (c *Client) ListOrderItems(ctx context.Context, orderID string) ([]OrderItem, error) {
	if err := ValidateID(orderID, "orderId"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("order_id", orderID)
	var lr listOrderItemsResponse
	if err := c.doJSON(ctx, call{resource: "menu", path: "/menu/order-items", params: q}, &lr); err != nil {
		return nil, err
	}
	return lr.Items, nil
}

// AddOrderItem appends a line item to an order.
func (c *Client) AddOrderItem(ctx context.Context, req AddOrderItemRequest) (*OrderItem, error) {
	if err := ValidateID(req.OrderID, "orderId"); err != nil {
		return nil, err
	}
	if err := ValidateID(req.MenuItemID, "menuItemId"); err != nil {
		return nil, err
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	var out OrderItem
	err := c.doJSON(ctx, call{
		resource: "menu",
		method:   http.MethodPost,
		path:     "/menu/order-items",
		body:     req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderItem changes quantity or notes on a line item.
func (c *Client) UpdateOrderItem(ctx context.Context, orderItemID string, req UpdateOrderItemRequest) (*OrderItem, error) {
	if err := ValidateID(orderItemID, "orderItemId"); err != nil {
		return nil, err
	}
	var out OrderItem
	err := c.doJSON(ctx, call{
		resource: "menu",
		method:   http.MethodPut,
		path:     "/menu/order-items/" + orderItemID,
		body:     req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteOrderItem removes a line item.
func (c *Client) DeleteOrderItem(ctx context.Context, orderItemID string) error {
	if err := ValidateID(orderItemID, "orderItemId"); err != nil {
		return err
	}
	return c.doJSON(ctx, call{
		resource: "menu",
		method:   http.MethodDelete,
		path:     "/menu/order-items/" + orderItemID,
	}, nil)
}
