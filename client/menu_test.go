package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMenuEndpoints(t *testing.T) {
	categoryID := "a1b2c3d4-e5f6-4789-8abc-def012345678"
	itemID := "0f1e2d3c-4b5a-4678-9123-456789abcdef"
	orderID := "7d2b4f6a-8c1e-49d3-b5a7-e90f1c3d2a84"
	orderItemID := "11223344-5566-4788-99aa-bbccddeeff00"
	tableID := "3f1d9a32-6a1f-4c28-9c27-0a2e4cbb61af"

	cat := MenuCategory{ID: categoryID, Name: "Mains", Position: 2}
	item := MenuItem{ID: itemID, CategoryID: categoryID, Name: "Paella", Price: 1850, Available: true}
	order := Order{ID: orderID, TableID: tableID, Status: "open", Total: 1850}
	line := OrderItem{ID: orderItemID, OrderID: orderID, MenuItemID: itemID, Quantity: 1, Price: 1850}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/menu/categories":
			_ = json.NewEncoder(w).Encode(struct {
				Categories []MenuCategory `json:"categories"`
				Count      int            `json:"count"`
			}{Categories: []MenuCategory{cat}, Count: 1})
		case r.Method == http.MethodPost && r.URL.Path == "/api/menu/categories":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(&cat)
		case r.Method == http.MethodPut && r.URL.Path == "/api/menu/categories/"+categoryID:
			_ = json.NewEncoder(w).Encode(&cat)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/menu/categories/"+categoryID:
			w.WriteHeader(http.StatusNoContent)

		case r.Method == http.MethodGet && r.URL.Path == "/api/menu/items":
			if r.URL.Query().Get("category_id") != categoryID {
				t.Fatalf("category filter not forwarded: %s", r.URL.RawQuery)
			}
			_ = json.NewEncoder(w).Encode(struct {
				Items []MenuItem `json:"items"`
				Count int        `json:"count"`
			}{Items: []MenuItem{item}, Count: 1})
		case r.Method == http.MethodGet && r.URL.Path == "/api/menu/items/"+itemID:
			_ = json.NewEncoder(w).Encode(&item)
		case r.Method == http.MethodPost && r.URL.Path == "/api/menu/items":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(&item)
		case r.Method == http.MethodPut && r.URL.Path == "/api/menu/items/"+itemID:
			_ = json.NewEncoder(w).Encode(&item)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/menu/items/"+itemID:
			w.WriteHeader(http.StatusNoContent)

		case r.Method == http.MethodGet && r.URL.Path == "/api/menu/orders":
			_ = json.NewEncoder(w).Encode(struct {
				Orders []Order `json:"orders"`
				Count  int     `json:"count"`
			}{Orders: []Order{order}, Count: 1})
		case r.Method == http.MethodGet && r.URL.Path == "/api/menu/orders/"+orderID:
			full := order
			full.Items = []OrderItem{line}
			_ = json.NewEncoder(w).Encode(&full)
		case r.Method == http.MethodPost && r.URL.Path == "/api/menu/orders":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(&order)
		case r.Method == http.MethodPatch && r.URL.Path == "/api/menu/orders/"+orderID+"/status":
			served := order
			served.Status = "served"
			_ = json.NewEncoder(w).Encode(&served)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/menu/orders/"+orderID:
			w.WriteHeader(http.StatusNoContent)

		case r.Method == http.MethodGet && r.URL.Path == "/api/menu/order-items":
			_ = json.NewEncoder(w).Encode(struct {
				Items []OrderItem `json:"items"`
				Count int         `json:"count"`
			}{Items: []OrderItem{line}, Count: 1})
		case r.Method == http.MethodPost && r.URL.Path == "/api/menu/order-items":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(&line)
		case r.Method == http.MethodPut && r.URL.Path == "/api/menu/order-items/"+orderItemID:
			two := line
			two.Quantity = 2
			_ = json.NewEncoder(w).Encode(&two)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/menu/order-items/"+orderItemID:
			w.WriteHeader(http.StatusNoContent)

		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "not found"})
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	cats, err := c.ListMenuCategories(ctx)
	if err != nil {
		t.Fatalf("ListMenuCategories: %v", err)
	}
	if len(cats) != 1 || cats[0].Name != "Mains" {
		t.Fatalf("unexpected categories %#v", cats)
	}
	if _, err := c.CreateMenuCategory(ctx, CreateMenuCategoryRequest{Name: "Mains"}); err != nil {
		t.Fatalf("CreateMenuCategory: %v", err)
	}
	if _, err := c.UpdateMenuCategory(ctx, categoryID, UpdateMenuCategoryRequest{Position: 3}); err != nil {
		t.Fatalf("UpdateMenuCategory: %v", err)
	}
	if err := c.DeleteMenuCategory(ctx, categoryID); err != nil {
		t.Fatalf("DeleteMenuCategory: %v", err)
	}

	items, err := c.ListMenuItems(ctx, ListMenuItemsParams{CategoryID: categoryID})
	if err != nil {
		t.Fatalf("ListMenuItems: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Paella" {
		t.Fatalf("unexpected items %#v", items)
	}
	if _, err := c.GetMenuItem(ctx, itemID); err != nil {
		t.Fatalf("GetMenuItem: %v", err)
	}
	if _, err := c.CreateMenuItem(ctx, CreateMenuItemRequest{CategoryID: categoryID, Name: "Paella", Price: 1850}); err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}
	if _, err := c.UpdateMenuItem(ctx, itemID, UpdateMenuItemRequest{Price: 1950}); err != nil {
		t.Fatalf("UpdateMenuItem: %v", err)
	}
	if err := c.DeleteMenuItem(ctx, itemID); err != nil {
		t.Fatalf("DeleteMenuItem: %v", err)
	}

	orders, err := c.ListOrders(ctx, "")
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("unexpected orders %#v", orders)
	}
	full, err := c.GetOrder(ctx, orderID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if len(full.Items) != 1 {
		t.Fatalf("line items missing: %#v", full)
	}
	if _, err := c.CreateOrder(ctx, CreateOrderRequest{TableID: tableID}); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	served, err := c.ChangeOrderStatus(ctx, orderID, ChangeOrderStatusRequest{Status: "served"})
	if err != nil {
		t.Fatalf("ChangeOrderStatus: %v", err)
	}
	if served.Status != "served" {
		t.Fatalf("status = %s", served.Status)
	}
	if err := c.DeleteOrder(ctx, orderID); err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}

	lines, err := c.ListOrderItems(ctx, orderID)
	if err != nil {
		t.Fatalf("ListOrderItems: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("unexpected order items %#v", lines)
	}
	if _, err := c.AddOrderItem(ctx, AddOrderItemRequest{OrderID: orderID, MenuItemID: itemID, Quantity: 1}); err != nil {
		t.Fatalf("AddOrderItem: %v", err)
	}
	two, err := c.UpdateOrderItem(ctx, orderItemID, UpdateOrderItemRequest{Quantity: 2})
	if err != nil {
		t.Fatalf("UpdateOrderItem: %v", err)
	}
	if two.Quantity != 2 {
		t.Fatalf("quantity update lost: %#v", two)
	}
	if err := c.DeleteOrderItem(ctx, orderItemID); err != nil {
		t.Fatalf("DeleteOrderItem: %v", err)
	}
}
