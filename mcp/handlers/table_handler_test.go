package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tablefront/tablefront-go/client"
)

func TestListTablesTool(t *testing.T) {
	// stub backend table endpoint
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/table/tables" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("status") != "available" {
			t.Fatalf("status arg not forwarded: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
            "tables": [{"id": "3f1d9a32-6a1f-4c28-9c27-0a2e4cbb61af", "number": 7, "capacity": 4, "status": "available"}],
            "count": 1
        }`))
	}))
	defer ts.Close()

	sdk := client.New(ts.URL)
	th := NewTableHandler(sdk)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]any{
				"status": "available",
			},
		},
	}

	res, err := th.handleListTables(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if res == nil {
		t.Fatalf("nil result")
	}
}

func TestCheckAvailabilityTool(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/reservations/check-availability" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"available": true, "tables": []}`))
	}))
	defer ts.Close()

	sdk := client.New(ts.URL)
	ah := NewAvailabilityHandler(sdk)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]any{
				"date":       "2026-09-01",
				"time":       "19:00",
				"party_size": 4.0,
			},
		},
	}

	res, err := ah.handleCheckAvailability(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if res == nil {
		t.Fatalf("nil result")
	}
}
