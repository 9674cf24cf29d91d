package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tablefront/tablefront-go/client"
)

// AvailabilityHandler exposes the check_availability tool.
type AvailabilityHandler struct {
	client *client.Client
}

func NewAvailabilityHandler(c *client.Client) *AvailabilityHandler {
	return &AvailabilityHandler{client: c}
}

// RegisterTools registers the check_availability tool.
func (ah *AvailabilityHandler) RegisterTools(s *server.MCPServer) error {
	availabilityTool := mcp.NewTool("check_availability",
		mcp.WithDescription("Check which dining tables are free for a given date, time and party size."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Date in YYYY-MM-DD format")),
		mcp.WithString("time", mcp.Required(), mcp.Description("Time in HH:MM format")),
		mcp.WithNumber("party_size", mcp.Description("Number of guests (default 2)")),
	)
	s.AddTool(availabilityTool, ah.handleCheckAvailability)
	return nil
}

func (ah *AvailabilityHandler) handleCheckAvailability(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, _ := req.RequireString("date")
	at, _ := req.RequireString("time")

	partySize := 2
	if v, ok := req.GetArguments()["party_size"].(float64); ok && v >= 1 {
		partySize = int(v)
	}

	resp, err := ah.client.CheckAvailability(ctx, client.AvailabilityRequest{
		Date:      date,
		Time:      at,
		PartySize: partySize,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("availability check failed: %v", err)), nil
	}

	b, _ := json.MarshalIndent(resp, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}
