package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tablefront/tablefront-go/client"
)

// MenuHandler exposes menu browsing tools.
type MenuHandler struct {
	client *client.Client
}

func NewMenuHandler(c *client.Client) *MenuHandler {
	return &MenuHandler{client: c}
}

// RegisterTools registers list_menu_categories and list_menu_items.
func (mh *MenuHandler) RegisterTools(s *server.MCPServer) error {
	categoriesTool := mcp.NewTool("list_menu_categories",
		mcp.WithDescription("List menu categories ordered by position."),
	)
	s.AddTool(categoriesTool, mh.handleListCategories)

	itemsTool := mcp.NewTool("list_menu_items",
		mcp.WithDescription("List menu items, optionally filtered by category or availability."),
		mcp.WithString("category_id", mcp.Description("Filter by category UUID")),
		mcp.WithBoolean("available_only", mcp.Description("Only items currently available")),
	)
	s.AddTool(itemsTool, mh.handleListItems)
	return nil
}

func (mh *MenuHandler) handleListCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categories, err := mh.client.ListMenuCategories(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list categories failed: %v", err)), nil
	}

	payload := map[string]interface{}{"categories": categories, "count": len(categories)}
	b, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}

func (mh *MenuHandler) handleListItems(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := client.ListMenuItemsParams{}
	if v, ok := req.GetArguments()["category_id"].(string); ok {
		params.CategoryID = v
	}
	if v, ok := req.GetArguments()["available_only"].(bool); ok {
		params.AvailableOnly = v
	}

	items, err := mh.client.ListMenuItems(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list items failed: %v", err)), nil
	}

	payload := map[string]interface{}{"items": items, "count": len(items)}
	b, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}
