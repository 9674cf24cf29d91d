package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tablefront/tablefront-go/client"
)

// TableHandler exposes table listing and lookup tools.
type TableHandler struct {
	client *client.Client
}

func NewTableHandler(c *client.Client) *TableHandler {
	return &TableHandler{client: c}
}

// RegisterTools registers list_tables and get_table.
func (th *TableHandler) RegisterTools(s *server.MCPServer) error {
	listTool := mcp.NewTool("list_tables",
		mcp.WithDescription("List dining tables, optionally filtered by status or minimum capacity."),
		mcp.WithString("status", mcp.Description("Filter: available|occupied|reserved")),
		mcp.WithNumber("capacity", mcp.Description("Minimum seat count")),
	)
	s.AddTool(listTool, th.handleListTables)

	getTool := mcp.NewTool("get_table",
		mcp.WithDescription("Get one dining table by its UUID."),
		mcp.WithString("table_id", mcp.Required(), mcp.Description("The UUID of the table")),
	)
	s.AddTool(getTool, th.handleGetTable)
	return nil
}

func (th *TableHandler) handleListTables(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := client.ListTablesParams{}
	if v, ok := req.GetArguments()["status"].(string); ok {
		params.Status = v
	}
	if v, ok := req.GetArguments()["capacity"].(float64); ok {
		params.Capacity = int(v)
	}

	tables, err := th.client.ListTables(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list tables failed: %v", err)), nil
	}

	payload := map[string]interface{}{"tables": tables, "count": len(tables)}
	b, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}

func (th *TableHandler) handleGetTable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tableID, _ := req.RequireString("table_id")

	table, err := th.client.GetTable(ctx, tableID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("get table failed: %v", err)), nil
	}

	b, _ := json.MarshalIndent(table, "", "  ")
	return mcp.NewToolResultText(string(b)), nil
}
