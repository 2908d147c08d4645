package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	imcp "github.com/soralis/excel-mcp-server/internal/mcp"
)

type HealthCheckResponse struct {
	Status    string `json:"status"`
	Server    string `json:"server"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

func AddExcelHealthCheckTool(server *server.MCPServer, version string) {
	server.AddTool(mcp.NewTool("excel_health_check",
		mcp.WithDescription("Health check endpoint for monitoring"),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return healthCheck(version)
	})
}

func healthCheck(version string) (*mcp.CallToolResult, error) {
	return imcp.NewToolResultJSON(HealthCheckResponse{
		Status:    "healthy",
		Server:    "excel-mcp-server",
		Version:   version,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
