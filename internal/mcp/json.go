package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// NewToolResultJSON serializes v as an indented JSON document and wraps it
// in a text tool result.
func NewToolResultJSON(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
