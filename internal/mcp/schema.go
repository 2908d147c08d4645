package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// WithArray adds an array property to the tool schema.
func WithArray(name string, opts ...mcp.PropertyOption) mcp.ToolOption {
	return withProperty(name, "array", opts)
}

func withProperty(name string, propertyType string, opts []mcp.PropertyOption) mcp.ToolOption {
	return func(t *mcp.Tool) {
		schema := map[string]any{
			"type": propertyType,
		}

		for _, opt := range opts {
			opt(schema)
		}

		// Remove required from property schema and add to InputSchema.required
		if required, ok := schema["required"].(bool); ok && required {
			delete(schema, "required")
			if t.InputSchema.Required == nil {
				t.InputSchema.Required = []string{name}
			} else {
				t.InputSchema.Required = append(t.InputSchema.Required, name)
			}
		}

		t.InputSchema.Properties[name] = schema
	}
}
