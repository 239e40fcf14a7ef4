package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nutritrack/nutritrack-client/client"
)

// jsonResult renders v as a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// errorResult turns an SDK error into a tool error. HTTP failures keep
// their status and body so the model can react to validation messages.
func errorResult(tool string, err error) *mcp.CallToolResult {
	if he, ok := client.AsHTTPError(err); ok {
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: HTTP %d: %s", tool, he.StatusCode, he.Body))
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", tool, err))
}
