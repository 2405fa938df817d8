// mcp.go defines types for MCP tool registration by extensions.
//
// Separated from extension.go to isolate MCP-specific concerns. Not all
// extensions need MCP tools - some only provide CLI commands.

package extension

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool pairs an MCP tool definition with its handler.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler processes MCP tool requests.
// The Context provides access to the path service and configuration.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

// StringArg extracts a string argument, returning def if it is missing or
// not a string. Tools stay permissive so an LLM omitting an optional
// argument gets the default rather than a type error.
func StringArg(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// IntArg extracts an integer argument, returning def if it is missing or
// not a number. JSON numbers decode as float64; fractional values and values
// outside the int range are errors rather than being truncated.
func IntArg(req mcp.CallToolRequest, name string, def int) (int, error) {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def, nil
	}
	v, ok := args[name].(float64)
	if !ok {
		return def, nil
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%s must be an integer, got %v", name, v)
	}
	if v < math.MinInt || v >= math.MaxInt {
		return 0, fmt.Errorf("%s is out of range: %v", name, v)
	}
	return int(v), nil
}

// JSONResult serialises v as indented JSON and wraps it in a text result.
// Marshalling failures become tool errors rather than Go errors.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
