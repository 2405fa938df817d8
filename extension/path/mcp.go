// mcp.go defines the MCP tools for the path extension.
//
// Operation failures such as insufficient_buffer are normal results: the
// tool returns the outcome JSON with its status and HRESULT. Only bad
// arguments produce a tool error.

package path

import (
	"context"

	"github.com/jpl-au/pathcch/extension"
	"github.com/jpl-au/pathcch/internal/config"
	"github.com/jpl-au/pathcch/internal/edit"
	"github.com/mark3labs/mcp-go/mcp"
)

func sepTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("pathcch_sep",
			mcp.WithDescription(`Ensure a Windows path ends with a backslash inside a fixed-size buffer. Returns the outcome with status, hresult, offset and remaining.`),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to edit")),
			mcp.WithNumber("size", mcp.Description("Buffer size in characters, terminator included (default: buffer.size config)")),
		),
		Handler: func(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return runTool(ctx, extCtx, req, extCtx.Service().Sep)
		},
	}
}

func stripTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("pathcch_strip",
			mcp.WithDescription(`Remove a \\?\ or \\?\UNC\ extended-length prefix from a Windows path inside a fixed-size buffer (size 1-32768).`),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to edit")),
			mcp.WithNumber("size", mcp.Description("Buffer size in characters, terminator included (default: buffer.size config)")),
		),
		Handler: func(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return runTool(ctx, extCtx, req, extCtx.Service().Strip)
		},
	}
}

func classifyTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("pathcch_classify",
			mcp.WithDescription("Report the extended-length prefix kind of a Windows path: none, disk or unc."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to inspect")),
		),
		Handler: func(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			path, err := req.RequireString("path")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			o, err := extCtx.Service().Classify(ctx, path)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return extension.JSONResult(o)
		},
	}
}

func runTool(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest, fn edit.Op) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	def := config.DefaultSize
	if cfg := extCtx.Config(); cfg != nil {
		def = cfg.Size()
	}

	size, err := extension.IntArg(req, "size", def)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	o, err := fn(ctx, path, size)
	if err != nil && o.Status == "" {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(o)
}
