// tools_guide.go implements the MCP tool for accessing help content.
//
// The guide tool provides LLMs with documentation about pathcch commands
// and buffer rules, enabling self-service help without external lookups.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/pathcch/extension"
	"github.com/jpl-au/pathcch/guide"
	"github.com/jpl-au/pathcch/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// guideHandler handles pathcch_guide tool calls, logging them as author.
func guideHandler(author string) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return getGuide(author, req)
	}
}

func getGuide(author string, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := extension.StringArg(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:guide", "read").Author(author).Detail("topic", topic).Write(err)

	if err != nil {
		// If topic not found, return list of available topics
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return extension.JSONResult(map[string]any{
			"error":            fmt.Sprintf("guide %q not found", topic),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}
