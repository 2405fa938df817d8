// Package mcp implements the Model Context Protocol server, exposing pathcch
// operations to LLMs. Tools come from the registered extensions plus a
// guide tool provided here.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/pathcch/extension"
	"github.com/jpl-au/pathcch/internal/config"
	"github.com/jpl-au/pathcch/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
func Serve(cfg *config.Config) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(cfg)

	slog.Info("pathcch MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with every extension tool registered.
// Tool calls are attributed to the configured author, or "mcp" when none
// is set.
func NewServer(cfg *config.Config) *server.MCPServer {
	if cfg == nil {
		cfg = &config.Config{}
	}
	name := author(cfg)
	extCtx := extension.NewContext(service.New(service.Options{Author: name, Source: "mcp"}), cfg)

	s := server.NewMCPServer(
		"pathcch",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, extCtx, name)
	return s
}

// author resolves the audit log author for tool calls.
func author(cfg *config.Config) string {
	if cfg.Author.Name != "" {
		return cfg.Author.Name
	}
	return "mcp"
}

// registerTools exposes extension tools and the guide tool.
func registerTools(s *server.MCPServer, extCtx extension.Context, name string) {
	for _, ext := range extension.All() {
		for _, t := range ext.MCPTools() {
			s.AddTool(t.Tool, bind(extCtx, t.Handler))
			slog.Debug("registered tool", "extension", ext.Name(), "tool", t.Tool.Name)
		}
	}

	s.AddTool(
		mcp.NewTool("pathcch_guide",
			mcp.WithDescription("Read the pathcch guide. Call with no topic for the overview."),
			mcp.WithString("topic", mcp.Description("Guide topic: sep, strip, mcp")),
		),
		guideHandler(name),
	)
}

// bind closes an extension handler over the shared context.
func bind(extCtx extension.Context, h extension.MCPHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return h(ctx, extCtx, req)
	}
}
