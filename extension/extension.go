// Package extension provides the plugin architecture for pathcch. Extensions
// encapsulate related functionality (commands, MCP tools) and register at
// init time, enabling modular feature development without touching core code.
package extension

import "github.com/spf13/cobra"

// Extension defines the contract for pathcch extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable is implemented by extensions that need the shared service.
// Init is called once, before the first command that uses the extension runs.
type Initializable interface {
	Init(ctx Context) error
}
