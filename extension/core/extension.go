// Package core provides the core extension for pathcch.
// It registers commands: config, guide, log, serve, version.
package core

import (
	"github.com/jpl-au/pathcch/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance.
var _ extension.Extension = (*Extension)(nil)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the commands that manage pathcch itself rather than paths.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newGuideCmd(),
		newLogCmd(),
		newServeCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil. The guide tool is registered by the server itself.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}
