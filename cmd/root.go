/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE initialises extensions lazily. Commands that
// manage config or print static information (config, guide, version) skip
// initialisation so they keep working when the config file is broken.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/jpl-au/pathcch/internal/config"
	"github.com/jpl-au/pathcch/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathcch",
	Short: "Fixed-capacity Windows path buffer operations",
	Long: `Apply Windows path canonicalisation primitives to paths held in
fixed-capacity UTF-16 buffers: ensure a trailing backslash (sep), strip
the \\?\ extended-length prefix (strip), or report which prefix a path
carries (classify).`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Detect author if not explicitly set
		if author == "" {
			author = detectAuthor()
		}

		if standaloneCommands[topLevelCmdName(cmd)] {
			return nil
		}
		if err := initExtensions(); err != nil {
			if JSON() {
				_ = PrintJSON(map[string]string{"error": err.Error()})
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
			}
			return fmt.Errorf("initialise extensions: %w", err)
		}
		return nil
	},
}

// standaloneCommands bypass extension initialisation.
var standaloneCommands = map[string]bool{
	"config":  true,
	"guide":   true,
	"version": true,
	"help":    true,
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "pathcch sep C:\Users", returns "sep".
// For "pathcch config buffer.size 512", returns "config".
func topLevelCmdName(cmd *cobra.Command) string {
	// Walk up until we find a command whose parent has no parent (the root)
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Loads config, opens audit logging, registers extensions and executes the
// command. Exit code 1 indicates error.
func Execute() {
	cfg, cfgErr = config.Load()

	if cfg == nil || cfg.LogEnabled() {
		// Warn if the audit log cannot be opened, but continue
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
		defer log.Close()
	}
	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	registerExtensions()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
