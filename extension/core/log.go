// log.go implements the "pathcch log" command for reading the audit log.

package core

import (
	"fmt"
	"time"

	"github.com/jpl-au/pathcch/cmd"
	"github.com/jpl-au/pathcch/extension"
	"github.com/jpl-au/pathcch/internal/duration"
	"github.com/jpl-au/pathcch/internal/log"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show recent audit log entries",
		Long: `Show recent operations from the audit log, newest first.

  pathcch log            # last 20 entries
  pathcch log -n 5       # last 5 entries
  pathcch log --since 1d # entries from the last day
  pathcch log -o json    # as JSON

The log lives in ~/.pathcch/log/pathcch-log.db. Disable it with
'pathcch config log.enabled false'.`,
		Args: cobra.NoArgs,
		RunE: runLog,
	}
	c.Flags().IntP(extension.FlagLimit, "n", 20, "Maximum number of entries")
	c.Flags().String(extension.FlagSince, "", "Only entries newer than this (12h, 7d, 4w, 3m)")
	return c
}

func runLog(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	if limit < 1 {
		return cmd.PrintJSONError(fmt.Errorf("--limit must be at least 1, got %d", limit))
	}

	var since time.Time
	if s, _ := c.Flags().GetString(extension.FlagSince); s != "" {
		d, err := duration.Parse(s)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("--since: %w", err))
		}
		since = time.Now().Add(-d)
	}

	entries, err := log.RecentSince(limit, since)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("reading audit log: %w", err))
	}

	if cmd.JSON() {
		if entries == nil {
			entries = []log.Entry{}
		}
		return cmd.PrintJSON(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.Out(), "No entries")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(cmd.Out(), "%s  %-14s %-10s %s", time.Unix(e.Start, 0).Format(time.DateTime), e.Source, e.Action, e.Path)
		if e.Status != "" {
			fmt.Fprintf(cmd.Out(), "  %s", e.Status)
		}
		if e.Error != "" {
			fmt.Fprintf(cmd.Out(), "  error: %s", e.Error)
		}
		fmt.Fprintln(cmd.Out())
	}
	return nil
}
