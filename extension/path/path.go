// Package path provides the path extension for pathcch.
// It registers commands: sep, strip, classify.
package path

import (
	"fmt"
	"io"

	"github.com/jpl-au/pathcch/cmd"
	"github.com/jpl-au/pathcch/extension"
	"github.com/jpl-au/pathcch/internal/edit"
	"github.com/jpl-au/pathcch/internal/progress"
	"github.com/jpl-au/pathcch/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the path extension.
type Extension struct {
	svc service.Service
}

// Compile-time interface compliance.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "path".
func (e *Extension) Name() string { return "path" }

// Init receives the shared service from the extension context.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns the buffer editing and inspection commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newSepCmd(),
		e.newStripCmd(),
		e.newClassifyCmd(),
	}
}

// MCPTools returns one tool per command.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		sepTool(),
		stripTool(),
		classifyTool(),
	}
}

// --- sep command ---

func (e *Extension) newSepCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "sep <path>... | -",
		Short: "Ensure a path ends with a backslash",
		Long: `Append a trailing backslash to each path unless it already has one,
inside a buffer of --size characters (terminator included).

  pathcch sep 'C:\Users'              # C:\Users\  changed  offset=9 remaining=251
  pathcch sep --size 9 'C:\Users'     # insufficient_buffer
  pathcch sep --diff 'C:\Users'       # show before/after
  dir /b | pathcch sep -              # read paths from stdin

offset is where the new terminator sits; remaining is the room left from
there, terminator included.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return e.runEdit(c, args, service.OpSep, e.svc.Sep)
		},
	}
	addEditFlags(c)
	return c
}

// --- strip command ---

func (e *Extension) newStripCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "strip <path>... | -",
		Short: `Remove a \\?\ or \\?\UNC\ prefix`,
		Long: `Remove the extended-length prefix from each path, inside a buffer of
--size characters (terminator included, at most 32768).

  pathcch strip '\\?\C:\Temp'             # C:\Temp
  pathcch strip '\\?\UNC\server\share'    # \\server\share
  pathcch strip 'relative\path'           # unchanged

\\?\UNC\ is matched case-insensitively. \\?\ must be followed by a drive
letter and a colon; other \\?\ paths such as volume GUIDs are unchanged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return e.runEdit(c, args, service.OpStrip, e.svc.Strip)
		},
	}
	addEditFlags(c)
	return c
}

func addEditFlags(c *cobra.Command) {
	c.Flags().BoolP(extension.FlagDiff, "d", false, "Show the before/after view")
	c.Flags().Bool(extension.FlagNoColour, false, "Disable colour in the diff")
}

// runEdit applies op to every path. Each path gets its own buffer; one
// failure does not stop the rest.
func (e *Extension) runEdit(c *cobra.Command, args []string, name string, op edit.Op) error {
	paths, err := expandArgs(c, args)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	showDiff, _ := c.Flags().GetBool(extension.FlagDiff)
	noColour, _ := c.Flags().GetBool(extension.FlagNoColour)
	opts := edit.Options{
		Size:   cmd.Size(),
		Diff:   showDiff,
		Colour: !noColour && cmd.Terminal(),
	}

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	// Progress only when results are going somewhere other than the terminal
	pw := c.ErrOrStderr()
	if cmd.Terminal() {
		pw = io.Discard
	}
	prog := progress.New(pw, name, len(paths))
	defer prog.Done()

	failed := 0
	for _, p := range paths {
		o, err := edit.Run(c.Context(), w, op, p, opts)
		prog.Step()
		if cmd.JSON() {
			_ = cmd.PrintJSON(o)
		}
		if err == nil {
			continue
		}
		if ctxErr := c.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		failed++
		if o.Status == "" && !cmd.JSON() {
			fmt.Fprintf(c.ErrOrStderr(), "%s %q: %v\n", name, p, err)
		}
	}
	return finish(c, name, failed, len(paths))
}

// --- classify command ---

func (e *Extension) newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <path>... | -",
		Short: "Report which extended-length prefix a path carries",
		Long: `Print the prefix kind of each path without editing it.

  pathcch classify '\\?\C:\Temp'            # disk  \\?\C:\Temp
  pathcch classify '\\?\unc\server\share'   # unc   \\?\unc\server\share
  pathcch classify 'C:\Temp'                # none  C:\Temp`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runClassify,
	}
}

func (e *Extension) runClassify(c *cobra.Command, args []string) error {
	paths, err := expandArgs(c, args)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	failed := 0
	for _, p := range paths {
		o, err := e.svc.Classify(c.Context(), p)
		if cmd.JSON() {
			_ = cmd.PrintJSON(o)
		}
		if err != nil {
			if ctxErr := c.Context().Err(); ctxErr != nil {
				return ctxErr
			}
			failed++
			if !cmd.JSON() {
				fmt.Fprintf(c.ErrOrStderr(), "classify %q: %v\n", p, err)
			}
			continue
		}
		if !cmd.JSON() {
			fmt.Fprintf(cmd.Out(), "%-5s %s\n", o.Kind, o.Output)
		}
	}
	return finish(c, service.OpClassify, failed, len(paths))
}

// expandArgs replaces a "-" argument with the paths read from stdin.
func expandArgs(c *cobra.Command, args []string) ([]string, error) {
	var paths []string
	stdinRead := false
	for _, a := range args {
		if a != "-" {
			paths = append(paths, a)
			continue
		}
		if stdinRead {
			continue
		}
		stdinRead = true
		in, err := edit.ReadPaths(c.InOrStdin())
		if err != nil {
			return nil, err
		}
		paths = append(paths, in...)
	}
	return paths, nil
}

// finish turns per-path failures into the command's exit status. The
// failures have already been reported, so usage is never printed and JSON
// output gets no trailing error object.
func finish(c *cobra.Command, name string, failed, total int) error {
	if failed == 0 {
		return nil
	}
	c.SilenceUsage = true
	if cmd.JSON() {
		c.SilenceErrors = true
	}
	return fmt.Errorf("%s: %d of %d paths failed", name, failed, total)
}
