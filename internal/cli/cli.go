// Package cli implements the seqboard command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seqboard/pkg/buildinfo"
	"github.com/matzehuels/seqboard/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "seqboard"

	formatList = "list" // one sequence literal per row
	formatGrid = "grid" // bordered lipgloss table
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger and registers
// logging transform hooks.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	observability.SetTransformHooks(&logHooks{logger: c.Logger})
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand, it prints the transformed default board.
func (c *CLI) RootCommand() *cobra.Command {
	opts := boardOpts{format: formatList}

	root := &cobra.Command{
		Use:          appName,
		Short:        "Render a Sequence board with suit glyphs",
		Long:         `seqboard prints the standard Sequence board with suit codes (C, H, S, D) replaced by suit glyphs. Free corners are left as-is.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBoard(cmd, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	opts.register(root)

	root.AddCommand(c.glyphsCommand())
	root.AddCommand(c.completionCommand())

	return root
}
