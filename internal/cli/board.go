package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seqboard/pkg/board"
	"github.com/matzehuels/seqboard/pkg/errors"
	"github.com/matzehuels/seqboard/pkg/layout"
	"github.com/matzehuels/seqboard/pkg/observability"
)

// mappingOpts selects the replacement mapping. With neither flag set the
// layout's own mapping is used.
type mappingOpts struct {
	replace []string // ordered KEY=VALUE pairs
	none    bool     // use the empty mapping
}

func (o *mappingOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&o.replace, "replace", "r", nil, "replacement as KEY=VALUE, applied in flag order (repeatable)")
	cmd.Flags().BoolVar(&o.none, "no-replace", false, "print cells without any replacement")
	cmd.MarkFlagsMutuallyExclusive("replace", "no-replace")
}

func (o *mappingOpts) resolve(defaults board.Replacements) (board.Replacements, error) {
	switch {
	case o.none:
		return board.Replacements{}, nil
	case len(o.replace) > 0:
		return board.ParseReplacements(o.replace)
	default:
		return defaults, nil
	}
}

// boardOpts holds the flags of the root command.
type boardOpts struct {
	mappingOpts
	format  string // "list" or "grid"
	workers int    // rows transformed in parallel; 0 transforms sequentially
}

func (o *boardOpts) register(cmd *cobra.Command) {
	o.mappingOpts.register(cmd)
	cmd.Flags().StringVarP(&o.format, "format", "f", o.format, "output format: list, grid")
	cmd.Flags().IntVar(&o.workers, "workers", 0, "transform rows on this many goroutines (0 = sequential)")
}

// runBoard loads the default layout, applies the selected mapping and
// prints the result to the command's output.
func (c *CLI) runBoard(cmd *cobra.Command, opts boardOpts) error {
	if err := errors.ValidateFormat(opts.format, formatList, formatGrid); err != nil {
		return err
	}
	if opts.workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workers must be >= 0, got %d", opts.workers)
	}

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	l, err := layout.Default()
	if err != nil {
		return err
	}
	rs, err := opts.resolve(l.Replacements)
	if err != nil {
		return err
	}
	logger.Debug("layout loaded", "name", l.Name, "replacements", len(rs))

	out, err := transform(ctx, l.Board, rs, opts.workers)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if opts.format == formatGrid {
		_, err = fmt.Fprintln(w, renderGrid(out))
		return err
	}
	return board.Write(w, out)
}

// transform runs the board transform with hooks and timing around it.
func transform(ctx context.Context, b board.Board, rs board.Replacements, workers int) (board.Board, error) {
	prog := newProgress(loggerFromContext(ctx))
	hooks := observability.Transform()
	hooks.OnTransformStart(ctx, len(b), len(rs))
	start := time.Now()

	var (
		out board.Board
		err error
	)
	if workers > 0 {
		out, err = board.TransformConcurrent(ctx, b, rs, workers)
	} else {
		out = board.Transform(b, rs)
	}

	hooks.OnTransformComplete(ctx, len(b), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Transformed %d rows", len(out)))
	return out, nil
}
