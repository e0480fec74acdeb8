package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/seqboard/pkg/layout"
)

// glyphsCommand prints the active replacement mapping in application order.
func (c *CLI) glyphsCommand() *cobra.Command {
	var opts mappingOpts

	cmd := &cobra.Command{
		Use:   "glyphs",
		Short: "Show the suit replacement mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := layout.Default()
			if err != nil {
				return err
			}
			rs, err := opts.resolve(l.Replacements)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(rs) == 0 {
				printInfo(w, "no replacements")
				return nil
			}
			for _, r := range rs {
				printMapping(w, r.Key, r.Value)
			}
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}
