package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// ErrUnresolvedNames is returned by expand when some names match no stack or package.
// The names have already been written to stderr.
var ErrUnresolvedNames = zerr.New("some names could not be resolved")

func (c *CLI) newExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand NAME...",
		Short: "Expand stack and package names into package names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, unresolved, err := c.app.Expand(args)
			if err != nil {
				return err
			}
			printLines(cmd.OutOrStdout(), resolved)
			if len(unresolved) == 0 {
				return nil
			}
			for _, name := range unresolved {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "unknown stack or package: %s\n", name)
			}
			return zerr.Wrap(ErrUnresolvedNames, fmt.Sprintf("%d unresolved", len(unresolved)))
		},
	}
}
