package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/pathnorm/pkg/pathnorm"
)

// NewNormalizeCmd builds the normalize subcommand, printing one normalized
// path per argument.
func NewNormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize PATH [PATH...]",
		Short: "Normalize path strings",
		Long: `Normalize path strings: compose Unicode, resolve . and .. segments against
the path's root, and rewrite separators, according to the selected preset,
profile, and flags. Paths are processed as text; the filesystem is never
consulted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, arg := range args {
				p, err := pathnorm.Normalize(arg, opts)
				if err != nil {
					return fmt.Errorf("normalize %q: %w", arg, err)
				}

				fmt.Fprintln(out, p)
			}

			return nil
		},
	}

	addOptionFlags(cmd)

	return cmd
}
