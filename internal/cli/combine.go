package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/pathnorm/pkg/pathnorm"
)

var errConflictingFlags = errors.New("conflicting flags")

// NewCombineCmd builds the combine subcommand, joining its arguments into a
// single validated path.
func NewCombineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine SEGMENT [SEGMENT...]",
		Short: "Combine path segments into one path",
		Long: `Combine path segments into one path. Segments after the first must be
relative under the default policy, so a rooted later segment cannot displace
the base path. The joined result is normalized like the normalize command.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()

			absolute, _ := flags.GetBool("absolute")
			relative, _ := flags.GetBool("relative")
			strictEmpty, _ := flags.GetBool("strict-empty")

			if absolute && relative {
				return fmt.Errorf("%w: --absolute and --relative", errConflictingFlags)
			}

			if strictEmpty {
				opts = opts.WithErrorOnEmptySegments(true)
			}

			var p string

			switch {
			case absolute:
				p, err = pathnorm.CombineToAbsolute(opts, args...)
			case relative:
				p, err = pathnorm.CombineRelative(opts, args...)
			default:
				p, err = pathnorm.Combine(opts, args...)
			}

			if err != nil {
				return fmt.Errorf("combine: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), p)

			return nil
		},
	}

	addOptionFlags(cmd)
	cmd.Flags().Bool("absolute", false, "Require a fully qualified first segment")
	cmd.Flags().Bool("relative", false, "Require every segment to be relative")
	cmd.Flags().Bool("strict-empty", false, "Reject empty segments instead of dropping them")

	return cmd
}
