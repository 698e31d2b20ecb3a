package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/pathnorm/pkg/pathnorm"
)

// NewRootInfoCmd builds the root subcommand, printing the root length and
// qualification of each argument.
func NewRootInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "root PATH [PATH...]",
		Short: "Classify the root of path strings",
		Long: `Classify the root of path strings under the target operating system's
grammar: how many leading characters form the root, and whether that root is
fully qualified. Output is one tab-separated line per path: length,
qualification, input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cmd.Flags().GetString("os")
			if err != nil {
				return fmt.Errorf("invalid argument: %w", err)
			}

			target, err := pathnorm.ParseOperatingSystem(name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, arg := range args {
				root, err := pathnorm.RootLength(arg, target)
				if err != nil {
					return fmt.Errorf("classify %q: %w", arg, err)
				}

				fmt.Fprintf(out, "%d\t%t\t%s\n", root.Length, root.FullyQualified, arg)
			}

			return nil
		},
	}

	cmd.Flags().String("os", "native", "Target operating system (windows, linux, macos, native)")

	return cmd
}
