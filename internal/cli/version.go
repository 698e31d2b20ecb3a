package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/pathnorm/internal/version"
)

// NewVersionCmd builds the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetVersionString())
		},
	}
}
