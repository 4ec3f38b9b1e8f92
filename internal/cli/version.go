package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "resumescore version %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Git commit: %s\n", GitCommit)
		},
	}
}
