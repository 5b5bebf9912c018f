package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			root := cmd.Root()
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", root.Name(), root.Version)
		},
	}
}
