package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/metadata-editor/internal/platform"
)

func newLocateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Print the exiftool path that would be used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			toolPath, mode := opts.resolveTool()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mode: %s\n", mode)
			fmt.Fprintf(out, "path: %s\n", toolPath)
			if !platform.FileExists(toolPath) {
				fmt.Fprintln(out, "status: missing")
			} else {
				fmt.Fprintln(out, "status: found")
			}
			return nil
		},
	}
}
