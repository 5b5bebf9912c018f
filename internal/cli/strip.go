package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// ConfirmPrompt is asked before metadata is removed without --yes
const ConfirmPrompt = "Are you sure you want to remove metadata? [y/N] "

func newStripCmd(opts *options, stdin io.Reader) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "strip <file>",
		Short: "Remove all metadata from a file in place",
		Long: `Remove all metadata from a file. The original file is overwritten
and no backup copy is kept.

Examples:
  metadata-editor strip photo.jpg
  metadata-editor strip --yes photo.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd.OutOrStdout(), stdin) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			result := opts.service().StripMetadata(context.Background(), args[0])
			return printResult(cmd, result)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

// confirm asks the question on out and reads the answer; anything but y/yes is No
func confirm(out io.Writer, in io.Reader) bool {
	fmt.Fprint(out, ConfirmPrompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
