package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/metadata-editor/internal/model"
)

// errReported means the failure text was already printed
var errReported = errors.New("failed")

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print the metadata of a file",
		Long: `Print the metadata of a file exactly as ExifTool reports it.

Examples:
  metadata-editor show photo.jpg
  metadata-editor show --exiftool /usr/bin/exiftool photo.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := opts.service().ReadMetadata(context.Background(), args[0])
			return printResult(cmd, result)
		},
	}
}

// printResult writes the result text; failures go to stderr and fail the command
func printResult(cmd *cobra.Command, result model.Result) error {
	if result.Kind == model.ResultToolInvocationFailed {
		fmt.Fprintln(cmd.ErrOrStderr(), result.Text)
		return errReported
	}
	fmt.Fprint(cmd.OutOrStdout(), result.Text)
	if len(result.Text) > 0 && result.Text[len(result.Text)-1] != '\n' {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}
