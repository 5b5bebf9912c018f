package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/metadata-editor/internal/exiftool"
)

func newTagsCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tags <file>",
		Short: "Print the tags of a file as key/value pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := opts.service()
			service.SetTagExtractor(newTagExtractor(service.ToolPath()))
			tags, err := service.ReadTags(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to read tags: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(tags)
			}
			for _, name := range exiftool.SortedTagNames(tags) {
				fmt.Fprintf(out, "%s: %s\n", name, tags[name])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print tags as a JSON object")
	return cmd
}
