package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/metadata-editor/internal/exiftool"
	"github.com/ytget/metadata-editor/internal/platform"
)

// Version is set by main.go
var Version = "dev"

// Replaced in tests.
var (
	newRunner       = func() exiftool.Runner { return exiftool.NewExecRunner() }
	newTagExtractor = func(toolPath string) exiftool.TagExtractor { return exiftool.NewTagReader(toolPath) }
)

// subcommands are the first arguments that switch the binary into CLI mode
var subcommands = map[string]bool{
	"show": true, "strip": true, "tags": true, "locate": true,
	"help": true, "--help": true, "-h": true,
	"version": true, "--version": true, "-v": true,
}

// options are the flags shared by every command
type options struct {
	toolPath string
}

// resolveTool returns the tool path from --exiftool or the bundled location
func (o *options) resolveTool() (string, platform.RunMode) {
	return platform.ResolveToolPath(o.toolPath)
}

func (o *options) service() *exiftool.Service {
	toolPath, _ := o.resolveTool()
	return exiftool.NewService(toolPath, newRunner())
}

// newRootCmd builds the command tree
func newRootCmd(version string, stdin io.Reader) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "metadata-editor",
		Short: "View and remove file metadata with ExifTool",
		Long: `metadata-editor shows the metadata of a file as reported by ExifTool
and can strip all metadata from it, overwriting the original.

Run without arguments to start the graphical interface.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&opts.toolPath, "exiftool", "", "Path to the exiftool executable (default: bundled copy)")

	rootCmd.AddCommand(
		newShowCmd(opts),
		newStripCmd(opts, stdin),
		newTagsCmd(opts),
		newLocateCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the CLI application.
// Returns true if CLI mode was activated, false if GUI should run instead.
func Execute(version string, args []string) bool {
	Version = version

	if len(args) < 1 || !subcommands[args[0]] {
		return false
	}

	cmd := newRootCmd(version, os.Stdin)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
	return true
}
