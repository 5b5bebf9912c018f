// Package cli implements the command line mode of metadata-editor.
//
// The binary starts the GUI unless its first argument is a known subcommand.
package cli
