package platform

// Package platform contains OS/platform integration and external tooling glue:
// locating the bundled metadata tool, and revealing or opening files.
