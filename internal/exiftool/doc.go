package exiftool

// Package exiftool runs the bundled ExifTool executable. It builds the exact
// argument lists for reading and stripping metadata, captures the tool's
// output, records every invocation for the session history, and exposes a
// structured tag view backed by github.com/barasher/go-exiftool.
