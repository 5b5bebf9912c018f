package model

// Package model defines domain data structures used across the app: the
// current file selection, tool invocation records, and the result type that
// separates successful output from failed invocations. Structures are plain
// values so the UI and CLI can render them directly.
