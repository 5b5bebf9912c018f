package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Operation identifies what an invocation asked the tool to do
type Operation string

const (
	OperationRead  Operation = "read"
	OperationStrip Operation = "strip"
	OperationTags  Operation = "tags"
)

// Invocation records a single run of the external metadata tool
type Invocation struct {
	ID         string
	Op         Operation
	Path       string   // file the tool was pointed at
	Tool       string   // executable used
	Args       []string // arguments passed to the tool, file included
	Status     Status
	ExitCode   int    // -1 if the process never exited
	LastError  string // set when the process could not be run
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the invocation ran, or zero if it has not finished
func (inv *Invocation) Duration() time.Duration {
	if inv.FinishedAt.IsZero() || inv.StartedAt.IsZero() {
		return 0
	}
	return inv.FinishedAt.Sub(inv.StartedAt)
}

// CommandLine returns the invocation as a shell-like command line
func (inv *Invocation) CommandLine() string {
	var b strings.Builder
	b.WriteString(filepath.Base(inv.Tool))
	for _, arg := range inv.Args {
		b.WriteByte(' ')
		if strings.ContainsAny(arg, " \t") {
			b.WriteString(fmt.Sprintf("%q", arg))
		} else {
			b.WriteString(arg)
		}
	}
	return b.String()
}

// GetDisplayTitle returns the file name, or the operation when no file is known
func (inv *Invocation) GetDisplayTitle() string {
	if inv.Path == "" {
		return string(inv.Op)
	}
	parts := strings.FieldsFunc(inv.Path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return inv.Path
	}
	return parts[len(parts)-1]
}
