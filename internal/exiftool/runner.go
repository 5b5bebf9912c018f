package exiftool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

// RunOutput is what a finished tool process produced
type RunOutput struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// ExecRunner runs the tool with os/exec and waits for it to exit
type ExecRunner struct{}

// NewExecRunner creates a runner backed by os/exec
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts name with args and blocks until it exits. A non-zero exit code
// is reported in RunOutput, not as an error; an error means the process
// could not be run at all.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (RunOutput, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	hideWindow(cmd)

	err := cmd.Run()
	out := RunOutput{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		out.ExitCode = cmd.ProcessState.ExitCode()
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return out, nil
	case errors.As(err, &exitErr):
		return out, nil
	default:
		return out, startError(name, err)
	}
}

// startError classifies a failure to start the tool process
func startError(name string, err error) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %v", ErrToolNotFound, name, err)
	}
	return fmt.Errorf("failed to run %s: %w", name, err)
}
