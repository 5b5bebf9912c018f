//go:build !windows

package exiftool

import "os/exec"

func hideWindow(cmd *exec.Cmd) {}
