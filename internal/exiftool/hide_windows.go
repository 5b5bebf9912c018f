//go:build windows

package exiftool

import (
	"os/exec"
	"syscall"
)

// hideWindow keeps the console of exiftool.exe from flashing over the GUI
func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
