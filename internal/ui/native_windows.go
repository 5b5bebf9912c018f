//go:build windows

package ui

import "github.com/TheTitanrain/w32"

// Message box styles. The confirmation focuses No so Enter never strips a file.
const (
	confirmBoxFlags = w32.MB_YESNO | w32.MB_ICONQUESTION | w32.MB_DEFBUTTON2
	warnBoxFlags    = w32.MB_OK | w32.MB_ICONWARNING
)

// Confirm shows a native Yes/No message box with No as the default button
func (d *NativeDialogs) Confirm(title, message string, onAnswer func(yes bool)) {
	onAnswer(w32.MessageBox(w32.HWND(0), message, title, confirmBoxFlags) == w32.IDYES)
}

// Warn shows a native warning box
func (d *NativeDialogs) Warn(title, message string) {
	w32.MessageBox(w32.HWND(0), message, title, warnBoxFlags)
}
