//go:build !windows

package ui

import nativedialog "github.com/sqweek/dialog"

// Confirm asks inside the application window. The GTK and Cocoa message
// boxes focus Yes, and removal must default to No.
func (d *NativeDialogs) Confirm(title, message string, onAnswer func(yes bool)) {
	d.fallback.Confirm(title, message, onAnswer)
}

// Warn shows a native message box with the error icon
func (d *NativeDialogs) Warn(title, message string) {
	nativedialog.Message("%s", message).Title(title).Error()
}
