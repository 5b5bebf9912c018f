package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	nativedialog "github.com/sqweek/dialog"
)

// Dialogs shows the modal interactions the main window needs. Callbacks are
// not invoked when the user cancels a file selection.
type Dialogs interface {
	PickFile(title, startDir string, onPicked func(path string))
	Confirm(title, message string, onAnswer func(yes bool))
	Warn(title, message string)
	ShowError(err error)
}

// NewDialogs returns OS-native dialogs when native is true, Fyne dialogs otherwise
func NewDialogs(window fyne.Window, localization *Localization, native bool) Dialogs {
	fyneDialogs := &FyneDialogs{window: window, localization: localization}
	if !native {
		return fyneDialogs
	}
	return &NativeDialogs{fallback: fyneDialogs}
}

// FyneDialogs draws dialogs inside the application window
type FyneDialogs struct {
	window       fyne.Window
	localization *Localization
}

// PickFile shows the Fyne file-open dialog. The Fyne dialog has no title bar,
// so title is unused.
func (d *FyneDialogs) PickFile(title, startDir string, onPicked func(path string)) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, d.window)
			return
		}
		if reader == nil {
			return // cancelled
		}
		path := reader.URI().Path()
		reader.Close()
		onPicked(path)
	}, d.window)

	if startDir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(startDir)); err == nil {
			fileDialog.SetLocation(lister)
		}
	}
	fileDialog.Resize(fyne.NewSize(FileDialogWidth, FileDialogHeight))
	fileDialog.Show()
}

// Confirm shows a Yes/No question
func (d *FyneDialogs) Confirm(title, message string, onAnswer func(yes bool)) {
	confirm := dialog.NewConfirm(title, message, onAnswer, d.window)
	confirm.SetConfirmText(d.localization.GetText(KeyYes))
	confirm.SetDismissText(d.localization.GetText(KeyNo))
	confirm.Show()
}

// Warn shows an informational warning
func (d *FyneDialogs) Warn(title, message string) {
	dialog.ShowInformation(title, message, d.window)
}

// ShowError shows err in an error dialog
func (d *FyneDialogs) ShowError(err error) {
	dialog.ShowError(err, d.window)
}

// NativeDialogs uses the operating system dialogs and falls back to Fyne
// when the native file chooser cannot be opened
type NativeDialogs struct {
	fallback Dialogs
}

// PickFile shows the native file-open dialog
func (d *NativeDialogs) PickFile(title, startDir string, onPicked func(path string)) {
	builder := nativedialog.File().Title(title).Filter("All Files", "*")
	if startDir != "" {
		builder = builder.SetStartDir(startDir)
	}

	path, err := builder.Load()
	if err != nil {
		if errors.Is(err, nativedialog.ErrCancelled) {
			return
		}
		log.Printf("Native file dialog failed, using built-in dialog: %v", err)
		d.fallback.PickFile(title, startDir, onPicked)
		return
	}
	onPicked(path)
}

// ShowError shows err inside the application window
func (d *NativeDialogs) ShowError(err error) {
	d.fallback.ShowError(err)
}
