package ui

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/metadata-editor/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	toolInUse    string
	onSaved      func()
	dialog       *dialog.ConfirmDialog

	// UI components
	toolPathEntry  *widget.Entry
	nativeCheck    *widget.Check
	languageSelect *widget.Select

	// language labels shown in the select, mapped back to codes on save
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values have been written.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, toolInUse string, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		toolInUse:    toolInUse,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.toolPathEntry = widget.NewEntry()
	sd.toolPathEntry.SetPlaceHolder(t(KeyExiftoolPathHint))

	browseBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseTool)
	toolPathRow := container.NewBorder(nil, nil, nil, browseBtn, sd.toolPathEntry)

	toolInUse := widget.NewLabel(fmt.Sprintf("%s: %s", t(KeyToolInUse), sd.toolInUse))
	toolInUse.Truncation = fyne.TextTruncateEllipsis

	sd.nativeCheck = widget.NewCheck(t(KeyUseNativeDialogs), nil)

	sd.languageCodes = make(map[string]string)
	labels := sd.settings.GetLanguageOptions()
	languageOptions := make([]string, 0, len(labels))
	for code, label := range labels {
		sd.languageCodes[label] = code
		languageOptions = append(languageOptions, label)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyExiftoolPath)+":"),
		toolPathRow,
		toolInUse,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyInterfaceSettings)),
		widget.NewSeparator(),

		sd.nativeCheck,
		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.toolPathEntry.SetText(sd.settings.GetExiftoolPath())
	sd.nativeCheck.SetChecked(sd.settings.GetUseNativeDialogs())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseTool lets the user pick the tool binary
func (sd *SettingsDialog) onBrowseTool() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		sd.toolPathEntry.SetText(reader.URI().Path())
		reader.Close()
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetExiftoolPath(sd.toolPathEntry.Text)
	sd.settings.SetUseNativeDialogs(sd.nativeCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
