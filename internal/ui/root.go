package ui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/metadata-editor/internal/config"
	"github.com/ytget/metadata-editor/internal/exiftool"
	"github.com/ytget/metadata-editor/internal/model"
	"github.com/ytget/metadata-editor/internal/platform"
)

// RootUI represents the main application window
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	inspector    exiftool.Inspector
	settings     *config.Settings
	localization *Localization
	dialogs      Dialogs
	// dialogs were injected by the caller and are not rebuilt on settings change
	fixedDialogs bool

	selection model.Selection

	// UI components
	promptLabel   *widget.Label
	selectBtn     *widget.Button
	removeBtn     *widget.Button
	selectedLabel *widget.Label
	metadataLabel *widget.Label
	metadataView  *container.Scroll

	history *HistoryWindow
}

// NewRootUI creates and initializes the main UI. A nil dialogs value selects
// native or Fyne dialogs according to the settings.
func NewRootUI(window fyne.Window, app fyne.App, inspector exiftool.Inspector, settings *config.Settings, dialogs Dialogs) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	fixedDialogs := dialogs != nil
	if !fixedDialogs {
		dialogs = NewDialogs(window, localization, settings.GetUseNativeDialogs())
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		inspector:    inspector,
		settings:     settings,
		localization: localization,
		dialogs:      dialogs,
		fixedDialogs: fixedDialogs,
	}
	ui.history = NewHistoryWindow(app, inspector, localization)

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Updates may arrive off the UI goroutine.
	ui.inspector.SetUpdateCallback(func(*model.Invocation) {
		fyne.Do(ui.history.Refresh)
	})

	ui.setupUI()
	log.Printf("RootUI initialized, tool: %s", inspector.ToolPath())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.promptLabel = widget.NewLabel(ui.localization.GetText(KeyPrompt))
	ui.promptLabel.Alignment = fyne.TextAlignCenter

	ui.selectBtn = widget.NewButton(ui.localization.GetText(KeySelectFile), ui.onSelectFile)
	ui.removeBtn = widget.NewButton(ui.localization.GetText(KeyRemoveMetadata), ui.onRemoveMetadata)
	ui.removeBtn.Importance = widget.DangerImportance

	ui.selectedLabel = widget.NewLabel("")
	ui.selectedLabel.Truncation = fyne.TextTruncateEllipsis
	ui.selectedLabel.Hide()

	ui.metadataLabel = widget.NewLabel("")
	ui.metadataLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.metadataLabel.Selectable = true
	ui.metadataView = container.NewScroll(ui.metadataLabel)

	buttons := container.NewCenter(container.NewHBox(ui.selectBtn, ui.removeBtn))
	top := container.NewVBox(ui.promptLabel, buttons, ui.selectedLabel, widget.NewSeparator())

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.metadataView))
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	showItem := fyne.NewMenuItem(ui.localization.GetText(KeyShowInFolder), ui.onRevealFile)
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenFile), ui.onOpenFile)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	historyItem := fyne.NewMenuItem(ui.localization.GetText(KeyHistory), ui.onShowHistory)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range sortedLanguageCodes(ui.localization.GetAvailableLanguages()) {
		langCode := code
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Fyne appends Quit to the first menu.
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), showItem, openItem, fyne.NewMenuItemSeparator(), settingsItem),
		fyne.NewMenu(ui.localization.GetText(KeyView), historyItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onSelectFile lets the user pick a file and shows its metadata
func (ui *RootUI) onSelectFile() {
	title := ui.localization.GetText(KeySelectFile)
	ui.dialogs.PickFile(title, ui.settings.GetLastDirectory(), func(path string) {
		log.Printf("File selected: %s", path)
		ui.displayMetadata(path)
		ui.selection.Set(path)
		ui.selectedLabel.SetText(fmt.Sprintf("%s: %s", ui.localization.GetText(KeySelectedFile), path))
		ui.selectedLabel.Show()
		if dir := platform.ParentDir(path); dir != "" {
			ui.settings.SetLastDirectory(dir)
		}
	})
}

// displayMetadata replaces the display with the tool output for path
func (ui *RootUI) displayMetadata(path string) {
	result := ui.inspector.ReadMetadata(context.Background(), path)
	if result.Kind == model.ResultToolInvocationFailed {
		log.Printf("Reading metadata failed: %v", result.Err)
	}
	ui.setMetadataText(result.Text)
}

// onRemoveMetadata strips all metadata from the selected file after confirmation
func (ui *RootUI) onRemoveMetadata() {
	path, ok := ui.selection.Path()
	if !ok {
		ui.dialogs.Warn(
			ui.localization.GetText(KeyNoFileSelected),
			ui.localization.GetText(KeySelectFileFirst),
		)
		return
	}

	ui.dialogs.Confirm(
		ui.localization.GetText(KeyConfirmDeletion),
		ui.localization.GetText(KeyConfirmRemove),
		func(yes bool) {
			if !yes {
				log.Printf("Metadata removal declined for %s", path)
				return
			}
			result := ui.inspector.StripMetadata(context.Background(), path)
			if result.Kind == model.ResultToolInvocationFailed {
				log.Printf("Removing metadata failed: %v", result.Err)
			}
			ui.setMetadataText(result.Text)
		},
	)
}

func (ui *RootUI) setMetadataText(text string) {
	ui.metadataLabel.SetText(text)
	ui.metadataView.ScrollToTop()
}

// onRevealFile shows the selected file in the system file manager
func (ui *RootUI) onRevealFile() {
	path, ok := ui.selection.Path()
	if !ok {
		ui.warnNoSelection()
		return
	}
	if err := platform.OpenFileInManager(path); err != nil {
		log.Printf("Error revealing file %s: %v", path, err)
		ui.dialogs.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err))
	}
}

// onOpenFile opens the selected file with the default application
func (ui *RootUI) onOpenFile() {
	path, ok := ui.selection.Path()
	if !ok {
		ui.warnNoSelection()
		return
	}
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		log.Printf("Error opening file %s: %v", path, err)
		ui.dialogs.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err))
	}
}

func (ui *RootUI) warnNoSelection() {
	ui.dialogs.Warn(
		ui.localization.GetText(KeyNoFileSelected),
		ui.localization.GetText(KeySelectFileFirst),
	)
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.inspector.ToolPath(), ui.onSettingsSaved).Show()
}

// onSettingsSaved applies the settings that do not need a restart
func (ui *RootUI) onSettingsSaved() {
	if !ui.fixedDialogs {
		ui.dialogs = NewDialogs(ui.window, ui.localization, ui.settings.GetUseNativeDialogs())
	}
	ui.onLanguageChange(ui.settings.GetLanguage())
}

// onShowHistory opens the session history window
func (ui *RootUI) onShowHistory() {
	ui.history.Show()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language. The metadata
// display keeps the tool text as produced.
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.promptLabel.SetText(ui.localization.GetText(KeyPrompt))
	ui.selectBtn.SetText(ui.localization.GetText(KeySelectFile))
	ui.removeBtn.SetText(ui.localization.GetText(KeyRemoveMetadata))
	if path, ok := ui.selection.Path(); ok {
		ui.selectedLabel.SetText(fmt.Sprintf("%s: %s", ui.localization.GetText(KeySelectedFile), path))
	}
	ui.history.RefreshTexts()
}

// MetadataText returns the text currently shown in the display area
func (ui *RootUI) MetadataText() string {
	return ui.metadataLabel.Text
}

// SelectedFile returns the selected file, if any
func (ui *RootUI) SelectedFile() (string, bool) {
	return ui.selection.Path()
}
