package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/metadata-editor/internal/exiftool"
	"github.com/ytget/metadata-editor/internal/model"
)

// HistoryWindow lists the tool invocations of the current session
type HistoryWindow struct {
	app          fyne.App
	inspector    exiftool.Inspector
	localization *Localization

	mu          sync.Mutex
	window      fyne.Window
	invocations []*model.Invocation
	list        *widget.List
	emptyLabel  *widget.Label
}

// NewHistoryWindow creates the history view; the window itself is built on first Show
func NewHistoryWindow(app fyne.App, inspector exiftool.Inspector, localization *Localization) *HistoryWindow {
	return &HistoryWindow{
		app:          app,
		inspector:    inspector,
		localization: localization,
	}
}

// Show opens the window or brings it to front
func (hw *HistoryWindow) Show() {
	hw.mu.Lock()
	if hw.window == nil {
		hw.createWindow()
	}
	w := hw.window
	hw.mu.Unlock()

	hw.Refresh()
	w.Show()
	w.RequestFocus()
}

func (hw *HistoryWindow) createWindow() {
	hw.window = hw.app.NewWindow(hw.localization.GetText(KeyHistory))
	hw.window.Resize(fyne.NewSize(HistoryWindowWidth, HistoryWindowHeight))

	hw.list = widget.NewList(
		func() int { return len(hw.invocations) },
		func() fyne.CanvasObject { return NewHistoryRow(nil) },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(hw.invocations) {
				return
			}
			if row, ok := obj.(*HistoryRow); ok {
				row.SetInvocation(hw.invocations[id])
			}
		},
	)

	hw.emptyLabel = widget.NewLabel(hw.localization.GetText(KeyNoHistory))
	hw.emptyLabel.Alignment = fyne.TextAlignCenter

	hw.window.SetContent(container.NewStack(hw.list, container.NewCenter(hw.emptyLabel)))
	hw.window.SetOnClosed(func() {
		hw.mu.Lock()
		hw.window = nil
		hw.list = nil
		hw.mu.Unlock()
	})
}

// Refresh reloads the invocation list. Must run on the UI goroutine.
func (hw *HistoryWindow) Refresh() {
	hw.mu.Lock()
	defer hw.mu.Unlock()
	if hw.list == nil {
		return
	}

	hw.invocations = hw.inspector.History()
	if len(hw.invocations) == 0 {
		hw.emptyLabel.Show()
	} else {
		hw.emptyLabel.Hide()
	}
	hw.list.Refresh()
}

// RefreshTexts applies the current language to the open window
func (hw *HistoryWindow) RefreshTexts() {
	hw.mu.Lock()
	defer hw.mu.Unlock()
	if hw.window == nil {
		return
	}
	hw.window.SetTitle(hw.localization.GetText(KeyHistory))
	hw.emptyLabel.SetText(hw.localization.GetText(KeyNoHistory))
}

// Count returns how many invocations the window currently shows
func (hw *HistoryWindow) Count() int {
	hw.mu.Lock()
	defer hw.mu.Unlock()
	return len(hw.invocations)
}
