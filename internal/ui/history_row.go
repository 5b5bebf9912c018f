package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/metadata-editor/internal/model"
)

// HistoryRow renders one tool invocation in the history list
type HistoryRow struct {
	widget.BaseWidget

	invocation *model.Invocation

	titleLabel   *widget.Label
	statusLabel  *widget.Label
	detailLabel  *widget.Label
	commandLabel *widget.Label
}

// NewHistoryRow creates a row for inv; a nil invocation renders placeholders
func NewHistoryRow(inv *model.Invocation) *HistoryRow {
	hr := &HistoryRow{}
	hr.ExtendBaseWidget(hr)
	hr.createUI()
	hr.SetInvocation(inv)
	return hr
}

// SetInvocation updates the row with new invocation data
func (hr *HistoryRow) SetInvocation(inv *model.Invocation) {
	if inv == nil {
		inv = &model.Invocation{Status: model.StatusPending}
	}
	hr.invocation = inv
	hr.updateFromInvocation()
	hr.Refresh()
}

func (hr *HistoryRow) createUI() {
	hr.titleLabel = widget.NewLabel("")
	hr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	hr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	hr.statusLabel = widget.NewLabel("")
	hr.statusLabel.Alignment = fyne.TextAlignTrailing

	hr.detailLabel = widget.NewLabel("")
	hr.detailLabel.Alignment = fyne.TextAlignTrailing

	hr.commandLabel = widget.NewLabel("")
	hr.commandLabel.TextStyle = fyne.TextStyle{Monospace: true}
	hr.commandLabel.Truncation = fyne.TextTruncateEllipsis
}

// updateFromInvocation updates labels based on invocation state
func (hr *HistoryRow) updateFromInvocation() {
	inv := hr.invocation

	title := strings.TrimSpace(strings.ReplaceAll(inv.GetDisplayTitle(), "\n", " "))
	hr.titleLabel.SetText(title)

	switch {
	case inv.Status == model.StatusError:
		hr.statusLabel.Importance = widget.DangerImportance
		hr.statusLabel.SetText(IconError + " " + inv.Status.String())
	case inv.Status == model.StatusCompleted:
		hr.statusLabel.Importance = widget.SuccessImportance
		hr.statusLabel.SetText(IconSuccess + " " + inv.Status.String())
	case inv.Status.IsActive():
		hr.statusLabel.Importance = widget.HighImportance
		hr.statusLabel.SetText(IconRunning + " " + inv.Status.String())
	default:
		hr.statusLabel.Importance = widget.MediumImportance
		hr.statusLabel.SetText(inv.Status.String())
	}

	hr.detailLabel.SetText(formatInvocationDetail(inv))

	if inv.LastError != "" {
		hr.commandLabel.SetText(inv.LastError)
	} else if inv.Tool != "" {
		hr.commandLabel.SetText(inv.CommandLine())
	} else {
		hr.commandLabel.SetText(DashPlaceholder)
	}
}

// formatInvocationDetail returns "op · exit N · 120ms · 15:04:05"
func formatInvocationDetail(inv *model.Invocation) string {
	parts := []string{string(inv.Op)}
	if inv.Status == model.StatusCompleted {
		parts = append(parts, fmt.Sprintf(ExitCodeFormat, inv.ExitCode))
	}
	if d := inv.Duration(); inv.Status.IsFinished() && d > 0 {
		parts = append(parts, d.Round(time.Millisecond).String())
	}
	if !inv.StartedAt.IsZero() {
		parts = append(parts, inv.StartedAt.Format(time.TimeOnly))
	}

	filtered := parts[:0]
	for _, p := range parts {
		if p != "" {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == 0 {
		return DashPlaceholder
	}
	return strings.Join(filtered, MiddleDotSeparator)
}

// CreateRenderer creates the widget renderer
func (hr *HistoryRow) CreateRenderer() fyne.WidgetRenderer {
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	rightSide := container.NewVBox(
		fixedWidth(StatusLabelWidth, hr.statusLabel),
		hr.detailLabel,
	)
	left := container.NewVBox(hr.titleLabel, hr.commandLabel)

	content := container.NewVBox(
		container.NewBorder(nil, nil, nil, rightSide, left),
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows readable in narrow windows
func (hr *HistoryRow) MinSize() fyne.Size {
	size := hr.BaseWidget.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}
