package ui

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/metadata-editor/internal/config"
	"github.com/ytget/metadata-editor/internal/exiftool"
)

type runCall struct {
	name string
	args []string
}

type fakeRunner struct {
	calls  []runCall
	stdout string
	exit   int
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (exiftool.RunOutput, error) {
	f.calls = append(f.calls, runCall{name: name, args: append([]string(nil), args...)})
	if f.err != nil {
		return exiftool.RunOutput{ExitCode: -1}, f.err
	}
	return exiftool.RunOutput{Stdout: []byte(f.stdout), ExitCode: f.exit}, nil
}

type fakeDialogs struct {
	pickPath  string
	answer    bool
	warnings  []string
	confirms  []string
	errs      []error
	lastStart string
}

func (d *fakeDialogs) PickFile(title, startDir string, onPicked func(path string)) {
	d.lastStart = startDir
	if d.pickPath != "" {
		onPicked(d.pickPath)
	}
}

func (d *fakeDialogs) Confirm(title, message string, onAnswer func(yes bool)) {
	d.confirms = append(d.confirms, title+"|"+message)
	onAnswer(d.answer)
}

func (d *fakeDialogs) Warn(title, message string) {
	d.warnings = append(d.warnings, title+"|"+message)
}

func (d *fakeDialogs) ShowError(err error) {
	d.errs = append(d.errs, err)
}

func newTestRoot(t *testing.T, runner *fakeRunner, dialogs *fakeDialogs) (*RootUI, fyne.App) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	window := test.NewWindow(nil)
	settings := config.NewSettings(app)
	settings.SetLanguage("en")
	service := exiftool.NewService("/opt/Exiftool/exiftool.exe", runner)
	return NewRootUI(window, app, service, settings, dialogs), app
}

func TestRootUI_InitialState(t *testing.T) {
	ui, _ := newTestRoot(t, &fakeRunner{}, &fakeDialogs{})

	if got := ui.window.Title(); got != "Metadata Editor" {
		t.Errorf("window title = %q", got)
	}
	if got := ui.promptLabel.Text; got != "Select a file to view or remove metadata:" {
		t.Errorf("prompt = %q", got)
	}
	if ui.selectBtn.Text != "Select File" || ui.removeBtn.Text != "Remove Metadata" {
		t.Errorf("buttons = %q, %q", ui.selectBtn.Text, ui.removeBtn.Text)
	}
	if ui.MetadataText() != "" {
		t.Errorf("display should start empty, got %q", ui.MetadataText())
	}
	if _, ok := ui.SelectedFile(); ok {
		t.Error("no file should be selected at start")
	}
}

func TestRemoveWithoutSelection(t *testing.T) {
	runner := &fakeRunner{}
	dialogs := &fakeDialogs{answer: true}
	ui, _ := newTestRoot(t, runner, dialogs)

	test.Tap(ui.removeBtn)

	if len(runner.calls) != 0 {
		t.Fatalf("expected no tool calls, got %d", len(runner.calls))
	}
	if len(dialogs.warnings) != 1 || dialogs.warnings[0] != "No File Selected|Please select a file first." {
		t.Errorf("warnings = %v", dialogs.warnings)
	}
	if len(dialogs.confirms) != 0 {
		t.Errorf("confirmation should not be asked, got %v", dialogs.confirms)
	}
}

func TestSelectFileShowsMetadata(t *testing.T) {
	runner := &fakeRunner{stdout: "File Name : a.jpg\n"}
	dialogs := &fakeDialogs{pickPath: "/photos/a.jpg"}
	ui, app := newTestRoot(t, runner, dialogs)

	test.Tap(ui.selectBtn)

	if ui.MetadataText() != "File Name : a.jpg\n" {
		t.Errorf("display = %q", ui.MetadataText())
	}
	if path, ok := ui.SelectedFile(); !ok || path != "/photos/a.jpg" {
		t.Errorf("selection = %q, %v", path, ok)
	}
	if len(runner.calls) != 1 || strings.Join(runner.calls[0].args, " ") != "/photos/a.jpg" {
		t.Errorf("calls = %+v", runner.calls)
	}
	if dir := config.NewSettings(app).GetLastDirectory(); dir != "/photos" {
		t.Errorf("last directory = %q", dir)
	}

	// the next dialog starts in the remembered directory
	test.Tap(ui.selectBtn)
	if dialogs.lastStart != "/photos" {
		t.Errorf("start dir = %q", dialogs.lastStart)
	}
}

func TestSelectFileCancelled(t *testing.T) {
	runner := &fakeRunner{}
	ui, _ := newTestRoot(t, runner, &fakeDialogs{})

	test.Tap(ui.selectBtn)

	if len(runner.calls) != 0 {
		t.Errorf("expected no tool calls, got %d", len(runner.calls))
	}
	if _, ok := ui.SelectedFile(); ok {
		t.Error("cancel must not set a selection")
	}
}

func TestSelectFileEmptyOutput(t *testing.T) {
	ui, _ := newTestRoot(t, &fakeRunner{}, &fakeDialogs{pickPath: "/tmp/x.bin"})

	test.Tap(ui.selectBtn)

	if ui.MetadataText() != "No metadata found." {
		t.Errorf("display = %q", ui.MetadataText())
	}
}

func TestSelectFileMissingTool(t *testing.T) {
	runner := &fakeRunner{err: fmt.Errorf("%w: exiftool.exe: %v", exiftool.ErrToolNotFound, exec.ErrNotFound)}
	ui, _ := newTestRoot(t, runner, &fakeDialogs{pickPath: "/tmp/x.jpg"})

	test.Tap(ui.selectBtn)

	if !strings.HasPrefix(ui.MetadataText(), "Error reading metadata:") {
		t.Errorf("display = %q", ui.MetadataText())
	}
	// the pick itself succeeded
	if _, ok := ui.SelectedFile(); !ok {
		t.Error("selection should be set after a successful pick")
	}
}

func TestRemoveDeclined(t *testing.T) {
	runner := &fakeRunner{stdout: "Make : Canon\n"}
	dialogs := &fakeDialogs{pickPath: "/tmp/a.jpg", answer: false}
	ui, _ := newTestRoot(t, runner, dialogs)

	test.Tap(ui.selectBtn)
	before := ui.MetadataText()
	test.Tap(ui.removeBtn)

	if len(runner.calls) != 1 {
		t.Errorf("declining must not run the tool, calls = %d", len(runner.calls))
	}
	if ui.MetadataText() != before {
		t.Errorf("display changed to %q", ui.MetadataText())
	}
	if len(dialogs.confirms) != 1 || dialogs.confirms[0] != "Confirm Deletion|Are you sure you want to remove metadata?" {
		t.Errorf("confirms = %v", dialogs.confirms)
	}
}

func TestRemoveConfirmed(t *testing.T) {
	tests := []struct {
		name string
		exit int
	}{
		{"clean exit", 0},
		{"tool reported error", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{exit: tt.exit}
			dialogs := &fakeDialogs{pickPath: "/tmp/a.jpg", answer: true}
			ui, _ := newTestRoot(t, runner, dialogs)

			test.Tap(ui.selectBtn)
			test.Tap(ui.removeBtn)

			if len(runner.calls) != 2 {
				t.Fatalf("calls = %d, want 2", len(runner.calls))
			}
			got := runner.calls[1].args
			want := []string{"-all=", "-overwrite_original", "/tmp/a.jpg"}
			if strings.Join(got, "\x00") != strings.Join(want, "\x00") {
				t.Errorf("args = %q, want %q", got, want)
			}
			if ui.MetadataText() != "Metadata removed successfully." {
				t.Errorf("display = %q", ui.MetadataText())
			}
			if path, ok := ui.SelectedFile(); !ok || path != "/tmp/a.jpg" {
				t.Errorf("selection should be kept, got %q, %v", path, ok)
			}
		})
	}
}

func TestRemoveConfirmedToolFails(t *testing.T) {
	runner := &fakeRunner{}
	dialogs := &fakeDialogs{pickPath: "/tmp/a.jpg", answer: true}
	ui, _ := newTestRoot(t, runner, dialogs)

	test.Tap(ui.selectBtn)
	runner.err = errors.New("permission denied")
	test.Tap(ui.removeBtn)

	if ui.MetadataText() != "Error removing metadata: permission denied" {
		t.Errorf("display = %q", ui.MetadataText())
	}
}

func TestFileActionsWithoutSelection(t *testing.T) {
	dialogs := &fakeDialogs{}
	ui, _ := newTestRoot(t, &fakeRunner{}, dialogs)

	ui.onRevealFile()
	ui.onOpenFile()

	if len(dialogs.warnings) != 2 {
		t.Errorf("warnings = %v", dialogs.warnings)
	}
}

func TestOpenMissingFileShowsError(t *testing.T) {
	dialogs := &fakeDialogs{pickPath: "/definitely/not/here.jpg"}
	ui, _ := newTestRoot(t, &fakeRunner{}, dialogs)

	test.Tap(ui.selectBtn)
	ui.onOpenFile()

	if len(dialogs.errs) != 1 {
		t.Fatalf("errors = %v", dialogs.errs)
	}
	if !strings.Contains(dialogs.errs[0].Error(), "file does not exist") {
		t.Errorf("error = %v", dialogs.errs[0])
	}
}

func TestLanguageChange(t *testing.T) {
	runner := &fakeRunner{stdout: "Make : Canon\n"}
	ui, app := newTestRoot(t, runner, &fakeDialogs{pickPath: "/tmp/a.jpg"})

	test.Tap(ui.selectBtn)
	ui.onLanguageChange("ru")

	if ui.selectBtn.Text != "Выбрать файл" {
		t.Errorf("select button = %q", ui.selectBtn.Text)
	}
	if ui.MetadataText() != "Make : Canon\n" {
		t.Errorf("display must keep tool output, got %q", ui.MetadataText())
	}
	if lang := config.NewSettings(app).GetLanguage(); lang != "ru" {
		t.Errorf("saved language = %q", lang)
	}
}

func TestHistoryWindow(t *testing.T) {
	runner := &fakeRunner{stdout: "x"}
	ui, _ := newTestRoot(t, runner, &fakeDialogs{pickPath: "/tmp/a.jpg", answer: true})

	ui.onShowHistory()
	if ui.history.Count() != 0 {
		t.Errorf("history should start empty, got %d", ui.history.Count())
	}

	test.Tap(ui.selectBtn)
	test.Tap(ui.removeBtn)
	ui.history.Refresh()

	if ui.history.Count() != 2 {
		t.Errorf("history count = %d, want 2", ui.history.Count())
	}
}
