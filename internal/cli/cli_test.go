package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ytget/metadata-editor/internal/exiftool"
)

type fakeRunner struct {
	calls [][]string
	names []string
	out   exiftool.RunOutput
	err   error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (exiftool.RunOutput, error) {
	f.names = append(f.names, name)
	f.calls = append(f.calls, append([]string(nil), args...))
	return f.out, f.err
}

type fakeTags struct {
	toolPath string
	tags     map[string]string
	err      error
}

func (f *fakeTags) ReadTags(path string) (map[string]string, error) {
	return f.tags, f.err
}

// runCmd executes the command tree with args and returns stdout, stderr and the error
func runCmd(t *testing.T, runner *fakeRunner, stdin string, args ...string) (string, string, error) {
	t.Helper()

	origRunner := newRunner
	newRunner = func() exiftool.Runner { return runner }
	t.Cleanup(func() { newRunner = origRunner })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd("test", strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExecute_NotCLI(t *testing.T) {
	tests := [][]string{
		nil,
		{},
		{"photo.jpg"},
		{"-psn_0_12345"},
	}
	for _, args := range tests {
		if Execute("test", args) {
			t.Errorf("Execute(%q) should leave the GUI to run", args)
		}
	}
}

func TestShow(t *testing.T) {
	runner := &fakeRunner{out: exiftool.RunOutput{Stdout: []byte("Make : Canon\n")}}

	stdout, _, err := runCmd(t, runner, "", "show", "--exiftool", "/opt/exiftool", "a.jpg")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if stdout != "Make : Canon\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if len(runner.calls) != 1 || runner.names[0] != "/opt/exiftool" || runner.calls[0][0] != "a.jpg" {
		t.Errorf("calls = %v %v", runner.names, runner.calls)
	}
}

func TestShow_EmptyOutput(t *testing.T) {
	stdout, _, err := runCmd(t, &fakeRunner{}, "", "show", "--exiftool", "/opt/exiftool", "a.jpg")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if stdout != "No metadata found.\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestShow_ToolMissing(t *testing.T) {
	runner := &fakeRunner{err: exiftool.ErrToolNotFound}

	stdout, stderr, err := runCmd(t, runner, "", "show", "--exiftool", "/missing", "a.jpg")
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.HasPrefix(stderr, "Error reading metadata: ") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestShow_RequiresFile(t *testing.T) {
	runner := &fakeRunner{}
	if _, _, err := runCmd(t, runner, "", "show"); err == nil {
		t.Error("expected an argument error")
	}
	if len(runner.calls) != 0 {
		t.Errorf("calls = %v", runner.calls)
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name      string
		stdin     string
		args      []string
		wantCalls int
		wantOut   string
	}{
		{"confirmed with --yes", "", []string{"--yes"}, 1, "Metadata removed successfully.\n"},
		{"confirmed on stdin", "y\n", nil, 1, ConfirmPrompt + "Metadata removed successfully.\n"},
		{"declined on stdin", "n\n", nil, 0, ConfirmPrompt + "Aborted.\n"},
		{"default is no", "\n", nil, 0, ConfirmPrompt + "Aborted.\n"},
		{"no input", "", nil, 0, ConfirmPrompt + "Aborted.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{out: exiftool.RunOutput{ExitCode: 1}}
			args := append([]string{"strip", "--exiftool", "/opt/exiftool"}, tt.args...)
			args = append(args, "a.jpg")

			stdout, _, err := runCmd(t, runner, tt.stdin, args...)
			if err != nil {
				t.Fatalf("strip failed: %v", err)
			}
			if len(runner.calls) != tt.wantCalls {
				t.Fatalf("calls = %d, want %d", len(runner.calls), tt.wantCalls)
			}
			if tt.wantCalls == 1 {
				want := "-all= -overwrite_original a.jpg"
				if got := strings.Join(runner.calls[0], " "); got != want {
					t.Errorf("args = %q, want %q", got, want)
				}
			}
			if stdout != tt.wantOut {
				t.Errorf("stdout = %q, want %q", stdout, tt.wantOut)
			}
		})
	}
}

func TestTags(t *testing.T) {
	extractor := &fakeTags{tags: map[string]string{"Model": "EOS", "Make": "Canon"}}
	origTags := newTagExtractor
	newTagExtractor = func(toolPath string) exiftool.TagExtractor {
		extractor.toolPath = toolPath
		return extractor
	}
	t.Cleanup(func() { newTagExtractor = origTags })

	stdout, _, err := runCmd(t, &fakeRunner{}, "", "tags", "--exiftool", "/opt/exiftool", "a.jpg")
	if err != nil {
		t.Fatalf("tags failed: %v", err)
	}
	if stdout != "Make: Canon\nModel: EOS\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if extractor.toolPath != "/opt/exiftool" {
		t.Errorf("tool path = %q", extractor.toolPath)
	}

	stdout, _, err = runCmd(t, &fakeRunner{}, "", "tags", "--json", "--exiftool", "/opt/exiftool", "a.jpg")
	if err != nil {
		t.Fatalf("tags --json failed: %v", err)
	}
	var decoded map[string]string
	if err := json.Unmarshal([]byte(stdout), &decoded); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if decoded["Make"] != "Canon" {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestTags_Error(t *testing.T) {
	extractor := &fakeTags{err: exiftool.ErrToolNotFound}
	origTags := newTagExtractor
	newTagExtractor = func(string) exiftool.TagExtractor { return extractor }
	t.Cleanup(func() { newTagExtractor = origTags })

	_, _, err := runCmd(t, &fakeRunner{}, "", "tags", "a.jpg")
	if !errors.Is(err, exiftool.ErrToolNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestLocate(t *testing.T) {
	stdout, _, err := runCmd(t, &fakeRunner{}, "", "locate", "--exiftool", "/nonexistent/exiftool.exe")
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	for _, want := range []string{"path: /nonexistent/exiftool.exe", "status: missing", "mode: "} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout %q missing %q", stdout, want)
		}
	}
}

func TestConfirm(t *testing.T) {
	tests := map[string]bool{
		"y\n": true, "YES\n": true, " yes ": true,
		"n\n": false, "\n": false, "": false, "maybe\n": false,
	}
	for input, want := range tests {
		var out bytes.Buffer
		if got := confirm(&out, strings.NewReader(input)); got != want {
			t.Errorf("confirm(%q) = %v, want %v", input, got, want)
		}
		if out.String() != ConfirmPrompt {
			t.Errorf("prompt = %q", out.String())
		}
	}
}

func TestVersion(t *testing.T) {
	for _, arg := range []string{"version", "--version", "-v"} {
		t.Run(arg, func(t *testing.T) {
			stdout, _, err := runCmd(t, &fakeRunner{}, "", arg)
			if err != nil {
				t.Fatalf("%s failed: %v", arg, err)
			}
			if stdout != "metadata-editor version test\n" {
				t.Errorf("stdout = %q", stdout)
			}
		})
	}
}

func TestSubcommandsAreRegistered(t *testing.T) {
	cmd := newRootCmd("test", strings.NewReader(""))
	for name := range subcommands {
		if strings.HasPrefix(name, "-") || name == "help" {
			continue
		}
		found, _, err := cmd.Find([]string{name})
		if err != nil || found == cmd {
			t.Errorf("%q switches to CLI mode but is not a command (err=%v)", name, err)
		}
	}
}
