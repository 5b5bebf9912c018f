package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Bundled tool layout, relative to the resource base directory
const (
	ToolDirName    = "Exiftool"
	ToolBinaryName = "exiftool.exe"
)

// EnvResourcesDir overrides the packaged base directory when a packager
// extracts bundled resources somewhere other than next to the executable.
const EnvResourcesDir = "METADATA_EDITOR_RESOURCES"

// Markers of binaries produced by `go run` and `go test`
const (
	GoBuildDirMarker = "go-build"
	TestBinarySuffix = ".test"
)

// RunMode describes how the program was launched
type RunMode int

const (
	// RunModePackaged is a built standalone executable
	RunModePackaged RunMode = iota
	// RunModeUnpackaged is `go run` or `go test` from a source checkout
	RunModeUnpackaged
)

// String returns a human-readable name for the run mode
func (m RunMode) String() string {
	switch m {
	case RunModePackaged:
		return "packaged"
	case RunModeUnpackaged:
		return "unpackaged"
	default:
		return "unknown"
	}
}

// ToolPath returns the location of the bundled tool under baseDir, the
// directory BaseDir reports for mode. Both modes share the same layout.
// It does not check that the file exists.
func ToolPath(mode RunMode, baseDir string) string {
	return filepath.Join(baseDir, ToolDirName, ToolBinaryName)
}

// DetectRunMode inspects the running executable to decide the run mode
func DetectRunMode() RunMode {
	exe, err := os.Executable()
	if err != nil {
		return RunModeUnpackaged
	}
	return runModeFor(exe)
}

// runModeFor classifies an executable path
func runModeFor(exe string) RunMode {
	if strings.Contains(strings.ReplaceAll(exe, `\`, "/"), "/"+GoBuildDirMarker) ||
		strings.HasSuffix(filepath.Base(exe), TestBinarySuffix) ||
		strings.HasSuffix(filepath.Base(exe), TestBinarySuffix+".exe") {
		return RunModeUnpackaged
	}
	return RunModePackaged
}

// BaseDir returns the directory bundled resources are looked up in for mode
func BaseDir(mode RunMode) string {
	if mode == RunModeUnpackaged {
		return SourceDir()
	}

	if dir := os.Getenv(EnvResourcesDir); dir != "" {
		return dir
	}

	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// SourceDir returns the root of the source checkout this binary was built from
func SourceDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	// internal/platform/toollocator.go -> module root
	return filepath.Dir(filepath.Dir(filepath.Dir(file)))
}

// ResolveToolPath returns override when set, otherwise the bundled tool path
// for the current run mode.
func ResolveToolPath(override string) (string, RunMode) {
	mode := DetectRunMode()
	if strings.TrimSpace(override) != "" {
		return override, mode
	}
	return ToolPath(mode, BaseDir(mode)), mode
}
