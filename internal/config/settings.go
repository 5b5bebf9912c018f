package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyExiftoolPath     = "exiftool_path"
	KeyLastDirectory    = "last_directory"
	KeyUseNativeDialogs = "use_native_dialogs"
	KeyLanguage         = "app_language"
)

// Default values
const (
	DefaultUseNativeDialogs = true
	DefaultLanguage         = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetExiftoolPath returns the user override for the tool location.
// Empty means the bundled tool is used.
func (s *Settings) GetExiftoolPath() string {
	return strings.TrimSpace(s.app.Preferences().String(KeyExiftoolPath))
}

// SetExiftoolPath sets the tool override; an empty path restores the bundled tool
func (s *Settings) SetExiftoolPath(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		s.app.Preferences().RemoveValue(KeyExiftoolPath)
		return
	}
	s.app.Preferences().SetString(KeyExiftoolPath, path)
}

// GetLastDirectory returns the directory of the last selected file
func (s *Settings) GetLastDirectory() string {
	return s.app.Preferences().String(KeyLastDirectory)
}

// SetLastDirectory remembers where the file dialog should start next time
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetUseNativeDialogs returns whether OS-native dialogs are preferred
func (s *Settings) GetUseNativeDialogs() bool {
	return s.app.Preferences().BoolWithFallback(KeyUseNativeDialogs, DefaultUseNativeDialogs)
}

// SetUseNativeDialogs sets whether OS-native dialogs are preferred
func (s *Settings) SetUseNativeDialogs(native bool) {
	s.app.Preferences().SetBool(KeyUseNativeDialogs, native)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
