package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 600
	WindowHeight float32 = 450

	HistoryWindowWidth  float32 = 640
	HistoryWindowHeight float32 = 420

	FileDialogWidth  float32 = 560
	FileDialogHeight float32 = 400

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 320
)

// Icons (emojis/symbols)
const (
	IconSuccess = "✔"
	IconError   = "❌"
	IconRunning = "…"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	ExitCodeFormat     = "exit %d"
)

// Layout sizing (HistoryRow)
const (
	StatusLabelWidth float32 = 84
	RowMinWidth      float32 = 400
	RowMinHeight     float32 = 56
)
