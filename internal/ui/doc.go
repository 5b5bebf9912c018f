package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the two button actions (select a file, remove its metadata) to the
// exiftool service, shows the tool output, and hosts the history and settings
// windows. All UI strings are localized via Localization.
