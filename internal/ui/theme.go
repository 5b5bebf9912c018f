package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Metadata display sizing
const (
	DisplayTextSize float32 = 12 // monospace metadata listing
	PromptTextSize  float32 = 15
)

// EditorTheme keeps the default look but tightens spacing so long
// exiftool listings fit the small window
type EditorTheme struct{}

// NewEditorTheme creates the application theme
func NewEditorTheme() fyne.Theme {
	return &EditorTheme{}
}

// Color returns theme colors
func (t *EditorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 160, B: 0, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 121, B: 107, A: 255} // teal
	case theme.ColorNameInputBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 30, G: 30, B: 30, A: 255}
		}
		return color.RGBA{R: 245, G: 245, B: 245, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *EditorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *EditorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *EditorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameSubHeadingText:
		return PromptTextSize
	case theme.SizeNameCaptionText:
		return 10
	}

	return theme.DefaultTheme().Size(name)
}
