package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// FormTheme is a compact theme tuned for grouped forms: a gray page behind
// white rows and hairline separators.
type FormTheme struct{}

// NewFormTheme creates a new form theme
func NewFormTheme() fyne.Theme {
	return &FormTheme{}
}

// Color returns theme colors
func (t *FormTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark
	switch name {
	case theme.ColorNameBackground:
		if dark {
			return color.RGBA{R: 0, G: 0, B: 0, A: 255}
		}
		return color.RGBA{R: 239, G: 239, B: 244, A: 255} // grouped page gray
	case theme.ColorNameSeparator:
		if dark {
			return color.RGBA{R: 56, G: 56, B: 58, A: 255}
		}
		return color.RGBA{R: 200, G: 199, B: 204, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 122, B: 255, A: 255} // tint of highlighted values
	case theme.ColorNameSelection:
		return color.RGBA{R: 0, G: 122, B: 255, A: 40}
	case theme.ColorNameHover:
		if dark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 16}
		}
		return color.RGBA{R: 0, G: 0, B: 0, A: 10}
	case theme.ColorNameForeground:
		if dark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 0, G: 0, B: 0, A: 255}
	case theme.ColorNameDisabled:
		return color.RGBA{R: 142, G: 142, B: 147, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *FormTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *FormTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; rows carry their own heights so paddings stay small
func (t *FormTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 2
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBarSmall:
		return 3
	case theme.SizeNameSeparatorThickness:
		return 0.5
	case theme.SizeNameText:
		return 15
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputBorder:
		return 1
	case theme.SizeNameInputRadius:
		return 4
	case theme.SizeNameSelectionRadius:
		return 0
	}

	return theme.DefaultTheme().Size(name)
}
