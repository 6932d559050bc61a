package ui

import "fyne.io/fyne/v2"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconAdd      = "+"
	IconRemove   = "−"
	IconOpen     = "📄"
)

// Window
var (
	WindowSize         = fyne.NewSize(420, 640)
	SettingsDialogSize = fyne.NewSize(380, 460)
)

// Sizing
const (
	// MinTouchTargetSize is the smallest row height used on mobile devices.
	MinTouchTargetSize float32 = 44
	// MaxDynamicRows bounds the rows the demo section can grow to.
	MaxDynamicRows = 20
)

// Form keys of the rows built by the UI itself
const (
	RowKeyDynamic = "dynamic"
)
