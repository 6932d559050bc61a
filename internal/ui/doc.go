package ui

// Package ui contains the Fyne demo window of the former library.
// It builds a grouped form from a form file, lets the user grow and shrink a
// section at runtime and edits the demo settings in a dialog that is itself a
// form. All UI strings are localized via Localization.
