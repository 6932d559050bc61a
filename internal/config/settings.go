package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/former"
)

// Log levels accepted by the demo
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Settings keys for Fyne preferences
const (
	KeyRowHeight    = "row_height"
	KeyHeaderHeight = "header_height"
	KeyRecycleCells = "recycle_cells"
	KeyLanguage     = "app_language"
	KeyLogLevel     = "log_level"
	KeyFormPath     = "last_form_path"
)

// Default values
const (
	DefaultRowHeight    = former.DefaultCellHeight
	DefaultHeaderHeight = former.DefaultHeaderFooterHeight
	DefaultRecycleCells = true
	DefaultLanguage     = "system"
	DefaultLogLevel     = LogLevelInfo
)

// Row height bounds
const (
	MinRowHeight float32 = 24
	MaxRowHeight float32 = 120
)

// Settings manages the demo configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetRowHeight returns the height given to rows built by the demo
func (s *Settings) GetRowHeight() float32 {
	value := float32(s.app.Preferences().Float(KeyRowHeight))
	if value <= 0 {
		s.SetRowHeight(DefaultRowHeight)
		return DefaultRowHeight
	}
	return value
}

// SetRowHeight sets the row height, clamped to [MinRowHeight, MaxRowHeight]
func (s *Settings) SetRowHeight(height float32) {
	if height < MinRowHeight {
		height = MinRowHeight
	}
	if height > MaxRowHeight {
		height = MaxRowHeight
	}
	s.app.Preferences().SetFloat(KeyRowHeight, float64(height))
}

// GetHeaderHeight returns the height of spacing headers
func (s *Settings) GetHeaderHeight() float32 {
	return float32(s.app.Preferences().FloatWithFallback(KeyHeaderHeight, float64(DefaultHeaderHeight)))
}

// SetHeaderHeight sets the height of spacing headers
func (s *Settings) SetHeaderHeight(height float32) {
	if height < 0 {
		height = 0
	}
	s.app.Preferences().SetFloat(KeyHeaderHeight, float64(height))
}

// GetRecycleCells returns whether cells of scrolled out rows are purged
func (s *Settings) GetRecycleCells() bool {
	return s.app.Preferences().BoolWithFallback(KeyRecycleCells, DefaultRecycleCells)
}

// SetRecycleCells sets whether cells of scrolled out rows are purged
func (s *Settings) SetRecycleCells(recycle bool) {
	s.app.Preferences().SetBool(KeyRecycleCells, recycle)
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

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	switch level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return level
	}
	return DefaultLogLevel
}

// SetLogLevel sets the log level; unknown levels are ignored
func (s *Settings) SetLogLevel(level string) {
	switch level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		s.app.Preferences().SetString(KeyLogLevel, level)
	}
}

// GetFormPath returns the last opened form file, or ""
func (s *Settings) GetFormPath() string {
	return s.app.Preferences().String(KeyFormPath)
}

// SetFormPath remembers the last opened form file
func (s *Settings) SetFormPath(path string) {
	s.app.Preferences().SetString(KeyFormPath, path)
}

// GetLogLevelOptions returns available log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
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
