package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestRowHeight(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	height := settings.GetRowHeight()
	if height != DefaultRowHeight {
		t.Errorf("Expected default row height %v, got %v", DefaultRowHeight, height)
	}

	settings.SetRowHeight(60)
	if got := settings.GetRowHeight(); got != 60 {
		t.Errorf("Expected row height 60, got %v", got)
	}

	// Test boundary values
	settings.SetRowHeight(1)
	if settings.GetRowHeight() != MinRowHeight {
		t.Errorf("Row height should be clamped to minimum %v", MinRowHeight)
	}

	settings.SetRowHeight(500)
	if settings.GetRowHeight() != MaxRowHeight {
		t.Errorf("Row height should be clamped to maximum %v", MaxRowHeight)
	}
}

func TestHeaderHeight(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetHeaderHeight(); got != DefaultHeaderHeight {
		t.Errorf("Expected default header height %v, got %v", DefaultHeaderHeight, got)
	}

	settings.SetHeaderHeight(24)
	if got := settings.GetHeaderHeight(); got != 24 {
		t.Errorf("Expected header height 24, got %v", got)
	}

	settings.SetHeaderHeight(-5)
	if got := settings.GetHeaderHeight(); got != 0 {
		t.Errorf("Negative header height should be clamped to 0, got %v", got)
	}
}

func TestRecycleCells(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetRecycleCells() != DefaultRecycleCells {
		t.Errorf("Expected default recycle cells %v", DefaultRecycleCells)
	}

	settings.SetRecycleCells(false)
	if settings.GetRecycleCells() {
		t.Error("Recycle cells should be disabled")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language 'ru', got %s", got)
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetLogLevel(); got != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, got)
	}

	settings.SetLogLevel(LogLevelDebug)
	if got := settings.GetLogLevel(); got != LogLevelDebug {
		t.Errorf("Expected log level %s, got %s", LogLevelDebug, got)
	}

	settings.SetLogLevel("verbose")
	if got := settings.GetLogLevel(); got != LogLevelDebug {
		t.Errorf("Unknown level should be ignored, got %s", got)
	}
}

func TestFormPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetFormPath(); got != "" {
		t.Errorf("Expected no form path, got %s", got)
	}

	settings.SetFormPath("/tmp/form.yaml")
	if got := settings.GetFormPath(); got != "/tmp/form.yaml" {
		t.Errorf("Expected form path /tmp/form.yaml, got %s", got)
	}
}

func TestGetLogLevelOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLogLevelOptions()
	expected := []string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d log levels, got %d", len(expected), len(options))
	}
	for i, level := range expected {
		if options[i] != level {
			t.Errorf("Log level %d: expected %s, got %s", i, level, options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
