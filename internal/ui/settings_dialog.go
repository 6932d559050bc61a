package ui

import (
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/former"
	"github.com/ytget/former/internal/config"
	"github.com/ytget/former/rows"
)

var (
	rowHeightOptions    = []float32{32, 44, 56, 72}
	headerHeightOptions = []float32{0, 10, 20, 30}
)

// SettingsDialog edits config.Settings through a form of its own
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	form         *former.Former
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	languageCodes []string

	rowHeight    *rows.InlineSelectRowFormer
	headerHeight *rows.InlineSelectRowFormer
	recycle      *rows.SwitchRowFormer
	language     *rows.InlineSelectRowFormer
	logLevel     *rows.InlineSelectRowFormer
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates the settings dialog and shows it
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// Former returns the form shown by the dialog
func (sd *SettingsDialog) Former() *former.Former {
	return sd.form
}

func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.rowHeight = rows.NewInlineSelectRowFormer(text(KeyRowHeight), formatHeights(rowHeightOptions), -1, nil)
	sd.headerHeight = rows.NewInlineSelectRowFormer(text(KeyHeaderHeight), formatHeights(headerHeightOptions), -1, nil)
	sd.recycle = rows.NewSwitchRowFormer(text(KeyRecycleCells), config.DefaultRecycleCells, nil)
	sd.recycle.SwitchWhenSelected = true

	languages := sd.settings.GetLanguageOptions()
	sd.languageCodes = make([]string, 0, len(languages))
	for code := range languages {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	slices.Sort(sd.languageCodes)
	names := make([]string, len(sd.languageCodes))
	for i, code := range sd.languageCodes {
		names[i] = languages[code]
	}
	sd.language = rows.NewInlineSelectRowFormer(text(KeyLanguage), names, -1, nil)
	sd.logLevel = rows.NewInlineSelectRowFormer(text(KeyLogLevel), sd.settings.GetLogLevelOptions(), -1, nil)

	layoutSection := former.NewSectionFormer(sd.rowHeight.RowFormer, sd.headerHeight.RowFormer, sd.recycle.RowFormer).
		SetHeaderViewFormer(rows.NewTitleViewFormer(text(KeyLayout)).ViewFormer)
	diagnostics := former.NewSectionFormer(sd.language.RowFormer, sd.logLevel.RowFormer).
		SetHeaderViewFormer(rows.NewTitleViewFormer(text(KeyDiagnostics)).ViewFormer)
	sd.form = former.New(layoutSection, diagnostics)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		sd.form.Widget(),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(SettingsDialogSize)
}

func (sd *SettingsDialog) loadCurrentSettings() {
	selectOption(sd.rowHeight, slices.Index(rowHeightOptions, sd.settings.GetRowHeight()))
	selectOption(sd.headerHeight, slices.Index(headerHeightOptions, sd.settings.GetHeaderHeight()))
	selectOption(sd.language, slices.Index(sd.languageCodes, sd.settings.GetLanguage()))
	selectOption(sd.logLevel, slices.Index(sd.settings.GetLogLevelOptions(), sd.settings.GetLogLevel()))

	sd.recycle.On = sd.settings.GetRecycleCells()
	sd.recycle.Update()
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
}

func (sd *SettingsDialog) save() {
	if i := sd.rowHeight.Selected; i >= 0 {
		sd.settings.SetRowHeight(rowHeightOptions[i])
	}
	if i := sd.headerHeight.Selected; i >= 0 {
		sd.settings.SetHeaderHeight(headerHeightOptions[i])
	}
	sd.settings.SetRecycleCells(sd.recycle.On)
	if i := sd.language.Selected; i >= 0 {
		sd.settings.SetLanguage(sd.languageCodes[i])
	}
	if v := sd.logLevel.Value(); v != "" {
		sd.settings.SetLogLevel(v)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// selectOption selects index without reporting a change; -1 clears.
func selectOption(sr *rows.InlineSelectRowFormer, index int) {
	if index >= len(sr.Options) {
		index = -1
	}
	sr.Selected = index
	sr.Update()
	sr.Picker().Update()
}

func formatHeights(heights []float32) []string {
	out := make([]string, len(heights))
	for i, h := range heights {
		out[i] = strconv.FormatFloat(float64(h), 'f', -1, 32)
	}
	return out
}
