package ui

import (
	"bytes"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"

	"github.com/ytget/former"
	"github.com/ytget/former/internal/config"
	"github.com/ytget/former/internal/formspec"
	"github.com/ytget/former/rows"
)

// RootUI represents the demo window
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	form      *former.Former
	formName  string
	rowHeight float32

	// Rows added and removed at runtime
	dynamic       *former.SectionFormer
	dynamicHeader *rows.TitleViewFormer
	dynamicFooter *rows.TitleViewFormer
	dynamicSeq    int

	formHolder *fyne.Container
	status     *widget.Label
	addBtn     *widget.Button
	removeBtn  *widget.Button
}

// NewRootUI creates the demo UI showing the built-in demo form
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		rowHeight:    former.DefaultCellHeight,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.ShowDemoForm()
	return ui
}

// Settings returns the settings the UI applies
func (ui *RootUI) Settings() *config.Settings {
	return ui.settings
}

// Former returns the form currently shown
func (ui *RootUI) Former() *former.Former {
	return ui.form
}

// Status returns the text of the status line
func (ui *RootUI) Status() string {
	return ui.status.Text
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.addBtn = widget.NewButton(IconAdd+" "+ui.localization.GetText(KeyAddRow), ui.AddRow)
	ui.removeBtn = widget.NewButton(IconRemove+" "+ui.localization.GetText(KeyRemoveRow), ui.RemoveRow)

	ui.status = widget.NewLabel("")
	ui.status.Truncation = fyne.TextTruncateEllipsis

	ui.formHolder = container.NewStack()

	top := container.NewHBox(settingsBtn, layout.NewSpacer(), ui.removeBtn, ui.addBtn)
	ui.window.SetContent(container.NewBorder(top, ui.status, nil, nil, ui.formHolder))
}

func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem(IconOpen+" "+ui.localization.GetText(KeyOpenForm), ui.onOpenForm)
	demoItem := fyne.NewMenuItem(ui.localization.GetText(KeyDemoForm), ui.ShowDemoForm)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openItem, demoItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

func (ui *RootUI) refreshUITexts() {
	text := ui.localization.GetText
	ui.window.SetTitle(text(KeyAppTitle))
	ui.addBtn.SetText(IconAdd + " " + text(KeyAddRow))
	ui.removeBtn.SetText(IconRemove + " " + text(KeyRemoveRow))

	if ui.dynamicHeader != nil {
		ui.dynamicHeader.Text = text(KeyDynamicSection)
		ui.dynamicHeader.Update()
		ui.dynamicFooter.Text = text(KeyDynamicFooter)
		ui.dynamicFooter.Update()
	}
}

// ShowDemoForm replaces the form with the built-in demo form
func (ui *RootUI) ShowDemoForm() {
	if err := ui.LoadReader(DemoFormResource.Name(), bytes.NewReader(DemoFormResource.Content())); err != nil {
		logger.Error("demo form", "err", err)
	}
}

// LoadForm replaces the form with the one stored at path and remembers path
func (ui *RootUI) LoadForm(path string) error {
	file, err := formspec.LoadFile(path)
	if err != nil {
		return err
	}
	ui.showForm(path, file)
	ui.settings.SetFormPath(path)
	return nil
}

// LoadReader replaces the form with the one read from r
func (ui *RootUI) LoadReader(name string, r io.Reader) error {
	file, err := formspec.Load(r)
	if err != nil {
		return errors.Wrapf(err, "load %s", name)
	}
	ui.showForm(name, file)
	return nil
}

func (ui *RootUI) onOpenForm() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if rc == nil {
			return
		}
		defer rc.Close()

		if err := ui.LoadReader(rc.URI().Name(), rc); err != nil {
			logger.Warn("form not loaded", "uri", rc.URI(), "err", err)
			dialog.ShowError(errors.Wrap(err, ui.localization.GetText(KeyErrorLoadingForm)), ui.window)
			return
		}
		ui.settings.SetFormPath(rc.URI().Path())
	}, ui.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".yaml", ".yml"}))
	d.Show()
}

func (ui *RootUI) showForm(name string, file *formspec.File) {
	if ui.form != nil {
		ui.form.Remove(ui.form.Sections()...)
	}

	sections := file.Build(ui)
	sections = append(sections, ui.newDynamicSection())

	ui.form = former.New(sections...)
	ui.rowHeight = former.DefaultCellHeight
	ui.applySettings()

	ui.formName = name
	if file.Title != "" {
		ui.formName = file.Title
	}
	ui.formHolder.Objects = []fyne.CanvasObject{ui.form.Widget()}
	ui.formHolder.Refresh()
	ui.updateButtons()
	ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyFormLoaded), ui.formName))

	logger.Info("form shown", "name", ui.formName, "sections", ui.form.NumberOfSections())
}

func (ui *RootUI) newDynamicSection() *former.SectionFormer {
	ui.dynamicSeq = 0
	ui.dynamicHeader = rows.NewTitleViewFormer(ui.localization.GetText(KeyDynamicSection))
	ui.dynamicFooter = rows.NewTitleViewFormer(ui.localization.GetText(KeyDynamicFooter))
	ui.dynamic = former.NewSectionFormer().
		SetHeaderViewFormer(ui.dynamicHeader.ViewFormer).
		SetFooterViewFormer(ui.dynamicFooter.ViewFormer)
	return ui.dynamic
}

// AddRow inserts a new row at the top of the dynamic section
func (ui *RootUI) AddRow() {
	if ui.dynamic.NumberOfRows() >= MaxDynamicRows {
		return
	}
	ui.dynamicSeq++
	lr := rows.NewLabelRowFormer(
		fmt.Sprintf(ui.localization.GetText(KeyDynamicRow), ui.dynamicSeq),
		func(ip former.IndexPath, _ *former.RowFormer) {
			ui.RowSelected(RowKeyDynamic, ip)
		},
	)
	lr.CellHeight = ui.rowHeight
	lr.SetAccessoryType(former.AccessoryCheckmark)

	ui.dynamic.Insert(0, lr.RowFormer)
	ui.form.Reload()
	ui.updateButtons()
}

// RemoveRow removes the newest row of the dynamic section
func (ui *RootUI) RemoveRow() {
	if _, err := ui.dynamic.RemoveAt(0); err != nil {
		logger.Debug("nothing to remove", "err", err)
		return
	}
	ui.form.Reload()
	ui.updateButtons()
}

func (ui *RootUI) updateButtons() {
	n := ui.dynamic.NumberOfRows()
	if n == 0 {
		ui.removeBtn.Disable()
	} else {
		ui.removeBtn.Enable()
	}
	if n >= MaxDynamicRows {
		ui.addBtn.Disable()
	} else {
		ui.addBtn.Enable()
	}
}

// applySettings pushes heights and cell recycling onto the form. Rows whose
// height was set by the form file keep it.
func (ui *RootUI) applySettings() {
	rowHeight := ui.settings.GetRowHeight()
	if fyne.CurrentDevice().IsMobile() && rowHeight < MinTouchTargetSize {
		rowHeight = MinTouchTargetSize
	}
	headerHeight := ui.settings.GetHeaderHeight()

	for _, s := range ui.form.Sections() {
		if h := s.HeaderViewFormer(); h != nil {
			if _, titled := h.Extension().(*rows.TitleViewFormer); !titled {
				h.ViewHeight = headerHeight
			}
		}
		for _, r := range s.All() {
			if _, picker := r.Extension().(*rows.PickerRowFormer); picker {
				continue
			}
			if r.CellHeight == ui.rowHeight {
				r.CellHeight = rowHeight
			}
		}
	}
	ui.rowHeight = rowHeight
	ui.form.RecycleCells = ui.settings.GetRecycleCells()
	ui.form.Reload()
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

func (ui *RootUI) onSettingsSaved() {
	if err := ApplyLogLevel(ui.settings.GetLogLevel()); err != nil {
		logger.Warn("log level not applied", "err", err)
	}
	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}
	ui.applySettings()
	ui.setStatus(ui.localization.GetText(KeySettingsSaved))
}

// RowSelected implements formspec.Handler
func (ui *RootUI) RowSelected(key string, indexPath former.IndexPath) {
	ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyRowSelected), key, indexPath))
}

// ValueChanged implements formspec.Handler
func (ui *RootUI) ValueChanged(key string, value any) {
	logger.Debug("value changed", "key", key, "value", value)
	ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyValueChanged), key, value))
}

func (ui *RootUI) setStatus(message string) {
	ui.status.SetText(message)
}
