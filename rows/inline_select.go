package rows

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/former"
)

// pickerOptionHeight is the height reserved per option of a picker row.
const pickerOptionHeight float32 = 36

// InlineSelectCell shows a title and the selected value. It owns the picker
// row a Former expands below it.
type InlineSelectCell struct {
	former.BaseCell

	title *widget.Label
	value *widget.Label
	row   *InlineSelectRowFormer
}

// NewInlineSelectCell creates an empty inline select cell.
func NewInlineSelectCell() *InlineSelectCell {
	c := &InlineSelectCell{
		title: widget.NewLabel(""),
		value: widget.NewLabel(""),
	}
	c.value.Alignment = fyne.TextAlignTrailing
	c.SetContent(container.NewBorder(nil, nil, c.title, c.value))
	c.ExtendBaseWidget(c)
	return c
}

// ConfigureWithRowFormer implements former.FormableRow.
func (c *InlineSelectCell) ConfigureWithRowFormer(r *former.RowFormer) {
	sr, ok := r.Extension().(*InlineSelectRowFormer)
	if !ok {
		return
	}
	c.row = sr
	c.title.SetText(sr.Title)
	c.title.Importance = importance(r.Enabled)
	c.title.Refresh()
	c.setValueHighlighted(r.IsEditing())
}

// InlineRowFormer implements former.InlineRow.
func (c *InlineSelectCell) InlineRowFormer() *former.RowFormer {
	if c.row == nil {
		return nil
	}
	c.row.picker.fitHeight()
	return c.row.picker.RowFormer
}

// EditingDidBegin implements former.InlineRow.
func (c *InlineSelectCell) EditingDidBegin() {
	c.setValueHighlighted(true)
}

// EditingDidEnd implements former.InlineRow.
func (c *InlineSelectCell) EditingDidEnd() {
	c.setValueHighlighted(false)
}

// Value returns the displayed value.
func (c *InlineSelectCell) Value() string { return c.value.Text }

// Highlighted reports whether the value is drawn as being edited.
func (c *InlineSelectCell) Highlighted() bool {
	return c.value.Importance == widget.HighImportance
}

func (c *InlineSelectCell) setValueHighlighted(on bool) {
	if c.row != nil {
		c.value.SetText(c.row.Value())
	}
	if on {
		c.value.Importance = widget.HighImportance
	} else {
		c.value.Importance = widget.LowImportance
	}
	c.value.Refresh()
}

// InlineSelectRowFormer lets the user pick one of Options in a picker row
// shown right below it.
type InlineSelectRowFormer struct {
	*former.RowFormer

	Title          string
	Options        []string
	Selected       int // -1 when nothing is selected
	OnValueChanged func(index int, value string)

	picker *PickerRowFormer
}

// NewInlineSelectRowFormer creates an inline select row with selected preselected.
func NewInlineSelectRowFormer(title string, options []string, selected int, onValueChanged func(int, string)) *InlineSelectRowFormer {
	if selected < 0 || selected >= len(options) {
		selected = -1
	}
	sr := &InlineSelectRowFormer{
		Title:          title,
		Options:        options,
		Selected:       selected,
		OnValueChanged: onValueChanged,
	}
	sr.RowFormer = former.NewRowFormer(NewInlineSelectCell, former.InstantiateClass, nil, former.WithExtension(sr))
	sr.picker = newPickerRowFormer(sr)
	return sr
}

// AllowsEditing implements former.EditingCapable.
func (sr *InlineSelectRowFormer) AllowsEditing() bool { return true }

// InitializeRow implements former.Initializer.
func (sr *InlineSelectRowFormer) InitializeRow(r *former.RowFormer) {
	r.SetAccessoryType(former.AccessoryDisclosureIndicator)
}

// Value returns the selected option, or "" when nothing is selected.
func (sr *InlineSelectRowFormer) Value() string {
	if sr.Selected < 0 || sr.Selected >= len(sr.Options) {
		return ""
	}
	return sr.Options[sr.Selected]
}

// Picker returns the row expanded below this one while editing.
func (sr *InlineSelectRowFormer) Picker() *PickerRowFormer { return sr.picker }

// Select selects Options[index] and refreshes both rows.
func (sr *InlineSelectRowFormer) Select(index int) {
	if index < 0 || index >= len(sr.Options) || index == sr.Selected {
		return
	}
	sr.Selected = index
	if sr.OnValueChanged != nil {
		sr.OnValueChanged(index, sr.Options[index])
	}
	sr.Update()
	sr.picker.Update()
}

// PickerCell lists the options of an InlineSelectRowFormer as radio buttons.
type PickerCell struct {
	former.BaseCell

	radio *widget.RadioGroup
}

// NewPickerCell creates an empty picker cell.
func NewPickerCell() *PickerCell {
	c := &PickerCell{radio: widget.NewRadioGroup(nil, nil)}
	c.SetContent(c.radio)
	c.ExtendBaseWidget(c)
	return c
}

// ConfigureWithRowFormer implements former.FormableRow.
func (c *PickerCell) ConfigureWithRowFormer(r *former.RowFormer) {
	pr, ok := r.Extension().(*PickerRowFormer)
	if !ok {
		return
	}
	parent := pr.parent
	c.radio.OnChanged = nil
	c.radio.Options = parent.Options
	c.radio.SetSelected(parent.Value())
	c.radio.OnChanged = func(value string) {
		parent.Select(slices.Index(parent.Options, value))
	}
	c.radio.Refresh()
}

// Selected returns the selected option.
func (c *PickerCell) Selected() string { return c.radio.Selected }

// Choose selects value as a user would.
func (c *PickerCell) Choose(value string) {
	c.radio.SetSelected(value)
}

// PickerRowFormer is the inline row of an InlineSelectRowFormer.
type PickerRowFormer struct {
	*former.RowFormer

	parent *InlineSelectRowFormer
}

func newPickerRowFormer(parent *InlineSelectRowFormer) *PickerRowFormer {
	pr := &PickerRowFormer{parent: parent}
	pr.RowFormer = former.NewRowFormer(NewPickerCell, former.InstantiateClass, nil, former.WithExtension(pr))
	pr.fitHeight()
	return pr
}

// fitHeight sizes the row to the parent's current options.
func (pr *PickerRowFormer) fitHeight() {
	pr.CellHeight = max(former.DefaultCellHeight, pickerOptionHeight*float32(len(pr.parent.Options)))
}

// InitializeRow implements former.Initializer.
func (pr *PickerRowFormer) InitializeRow(r *former.RowFormer) {
	r.SetSelectionStyle(former.SelectionStyleNone)
}

// UpdateRow implements former.Updater.
func (pr *PickerRowFormer) UpdateRow(*former.RowFormer) {
	pr.fitHeight()
}
