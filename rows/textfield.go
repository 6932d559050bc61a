package rows

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/former"
)

// formEntry is an entry reporting when it gains focus.
type formEntry struct {
	widget.Entry

	onFocus func()
}

func newFormEntry() *formEntry {
	e := &formEntry{}
	e.ExtendBaseWidget(e)
	return e
}

// FocusGained is called when the entry has been given focus
func (e *formEntry) FocusGained() {
	e.Entry.FocusGained()
	if e.onFocus != nil {
		e.onFocus()
	}
}

// TextFieldCell shows a title next to an editable entry.
type TextFieldCell struct {
	former.BaseCell

	title *widget.Label
	entry *formEntry
}

// NewTextFieldCell creates an empty text field cell.
func NewTextFieldCell() *TextFieldCell {
	c := &TextFieldCell{
		title: widget.NewLabel(""),
		entry: newFormEntry(),
	}
	c.SetContent(container.NewBorder(nil, nil, c.title, nil, c.entry))
	c.ExtendBaseWidget(c)
	return c
}

// ConfigureWithRowFormer implements former.FormableRow.
func (c *TextFieldCell) ConfigureWithRowFormer(r *former.RowFormer) {
	tr, ok := r.Extension().(*TextFieldRowFormer)
	if !ok {
		return
	}

	c.title.SetText(tr.Title)
	c.title.Importance = importance(r.Enabled)
	c.title.Refresh()

	c.entry.SetPlaceHolder(tr.Placeholder)
	c.entry.OnChanged = nil
	if c.entry.Text != tr.Text {
		c.entry.SetText(tr.Text)
	}
	c.entry.OnChanged = tr.textChanged
	c.entry.OnSubmitted = func(string) {
		if f := r.Former(); f != nil && f.EditingRowFormer() == r {
			f.EndEditing()
		}
	}
	c.entry.onFocus = func() {
		if f := r.Former(); f != nil {
			f.BeginEditing(r)
		}
	}

	if r.Enabled {
		c.entry.Enable()
	} else {
		c.entry.Disable()
	}
}

// Text returns the text currently in the entry.
func (c *TextFieldCell) Text() string { return c.entry.Text }

// TypeText replaces the entry text as if the user typed it.
func (c *TextFieldCell) TypeText(text string) {
	c.entry.SetText(text)
}

// Entry returns the entry widget.
func (c *TextFieldCell) Entry() fyne.Focusable { return c.entry }

// TextFieldRowFormer is an editable single line of text.
type TextFieldRowFormer struct {
	*former.RowFormer

	Title         string
	Text          string
	Placeholder   string
	OnTextChanged func(text string)
}

// NewTextFieldRowFormer creates a text field row.
func NewTextFieldRowFormer(title, placeholder string, onTextChanged func(string)) *TextFieldRowFormer {
	tr := &TextFieldRowFormer{
		Title:         title,
		Placeholder:   placeholder,
		OnTextChanged: onTextChanged,
	}
	tr.RowFormer = former.NewRowFormer(NewTextFieldCell, former.InstantiateClass, nil, former.WithExtension(tr))
	return tr
}

// AllowsEditing implements former.EditingCapable.
func (tr *TextFieldRowFormer) AllowsEditing() bool { return true }

// InitializeRow implements former.Initializer.
func (tr *TextFieldRowFormer) InitializeRow(r *former.RowFormer) {
	r.SetSelectionStyle(former.SelectionStyleNone)
}

func (tr *TextFieldRowFormer) textChanged(text string) {
	tr.Text = text
	if tr.OnTextChanged != nil {
		tr.OnTextChanged(text)
	}
}
