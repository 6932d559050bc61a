package rows

import (
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/former"
)

// SwitchCell shows a title and a check box.
type SwitchCell struct {
	former.BaseCell

	title *widget.Label
	check *widget.Check
}

// NewSwitchCell creates an unchecked switch cell.
func NewSwitchCell() *SwitchCell {
	c := &SwitchCell{
		title: widget.NewLabel(""),
		check: widget.NewCheck("", nil),
	}
	c.SetContent(container.NewBorder(nil, nil, nil, c.check, c.title))
	c.ExtendBaseWidget(c)
	return c
}

// ConfigureWithRowFormer implements former.FormableRow.
func (c *SwitchCell) ConfigureWithRowFormer(r *former.RowFormer) {
	sr, ok := r.Extension().(*SwitchRowFormer)
	if !ok {
		return
	}
	c.title.SetText(sr.Title)
	c.title.Importance = importance(r.Enabled)
	c.title.Refresh()

	c.check.OnChanged = nil
	c.check.SetChecked(sr.On)
	c.check.OnChanged = sr.setOn
	if r.Enabled {
		c.check.Enable()
	} else {
		c.check.Disable()
	}
}

// Checked reports the state of the check box.
func (c *SwitchCell) Checked() bool { return c.check.Checked }

// Tap toggles the check box as a user would.
func (c *SwitchCell) Tap() {
	c.check.SetChecked(!c.check.Checked)
}

// SwitchRowFormer is an on/off row.
type SwitchRowFormer struct {
	*former.RowFormer

	Title           string
	On              bool
	OnSwitchChanged func(on bool)
	// SwitchWhenSelected toggles the switch when the row is selected.
	SwitchWhenSelected bool
}

// NewSwitchRowFormer creates a switch row.
func NewSwitchRowFormer(title string, on bool, onSwitchChanged func(bool)) *SwitchRowFormer {
	sr := &SwitchRowFormer{
		Title:           title,
		On:              on,
		OnSwitchChanged: onSwitchChanged,
	}
	sr.RowFormer = former.NewRowFormer(NewSwitchCell, former.InstantiateClass, sr.selected, former.WithExtension(sr))
	return sr
}

// Toggle flips the switch.
func (sr *SwitchRowFormer) Toggle() {
	sr.setOn(!sr.On)
	sr.Update()
}

func (sr *SwitchRowFormer) selected(former.IndexPath, *former.RowFormer) {
	if sr.SwitchWhenSelected {
		sr.Toggle()
	}
}

func (sr *SwitchRowFormer) setOn(on bool) {
	if sr.On == on {
		return
	}
	sr.On = on
	if sr.OnSwitchChanged != nil {
		sr.OnSwitchChanged(on)
	}
}
