package rows

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/former"
)

// LabelCell shows a title and an optional trailing sub text.
type LabelCell struct {
	former.BaseCell

	title   *widget.Label
	subText *widget.Label
}

// NewLabelCell creates an empty label cell.
func NewLabelCell() *LabelCell {
	c := &LabelCell{
		title:   widget.NewLabel(""),
		subText: widget.NewLabel(""),
	}
	c.title.Truncation = fyne.TextTruncateEllipsis
	c.subText.Alignment = fyne.TextAlignTrailing
	c.SetContent(container.NewBorder(nil, nil, nil, c.subText, c.title))
	c.ExtendBaseWidget(c)
	return c
}

// ConfigureWithRowFormer implements former.FormableRow.
func (c *LabelCell) ConfigureWithRowFormer(r *former.RowFormer) {
	lr, ok := r.Extension().(*LabelRowFormer)
	if !ok {
		return
	}
	c.title.SetText(lr.Text)
	c.subText.SetText(lr.SubText)
	c.title.Importance = importance(r.Enabled)
	c.subText.Importance = widget.LowImportance
	c.title.Refresh()
	c.subText.Refresh()
}

// Title returns the displayed title.
func (c *LabelCell) Title() string { return c.title.Text }

// SubText returns the displayed sub text.
func (c *LabelCell) SubText() string { return c.subText.Text }

// LabelRowFormer is a read-only row showing Text and SubText.
type LabelRowFormer struct {
	*former.RowFormer

	Text    string
	SubText string
}

// NewLabelRowFormer creates a label row built programmatically.
func NewLabelRowFormer(text string, onSelected func(former.IndexPath, *former.RowFormer)) *LabelRowFormer {
	return newLabelRowFormer(text, former.InstantiateClass, onSelected)
}

// NewNibLabelRowFormer creates a label row whose cell comes from the
// label_cell template of Bundle.
func NewNibLabelRowFormer(text string, onSelected func(former.IndexPath, *former.RowFormer)) *LabelRowFormer {
	return newLabelRowFormer(text, former.InstantiateNib(NibLabelCell, Bundle), onSelected)
}

func newLabelRowFormer(text string, inst former.InstantiateType, onSelected func(former.IndexPath, *former.RowFormer)) *LabelRowFormer {
	lr := &LabelRowFormer{Text: text}
	lr.RowFormer = former.NewRowFormer(NewLabelCell, inst, onSelected, former.WithExtension(lr))
	return lr
}

func importance(enabled bool) widget.Importance {
	if enabled {
		return widget.MediumImportance
	}
	return widget.LowImportance
}
