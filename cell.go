package former

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Cell is the visual object bound to a RowFormer.
//
// The style setters mirror the configuration fields of RowFormer. Embed
// BaseCell to get all of them.
type Cell interface {
	fyne.Widget

	SetBackgroundColor(c color.Color)
	SetSeparatorInsets(insets EdgeInsets)
	SetAccessoryType(a AccessoryType)
	SetTintColor(c color.Color)
	SetSelectionStyle(s SelectionStyle)
}

// FormableRow is implemented by cells that populate themselves from a RowFormer.
// ConfigureWithRowFormer may be called any number of times.
type FormableRow interface {
	ConfigureWithRowFormer(rowFormer *RowFormer)
}

// FormableCell is a Cell that can configure itself.
type FormableCell interface {
	Cell
	FormableRow
}

// InlineRow is implemented by cells owning a nested row that a Former expands
// right below them while editing.
type InlineRow interface {
	InlineRowFormer() *RowFormer
	EditingDidBegin()
	EditingDidEnd()
}

// BaseCell is a list cell with a background, a trailing accessory indicator
// and a bottom separator around arbitrary content.
type BaseCell struct {
	widget.BaseWidget

	content         fyne.CanvasObject
	background      color.Color
	separatorInsets EdgeInsets
	accessory       AccessoryType
	tint            color.Color
	selectionStyle  SelectionStyle
}

// NewBaseCell creates a cell showing content.
func NewBaseCell(content fyne.CanvasObject) *BaseCell {
	c := &BaseCell{content: content}
	c.ExtendBaseWidget(c)
	return c
}

// SetContent replaces the object drawn inside the cell.
func (c *BaseCell) SetContent(content fyne.CanvasObject) {
	c.content = content
	c.Refresh()
}

// Content returns the object drawn inside the cell.
func (c *BaseCell) Content() fyne.CanvasObject { return c.content }

func (c *BaseCell) SetBackgroundColor(col color.Color) {
	c.background = col
	c.Refresh()
}

func (c *BaseCell) BackgroundColor() color.Color { return c.background }

func (c *BaseCell) SetSeparatorInsets(insets EdgeInsets) {
	c.separatorInsets = insets
	c.Refresh()
}

func (c *BaseCell) SeparatorInsets() EdgeInsets { return c.separatorInsets }

func (c *BaseCell) SetAccessoryType(a AccessoryType) {
	c.accessory = a
	c.Refresh()
}

func (c *BaseCell) AccessoryType() AccessoryType { return c.accessory }

func (c *BaseCell) SetTintColor(col color.Color) {
	c.tint = col
	c.Refresh()
}

func (c *BaseCell) TintColor() color.Color { return c.tint }

func (c *BaseCell) SetSelectionStyle(s SelectionStyle) {
	c.selectionStyle = s
}

func (c *BaseCell) SelectionStyle() SelectionStyle { return c.selectionStyle }

// CreateRenderer is a private method to Fyne which links this widget to its renderer
func (c *BaseCell) CreateRenderer() fyne.WidgetRenderer {
	r := &baseCellRenderer{
		cell:       c,
		background: canvas.NewRectangle(color.Transparent),
		separator:  canvas.NewRectangle(color.Transparent),
		accessory:  canvas.NewText("", color.Transparent),
	}
	r.accessory.TextStyle = fyne.TextStyle{Bold: true}
	r.Refresh()
	return r
}

func accessoryGlyph(a AccessoryType) string {
	switch a {
	case AccessoryDisclosureIndicator:
		return "›"
	case AccessoryDetailDisclosureButton:
		return "ⓘ ›"
	case AccessoryCheckmark:
		return "✓"
	case AccessoryDetailButton:
		return "ⓘ"
	}
	return ""
}

type baseCellRenderer struct {
	cell       *BaseCell
	content    fyne.CanvasObject
	background *canvas.Rectangle
	separator  *canvas.Rectangle
	accessory  *canvas.Text
}

func (r *baseCellRenderer) Layout(size fyne.Size) {
	pad := theme.Padding()
	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(size)

	contentWidth := size.Width
	if r.accessory.Text != "" {
		acc := r.accessory.MinSize()
		r.accessory.Resize(acc)
		r.accessory.Move(fyne.NewPos(size.Width-acc.Width-pad*2, (size.Height-acc.Height)/2))
		contentWidth -= acc.Width + pad*3
	}
	if r.content != nil {
		r.content.Move(fyne.NewPos(0, 0))
		r.content.Resize(fyne.NewSize(contentWidth, size.Height))
	}

	insets := r.cell.separatorInsets
	thickness := theme.SeparatorThicknessSize()
	width := size.Width - insets.Left - insets.Right
	if width < 0 {
		width = 0
	}
	r.separator.Move(fyne.NewPos(insets.Left, size.Height-thickness))
	r.separator.Resize(fyne.NewSize(width, thickness))
}

func (r *baseCellRenderer) MinSize() fyne.Size {
	size := fyne.NewSize(0, 0)
	if r.content != nil {
		size = r.content.MinSize()
	}
	if r.accessory.Text != "" {
		acc := r.accessory.MinSize()
		size.Width += acc.Width + theme.Padding()*3
		if acc.Height > size.Height {
			size.Height = acc.Height
		}
	}
	return size
}

func (r *baseCellRenderer) Refresh() {
	r.content = r.cell.content

	bg := r.cell.background
	if bg == nil {
		bg = theme.Color(theme.ColorNameBackground)
	}
	r.background.FillColor = bg

	tint := r.cell.tint
	if tint == nil {
		tint = theme.Color(theme.ColorNamePrimary)
	}
	r.accessory.Text = accessoryGlyph(r.cell.accessory)
	r.accessory.Color = tint
	r.separator.FillColor = theme.Color(theme.ColorNameSeparator)

	r.Layout(r.cell.Size())
	r.background.Refresh()
	r.accessory.Refresh()
	r.separator.Refresh()
	if r.content != nil {
		r.content.Refresh()
	}
}

func (r *baseCellRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background}
	if r.content != nil {
		objects = append(objects, r.content)
	}
	return append(objects, r.separator, r.accessory)
}

func (r *baseCellRenderer) Destroy() {}
