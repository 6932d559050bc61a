package former

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

// testCell counts how often it was asked to configure itself.
type testCell struct {
	BaseCell

	configured int
	lastRow    *RowFormer
}

func newTestCell() *testCell {
	c := &testCell{}
	c.SetContent(widget.NewLabel(""))
	c.ExtendBaseWidget(c)
	return c
}

func (c *testCell) ConfigureWithRowFormer(r *RowFormer) {
	c.configured++
	c.lastRow = r
}

// testInlineCell expands child below its row.
type testInlineCell struct {
	testCell

	child *RowFormer
	began int
	ended int
}

func newTestInlineCell(child *RowFormer) func() *testInlineCell {
	return func() *testInlineCell {
		c := &testInlineCell{child: child}
		c.SetContent(widget.NewLabel(""))
		c.ExtendBaseWidget(c)
		return c
	}
}

func (c *testInlineCell) InlineRowFormer() *RowFormer { return c.child }
func (c *testInlineCell) EditingDidBegin()            { c.began++ }
func (c *testInlineCell) EditingDidEnd()              { c.ended++ }

// editableRow is a row extension allowing editing.
type editableRow struct {
	updates int
}

func (e *editableRow) AllowsEditing() bool        { return true }
func (e *editableRow) UpdateRow(*RowFormer)       { e.updates++ }
func (e *editableRow) InitializeRow(r *RowFormer) { r.CellHeight = 60 }

func newTestApp(t *testing.T) fyne.App {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	return a
}

func newRow() *RowFormer {
	return NewRowFormer(newTestCell, InstantiateClass, nil)
}

func newRows(n int) []*RowFormer {
	rows := make([]*RowFormer, n)
	for i := range rows {
		rows[i] = newRow()
	}
	return rows
}
