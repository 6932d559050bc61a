package former

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(f *Former) *fyne.Container {
	return f.createItem().(*fyne.Container)
}

func TestFormer_Flatten(t *testing.T) {
	newTestApp(t)
	first := NewSectionFormer(newRows(2)...)
	second := NewSectionFormer(newRows(1)...).
		SetHeaderViewFormer(nil).
		SetFooterViewFormer(NewSpacingViewFormer())

	f := New(first, second)

	kinds := make([]itemKind, len(f.items))
	for i, it := range f.items {
		kinds[i] = it.kind
	}
	assert.Equal(t, []itemKind{itemHeader, itemRow, itemRow, itemRow, itemFooter}, kinds)
	assert.Equal(t, 2, f.NumberOfSections())

	for _, r := range append(first.All(), second.All()...) {
		assert.Same(t, f, r.Former())
	}
}

func TestFormer_RowFormerAt(t *testing.T) {
	newTestApp(t)
	rows := newRows(3)
	f := New(NewSectionFormer(rows[:1]...), NewSectionFormer(rows[1:]...))

	r, err := f.RowFormerAt(IndexPath{Section: 1, Row: 1})
	require.NoError(t, err)
	assert.Same(t, rows[2], r)

	ip, ok := f.IndexPathOf(rows[1])
	assert.True(t, ok)
	assert.Equal(t, IndexPath{Section: 1, Row: 0}, ip)

	_, err = f.RowFormerAt(IndexPath{Section: 2})
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = f.RowFormerAt(IndexPath{Section: 0, Row: 1})
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestFormer_InsertRemoveSections(t *testing.T) {
	newTestApp(t)
	a, b, c := NewSectionFormer(), NewSectionFormer(), NewSectionFormer()
	f := New(a, b)

	f.Insert(1, c)
	assert.Equal(t, []*SectionFormer{a, c, b}, f.Sections())
	f.Insert(0, nil)
	assert.Equal(t, 3, f.NumberOfSections())

	row := newRow()
	c.Add(row)
	f.Reload()
	row.ConfigureCell()
	require.Same(t, f, row.Former())

	f.Remove(c)
	assert.Equal(t, []*SectionFormer{a, b}, f.Sections())
	assert.Nil(t, row.Former(), "removed rows lose their owner")
	assert.Nil(t, row.Cell(), "removed rows are purged")
}

func TestFormer_UpdateItemBindsCells(t *testing.T) {
	newTestApp(t)
	rows := newRows(2)
	f := New(NewSectionFormer(rows...))
	s := slot(f)

	f.updateItem(0, s)
	header := f.items[0].viewFormer
	require.NotNil(t, header.View())
	assert.Equal(t, []fyne.CanvasObject{header.View()}, s.Objects)

	f.updateItem(1, s)
	require.NotNil(t, rows[0].Cell())
	assert.Equal(t, []fyne.CanvasObject{rows[0].Cell()}, s.Objects)

	f.updateItem(99, s)
	assert.Equal(t, []fyne.CanvasObject{rows[0].Cell()}, s.Objects)
}

func TestFormer_RecycleCells(t *testing.T) {
	newTestApp(t)

	for _, recycle := range []bool{true, false} {
		rows := newRows(2)
		f := New(NewSectionFormer(rows...))
		f.RecycleCells = recycle
		s := slot(f)

		f.updateItem(1, s)
		require.NotNil(t, rows[0].Cell())
		f.updateItem(2, s)

		if recycle {
			assert.Nil(t, rows[0].Cell(), "slot reuse purges the previous row")
		} else {
			assert.NotNil(t, rows[0].Cell())
		}
		assert.NotNil(t, rows[1].Cell())
	}
}

func TestFormer_MovingRowBetweenSlotsKeepsCell(t *testing.T) {
	newTestApp(t)
	rows := newRows(2)
	f := New(NewSectionFormer(rows...))
	f.RecycleCells = true
	s1, s2 := slot(f), slot(f)

	f.updateItem(1, s1)
	cell := rows[0].Cell()
	f.updateItem(1, s2)
	assert.Empty(t, s1.Objects)

	f.updateItem(2, s1)
	assert.Same(t, cell, rows[0].Cell())
}

func TestFormer_SelectRow(t *testing.T) {
	newTestApp(t)
	var selected []IndexPath
	onSelected := func(ip IndexPath, _ *RowFormer) { selected = append(selected, ip) }
	enabled := NewRowFormer(newTestCell, InstantiateClass, onSelected)
	disabled := NewRowFormer(newTestCell, InstantiateClass, onSelected)
	disabled.Enabled = false
	f := New(NewSectionFormer(enabled, disabled))

	require.NoError(t, f.SelectRow(IndexPath{Row: 0}))
	require.NoError(t, f.SelectRow(IndexPath{Row: 1}))
	assert.Equal(t, []IndexPath{{Row: 0}}, selected)

	f.selectItem(0)
	f.selectItem(1)
	assert.Equal(t, []IndexPath{{Row: 0}, {Row: 0}}, selected, "headers are not selectable")

	assert.True(t, errors.Is(f.SelectRow(IndexPath{Row: 5}), ErrIndexOutOfRange))
}

func TestFormer_Widget(t *testing.T) {
	newTestApp(t)
	var selected int
	row := NewRowFormer(newTestCell, InstantiateClass, func(IndexPath, *RowFormer) { selected++ })
	f := New(NewSectionFormer(row))

	list := f.Widget()
	assert.Same(t, list, f.Widget())
	w := test.NewWindow(list)
	defer w.Close()
	w.Resize(fyne.NewSize(300, 200))

	assert.Equal(t, 2, list.Length())
	list.Select(1)
	assert.Equal(t, 1, selected)
}

func TestFormer_Editing(t *testing.T) {
	newTestApp(t)
	a := NewRowFormer(newTestCell, InstantiateClass, nil, WithExtension(&editableRow{}))
	b := NewRowFormer(newTestCell, InstantiateClass, nil, WithExtension(&editableRow{}))
	plain := newRow()
	f := New(NewSectionFormer(a, b, plain))

	f.BeginEditing(a)
	assert.True(t, a.IsEditing())
	assert.Same(t, a, f.EditingRowFormer())

	f.BeginEditing(b)
	assert.False(t, a.IsEditing())
	assert.True(t, b.IsEditing())

	f.BeginEditing(plain)
	assert.False(t, plain.IsEditing())
	assert.False(t, b.IsEditing())
	assert.Nil(t, f.EditingRowFormer())

	f.BeginEditing(a)
	f.EndEditing()
	assert.False(t, a.IsEditing())
	f.EndEditing()
}

func TestFormer_InlineRow(t *testing.T) {
	newTestApp(t)
	child := newRow()
	parent := NewRowFormer(newTestInlineCell(child), InstantiateClass, nil, WithExtension(&editableRow{}))
	other := newRow()
	section := NewSectionFormer(parent, other)
	f := New(section)
	parent.ConfigureCell()
	cell := parent.Cell().(*testInlineCell)

	require.NoError(t, f.SelectRow(IndexPath{Row: 0}))
	assert.Equal(t, []*RowFormer{parent, child, other}, section.All())
	assert.Same(t, parent, f.InlineParent())
	assert.True(t, parent.IsEditing())
	assert.Equal(t, 1, cell.began)
	assert.Same(t, f, child.Former())

	require.NoError(t, f.SelectRow(IndexPath{Row: 1}))
	assert.Equal(t, []*RowFormer{parent, child, other}, section.All(), "selecting the inline row keeps it open")

	require.NoError(t, f.SelectRow(IndexPath{Row: 0}))
	assert.Equal(t, []*RowFormer{parent, other}, section.All())
	assert.Nil(t, f.InlineParent())
	assert.False(t, parent.IsEditing())
	assert.Equal(t, 1, cell.ended)
	assert.Nil(t, child.Former())

	require.NoError(t, f.SelectRow(IndexPath{Row: 0}))
	require.NoError(t, f.SelectRow(IndexPath{Row: 2}))
	assert.Equal(t, []*RowFormer{parent, other}, section.All(), "selecting another row closes the inline row")
	assert.Equal(t, 2, cell.ended)
}

func TestFormer_ReloadDetachesRemovedEditingRow(t *testing.T) {
	newTestApp(t)
	a := NewRowFormer(newTestCell, InstantiateClass, nil, WithExtension(&editableRow{}))
	b := newRow()
	s := NewSectionFormer(a, b)
	f := New(s)
	f.updateItem(1, slot(f))
	f.BeginEditing(a)

	if _, err := s.RemoveAt(0); err != nil {
		t.Fatalf("RemoveAt: %v", err)
	}
	f.Reload()

	if a.Former() != nil {
		t.Errorf("removed row still owned by %p", a.Former())
	}
	if a.IsEditing() {
		t.Errorf("removed row is still editing")
	}
	if f.EditingRowFormer() != nil {
		t.Errorf("EditingRowFormer() = %p, want nil", f.EditingRowFormer())
	}
	if _, ok := f.rowSlots[a]; ok {
		t.Errorf("removed row still holds a list slot")
	}
	if len(f.slots) != 0 {
		t.Errorf("slots = %d, want 0", len(f.slots))
	}
	if a.Cell() != nil {
		t.Errorf("removed row was not purged")
	}
	if b.Former() != f {
		t.Errorf("remaining row lost its owner")
	}
}

func TestFormer_ReloadDetachesRemovedInlineParent(t *testing.T) {
	newTestApp(t)
	child := newRow()
	parent := NewRowFormer(newTestInlineCell(child), InstantiateClass, nil, WithExtension(&editableRow{}))
	other := newRow()
	section := NewSectionFormer(parent, other)
	f := New(section)
	parent.ConfigureCell()
	cell := parent.Cell().(*testInlineCell)

	if err := f.SelectRow(IndexPath{Row: 0}); err != nil {
		t.Fatalf("SelectRow: %v", err)
	}
	if f.InlineParent() != parent {
		t.Fatalf("inline row did not open")
	}

	if _, err := section.RemoveAt(0); err != nil {
		t.Fatalf("RemoveAt: %v", err)
	}
	f.Reload()

	if got := section.All(); len(got) != 1 || got[0] != other {
		t.Errorf("section rows = %v, want only the remaining row", got)
	}
	if f.InlineParent() != nil {
		t.Errorf("InlineParent() = %p, want nil", f.InlineParent())
	}
	if f.EditingRowFormer() != nil {
		t.Errorf("removed inline parent is still the editing row")
	}
	if parent.Former() != nil || child.Former() != nil {
		t.Errorf("parent or inline row still owned after removal")
	}
	if cell.ended != 1 {
		t.Errorf("EditingDidEnd called %d times, want 1", cell.ended)
	}
	if len(f.items) != 2 {
		t.Errorf("items = %d, want header and one row", len(f.items))
	}
}

func TestFormer_ReloadLeavesRowsClaimedElsewhere(t *testing.T) {
	newTestApp(t)
	r := newRow()
	s := NewSectionFormer(r)
	f := New(s)

	s.Remove(r)
	g := New(NewSectionFormer(r))
	f.Reload()

	if r.Former() != g {
		t.Errorf("Former() = %p, want the form that claimed the row", r.Former())
	}
}

func TestFormer_PurgeCells(t *testing.T) {
	newTestApp(t)
	rows := newRows(2)
	f := New(NewSectionFormer(rows...))
	f.updateItem(1, slot(f))
	f.updateItem(2, slot(f))

	f.PurgeCells()
	for _, r := range rows {
		assert.Nil(t, r.Cell())
	}
	assert.Empty(t, f.slots)
	assert.Empty(t, f.rowSlots)
}
