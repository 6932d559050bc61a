package former

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
)

type itemKind int

const (
	itemHeader itemKind = iota
	itemRow
	itemFooter
)

// listItem is one entry of the flattened list: a header, a row or a footer.
type listItem struct {
	kind       itemKind
	section    int
	row        int
	rowFormer  *RowFormer
	viewFormer *ViewFormer
}

func (it listItem) height() float32 {
	if it.kind == itemRow {
		return it.rowFormer.CellHeight
	}
	return it.viewFormer.ViewHeight
}

// Former drives a widget.List from its sections. Headers, rows and footers
// are flattened into list items; list slots are recycled between rows.
//
// Mutating a section does not touch the list until Reload is called.
type Former struct {
	ID uuid.UUID

	// RecycleCells purges a row's cell once the list reuses its slot for
	// another row.
	RecycleCells bool

	sections []*SectionFormer
	items    []listItem
	list     *widget.List

	slots    map[*fyne.Container]*RowFormer
	rowSlots map[*RowFormer]*fyne.Container

	editing *RowFormer

	inlineParent *RowFormer
	inlineRow    *RowFormer
}

// New creates a Former holding sections.
func New(sections ...*SectionFormer) *Former {
	f := &Former{
		ID:       uuid.New(),
		slots:    make(map[*fyne.Container]*RowFormer),
		rowSlots: make(map[*RowFormer]*fyne.Container),
	}
	return f.Add(sections...)
}

// NumberOfSections returns the number of sections.
func (f *Former) NumberOfSections() int {
	return len(f.sections)
}

// Section returns the section at index.
func (f *Former) Section(index int) (*SectionFormer, error) {
	if err := checkIndex("Former.Section", index, len(f.sections)); err != nil {
		return nil, err
	}
	return f.sections[index], nil
}

// Sections returns a copy of every section.
func (f *Former) Sections() []*SectionFormer {
	return append([]*SectionFormer(nil), f.sections...)
}

// RowFormerAt returns the row at indexPath.
func (f *Former) RowFormerAt(indexPath IndexPath) (*RowFormer, error) {
	s, err := f.Section(indexPath.Section)
	if err != nil {
		return nil, err
	}
	return s.RowFormer(indexPath.Row)
}

// IndexPathOf locates rowFormer.
func (f *Former) IndexPathOf(rowFormer *RowFormer) (IndexPath, bool) {
	for si, s := range f.sections {
		if ri := s.IndexOf(rowFormer); ri >= 0 {
			return IndexPath{Section: si, Row: ri}, true
		}
	}
	return IndexPath{}, false
}

// Add appends sections and reloads.
func (f *Former) Add(sections ...*SectionFormer) *Former {
	for _, s := range sections {
		if s != nil {
			f.sections = append(f.sections, s)
		}
	}
	f.Reload()
	return f
}

// Insert places sections at index, following SectionFormer.Insert, and reloads.
func (f *Former) Insert(index int, sections ...*SectionFormer) *Former {
	var add []*SectionFormer
	for _, s := range sections {
		if s != nil {
			add = append(add, s)
		}
	}
	switch {
	case index >= len(f.sections):
		f.sections = append(f.sections, add...)
	case index <= 0:
		f.sections = append(add, f.sections...)
	default:
		spliced := make([]*SectionFormer, 0, len(f.sections)+len(add))
		spliced = append(spliced, f.sections[:index]...)
		spliced = append(spliced, add...)
		f.sections = append(spliced, f.sections[index:]...)
	}
	f.Reload()
	return f
}

// Remove drops sections by identity and reloads. Their rows are detached.
func (f *Former) Remove(sections ...*SectionFormer) *Former {
	kept := f.sections[:0]
	for _, s := range f.sections {
		removed := false
		for _, target := range sections {
			if s == target {
				removed = true
				break
			}
		}
		if !removed {
			kept = append(kept, s)
		}
	}
	clear(f.sections[len(kept):])
	f.sections = kept
	f.Reload()
	return f
}

// detach releases a row that left the form: it ends its editing, collapses
// the inline row it is part of, drops its slot, purges its cell and clears
// its owner.
func (f *Former) detach(r *RowFormer) {
	if f.inlineParent == r || f.inlineRow == r {
		f.collapseInline()
	}
	if f.editing == r {
		f.EndEditing()
	}
	f.releaseSlot(r)
	if r.Former() == f {
		r.PurgeCell()
		r.setFormer(nil)
	}
}

func (f *Former) releaseSlot(r *RowFormer) {
	if slot, ok := f.rowSlots[r]; ok {
		delete(f.slots, slot)
		delete(f.rowSlots, r)
	}
}

// Reload rebuilds the flattened items from the sections, claims ownership of
// every row and refreshes the list.
//
// Rows shown by the previous Reload that are no longer in any section are
// detached, however they were removed.
func (f *Former) Reload() {
	present := make(map[*RowFormer]struct{})
	for _, s := range f.sections {
		for _, r := range s.rowFormers {
			present[r] = struct{}{}
		}
	}
	for _, it := range f.items {
		if it.kind != itemRow {
			continue
		}
		if _, ok := present[it.rowFormer]; !ok {
			f.detach(it.rowFormer)
		}
	}

	items := f.items[:0]
	for si, s := range f.sections {
		if s.header != nil {
			items = append(items, listItem{kind: itemHeader, section: si, row: -1, viewFormer: s.header})
		}
		for ri, r := range s.rowFormers {
			r.setFormer(f)
			items = append(items, listItem{kind: itemRow, section: si, row: ri, rowFormer: r})
		}
		if s.footer != nil {
			items = append(items, listItem{kind: itemFooter, section: si, row: -1, viewFormer: s.footer})
		}
	}
	f.items = items

	logger.Debug("former reloaded", "former", f.ID, "sections", len(f.sections), "items", len(f.items))

	if f.list == nil {
		return
	}
	for id, it := range f.items {
		f.list.SetItemHeight(id, it.height())
	}
	f.list.Refresh()
}

// Widget returns the list showing the form, creating it on first use.
func (f *Former) Widget() *widget.List {
	if f.list != nil {
		return f.list
	}
	f.list = widget.NewList(
		func() int {
			return len(f.items)
		},
		f.createItem,
		f.updateItem,
	)
	f.list.OnSelected = func(id widget.ListItemID) {
		f.list.Unselect(id)
		f.selectItem(id)
	}
	f.Reload()
	return f.list
}

func (f *Former) createItem() fyne.CanvasObject {
	return container.NewStack()
}

func (f *Former) updateItem(id widget.ListItemID, obj fyne.CanvasObject) {
	slot, ok := obj.(*fyne.Container)
	if !ok {
		logger.Warn("unexpected list slot", "type", fmt.Sprintf("%T", obj))
		return
	}
	if id < 0 || id >= len(f.items) {
		logger.Warn("list item out of range", "id", id, "items", len(f.items))
		return
	}

	it := f.items[id]
	var content fyne.CanvasObject
	if it.kind == itemRow {
		r := it.rowFormer
		f.recycleSlot(slot, r)
		if old, ok := f.rowSlots[r]; ok && old != slot {
			old.Objects = nil
			delete(f.slots, old)
		}
		r.ConfigureCell()
		f.slots[slot] = r
		f.rowSlots[r] = slot
		content = r.Cell()
	} else {
		f.recycleSlot(slot, nil)
		it.viewFormer.ConfigureView()
		content = it.viewFormer.View()
	}

	slot.Objects = []fyne.CanvasObject{content}
	slot.Refresh()
}

// recycleSlot releases the row previously shown in slot when next differs.
func (f *Former) recycleSlot(slot *fyne.Container, next *RowFormer) {
	prev, ok := f.slots[slot]
	if !ok || prev == next {
		return
	}
	delete(f.slots, slot)
	if f.rowSlots[prev] != slot {
		return
	}
	delete(f.rowSlots, prev)
	if f.RecycleCells {
		prev.PurgeCell()
	}
}

// PurgeCells drops the cells of every row.
func (f *Former) PurgeCells() {
	for _, s := range f.sections {
		for _, r := range s.rowFormers {
			r.PurgeCell()
		}
	}
	clear(f.slots)
	clear(f.rowSlots)
	if f.list != nil {
		f.list.Refresh()
	}
}

func (f *Former) selectItem(id widget.ListItemID) {
	if id < 0 || id >= len(f.items) {
		return
	}
	it := f.items[id]
	if it.kind != itemRow {
		return
	}
	if err := f.SelectRow(IndexPath{Section: it.section, Row: it.row}); err != nil {
		logger.Warn("select row", "err", err)
	}
}

// SelectRow dispatches a selection to the row at indexPath. Selecting an
// enabled row whose cell is an InlineRow toggles its inline row; selecting
// any other row closes the open inline row.
func (f *Former) SelectRow(indexPath IndexPath) error {
	r, err := f.RowFormerAt(indexPath)
	if err != nil {
		return err
	}

	r.CellSelected(indexPath)
	if !r.Enabled {
		return nil
	}

	if inline, ok := r.Cell().(InlineRow); ok {
		f.toggleInline(r, inline)
		return nil
	}
	if r != f.inlineRow {
		f.closeInline()
	}
	return nil
}

// EditingRowFormer returns the row in editing mode, or nil.
func (f *Former) EditingRowFormer() *RowFormer {
	return f.editing
}

// BeginEditing puts rowFormer in editing mode, ending it for any other row.
// Rows that cannot become editing are left alone.
func (f *Former) BeginEditing(rowFormer *RowFormer) {
	if rowFormer == nil || f.editing == rowFormer {
		return
	}
	f.EndEditing()
	if !rowFormer.CanBecomeEditing() {
		return
	}
	rowFormer.isEditing = true
	f.editing = rowFormer
	rowFormer.Update()
}

// EndEditing takes the editing row, if any, out of editing mode.
func (f *Former) EndEditing() {
	r := f.editing
	if r == nil {
		return
	}
	r.isEditing = false
	f.editing = nil
	r.Update()
}

// InlineParent returns the row whose inline row is expanded, or nil.
func (f *Former) InlineParent() *RowFormer {
	return f.inlineParent
}

func (f *Former) toggleInline(parent *RowFormer, inline InlineRow) {
	if f.inlineParent == parent {
		f.closeInline()
		return
	}
	f.closeInline()

	ip, ok := f.IndexPathOf(parent)
	if !ok {
		return
	}
	child := inline.InlineRowFormer()
	if child == nil {
		return
	}
	f.sections[ip.Section].Insert(ip.Row+1, child)
	f.inlineParent, f.inlineRow = parent, child
	f.BeginEditing(parent)
	inline.EditingDidBegin()
	f.Reload()
}

func (f *Former) closeInline() {
	if f.inlineParent == nil {
		return
	}
	f.collapseInline()
	f.Reload()
}

// collapseInline takes the inline row out of its section and ends the
// parent's editing, without reloading.
func (f *Former) collapseInline() {
	parent, child := f.inlineParent, f.inlineRow
	if parent == nil {
		return
	}
	f.inlineParent, f.inlineRow = nil, nil

	for _, s := range f.sections {
		s.Remove(child)
	}
	f.releaseSlot(child)
	child.setFormer(nil)

	if inline, ok := parent.Cell().(InlineRow); ok {
		inline.EditingDidEnd()
	}
	if f.editing == parent {
		f.EndEditing()
	}
}
