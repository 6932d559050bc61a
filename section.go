package former

// SectionFormer holds the ordered rows of one section plus its optional
// header and footer. The order of rows is the order they are displayed in.
//
// Rows are compared by identity. A section is expected to hold each
// *RowFormer at most once.
type SectionFormer struct {
	rowFormers []*RowFormer
	header     *ViewFormer
	footer     *ViewFormer
}

// NewSectionFormer creates a section holding rowFormers. Its header is a
// spacing view and it has no footer.
func NewSectionFormer(rowFormers ...*RowFormer) *SectionFormer {
	s := &SectionFormer{header: NewSpacingViewFormer()}
	return s.Add(rowFormers...)
}

// NumberOfRows returns the number of rows.
func (s *SectionFormer) NumberOfRows() int {
	return len(s.rowFormers)
}

// RowFormer returns the row at index.
func (s *SectionFormer) RowFormer(index int) (*RowFormer, error) {
	if err := checkIndex("SectionFormer.RowFormer", index, len(s.rowFormers)); err != nil {
		return nil, err
	}
	return s.rowFormers[index], nil
}

// RowFormers returns a copy of the rows in [start, end).
func (s *SectionFormer) RowFormers(start, end int) ([]*RowFormer, error) {
	if err := checkRange("SectionFormer.RowFormers", start, end, len(s.rowFormers)); err != nil {
		return nil, err
	}
	return append([]*RowFormer(nil), s.rowFormers[start:end]...), nil
}

// All returns a copy of every row.
func (s *SectionFormer) All() []*RowFormer {
	return append([]*RowFormer(nil), s.rowFormers...)
}

// IndexOf returns the position of rowFormer, or -1.
func (s *SectionFormer) IndexOf(rowFormer *RowFormer) int {
	return indexOfRow(s.rowFormers, rowFormer)
}

// Add appends rowFormers. Nil entries are skipped.
func (s *SectionFormer) Add(rowFormers ...*RowFormer) *SectionFormer {
	s.rowFormers = append(s.rowFormers, nonNilRows(rowFormers)...)
	return s
}

// Insert places rowFormers so that the first one ends up at index. An index
// at or past the end appends; a negative index prepends.
func (s *SectionFormer) Insert(index int, rowFormers ...*RowFormer) *SectionFormer {
	rows := nonNilRows(rowFormers)
	count := len(s.rowFormers)

	switch {
	case count == 0 || index >= count:
		return s.Add(rows...)
	case index <= 0:
		s.rowFormers = append(rows, s.rowFormers...)
	default:
		spliced := make([]*RowFormer, 0, count+len(rows))
		spliced = append(spliced, s.rowFormers[:index]...)
		spliced = append(spliced, rows...)
		spliced = append(spliced, s.rowFormers[index:]...)
		s.rowFormers = spliced
	}
	return s
}

// Remove drops every listed row present in the section. Rows not in the
// section are ignored. Matching is by identity and scans the section once
// per requested row, which is fine at form scale. Scanning stops as soon as
// every distinct requested row has been removed.
func (s *SectionFormer) Remove(rowFormers ...*RowFormer) *SectionFormer {
	pending := uniqueRows(rowFormers)
	if len(pending) == 0 || len(s.rowFormers) == 0 {
		return s
	}

	all := s.rowFormers
	kept := all[:0]
	i := 0
	for ; i < len(all) && len(pending) > 0; i++ {
		if j := indexOfRow(pending, all[i]); j >= 0 {
			pending = append(pending[:j], pending[j+1:]...)
			continue
		}
		kept = append(kept, all[i])
	}
	kept = append(kept, all[i:]...)
	clear(all[len(kept):])
	s.rowFormers = kept
	return s
}

// RemoveAt drops the row at index.
func (s *SectionFormer) RemoveAt(index int) (*SectionFormer, error) {
	if err := checkIndex("SectionFormer.RemoveAt", index, len(s.rowFormers)); err != nil {
		return s, err
	}
	return s.removeRange(index, index+1), nil
}

// RemoveRange drops the rows in [start, end).
func (s *SectionFormer) RemoveRange(start, end int) (*SectionFormer, error) {
	if err := checkRange("SectionFormer.RemoveRange", start, end, len(s.rowFormers)); err != nil {
		return s, err
	}
	return s.removeRange(start, end), nil
}

func (s *SectionFormer) removeRange(start, end int) *SectionFormer {
	n := len(s.rowFormers)
	copy(s.rowFormers[start:], s.rowFormers[end:])
	clear(s.rowFormers[n-(end-start):])
	s.rowFormers = s.rowFormers[:n-(end-start)]
	return s
}

// HeaderViewFormer returns the header, or nil.
func (s *SectionFormer) HeaderViewFormer() *ViewFormer { return s.header }

// FooterViewFormer returns the footer, or nil.
func (s *SectionFormer) FooterViewFormer() *ViewFormer { return s.footer }

// SetHeaderViewFormer replaces the header. Nil removes it.
func (s *SectionFormer) SetHeaderViewFormer(viewFormer *ViewFormer) *SectionFormer {
	s.header = viewFormer
	return s
}

// SetFooterViewFormer replaces the footer. Nil removes it.
func (s *SectionFormer) SetFooterViewFormer(viewFormer *ViewFormer) *SectionFormer {
	s.footer = viewFormer
	return s
}

func indexOfRow(rows []*RowFormer, rowFormer *RowFormer) int {
	for i, r := range rows {
		if r == rowFormer {
			return i
		}
	}
	return -1
}

func nonNilRows(rows []*RowFormer) []*RowFormer {
	out := make([]*RowFormer, 0, len(rows))
	for _, r := range rows {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// uniqueRows drops nils and repeated rows, keeping first occurrences.
func uniqueRows(rows []*RowFormer) []*RowFormer {
	out := make([]*RowFormer, 0, len(rows))
	for _, r := range rows {
		if r != nil && indexOfRow(out, r) < 0 {
			out = append(out, r)
		}
	}
	return out
}
