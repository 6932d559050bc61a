// Package former provides a declarative layer over fyne list widgets.
//
// Callers describe a form as data: a SectionFormer holds an ordered sequence
// of RowFormer descriptors plus optional header and footer ViewFormers. A
// Former flattens its sections into a widget.List and lets each descriptor
// lazily materialize, configure, update and purge the cell bound to it.
//
// All types in this package are meant to be used from the fyne UI goroutine.
// Nothing here locks.
package former
