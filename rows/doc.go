// Package rows provides ready-made row formers for package former together
// with the cells they bind: plain labels, text fields, switches and an inline
// selector that expands a picker row below itself. It also ships nib
// templates for its cells and a title header/footer view.
package rows
