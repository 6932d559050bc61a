package former

import (
	"image/color"
	"weak"

	"github.com/google/uuid"
)

// Initializer lets a row extension change the defaults set at construction.
type Initializer interface {
	InitializeRow(rowFormer *RowFormer)
}

// EditingCapable lets a row extension declare that its row can enter editing mode.
type EditingCapable interface {
	AllowsEditing() bool
}

// Updater lets a row extension push its own state at the end of Update.
type Updater interface {
	UpdateRow(rowFormer *RowFormer)
}

// RowOption configures a RowFormer before it is initialized.
type RowOption func(r *RowFormer)

// WithExtension attaches ext to the row. Concrete row formers embed
// *RowFormer and pass themselves here; ext may implement Initializer,
// EditingCapable and Updater.
func WithExtension(ext any) RowOption {
	return func(r *RowFormer) {
		r.ext = ext
	}
}

// RowFormer describes one row: which cell to create, how to style it and
// what to do when it is selected. The cell is created lazily by ConfigureCell
// and dropped by PurgeCell.
type RowFormer struct {
	ID uuid.UUID

	// OnSelected runs when the enabled row is selected.
	OnSelected func(indexPath IndexPath, rowFormer *RowFormer)
	// CellHeight is the fixed height of the row.
	CellHeight float32
	// Enabled rows can be selected.
	Enabled bool

	// Unset (nil) fields leave the cell value untouched.
	BackgroundColor color.Color
	AccessoryType   *AccessoryType
	SelectionStyle  *SelectionStyle
	SeparatorInsets *EdgeInsets
	TintColor       color.Color

	newCell         func() Cell
	instantiateType InstantiateType
	ext             any

	cell      Cell
	former    weak.Pointer[Former]
	isEditing bool
}

// NewRowFormer creates a row whose cells come from newCell or, for nib
// instantiation, from the first object of the template.
func NewRowFormer[T FormableCell](
	newCell func() T,
	instantiateType InstantiateType,
	onSelected func(IndexPath, *RowFormer),
	opts ...RowOption,
) *RowFormer {
	r := &RowFormer{
		ID:              uuid.New(),
		OnSelected:      onSelected,
		CellHeight:      DefaultCellHeight,
		Enabled:         true,
		newCell:         func() Cell { return newCell() },
		instantiateType: instantiateType,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.initialize()
	return r
}

func (r *RowFormer) initialize() {
	r.BackgroundColor = color.White
	r.SeparatorInsets = &EdgeInsets{Left: DefaultSeparatorLeftInset}
	if i, ok := r.ext.(Initializer); ok {
		i.InitializeRow(r)
	}
}

// Extension returns the value passed to WithExtension.
func (r *RowFormer) Extension() any { return r.ext }

// InstantiateType returns how cells of this row are created.
func (r *RowFormer) InstantiateType() InstantiateType { return r.instantiateType }

// Cell returns the bound cell, or nil before ConfigureCell and after PurgeCell.
func (r *RowFormer) Cell() Cell { return r.cell }

// Former returns the owning Former, or nil if the row has none or it is gone.
func (r *RowFormer) Former() *Former { return r.former.Value() }

func (r *RowFormer) setFormer(f *Former) {
	if f == nil {
		r.former = weak.Pointer[Former]{}
		return
	}
	r.former = weak.Make(f)
}

// IsEditing reports whether the owning Former put the row in editing mode.
func (r *RowFormer) IsEditing() bool { return r.isEditing }

// CanBecomeEditing reports whether the row can enter editing mode.
func (r *RowFormer) CanBecomeEditing() bool {
	if e, ok := r.ext.(EditingCapable); ok {
		return e.AllowsEditing()
	}
	return false
}

// SetAccessoryType sets the accessory indicator.
func (r *RowFormer) SetAccessoryType(a AccessoryType) *RowFormer {
	r.AccessoryType = &a
	return r
}

// SetSelectionStyle sets the selection highlight.
func (r *RowFormer) SetSelectionStyle(s SelectionStyle) *RowFormer {
	r.SelectionStyle = &s
	return r
}

// SetSeparatorInsets sets the separator insets.
func (r *RowFormer) SetSeparatorInsets(insets EdgeInsets) *RowFormer {
	r.SeparatorInsets = &insets
	return r
}

// ConfigureCell binds a cell if none is bound, lets it configure itself and
// runs Update. The owning list controller calls it while rendering the row.
func (r *RowFormer) ConfigureCell() {
	if r.cell == nil {
		r.cell = instantiate(r.newCell, r.instantiateType, "cell")
		logger.Debug("cell materialized", "row", r.ID, "instantiate", r.instantiateType)
	}
	if row, ok := r.cell.(FormableRow); ok {
		row.ConfigureWithRowFormer(r)
	}
	r.Update()
}

// PurgeCell drops the bound cell. The next ConfigureCell creates a new one.
func (r *RowFormer) PurgeCell() {
	if r.cell == nil {
		return
	}
	r.cell = nil
	logger.Debug("cell purged", "row", r.ID)
}

// Update pushes the configuration onto the bound cell, if any. A disabled
// row always gets SelectionStyleNone.
func (r *RowFormer) Update() {
	cell := r.cell
	if cell == nil {
		return
	}

	if r.BackgroundColor != nil {
		cell.SetBackgroundColor(r.BackgroundColor)
	}
	if r.SeparatorInsets != nil {
		cell.SetSeparatorInsets(*r.SeparatorInsets)
	}
	if r.AccessoryType != nil {
		cell.SetAccessoryType(*r.AccessoryType)
	}
	if r.TintColor != nil {
		cell.SetTintColor(r.TintColor)
	}
	if r.Enabled {
		if r.SelectionStyle != nil {
			cell.SetSelectionStyle(*r.SelectionStyle)
		}
	} else {
		cell.SetSelectionStyle(SelectionStyleNone)
	}

	if row, ok := cell.(FormableRow); ok {
		row.ConfigureWithRowFormer(r)
	}
	if u, ok := r.ext.(Updater); ok {
		u.UpdateRow(r)
	}
}

// CellSelected runs OnSelected when the row is enabled.
func (r *RowFormer) CellSelected(indexPath IndexPath) {
	if !r.Enabled {
		return
	}
	if r.OnSelected != nil {
		r.OnSelected(indexPath, r)
	}
}
