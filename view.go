package former

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// View is the visual object bound to a ViewFormer.
type View interface {
	fyne.Widget

	SetBackgroundColor(c color.Color)
}

// FormableView is implemented by views that populate themselves from a ViewFormer.
type FormableView interface {
	ConfigureWithViewFormer(viewFormer *ViewFormer)
}

// FormableHeaderFooter is a View that can configure itself.
type FormableHeaderFooter interface {
	View
	FormableView
}

// ViewUpdater lets a view extension push its own state at the end of Update.
type ViewUpdater interface {
	UpdateView(viewFormer *ViewFormer)
}

// ViewOption configures a ViewFormer.
type ViewOption func(v *ViewFormer)

// WithViewExtension attaches ext to the view former.
func WithViewExtension(ext any) ViewOption {
	return func(v *ViewFormer) {
		v.ext = ext
	}
}

// ViewFormer describes a section header or footer.
type ViewFormer struct {
	ViewHeight      float32
	BackgroundColor color.Color

	newView         func() View
	instantiateType InstantiateType
	ext             any

	view View
}

// NewViewFormer creates a header or footer descriptor.
func NewViewFormer[T FormableHeaderFooter](newView func() T, instantiateType InstantiateType, opts ...ViewOption) *ViewFormer {
	v := &ViewFormer{
		ViewHeight:      DefaultHeaderFooterHeight,
		newView:         func() View { return newView() },
		instantiateType: instantiateType,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewSpacingViewFormer creates the plain spacing header used by default.
func NewSpacingViewFormer() *ViewFormer {
	return NewViewFormer(NewHeaderFooterView, InstantiateClass)
}

// Extension returns the value passed to WithViewExtension.
func (v *ViewFormer) Extension() any { return v.ext }

// View returns the bound view, or nil before ConfigureView and after PurgeView.
func (v *ViewFormer) View() View { return v.view }

// ConfigureView binds a view if none is bound, lets it configure itself and
// runs Update.
func (v *ViewFormer) ConfigureView() {
	if v.view == nil {
		v.view = instantiate(v.newView, v.instantiateType, "view")
	}
	if fv, ok := v.view.(FormableView); ok {
		fv.ConfigureWithViewFormer(v)
	}
	v.Update()
}

// PurgeView drops the bound view.
func (v *ViewFormer) PurgeView() {
	v.view = nil
}

// Update pushes the configuration onto the bound view, if any.
func (v *ViewFormer) Update() {
	view := v.view
	if view == nil {
		return
	}
	if v.BackgroundColor != nil {
		view.SetBackgroundColor(v.BackgroundColor)
	}
	if fv, ok := view.(FormableView); ok {
		fv.ConfigureWithViewFormer(v)
	}
	if u, ok := v.ext.(ViewUpdater); ok {
		u.UpdateView(v)
	}
}

// HeaderFooterView is a header or footer view: a background behind
// optional content. Empty, it is plain spacing.
type HeaderFooterView struct {
	widget.BaseWidget

	content    fyne.CanvasObject
	background color.Color
	rect       *canvas.Rectangle
}

// NewHeaderFooterView creates an empty spacing view.
func NewHeaderFooterView() *HeaderFooterView {
	v := &HeaderFooterView{}
	v.ExtendBaseWidget(v)
	return v
}

// SetContent replaces the object drawn on top of the background.
func (v *HeaderFooterView) SetContent(content fyne.CanvasObject) {
	v.content = content
	v.Refresh()
}

func (v *HeaderFooterView) SetBackgroundColor(c color.Color) {
	v.background = c
	v.Refresh()
}

func (v *HeaderFooterView) BackgroundColor() color.Color { return v.background }

// ConfigureWithViewFormer has nothing to configure on a spacing view.
func (v *HeaderFooterView) ConfigureWithViewFormer(*ViewFormer) {}

// CreateRenderer is a private method to Fyne which links this widget to its renderer
func (v *HeaderFooterView) CreateRenderer() fyne.WidgetRenderer {
	v.rect = canvas.NewRectangle(color.Transparent)
	stack := container.NewStack(v.rect)
	r := &headerFooterRenderer{view: v, stack: stack}
	r.Refresh()
	return r
}

type headerFooterRenderer struct {
	view  *HeaderFooterView
	stack *fyne.Container
}

func (r *headerFooterRenderer) Layout(size fyne.Size) { r.stack.Resize(size) }

func (r *headerFooterRenderer) MinSize() fyne.Size { return r.stack.MinSize() }

func (r *headerFooterRenderer) Refresh() {
	bg := r.view.background
	if bg == nil {
		bg = color.Transparent
	}
	r.view.rect.FillColor = bg
	objects := []fyne.CanvasObject{r.view.rect}
	if r.view.content != nil {
		objects = append(objects, r.view.content)
	}
	r.stack.Objects = objects
	r.stack.Refresh()
}

func (r *headerFooterRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.stack}
}

func (r *headerFooterRenderer) Destroy() {}
