package rows

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/former"
)

// titleViewHeight fits one line of caption text.
const titleViewHeight float32 = 30

// TitleView is a header or footer showing a line of text.
type TitleView struct {
	former.HeaderFooterView

	label *widget.Label
}

// NewTitleView creates an empty title view.
func NewTitleView() *TitleView {
	v := &TitleView{label: widget.NewLabel("")}
	v.label.Importance = widget.LowImportance
	v.SetContent(v.label)
	v.ExtendBaseWidget(v)
	return v
}

// ConfigureWithViewFormer implements former.FormableView.
func (v *TitleView) ConfigureWithViewFormer(vf *former.ViewFormer) {
	tv, ok := vf.Extension().(*TitleViewFormer)
	if !ok {
		return
	}
	v.label.SetText(tv.Text)
	v.label.Alignment = tv.Alignment
	v.label.Refresh()
}

// Text returns the displayed text.
func (v *TitleView) Text() string { return v.label.Text }

// TitleViewFormer is a header or footer showing Text.
type TitleViewFormer struct {
	*former.ViewFormer

	Text      string
	Alignment fyne.TextAlign
}

// NewTitleViewFormer creates a title header or footer.
func NewTitleViewFormer(text string) *TitleViewFormer {
	return newTitleViewFormer(text, former.InstantiateClass)
}

// NewNibTitleViewFormer creates a title view loaded from the title_view
// template of Bundle.
func NewNibTitleViewFormer(text string) *TitleViewFormer {
	return newTitleViewFormer(text, former.InstantiateNib(NibTitleView, Bundle))
}

func newTitleViewFormer(text string, inst former.InstantiateType) *TitleViewFormer {
	tv := &TitleViewFormer{Text: text}
	tv.ViewFormer = former.NewViewFormer(NewTitleView, inst, former.WithViewExtension(tv))
	tv.ViewHeight = titleViewHeight
	return tv
}
