package rows

import (
	"embed"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/layout"

	"github.com/ytget/former"
)

// Nib names of the templates in Bundle.
const (
	NibLabelCell = "label_cell"
	NibTitleView = "title_view"
)

// Template kinds registered by this package.
const (
	KindLabelCell = "label_cell"
	KindTitleView = "title_view"
	KindSpacer    = "spacer"
)

//go:embed templates/*.yaml
var templateFS embed.FS

// Bundle holds the templates shipped with this package.
var Bundle former.Bundle = former.NewFSBundle(templateFS, "templates")

func init() {
	former.RegisterTemplateKind(KindLabelCell, func(p former.TemplateProps) (fyne.CanvasObject, error) {
		c := NewLabelCell()
		c.title.TextStyle.Bold = p.Bool("bold")
		c.subText.TextStyle.Italic = p.Bool("sub_text_italic")
		return c, nil
	})
	former.RegisterTemplateKind(KindTitleView, func(p former.TemplateProps) (fyne.CanvasObject, error) {
		v := NewTitleView()
		v.label.TextStyle.Bold = p.Bool("bold")
		return v, nil
	})
	former.RegisterTemplateKind(KindSpacer, func(former.TemplateProps) (fyne.CanvasObject, error) {
		return layout.NewSpacer(), nil
	})
}
