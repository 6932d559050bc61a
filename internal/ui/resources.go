package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	DemoFormName = "demo_form.yaml"
)

//go:embed demo_form.yaml
var demoForm []byte

// DemoFormResource is the form shown when no form file is given
var DemoFormResource = &fyne.StaticResource{
	StaticName:    DemoFormName,
	StaticContent: demoForm,
}
