package view

import "github.com/go-drift/tweak/pkg/dom"

// ColorPickerConfig names the pre-built child views of a ColorPicker.
type ColorPickerConfig struct {
	SvPaletteView View
	HPaletteView  View
	TextView      View
}

// ColorPicker stacks the saturation/value palette, the hue strip and the
// color text field.
type ColorPicker struct {
	*Composite
}

// NewColorPicker embeds the children in palette, hue, text order.
func NewColorPicker(doc *dom.Document, cfg ColorPickerConfig) *ColorPicker {
	return &ColorPicker{
		Composite: NewComposite(doc, "cp",
			Part{Name: "sv", View: cfg.SvPaletteView},
			Part{Name: "h", View: cfg.HPaletteView},
			Part{Name: "t", View: cfg.TextView},
		),
	}
}
