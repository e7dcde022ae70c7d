package controller

import (
	"github.com/go-drift/tweak/pkg/color"
	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/format"
	"github.com/go-drift/tweak/pkg/value"
	"github.com/go-drift/tweak/pkg/view"
)

// ColorPickerConfig configures a ColorPicker. Nil Formatter and Parser
// default to hex.
type ColorPickerConfig struct {
	Value     *value.Value[color.Color]
	Formatter format.Formatter[color.Color]
	Parser    format.Parser[color.Color]
	// PaletteSize is the saturation/value canvas edge in pixels; 128 when zero.
	PaletteSize int
	// StripHeight is the hue strip height in pixels; 12 when zero.
	StripHeight int
}

// ColorPicker edits one color with a saturation/value palette, a hue strip and
// a hex text field, all bound to the same value.
type ColorPicker struct {
	value    *value.Value[color.Color]
	sv       *SvPalette
	hue      *HPalette
	text     *Text[color.Color]
	view     *view.ColorPicker
	disposed bool
}

// NewColorPicker builds the palette, hue strip and text field in that order,
// then the view that stacks them.
func NewColorPicker(doc *dom.Document, cfg ColorPickerConfig) *ColorPicker {
	size := cfg.PaletteSize
	if size <= 0 {
		size = 128
	}
	var formatter format.Formatter[color.Color] = format.ColorHexFormatter{}
	if cfg.Formatter != nil {
		formatter = cfg.Formatter
	}
	var parser format.Parser[color.Color] = format.ColorHexParser{}
	if cfg.Parser != nil {
		parser = cfg.Parser
	}

	c := &ColorPicker{value: cfg.Value}
	c.sv = NewSvPalette(doc, SvPaletteConfig{Value: cfg.Value, Width: size, Height: size})
	c.hue = NewHPalette(doc, HPaletteConfig{Value: cfg.Value, Width: size, Height: cfg.StripHeight})
	c.text = NewText(doc, TextConfig[color.Color]{
		Value:     cfg.Value,
		Formatter: formatter,
		Parser:    parser,
		Constraint: func(next color.Color) color.Color {
			return next.WithAlpha(cfg.Value.RawValue().Alpha())
		},
		Block: "coltxt",
	})
	c.view = view.NewColorPicker(doc, view.ColorPickerConfig{
		SvPaletteView: c.sv.View(),
		HPaletteView:  c.hue.View(),
		TextView:      c.text.View(),
	})
	return c
}

// Value returns the shared value.
func (c *ColorPicker) Value() *value.Value[color.Color] {
	return c.value
}

// View returns the composite view.
func (c *ColorPicker) View() *view.ColorPicker {
	return c.view
}

// Element returns the composite view's root element.
func (c *ColorPicker) Element() *dom.Element {
	return c.view.Element()
}

// Dispose disposes the palette, hue strip and text field in construction
// order, then the composite view.
func (c *ColorPicker) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.sv.Dispose()
	c.hue.Dispose()
	c.text.Dispose()
	c.view.Dispose()
}
