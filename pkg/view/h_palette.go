package view

import (
	"github.com/go-drift/tweak/pkg/color"
	"github.com/go-drift/tweak/pkg/colormodel"
	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/errors"
	"github.com/go-drift/tweak/pkg/numeric"
	"github.com/go-drift/tweak/pkg/rendering"
	"github.com/go-drift/tweak/pkg/value"
)

var hPaletteClass = ClassName("hpl")

// HPaletteConfig configures an HPalette view. Zero sizes default to 128x12.
type HPaletteConfig struct {
	Value         *value.Value[color.Color]
	Width, Height int
}

// HPalette draws a hue strip and a marker at the bound color's hue.
type HPalette struct {
	Base
	value  *value.Value[color.Color]
	canvas *dom.Canvas
	marker *dom.Element
}

// NewHPalette builds the strip, renders it once and subscribes it to
// cfg.Value.
func NewHPalette(doc *dom.Document, cfg HPaletteConfig) *HPalette {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = 128
	}
	if height <= 0 {
		height = 12
	}

	v := &HPalette{
		Base:  NewBase(doc, hPaletteClass()),
		value: cfg.Value,
	}

	v.canvas = doc.CreateCanvas(width, height)
	v.canvas.AddClass(hPaletteClass("c"))
	v.element.AppendChild(v.canvas.Element)

	v.marker = doc.CreateElement("div")
	v.marker.AddClass(hPaletteClass("m"))
	v.element.AppendChild(v.marker)

	v.OnDispose(v.value.Subscribe(v.onValueChange))
	v.Update()
	return v
}

// Value returns the bound value.
func (v *HPalette) Value() *value.Value[color.Color] {
	return v.value
}

// CanvasElement returns the strip canvas.
func (v *HPalette) CanvasElement() (*dom.Canvas, error) {
	if v.canvas == nil {
		return nil, errors.AlreadyDisposed("view.HPalette.CanvasElement")
	}
	return v.canvas, nil
}

// Update repaints the strip and moves the marker.
func (v *HPalette) Update() error {
	if v.marker == nil || v.canvas == nil {
		return errors.AlreadyDisposed("view.HPalette.Update")
	}

	// The strip does not depend on the value; it is redrawn so a surface
	// acquired late still gets painted.
	if ctx, ok := v.canvas.Context(); ok {
		for _, cell := range HuePaletteCells(v.canvas.Width(), v.canvas.Height()) {
			ctx.DrawRect(cell.Rect, rendering.FillPaint(cell.Color))
		}
	}

	h := v.value.RawValue().Components(colormodel.ModeHSV)[0]
	v.marker.SetStyle("left", percent(numeric.Map(h, 0, 360, 0, 100)))
	return nil
}

// Dispose unsubscribes and releases the canvas and marker.
func (v *HPalette) Dispose() {
	if v.canvas != nil {
		dom.DisposeElement(v.canvas.Element)
		v.canvas = nil
	}
	v.marker = dom.DisposeElement(v.marker)
	v.Base.Dispose()
}

func (v *HPalette) onValueChange() {
	report("view.HPalette.Update", v.Update())
}
