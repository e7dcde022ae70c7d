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

var svPaletteClass = ClassName("svp")

// SvPaletteConfig configures an SvPalette view. Zero sizes default to 128.
type SvPaletteConfig struct {
	Value         *value.Value[color.Color]
	Width, Height int
}

// SvPalette draws the saturation/value plane at the bound color's hue and a
// marker at the color's position on it.
type SvPalette struct {
	Base
	value  *value.Value[color.Color]
	canvas *dom.Canvas
	marker *dom.Element
}

// NewSvPalette builds the palette, renders it once and subscribes it to
// cfg.Value.
func NewSvPalette(doc *dom.Document, cfg SvPaletteConfig) *SvPalette {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = 128
	}
	if height <= 0 {
		height = 128
	}

	v := &SvPalette{
		Base:  NewBase(doc, svPaletteClass()),
		value: cfg.Value,
	}

	v.canvas = doc.CreateCanvas(width, height)
	v.canvas.AddClass(svPaletteClass("c"))
	v.element.AppendChild(v.canvas.Element)

	v.marker = doc.CreateElement("div")
	v.marker.AddClass(svPaletteClass("m"))
	v.element.AppendChild(v.marker)

	v.OnDispose(v.value.Subscribe(v.onValueChange))
	v.Update()
	return v
}

// Value returns the bound value.
func (v *SvPalette) Value() *value.Value[color.Color] {
	return v.value
}

// CanvasElement returns the palette canvas.
func (v *SvPalette) CanvasElement() (*dom.Canvas, error) {
	if v.canvas == nil {
		return nil, errors.AlreadyDisposed("view.SvPalette.CanvasElement")
	}
	return v.canvas, nil
}

// MarkerElement returns the position marker.
func (v *SvPalette) MarkerElement() (*dom.Element, error) {
	if v.marker == nil {
		return nil, errors.AlreadyDisposed("view.SvPalette.MarkerElement")
	}
	return v.marker, nil
}

// Update repaints the grid and moves the marker. Without a drawing context
// the fill pass is skipped and only the marker moves.
func (v *SvPalette) Update() error {
	if v.marker == nil || v.canvas == nil {
		return errors.AlreadyDisposed("view.SvPalette.Update")
	}

	hsv := v.value.RawValue().Components(colormodel.ModeHSV)

	if ctx, ok := v.canvas.Context(); ok {
		for _, cell := range SvPaletteCells(hsv[0], v.canvas.Width(), v.canvas.Height()) {
			ctx.DrawRect(cell.Rect, rendering.FillPaint(cell.Color))
		}
	} else {
		errors.Report(&errors.ControlError{
			Op:   "view.SvPalette.Update",
			Kind: errors.KindRender,
			Err:  errNoContext,
		})
	}

	v.marker.SetStyle("left", percent(numeric.Map(hsv[1], 0, 100, 0, 100)))
	v.marker.SetStyle("top", percent(numeric.Map(hsv[2], 0, 100, 100, 0)))
	return nil
}

// Dispose unsubscribes and releases the canvas and marker.
func (v *SvPalette) Dispose() {
	if v.canvas != nil {
		dom.DisposeElement(v.canvas.Element)
		v.canvas = nil
	}
	v.marker = dom.DisposeElement(v.marker)
	v.Base.Dispose()
}

func (v *SvPalette) onValueChange() {
	report("view.SvPalette.Update", v.Update())
}
