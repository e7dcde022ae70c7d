package controller

import (
	"github.com/go-drift/tweak/pkg/color"
	"github.com/go-drift/tweak/pkg/colormodel"
	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/numeric"
	"github.com/go-drift/tweak/pkg/value"
	"github.com/go-drift/tweak/pkg/view"
)

// SvPaletteConfig configures an SvPalette controller.
type SvPaletteConfig struct {
	Value         *value.Value[color.Color]
	Width, Height int
}

// SvPalette picks saturation and value on a 2-D plane. Hue and alpha are kept
// from the current color.
type SvPalette struct {
	value     *value.Value[color.Color]
	view      *view.SvPalette
	listeners listeners
	disposed  bool
}

// NewSvPalette builds the palette view and wires canvas input.
func NewSvPalette(doc *dom.Document, cfg SvPaletteConfig) *SvPalette {
	c := &SvPalette{
		value: cfg.Value,
		view: view.NewSvPalette(doc, view.SvPaletteConfig{
			Value:  cfg.Value,
			Width:  cfg.Width,
			Height: cfg.Height,
		}),
	}
	canvas, _ := c.view.CanvasElement()
	c.listeners.on(canvas.Element, c.onPointer, dom.EventPointerDown, dom.EventPointerMove, dom.EventPointerUp)
	c.listeners.on(canvas.Element, c.onKeyDown, dom.EventKeyDown)
	return c
}

// Value returns the shared value.
func (c *SvPalette) Value() *value.Value[color.Color] {
	return c.value
}

// View returns the palette view.
func (c *SvPalette) View() *view.SvPalette {
	return c.view
}

// Element returns the view's root element.
func (c *SvPalette) Element() *dom.Element {
	return c.view.Element()
}

// Dispose removes input listeners and disposes the view.
func (c *SvPalette) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.listeners.removeAll()
	c.view.Dispose()
}

// HandlePointer picks the saturation and value under (x, y) on a palette of
// the given size.
func (c *SvPalette) HandlePointer(x, y, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s := numeric.Map(x, 0, width, 0, 100)
	v := numeric.Map(y, 0, height, 100, 0)
	c.write(s, v)
}

func (c *SvPalette) onPointer(ev dom.Event) {
	c.HandlePointer(ev.X, ev.Y, ev.Width, ev.Height)
}

func (c *SvPalette) onKeyDown(ev dom.Event) {
	hsv := c.value.RawValue().Components(colormodel.ModeHSV)
	s, v := hsv[1], hsv[2]
	switch ev.Key {
	case dom.KeyArrowLeft:
		s--
	case dom.KeyArrowRight:
		s++
	case dom.KeyArrowUp:
		v++
	case dom.KeyArrowDown:
		v--
	default:
		return
	}
	c.write(s, v)
}

func (c *SvPalette) write(s, v float64) {
	cur := c.value.RawValue()
	h := cur.Components(colormodel.ModeHSV)[0]
	next := color.HSV(h, numeric.Constrain(s, 0, 100), numeric.Constrain(v, 0, 100))
	c.value.Set(next.WithAlpha(cur.Alpha()))
}
