package controller

import (
	"github.com/go-drift/tweak/pkg/color"
	"github.com/go-drift/tweak/pkg/colormodel"
	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/numeric"
	"github.com/go-drift/tweak/pkg/value"
	"github.com/go-drift/tweak/pkg/view"
)

// HPaletteConfig configures an HPalette controller.
type HPaletteConfig struct {
	Value         *value.Value[color.Color]
	Width, Height int
}

// HPalette picks the hue on a horizontal strip. Saturation, value and alpha
// are kept from the current color.
type HPalette struct {
	value     *value.Value[color.Color]
	view      *view.HPalette
	listeners listeners
	disposed  bool
}

// NewHPalette builds the hue strip view and wires canvas input.
func NewHPalette(doc *dom.Document, cfg HPaletteConfig) *HPalette {
	c := &HPalette{
		value: cfg.Value,
		view: view.NewHPalette(doc, view.HPaletteConfig{
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
func (c *HPalette) Value() *value.Value[color.Color] {
	return c.value
}

// View returns the hue strip view.
func (c *HPalette) View() *view.HPalette {
	return c.view
}

// Element returns the view's root element.
func (c *HPalette) Element() *dom.Element {
	return c.view.Element()
}

// Dispose removes input listeners and disposes the view.
func (c *HPalette) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.listeners.removeAll()
	c.view.Dispose()
}

// HandlePointer picks the hue under x on a strip width units wide.
func (c *HPalette) HandlePointer(x, width float64) {
	if width <= 0 {
		return
	}
	c.write(numeric.Map(x, 0, width, 0, 360))
}

// HandleKey turns the hue dir degrees.
func (c *HPalette) HandleKey(dir int) {
	if dir == 0 {
		return
	}
	h := c.value.RawValue().Components(colormodel.ModeHSV)[0]
	c.write(h + float64(dir))
}

func (c *HPalette) onPointer(ev dom.Event) {
	c.HandlePointer(ev.X, ev.Width)
}

func (c *HPalette) onKeyDown(ev dom.Event) {
	c.HandleKey(dom.KeyDirection(ev.Key))
}

func (c *HPalette) write(h float64) {
	cur := c.value.RawValue()
	hsv := cur.Components(colormodel.ModeHSV)
	// 360 would wrap to red at the right edge; keep the pointer where it is.
	h = numeric.Constrain(h, 0, 359.999)
	c.value.Set(color.HSV(h, hsv[1], hsv[2]).WithAlpha(cur.Alpha()))
}
