package controller

import (
	"math"

	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/numeric"
	"github.com/go-drift/tweak/pkg/value"
	"github.com/go-drift/tweak/pkg/view"
)

// SliderConfig configures a Slider.
//
// Step, when positive, snaps every user write to Min + k*Step and is the
// keyboard increment. Without it writes are not snapped and the keyboard
// moves a hundredth of the range.
type SliderConfig struct {
	Value    *value.Value[float64]
	Min, Max float64
	Step     float64
}

// Slider edits a number by dragging along a track or with arrow keys.
type Slider struct {
	value     *value.Value[float64]
	view      *view.Slider
	min, max  float64
	step      float64
	snap      bool
	listeners listeners
	disposed  bool
}

// NewSlider builds the slider view and wires its track input.
func NewSlider(doc *dom.Document, cfg SliderConfig) *Slider {
	c := &Slider{
		value: cfg.Value,
		view:  view.NewSlider(doc, view.SliderConfig{Value: cfg.Value, Min: cfg.Min, Max: cfg.Max}),
		min:   cfg.Min,
		max:   cfg.Max,
		step:  cfg.Step,
		snap:  cfg.Step > 0,
	}
	if !c.snap {
		c.step = (cfg.Max - cfg.Min) / 100
	}

	track, _ := c.view.TrackElement()
	c.listeners.on(track, c.onPointer, dom.EventPointerDown, dom.EventPointerMove, dom.EventPointerUp)
	c.listeners.on(track, c.onKeyDown, dom.EventKeyDown)
	return c
}

// Value returns the shared value.
func (c *Slider) Value() *value.Value[float64] {
	return c.value
}

// View returns the slider view.
func (c *Slider) View() *view.Slider {
	return c.view
}

// Element returns the view's root element.
func (c *Slider) Element() *dom.Element {
	return c.view.Element()
}

// Dispose removes input listeners and disposes the view.
func (c *Slider) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.listeners.removeAll()
	c.view.Dispose()
}

// HandlePointer writes the value under a pointer at x on a track width units
// wide.
func (c *Slider) HandlePointer(x, width float64) {
	if width <= 0 {
		return
	}
	c.write(numeric.Map(x, 0, width, c.min, c.max))
}

// HandleKey moves the value dir steps.
func (c *Slider) HandleKey(dir int) {
	if dir == 0 {
		return
	}
	c.write(c.value.RawValue() + float64(dir)*c.step)
}

func (c *Slider) onPointer(ev dom.Event) {
	c.HandlePointer(ev.X, ev.Width)
}

func (c *Slider) onKeyDown(ev dom.Event) {
	c.HandleKey(dom.KeyDirection(ev.Key))
}

func (c *Slider) write(x float64) {
	x = numeric.Constrain(x, c.min, c.max)
	if c.snap {
		x = numeric.Constrain(c.min+math.Round((x-c.min)/c.step)*c.step, c.min, c.max)
	}
	c.value.Set(x)
}
