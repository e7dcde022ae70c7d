package controller

import (
	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/format"
	"github.com/go-drift/tweak/pkg/numeric"
	"github.com/go-drift/tweak/pkg/value"
	"github.com/go-drift/tweak/pkg/view"
)

// SliderTextConfig configures a SliderText. The formatter and parser are not
// checked against each other.
type SliderTextConfig struct {
	Formatter format.Formatter[float64]
	Parser    format.Parser[float64]
	Value     *value.Value[float64]
	Min, Max  float64
	Step      float64
}

// SliderText edits one number with a slider and a text field side by side.
// Both children are bound to the same value; neither is reachable from
// outside, so Dispose is the only way to release them.
type SliderText struct {
	value    *value.Value[float64]
	slider   *Slider
	text     *NumberText
	view     *view.SliderText
	disposed bool
}

// NewSliderText builds the slider, then the text field, then the view that
// lays them out in that order.
func NewSliderText(doc *dom.Document, cfg SliderTextConfig) *SliderText {
	c := &SliderText{value: cfg.Value}

	c.slider = NewSlider(doc, SliderConfig{
		Value: cfg.Value,
		Min:   cfg.Min,
		Max:   cfg.Max,
		Step:  cfg.Step,
	})

	var constraint func(float64) float64
	if cfg.Max > cfg.Min {
		constraint = func(x float64) float64 {
			return numeric.Constrain(x, cfg.Min, cfg.Max)
		}
	}
	c.text = NewNumberText(doc, NumberTextConfig{
		Value:      cfg.Value,
		Formatter:  cfg.Formatter,
		Parser:     cfg.Parser,
		Step:       cfg.Step,
		Constraint: constraint,
	})

	c.view = view.NewSliderText(doc, view.SliderTextConfig{
		SliderView: c.slider.View(),
		TextView:   c.text.View(),
	})
	return c
}

// Value returns the shared value.
func (c *SliderText) Value() *value.Value[float64] {
	return c.value
}

// View returns the composite view.
func (c *SliderText) View() *view.SliderText {
	return c.view
}

// Element returns the composite view's root element.
func (c *SliderText) Element() *dom.Element {
	return c.view.Element()
}

// Dispose disposes the slider, then the text field, then the composite view.
func (c *SliderText) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.slider.Dispose()
	c.text.Dispose()
	c.view.Dispose()
}
