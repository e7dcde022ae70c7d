package view

import (
	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/errors"
	"github.com/go-drift/tweak/pkg/numeric"
	"github.com/go-drift/tweak/pkg/value"
)

var sliderClass = ClassName("sld")

// SliderConfig configures a Slider view.
type SliderConfig struct {
	Value    *value.Value[float64]
	Min, Max float64
}

// Slider renders a number as the filled width of a track.
type Slider struct {
	Base
	value    *value.Value[float64]
	min, max float64
	track    *dom.Element
	knob     *dom.Element
}

// NewSlider builds a slider view and subscribes it to cfg.Value.
func NewSlider(doc *dom.Document, cfg SliderConfig) *Slider {
	v := &Slider{
		Base:  NewBase(doc, sliderClass()),
		value: cfg.Value,
		min:   cfg.Min,
		max:   cfg.Max,
	}

	v.track = doc.CreateElement("div")
	v.track.AddClass(sliderClass("t"))
	v.element.AppendChild(v.track)

	v.knob = doc.CreateElement("div")
	v.knob.AddClass(sliderClass("k"))
	v.track.AppendChild(v.knob)

	v.OnDispose(v.value.Subscribe(v.onValueChange))
	v.Update()
	return v
}

// Value returns the bound value.
func (v *Slider) Value() *value.Value[float64] {
	return v.value
}

// Range returns the slider bounds.
func (v *Slider) Range() (min, max float64) {
	return v.min, v.max
}

// TrackElement returns the element that receives pointer input.
func (v *Slider) TrackElement() (*dom.Element, error) {
	if v.track == nil {
		return nil, errors.AlreadyDisposed("view.Slider.TrackElement")
	}
	return v.track, nil
}

// Update sizes the knob from the current value.
func (v *Slider) Update() error {
	if v.knob == nil {
		return errors.AlreadyDisposed("view.Slider.Update")
	}
	// An empty range has no position to show; the knob stays at the start.
	var p float64
	if v.max != v.min {
		p = numeric.Map(v.value.RawValue(), v.min, v.max, 0, 100)
	}
	v.knob.SetStyle("width", percent(p))
	return nil
}

// Dispose unsubscribes and releases the slider's elements.
func (v *Slider) Dispose() {
	v.knob = dom.DisposeElement(v.knob)
	v.track = dom.DisposeElement(v.track)
	v.Base.Dispose()
}

func (v *Slider) onValueChange() {
	report("view.Slider.Update", v.Update())
}
