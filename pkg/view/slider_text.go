package view

import "github.com/go-drift/tweak/pkg/dom"

// SliderTextConfig names the pre-built child views of a SliderText.
type SliderTextConfig struct {
	SliderView View
	TextView   View
}

// SliderText lays out a slider view followed by a text view.
type SliderText struct {
	*Composite
}

// NewSliderText embeds the slider first and the text second.
func NewSliderText(doc *dom.Document, cfg SliderTextConfig) *SliderText {
	return &SliderText{
		Composite: NewComposite(doc, "sldtxt",
			Part{Name: "s", View: cfg.SliderView},
			Part{Name: "t", View: cfg.TextView},
		),
	}
}
