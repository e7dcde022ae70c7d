package controller

import (
	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/format"
	"github.com/go-drift/tweak/pkg/value"
)

// NumberTextConfig configures a NumberText.
type NumberTextConfig struct {
	Value     *value.Value[float64]
	Formatter format.Formatter[float64]
	Parser    format.Parser[float64]
	// Step is the arrow-key increment; 1 when zero.
	Step float64
	// Constraint, when set, adjusts every write.
	Constraint func(float64) float64
}

// NumberText is a text controller for numbers that also steps the value with
// the up and down arrow keys.
type NumberText struct {
	*Text[float64]
	step float64
}

// NewNumberText builds a numeric text field.
func NewNumberText(doc *dom.Document, cfg NumberTextConfig) *NumberText {
	step := cfg.Step
	if step <= 0 {
		step = 1
	}
	c := &NumberText{
		Text: NewText(doc, TextConfig[float64]{
			Value:      cfg.Value,
			Formatter:  cfg.Formatter,
			Parser:     cfg.Parser,
			Constraint: cfg.Constraint,
		}),
		step: step,
	}
	input, _ := c.view.InputElement()
	c.listeners.on(input, c.onKeyDown, dom.EventKeyDown)
	return c
}

func (c *NumberText) onKeyDown(ev dom.Event) {
	switch ev.Key {
	case dom.KeyArrowUp:
		c.HandleKey(1)
	case dom.KeyArrowDown:
		c.HandleKey(-1)
	}
}

// HandleKey steps the value dir increments.
func (c *NumberText) HandleKey(dir int) {
	if dir == 0 {
		return
	}
	v := c.value.RawValue() + float64(dir)*c.step
	if c.constraint != nil {
		v = c.constraint(v)
	}
	c.value.Set(v)
}
