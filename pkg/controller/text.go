package controller

import (
	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/errors"
	"github.com/go-drift/tweak/pkg/format"
	"github.com/go-drift/tweak/pkg/value"
	"github.com/go-drift/tweak/pkg/view"
)

// TextConfig configures a Text controller.
type TextConfig[T any] struct {
	Value     *value.Value[T]
	Formatter format.Formatter[T]
	Parser    format.Parser[T]
	// Constraint, when set, adjusts every parsed value before it is written.
	Constraint func(T) T
	// Block names the view's class block.
	Block string
}

// Text edits a value through a text input. Committed text that parses is
// written to the value; text that does not parse leaves the value alone and
// the input reverts to the formatted current value.
type Text[T any] struct {
	value      *value.Value[T]
	view       *view.Text[T]
	parser     format.Parser[T]
	constraint func(T) T
	listeners  listeners
	disposed   bool
}

// NewText builds the text view and wires its input.
func NewText[T any](doc *dom.Document, cfg TextConfig[T]) *Text[T] {
	c := &Text[T]{
		value: cfg.Value,
		view: view.NewText(doc, view.TextConfig[T]{
			Value:     cfg.Value,
			Formatter: cfg.Formatter,
			Block:     cfg.Block,
		}),
		parser:     cfg.Parser,
		constraint: cfg.Constraint,
	}
	input, _ := c.view.InputElement()
	c.listeners.on(input, c.onChange, dom.EventChange)
	return c
}

// Value returns the shared value.
func (c *Text[T]) Value() *value.Value[T] {
	return c.value
}

// View returns the text view.
func (c *Text[T]) View() *view.Text[T] {
	return c.view
}

// Element returns the view's root element.
func (c *Text[T]) Element() *dom.Element {
	return c.view.Element()
}

// Dispose removes input listeners and disposes the view.
func (c *Text[T]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.listeners.removeAll()
	c.view.Dispose()
}

func (c *Text[T]) onChange(ev dom.Event) {
	c.HandleInputChange(ev.Text)
}

// HandleInputChange commits text as if the user had typed it. On a disposed
// controller nothing is written and the failure goes to the error handler.
func (c *Text[T]) HandleInputChange(text string) {
	const op = "controller.Text.HandleInputChange"
	if c.disposed {
		errors.Report(errors.AlreadyDisposed(op))
		return
	}
	v, ok := c.parser.Parse(text)
	if !ok {
		report(op, c.view.Update())
		return
	}
	if c.constraint != nil {
		v = c.constraint(v)
	}
	c.value.Set(v)
}
