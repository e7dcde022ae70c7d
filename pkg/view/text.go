package view

import (
	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/errors"
	"github.com/go-drift/tweak/pkg/format"
	"github.com/go-drift/tweak/pkg/value"
)

// TextConfig configures a Text view.
type TextConfig[T any] struct {
	Value     *value.Value[T]
	Formatter format.Formatter[T]
	// Block names the class block; "txt" when empty.
	Block string
}

// Text shows a value as editable text in an input element.
type Text[T any] struct {
	Base
	value     *value.Value[T]
	formatter format.Formatter[T]
	input     *dom.Element
}

// NewText builds a text view and subscribes it to cfg.Value.
func NewText[T any](doc *dom.Document, cfg TextConfig[T]) *Text[T] {
	block := cfg.Block
	if block == "" {
		block = "txt"
	}
	cn := ClassName(block)

	v := &Text[T]{
		Base:      NewBase(doc, cn()),
		value:     cfg.Value,
		formatter: cfg.Formatter,
	}
	v.input = doc.CreateElement("input")
	v.input.AddClass(cn("i"))
	v.element.AppendChild(v.input)

	v.OnDispose(v.value.Subscribe(v.onValueChange))
	v.Update()
	return v
}

// Value returns the bound value.
func (v *Text[T]) Value() *value.Value[T] {
	return v.value
}

// InputElement returns the input element that receives text and key events.
func (v *Text[T]) InputElement() (*dom.Element, error) {
	if v.input == nil {
		return nil, errors.AlreadyDisposed("view.Text.InputElement")
	}
	return v.input, nil
}

// Update shows the formatted current value, discarding any uncommitted text.
func (v *Text[T]) Update() error {
	if v.input == nil {
		return errors.AlreadyDisposed("view.Text.Update")
	}
	v.input.SetText(v.formatter.Format(v.value.RawValue()))
	return nil
}

// Dispose unsubscribes and releases the input element.
func (v *Text[T]) Dispose() {
	v.input = dom.DisposeElement(v.input)
	v.Base.Dispose()
}

func (v *Text[T]) onValueChange() {
	report("view.Text.Update", v.Update())
}
