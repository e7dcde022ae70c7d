// Package view provides the View capability and the concrete views bound to
// shared values.
//
// A view owns a root element and exposes Dispose. Leaf views subscribe to the
// value they display when constructed and unsubscribe when disposed; composite
// views embed already-built child views and dispose them in order before
// releasing their own root. Every render entry point on a disposed view
// returns an error wrapping errors.ErrAlreadyDisposed.
package view

import (
	stderrors "errors"
	"strconv"

	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/errors"
)

// View is anything that owns a root element and can release it.
type View interface {
	// Element returns the root element, or nil once disposed.
	Element() *dom.Element
	// Dispose releases the view's elements and subscriptions. Calling it
	// again is a no-op.
	Dispose()
}

// ClassName returns a class-name builder for a view block:
//
//	cn := ClassName("svp")
//	cn()    // "tw-svpv"
//	cn("c") // "tw-svpv_c"
func ClassName(block string) func(elem ...string) string {
	base := "tw-" + block + "v"
	return func(elem ...string) string {
		if len(elem) == 0 || elem[0] == "" {
			return base
		}
		return base + "_" + elem[0]
	}
}

// Base carries the root element and disposal bookkeeping shared by all views.
type Base struct {
	element  *dom.Element
	disposed bool
	cleanups []func()
}

// NewBase creates a root div carrying class.
func NewBase(doc *dom.Document, class string) Base {
	root := doc.CreateElement("div")
	root.AddClass(class)
	return Base{element: root}
}

// Element returns the root element, or nil once disposed.
func (b *Base) Element() *dom.Element {
	return b.element
}

// IsDisposed reports whether Dispose has run.
func (b *Base) IsDisposed() bool {
	return b.disposed
}

// OnDispose registers fn to run once when the view is disposed, before the
// root element is released. Cleanups run in registration order.
func (b *Base) OnDispose(fn func()) {
	b.cleanups = append(b.cleanups, fn)
}

// Dispose runs cleanups and detaches the root element.
func (b *Base) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	for _, fn := range b.cleanups {
		fn()
	}
	b.cleanups = nil
	b.element = dom.DisposeElement(b.element)
}

// report routes an error raised inside a change handler, which has no caller
// to return to.
func report(op string, err error) {
	if err == nil {
		return
	}
	var ce *errors.ControlError
	if stderrors.As(err, &ce) {
		errors.Report(ce)
		return
	}
	errors.Report(&errors.ControlError{Op: op, Kind: errors.KindUnknown, Err: err})
}

// percent formats p as a CSS percentage.
func percent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

// ParsePercent reads a CSS percentage written by a view, e.g. "62.5%".
func ParsePercent(s string) (float64, bool) {
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	p, err := strconv.ParseFloat(s[:len(s)-1], 64)
	if err != nil {
		return 0, false
	}
	return p, true
}
