// Package controller binds shared values to views and turns user input into
// writes.
//
// Leaf controllers (Slider, Text, NumberText, SvPalette, HPalette) own one
// view and borrow one value. Composite controllers (SliderText, ColorPicker)
// build several leaves on the same *value.Value, lay their views out in one
// composite view and expose only the shared value, the composite view and a
// single Dispose. Leaves never talk to each other: a write from one reaches
// the others through the value's subscriber list.
//
// Input arrives as dom events dispatched to the elements the views own, so a
// host only needs the rendered tree to drive any control.
package controller

import (
	stderrors "errors"

	"github.com/go-drift/tweak/pkg/color"
	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/errors"
	"github.com/go-drift/tweak/pkg/value"
)

// Controller is the surface every controller offers its host.
type Controller[T any] interface {
	// Value returns the shared value the controller edits.
	Value() *value.Value[T]
	// Element returns the root element of the controller's view, or nil once
	// disposed.
	Element() *dom.Element
	// Dispose releases the controller's view. The shared value is left
	// untouched. Calling Dispose again is a no-op.
	Dispose()
}

// listeners collects element listener removers for symmetric teardown.
type listeners []func()

func (l *listeners) on(el *dom.Element, fn func(dom.Event), types ...dom.EventType) {
	for _, t := range types {
		*l = append(*l, el.AddEventListener(t, fn))
	}
}

func (l *listeners) removeAll() {
	for _, remove := range *l {
		remove()
	}
	*l = nil
}

// report hands err to the installed error handler, keeping the op of an
// error that already carries one.
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

var (
	_ Controller[float64]     = (*Slider)(nil)
	_ Controller[float64]     = (*NumberText)(nil)
	_ Controller[float64]     = (*SliderText)(nil)
	_ Controller[color.Color] = (*Text[color.Color])(nil)
	_ Controller[color.Color] = (*SvPalette)(nil)
	_ Controller[color.Color] = (*HPalette)(nil)
	_ Controller[color.Color] = (*ColorPicker)(nil)
)
