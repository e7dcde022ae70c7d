package dom

import "slices"

// EventType names an input event.
type EventType string

const (
	// EventChange fires when the user commits text in an input.
	EventChange EventType = "change"
	// EventPointerDown fires when a pointer presses inside the element.
	EventPointerDown EventType = "pointerdown"
	// EventPointerMove fires while a pressed pointer moves.
	EventPointerMove EventType = "pointermove"
	// EventPointerUp fires when the pointer is released.
	EventPointerUp EventType = "pointerup"
	// EventKeyDown fires for a key press while the element has focus.
	EventKeyDown EventType = "keydown"
)

// Key names used by EventKeyDown.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Event is an input event delivered to an element.
//
// Pointer coordinates are relative to the element's top-left corner, and
// Width and Height give the element's size in the same units, so handlers can
// map a position to a fraction of the element.
type Event struct {
	Type EventType

	// Text is the committed text for EventChange.
	Text string

	// Key is the key name for EventKeyDown.
	Key string

	X, Y          float64
	Width, Height float64
}

type eventListener struct {
	typ EventType
	fn  func(Event)
}

// AddEventListener registers fn for events of typ and returns a function that
// removes it.
func (e *Element) AddEventListener(typ EventType, fn func(Event)) (remove func()) {
	l := &eventListener{typ: typ, fn: fn}
	e.listeners = append(e.listeners, l)
	return func() {
		if i := slices.Index(e.listeners, l); i >= 0 {
			e.listeners = slices.Delete(e.listeners, i, i+1)
		}
	}
}

// Dispatch delivers ev to the element's listeners for ev.Type, in
// registration order. It reports whether any listener ran.
func (e *Element) Dispatch(ev Event) bool {
	handled := false
	for _, l := range slices.Clone(e.listeners) {
		if l.typ == ev.Type {
			l.fn(ev)
			handled = true
		}
	}
	return handled
}

// KeyDirection maps arrow keys to a step direction: +1 for up and right, -1
// for down and left, 0 otherwise.
func KeyDirection(key string) int {
	switch key {
	case KeyArrowUp, KeyArrowRight:
		return 1
	case KeyArrowDown, KeyArrowLeft:
		return -1
	}
	return 0
}
