// Package value provides the observable cell shared by every control.
//
// A Value is created by the host and handed to each controller that edits or
// displays it. Controllers borrow the value; they never copy it and never own
// its lifetime. All coordination between controls bound to the same value goes
// through its subscriber list:
//
//	v := value.New(5.0)
//	unsubscribe := v.Subscribe(func() {
//	    fmt.Println("now", v.RawValue())
//	})
//	v.Set(7) // prints "now 7" before Set returns
//	unsubscribe()
package value

import "sync"

// Value is a mutable cell that notifies subscribers on every write.
//
// Notification is synchronous: Set invokes every subscriber, in registration
// order, before it returns. Writing a value equal to the current one still
// notifies. There is no cycle detection; a subscriber that writes back to the
// same value must guard against recursion itself.
type Value[T any] struct {
	mu        sync.RWMutex
	raw       T
	listeners []*listener
}

type listener struct {
	fn      func()
	removed bool
}

// New creates a Value holding initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{raw: initial}
}

// RawValue returns the current value.
func (v *Value[T]) RawValue() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.raw
}

// Set stores x and notifies every subscriber before returning.
func (v *Value[T]) Set(x T) {
	v.mu.Lock()
	v.raw = x
	v.mu.Unlock()
	v.notifyListeners()
}

// Subscribe registers fn to run after every write. The returned function
// removes the subscription; calling it more than once is harmless.
func (v *Value[T]) Subscribe(fn func()) (unsubscribe func()) {
	l := &listener{fn: fn}
	v.mu.Lock()
	v.listeners = append(v.listeners, l)
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if l.removed {
			return
		}
		l.removed = true
		for i, other := range v.listeners {
			if other == l {
				v.listeners = append(v.listeners[:i:i], v.listeners[i+1:]...)
				break
			}
		}
	}
}

// ListenerCount returns the number of live subscriptions.
func (v *Value[T]) ListenerCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.listeners)
}

// notifyListeners calls the subscribers registered at the time of the write.
// A subscriber removed by an earlier one during the same pass is skipped. A
// panicking subscriber stops the pass and the panic reaches the caller of Set.
func (v *Value[T]) notifyListeners() {
	v.mu.RLock()
	listeners := make([]*listener, len(v.listeners))
	copy(listeners, v.listeners)
	v.mu.RUnlock()

	for _, l := range listeners {
		v.mu.RLock()
		removed := l.removed
		v.mu.RUnlock()
		if removed {
			continue
		}
		l.fn()
	}
}
