// Package errors provides structured error handling for tweak controls.
//
// Three classes of failure exist. Programming errors, such as touching a view
// after it has been disposed, are returned to the caller as a *ControlError
// wrapping [ErrAlreadyDisposed]. Environment limitations, such as a canvas that
// cannot provide a drawing context, are absorbed where they happen and only
// reported to the handler for observation. User input that cannot be parsed
// never leaves the control that received it.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrAlreadyDisposed is wrapped by every error returned from an operation on a
// disposed view or controller.
var ErrAlreadyDisposed = stderrors.New("already disposed")

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindDisposed indicates use of a view or controller after Dispose.
	KindDisposed
	// KindParsing indicates text that could not be parsed into a value.
	KindParsing
	// KindRender indicates a rendering step that could not run.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindDisposed:
		return "disposed"
	case KindParsing:
		return "parsing"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ControlError represents a structured error raised by a control.
type ControlError struct {
	// Op is the operation that failed (e.g., "view.SvPalette.Update").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ControlError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ControlError) Unwrap() error {
	return e.Err
}

// AlreadyDisposed returns the error reported when op is invoked on a disposed
// view or controller.
func AlreadyDisposed(op string) *ControlError {
	return &ControlError{
		Op:        op,
		Kind:      KindDisposed,
		Err:       ErrAlreadyDisposed,
		Timestamp: time.Now(),
	}
}

// IsDisposed reports whether err signals use after Dispose.
func IsDisposed(err error) bool {
	return stderrors.Is(err, ErrAlreadyDisposed)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "watch.reload").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents text that could not be parsed into a value.
type ParseError struct {
	// Text is the rejected input.
	Text string
	// DataType is the expected type name.
	DataType string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from %q", e.DataType, e.Text)
}

// ErrorHandler receives errors reported by controls.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *ControlError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
