// Package format renders values to display text and recovers values from text.
//
// Text controls take a Formatter and a Parser for their value type. The pair is
// not checked for consistency: a mismatched pair only shows up as text the
// control cannot read back.
package format

// Formatter renders a value as display text.
type Formatter[T any] interface {
	Format(v T) string
}

// Parser recovers a value from text. ok is false for unparsable input.
type Parser[T any] interface {
	Parse(text string) (v T, ok bool)
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc[T any] func(v T) string

// Format calls f(v).
func (f FormatterFunc[T]) Format(v T) string {
	return f(v)
}

// ParserFunc adapts a function to Parser.
type ParserFunc[T any] func(text string) (T, bool)

// Parse calls f(text).
func (f ParserFunc[T]) Parse(text string) (T, bool) {
	return f(text)
}
