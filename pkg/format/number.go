package format

import (
	"math"
	"strconv"
	"strings"
)

// NumberFormatter prints numbers with a fixed number of decimal digits.
type NumberFormatter struct {
	Digits int
}

// Format returns v with f.Digits digits after the decimal point.
func (f NumberFormatter) Format(v float64) string {
	digits := f.Digits
	if digits < 0 {
		digits = 0
	}
	s := strconv.FormatFloat(v, 'f', digits, 64)
	// Avoid "-0" and "-0.00" for values that round to zero.
	if strings.TrimLeft(s, "-0.") == "" && strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	return s
}

// NumberParser reads a finite decimal number. Surrounding whitespace is
// ignored.
type NumberParser struct{}

// Parse implements Parser.
func (NumberParser) Parse(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
