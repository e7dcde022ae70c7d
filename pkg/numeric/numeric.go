// Package numeric holds the scalar helpers shared by every control: the linear
// map used for all coordinate and scale conversions, range constraint and
// wrap-around.
package numeric

import "math"

// Map linearly interpolates x from [inMin, inMax] to [outMin, outMax].
//
// The result is not clamped; callers pass in-range inputs. Passing
// inMin == inMax yields NaN or ±Inf.
func Map(x, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (x-inMin)/(inMax-inMin)*(outMax-outMin)
}

// Constrain clamps x to [min, max].
func Constrain(x, min, max float64) float64 {
	return math.Min(math.Max(x, min), max)
}

// Loop wraps x into [0, max). Negative inputs wrap from the top.
func Loop(x, max float64) float64 {
	return math.Mod(math.Mod(x, max)+max, max)
}

// DecimalDigits returns the number of digits after the decimal point needed to
// show step exactly, e.g. 0.25 -> 2, 10 -> 0.
func DecimalDigits(step float64) int {
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return 0
	}
	digits := 0
	for digits < 10 && math.Abs(step-math.Round(step)) > 1e-9 {
		step *= 10
		digits++
	}
	return digits
}
