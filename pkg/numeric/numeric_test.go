package numeric

import (
	"math"
	"testing"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name                            string
		x, inMin, inMax, outMin, outMax float64
		want                            float64
	}{
		{"identity", 50, 0, 100, 0, 100, 50},
		{"inverted", 0, 0, 100, 100, 0, 100},
		{"inverted top", 100, 0, 100, 100, 0, 0},
		{"grid first cell", 0, 0, 63, 0, 100, 0},
		{"grid last cell", 63, 0, 63, 0, 100, 100},
		{"pixel offset", 63, 0, 63, 0, 126, 126},
		{"unclamped above", 150, 0, 100, 0, 10, 15},
		{"unclamped below", -50, 0, 100, 0, 10, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(tt.x, tt.inMin, tt.inMax, tt.outMin, tt.outMax)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Map(%v, %v, %v, %v, %v) = %v, want %v",
					tt.x, tt.inMin, tt.inMax, tt.outMin, tt.outMax, got, tt.want)
			}
		})
	}
}

func TestConstrain(t *testing.T) {
	if got := Constrain(-1, 0, 10); got != 0 {
		t.Errorf("Constrain(-1) = %v, want 0", got)
	}
	if got := Constrain(11, 0, 10); got != 10 {
		t.Errorf("Constrain(11) = %v, want 10", got)
	}
	if got := Constrain(7, 0, 10); got != 7 {
		t.Errorf("Constrain(7) = %v, want 7", got)
	}
}

func TestLoop(t *testing.T) {
	tests := []struct{ x, want float64 }{
		{0, 0},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-360, 0},
	}
	for _, tt := range tests {
		if got := Loop(tt.x, 360); got != tt.want {
			t.Errorf("Loop(%v, 360) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestDecimalDigits(t *testing.T) {
	tests := []struct {
		step float64
		want int
	}{
		{1, 0},
		{10, 0},
		{0.1, 1},
		{0.25, 2},
		{0.001, 3},
		{0, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := DecimalDigits(tt.step); got != tt.want {
			t.Errorf("DecimalDigits(%v) = %d, want %d", tt.step, got, tt.want)
		}
	}
}
