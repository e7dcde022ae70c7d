package color

import (
	"math"
	"testing"

	"github.com/go-drift/tweak/pkg/colormodel"
	"github.com/go-drift/tweak/pkg/rendering"
)

func TestComponentsInStorageModeAreExact(t *testing.T) {
	c := HSV(210, 0, 40)
	got := c.Components(colormodel.ModeHSV)
	want := colormodel.Components{210, 0, 40}
	if got != want {
		t.Errorf("Components(hsv) = %v, want %v", got, want)
	}
}

func TestComponentsConvert(t *testing.T) {
	c := HSV(120, 100, 100)
	rgb := c.Components(colormodel.ModeRGB)
	want := colormodel.Components{0, 255, 0}
	for i := range rgb {
		if math.Abs(rgb[i]-want[i]) > 1e-9 {
			t.Errorf("Components(rgb)[%d] = %v, want %v", i, rgb[i], want[i])
		}
	}
}

func TestConstructorsConstrain(t *testing.T) {
	c := HSV(-30, 150, -5)
	got := c.Components(colormodel.ModeHSV)
	want := colormodel.Components{330, 100, 0}
	if got != want {
		t.Errorf("HSV(-30, 150, -5) = %v, want %v", got, want)
	}

	r := RGB(300, -1, 12)
	if got, want := r.Components(colormodel.ModeRGB), (colormodel.Components{255, 0, 12}); got != want {
		t.Errorf("RGB(300, -1, 12) = %v, want %v", got, want)
	}
}

func TestNewRejectsUnknownMode(t *testing.T) {
	if _, err := New(colormodel.Components{}, colormodel.Mode("xyz")); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestAlpha(t *testing.T) {
	c := RGB(10, 20, 30)
	if c.Alpha() != 1 {
		t.Errorf("Alpha() = %v, want 1", c.Alpha())
	}
	half := c.WithAlpha(0.5)
	if half.Alpha() != 0.5 {
		t.Errorf("WithAlpha(0.5).Alpha() = %v, want 0.5", half.Alpha())
	}
	if c.Alpha() != 1 {
		t.Error("WithAlpha must not mutate the receiver")
	}
	if got := c.WithAlpha(3).Alpha(); got != 1 {
		t.Errorf("WithAlpha(3).Alpha() = %v, want 1", got)
	}
}

func TestRGBA8(t *testing.T) {
	r, g, b, a := HSV(120, 50, 50).RGBA8()
	if r != 64 || g != 128 || b != 64 || a != 255 {
		t.Errorf("RGBA8() = (%d, %d, %d, %d), want (64, 128, 64, 255)", r, g, b, a)
	}
}

func TestEqualAcrossModes(t *testing.T) {
	if !HSV(0, 100, 100).Equal(RGB(255, 0, 0)) {
		t.Error("hsv red should equal rgb red")
	}
	if HSV(0, 100, 100).Equal(RGB(255, 0, 0).WithAlpha(0.2)) {
		t.Error("colors with different alpha should differ")
	}
	if HSV(0, 100, 100).Equal(HSV(0, 100, 99)) {
		t.Error("different values should differ")
	}
}

func TestToRendering(t *testing.T) {
	tests := []struct {
		c    Color
		want rendering.Color
	}{
		{RGB(255, 0, 0), rendering.ColorRed},
		{HSV(120, 50, 50), rendering.RGB(64, 128, 64)},
		{NewRGBA(0, 0, 255, 0.5), rendering.RGBA(0, 0, 255, 128)},
		{Color{}, rendering.ColorTransparent},
	}
	for _, tt := range tests {
		if got := tt.c.ToRendering(); got != tt.want {
			t.Errorf("%v.ToRendering() = %#x, want %#x", tt.c, uint32(got), uint32(tt.want))
		}
	}
}
