// Package color provides the immutable Color value edited by palette controls.
package color

import (
	"fmt"
	"math"

	"github.com/go-drift/tweak/pkg/colormodel"
	"github.com/go-drift/tweak/pkg/numeric"
	"github.com/go-drift/tweak/pkg/rendering"
)

// epsilon is the tolerance for component comparisons.
const epsilon = 1e-6

// Color stores its components in the model it was created with and converts
// on demand. The zero value is opaque-less black in RGB; use the constructors.
//
// A Color is never mutated after construction. Editing a color means building a
// new one and writing it to the shared value.
type Color struct {
	comps colormodel.Components
	mode  colormodel.Mode
	alpha float64
}

// New returns an opaque color from comps interpreted in mode. Components are
// constrained to the ranges of the model; hue wraps.
func New(comps colormodel.Components, mode colormodel.Mode) (Color, error) {
	if !mode.Valid() {
		return Color{}, fmt.Errorf("color: unknown mode %q", mode)
	}
	return Color{comps: constrain(comps, mode), mode: mode, alpha: 1}, nil
}

// RGB returns an opaque color from red, green, blue in [0, 255].
func RGB(r, g, b float64) Color {
	c, _ := New(colormodel.Components{r, g, b}, colormodel.ModeRGB)
	return c
}

// NewRGBA returns a color from red, green, blue in [0, 255] and alpha in
// [0, 1].
func NewRGBA(r, g, b, a float64) Color {
	return RGB(r, g, b).WithAlpha(a)
}

// HSV returns an opaque color from hue [0, 360), saturation and value [0, 100].
func HSV(h, s, v float64) Color {
	c, _ := New(colormodel.Components{h, s, v}, colormodel.ModeHSV)
	return c
}

// HSL returns an opaque color from hue [0, 360), saturation and lightness [0, 100].
func HSL(h, s, l float64) Color {
	c, _ := New(colormodel.Components{h, s, l}, colormodel.ModeHSL)
	return c
}

func constrain(comps colormodel.Components, mode colormodel.Mode) colormodel.Components {
	if mode == colormodel.ModeRGB {
		return colormodel.Components{
			numeric.Constrain(comps[0], 0, 255),
			numeric.Constrain(comps[1], 0, 255),
			numeric.Constrain(comps[2], 0, 255),
		}
	}
	return colormodel.Components{
		numeric.Loop(comps[0], 360),
		numeric.Constrain(comps[1], 0, 100),
		numeric.Constrain(comps[2], 0, 100),
	}
}

// Mode returns the model the color was created in.
func (c Color) Mode() colormodel.Mode {
	if c.mode == "" {
		return colormodel.ModeRGB
	}
	return c.mode
}

// Components returns the color's components in mode. Asking for the storage
// mode returns the stored components unchanged, so hue survives at zero
// saturation.
func (c Color) Components(mode colormodel.Mode) colormodel.Components {
	out, err := colormodel.Convert(c.comps, c.Mode(), mode)
	if err != nil {
		return colormodel.Components{}
	}
	return out
}

// Alpha returns the opacity in [0, 1].
func (c Color) Alpha() float64 {
	if c.mode == "" {
		return 0
	}
	return c.alpha
}

// WithAlpha returns a copy with opacity a, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.mode = c.Mode()
	c.alpha = numeric.Constrain(a, 0, 1)
	return c
}

// RGBA8 returns the color quantized to bytes.
func (c Color) RGBA8() (r, g, b, a uint8) {
	rgb := c.Components(colormodel.ModeRGB)
	return toByte(rgb[0]), toByte(rgb[1]), toByte(rgb[2]), toByte(c.Alpha() * 255)
}

func toByte(v float64) uint8 {
	return uint8(math.Round(numeric.Constrain(v, 0, 255)))
}

// ToRendering returns the color as a packed ARGB value.
func (c Color) ToRendering() rendering.Color {
	return rendering.RGBA(c.RGBA8())
}

// Equal reports whether c and o describe the same RGBA color.
func (c Color) Equal(o Color) bool {
	a := c.Components(colormodel.ModeRGB)
	b := o.Components(colormodel.ModeRGB)
	for i := range a {
		if math.Abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return math.Abs(c.Alpha()-o.Alpha()) <= epsilon
}

func (c Color) String() string {
	comps := c.comps
	return fmt.Sprintf("%s(%g, %g, %g; a=%g)", c.Mode(), comps[0], comps[1], comps[2], c.Alpha())
}
