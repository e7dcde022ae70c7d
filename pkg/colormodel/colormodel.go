// Package colormodel converts color components between the RGB, HSV and HSL
// models. All functions are pure.
//
// Component ranges:
//
//	RGB: r, g, b in [0, 255]
//	HSV: h in [0, 360), s, v in [0, 100]
//	HSL: h in [0, 360), s, l in [0, 100]
//
// Outputs are not rounded; callers quantize when they need bytes.
package colormodel

import (
	"fmt"
	"math"

	"github.com/go-drift/tweak/pkg/numeric"
)

// Mode names a color model.
type Mode string

const (
	ModeRGB Mode = "rgb"
	ModeHSV Mode = "hsv"
	ModeHSL Mode = "hsl"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeRGB, ModeHSV, ModeHSL:
		return true
	}
	return false
}

// Components is a triple in the order the mode names them.
type Components [3]float64

// RGBToHSV converts RGB to HSV.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	rp := numeric.Constrain(r/255, 0, 1)
	gp := numeric.Constrain(g/255, 0, 1)
	bp := numeric.Constrain(b/255, 0, 1)

	cmax := math.Max(rp, math.Max(gp, bp))
	cmin := math.Min(rp, math.Min(gp, bp))
	d := cmax - cmin

	if d != 0 {
		switch cmax {
		case rp:
			h = 60 * math.Mod((gp-bp)/d, 6)
		case gp:
			h = 60 * ((bp-rp)/d + 2)
		default:
			h = 60 * ((rp-gp)/d + 4)
		}
	}
	h = numeric.Loop(h, 360)

	if cmax != 0 {
		s = d / cmax * 100
	}
	return h, s, cmax * 100
}

// HSVToRGB converts HSV to RGB. Hue wraps; saturation and value are clamped.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	hp := numeric.Loop(h, 360)
	sp := numeric.Constrain(s/100, 0, 1)
	vp := numeric.Constrain(v/100, 0, 1)

	c := vp * sp
	x := c * (1 - math.Abs(math.Mod(hp/60, 2)-1))
	m := vp - c

	var rp, gp, bp float64
	switch {
	case hp < 60:
		rp, gp, bp = c, x, 0
	case hp < 120:
		rp, gp, bp = x, c, 0
	case hp < 180:
		rp, gp, bp = 0, c, x
	case hp < 240:
		rp, gp, bp = 0, x, c
	case hp < 300:
		rp, gp, bp = x, 0, c
	default:
		rp, gp, bp = c, 0, x
	}
	return (rp + m) * 255, (gp + m) * 255, (bp + m) * 255
}

// RGBToHSL converts RGB to HSL.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	rp := numeric.Constrain(r/255, 0, 1)
	gp := numeric.Constrain(g/255, 0, 1)
	bp := numeric.Constrain(b/255, 0, 1)

	cmax := math.Max(rp, math.Max(gp, bp))
	cmin := math.Min(rp, math.Min(gp, bp))
	l = (cmax + cmin) / 2

	if cmax != cmin {
		d := cmax - cmin
		if l > 0.5 {
			s = d / (2 - cmax - cmin)
		} else {
			s = d / (cmax + cmin)
		}
		switch cmax {
		case rp:
			h = (gp - bp) / d
			if gp < bp {
				h += 6
			}
		case gp:
			h = (bp-rp)/d + 2
		default:
			h = (rp-gp)/d + 4
		}
		h *= 60
	}
	return numeric.Loop(h, 360), s * 100, l * 100
}

// HSLToRGB converts HSL to RGB.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	hp := numeric.Loop(h, 360) / 360
	sp := numeric.Constrain(s/100, 0, 1)
	lp := numeric.Constrain(l/100, 0, 1)

	if sp == 0 {
		return lp * 255, lp * 255, lp * 255
	}

	var q float64
	if lp < 0.5 {
		q = lp * (1 + sp)
	} else {
		q = lp + sp - lp*sp
	}
	p := 2*lp - q
	return hueToChannel(p, q, hp+1.0/3) * 255,
		hueToChannel(p, q, hp) * 255,
		hueToChannel(p, q, hp-1.0/3) * 255
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// HSVToHSL converts HSV to HSL without a round trip through RGB.
func HSVToHSL(h, s, v float64) (hh, sl, l float64) {
	sp := numeric.Constrain(s/100, 0, 1)
	vp := numeric.Constrain(v/100, 0, 1)

	lp := vp * (1 - sp/2)
	if lp > 0 && lp < 1 {
		sl = (vp - lp) / math.Min(lp, 1-lp)
	}
	return h, sl * 100, lp * 100
}

// HSLToHSV converts HSL to HSV without a round trip through RGB.
func HSLToHSV(h, s, l float64) (hh, sv, v float64) {
	sp := numeric.Constrain(s/100, 0, 1)
	lp := numeric.Constrain(l/100, 0, 1)

	vp := lp + sp*math.Min(lp, 1-lp)
	if vp > 0 {
		sv = 2 * (1 - lp/vp)
	}
	return h, sv * 100, vp * 100
}

// Convert maps comps from one mode to another.
func Convert(comps Components, from, to Mode) (Components, error) {
	if !from.Valid() {
		return Components{}, fmt.Errorf("colormodel: unknown mode %q", from)
	}
	if !to.Valid() {
		return Components{}, fmt.Errorf("colormodel: unknown mode %q", to)
	}
	if from == to {
		return comps, nil
	}

	a, b, c := comps[0], comps[1], comps[2]
	var x, y, z float64
	switch {
	case from == ModeRGB && to == ModeHSV:
		x, y, z = RGBToHSV(a, b, c)
	case from == ModeRGB && to == ModeHSL:
		x, y, z = RGBToHSL(a, b, c)
	case from == ModeHSV && to == ModeRGB:
		x, y, z = HSVToRGB(a, b, c)
	case from == ModeHSV && to == ModeHSL:
		x, y, z = HSVToHSL(a, b, c)
	case from == ModeHSL && to == ModeRGB:
		x, y, z = HSLToRGB(a, b, c)
	case from == ModeHSL && to == ModeHSV:
		x, y, z = HSLToHSV(a, b, c)
	}
	return Components{x, y, z}, nil
}
