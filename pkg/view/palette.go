package view

import (
	stderrors "errors"
	"math"

	"github.com/go-drift/tweak/pkg/color"
	"github.com/go-drift/tweak/pkg/numeric"
	"github.com/go-drift/tweak/pkg/rendering"
)

// PaletteCellCount is the number of cells per palette axis, independent of
// the canvas pixel size.
const PaletteCellCount = 64

var errNoContext = stderrors.New("canvas has no drawing context")

// PaletteCell is one swatch of a quantized palette grid.
type PaletteCell struct {
	IX, IY int
	// Hue, Saturation and Value are the HSV components the cell shows.
	Hue, Saturation, Value float64
	Rect                   rendering.Rect
	Color                  rendering.Color
}

// cellGeometry returns the cell size and the top-left corner of cell (ix, iy)
// for a width x height canvas split into n x n cells.
//
// Cells are ceil(width/n) wide, so neighbours may overlap by a pixel; the last
// row and column sit flush with the canvas edge.
func cellGeometry(ix, iy, n, width, height int) rendering.Rect {
	cw := math.Ceil(float64(width) / float64(n))
	ch := math.Ceil(float64(height) / float64(n))
	last := float64(n - 1)
	x := math.Floor(numeric.Map(float64(ix), 0, last, 0, float64(width)-cw))
	y := math.Floor(numeric.Map(float64(iy), 0, last, 0, float64(height)-ch))
	return rendering.RectFromLTWH(x, y, cw, ch)
}

// SvPaletteCells computes the saturation/value grid at hue for a canvas of
// the given pixel size. Saturation grows left to right, value shrinks top to
// bottom. Cells are returned row by row.
func SvPaletteCells(hue float64, width, height int) []PaletteCell {
	const n = PaletteCellCount
	cells := make([]PaletteCell, 0, n*n)
	for iy := 0; iy < n; iy++ {
		for ix := 0; ix < n; ix++ {
			s := numeric.Map(float64(ix), 0, n-1, 0, 100)
			v := numeric.Map(float64(iy), 0, n-1, 100, 0)
			cells = append(cells, PaletteCell{
				IX:         ix,
				IY:         iy,
				Hue:        hue,
				Saturation: s,
				Value:      v,
				Rect:       cellGeometry(ix, iy, n, width, height),
				Color:      opaque(hue, s, v),
			})
		}
	}
	return cells
}

// HuePaletteCells computes a single row of fully saturated, full value hues
// spanning [0, 360] left to right.
func HuePaletteCells(width, height int) []PaletteCell {
	const n = PaletteCellCount
	cells := make([]PaletteCell, 0, n)
	ch := float64(height)
	for ix := 0; ix < n; ix++ {
		h := numeric.Map(float64(ix), 0, n-1, 0, 360)
		r := cellGeometry(ix, 0, n, width, height)
		r.Bottom = r.Top + ch
		cells = append(cells, PaletteCell{
			IX:         ix,
			Hue:        h,
			Saturation: 100,
			Value:      100,
			Rect:       r,
			Color:      opaque(h, 100, 100),
		})
	}
	return cells
}

func opaque(h, s, v float64) rendering.Color {
	return color.HSV(h, s, v).ToRendering()
}
