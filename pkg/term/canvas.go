// Package term hosts tweak controls in a terminal.
//
// CellCanvas is a rendering.Canvas whose pixels are half character cells, so
// one terminal line shows two pixel rows. Screens hands a CellCanvas to every
// dom canvas of a document, and Model drives a number slider and a color
// picker from bubbletea key messages.
package term

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/tweak/pkg/dom"
	"github.com/go-drift/tweak/pkg/rendering"
)

const (
	upperHalf = "▀"
	markGlyph = "◆"
)

// CellCanvas draws into a grid of colored pixels rendered two rows per line.
type CellCanvas struct {
	width, height int
	pixels        []rendering.Color
	glyphs        map[[2]int]rune
	origin        rendering.Offset
	stack         []rendering.Offset
}

// NewCellCanvas returns a transparent canvas of width x height pixels.
func NewCellCanvas(width, height int) *CellCanvas {
	return &CellCanvas{
		width:  width,
		height: height,
		pixels: make([]rendering.Color, width*height),
		glyphs: make(map[[2]int]rune),
	}
}

// At returns the pixel at (x, y), or transparent outside the canvas.
func (c *CellCanvas) At(x, y int) rendering.Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return rendering.ColorTransparent
	}
	return c.pixels[y*c.width+x]
}

func (c *CellCanvas) Save() {
	c.stack = append(c.stack, c.origin)
}

func (c *CellCanvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.origin = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *CellCanvas) Translate(dx, dy float64) {
	c.origin = rendering.Offset{X: c.origin.X + dx, Y: c.origin.Y + dy}
}

func (c *CellCanvas) Clear(color rendering.Color) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
	clear(c.glyphs)
}

func (c *CellCanvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	rect = rect.Translate(c.origin.X, c.origin.Y)
	if paint.Style == rendering.PaintStyleStroke {
		w := math.Max(paint.StrokeWidth, 1)
		c.fill(rendering.RectFromLTWH(rect.Left, rect.Top, rect.Width(), w), paint.Color)
		c.fill(rendering.RectFromLTWH(rect.Left, rect.Bottom-w, rect.Width(), w), paint.Color)
		c.fill(rendering.RectFromLTWH(rect.Left, rect.Top, w, rect.Height()), paint.Color)
		c.fill(rendering.RectFromLTWH(rect.Right-w, rect.Top, w, rect.Height()), paint.Color)
		return
	}
	c.fill(rect, paint.Color)
}

// fill paints every pixel whose top-left corner lies inside r.
func (c *CellCanvas) fill(r rendering.Rect, color rendering.Color) {
	x0 := max(int(math.Ceil(r.Left)), 0)
	y0 := max(int(math.Ceil(r.Top)), 0)
	x1 := min(int(math.Ceil(r.Right)), c.width)
	y1 := min(int(math.Ceil(r.Bottom)), c.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.pixels[y*c.width+x] = color
		}
	}
}

// DrawText places one glyph per rune on the line holding position.Y. Colors
// are ignored; glyphs take the cell's contrasting color when rendered.
func (c *CellCanvas) DrawText(text string, position rendering.Offset, _ rendering.Color) {
	p := rendering.Offset{X: position.X + c.origin.X, Y: position.Y + c.origin.Y}
	line := int(p.Y) / 2
	col := int(p.X)
	for _, r := range text {
		if col >= 0 && col < c.width && line >= 0 && line < c.Lines() {
			c.glyphs[[2]int{col, line}] = r
		}
		col++
	}
}

func (c *CellCanvas) Size() rendering.Size {
	return rendering.Size{Width: float64(c.width), Height: float64(c.height)}
}

// Lines returns the number of terminal lines the canvas occupies.
func (c *CellCanvas) Lines() int {
	return (c.height + 1) / 2
}

// Render returns the canvas as lines of half blocks. A non-nil mark is drawn
// as a marker glyph over the pixel it points at.
func (c *CellCanvas) Render(mark *[2]int) string {
	var sb strings.Builder
	for line := 0; line < c.Lines(); line++ {
		if line > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.width; x++ {
			top, bottom := c.At(x, 2*line), c.At(x, 2*line+1)
			style := lipgloss.NewStyle()
			if top != rendering.ColorTransparent {
				style = style.Foreground(hex(top))
			}
			if bottom != rendering.ColorTransparent {
				style = style.Background(hex(bottom))
			}
			glyph := upperHalf
			if r, ok := c.glyphs[[2]int{x, line}]; ok {
				glyph = string(r)
				style = lipgloss.NewStyle().Foreground(contrast(top)).Background(hex(top))
			}
			if mark != nil && mark[0] == x && mark[1]/2 == line {
				glyph = markGlyph
				style = lipgloss.NewStyle().Foreground(contrast(top)).Background(hex(top))
			}
			sb.WriteString(style.Render(glyph))
		}
	}
	return sb.String()
}

func hex(c rendering.Color) lipgloss.Color {
	r, g, b, _ := c.Bytes()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// contrast picks black or white, whichever reads better on c.
func contrast(c rendering.Color) lipgloss.Color {
	r, g, b, _ := c.RGBAF()
	if 0.299*r+0.587*g+0.114*b > 0.5 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

// Screens is a dom.SurfaceProvider that backs every canvas with a CellCanvas
// and remembers which element owns which canvas.
type Screens struct {
	byElement map[*dom.Element]*CellCanvas
}

// NewScreens returns an empty Screens.
func NewScreens() *Screens {
	return &Screens{byElement: make(map[*dom.Element]*CellCanvas)}
}

// Provide implements dom.SurfaceProvider.
func (s *Screens) Provide(c *dom.Canvas) (rendering.Canvas, bool) {
	if c.Width() <= 0 || c.Height() <= 0 {
		return nil, false
	}
	cc := NewCellCanvas(c.Width(), c.Height())
	s.byElement[c.Element] = cc
	return cc, true
}

// For returns the canvas backing el, or nil.
func (s *Screens) For(el *dom.Element) *CellCanvas {
	if el == nil {
		return nil
	}
	return s.byElement[el]
}
