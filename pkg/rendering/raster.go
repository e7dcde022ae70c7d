package rendering

import (
	"image"
	imgcolor "image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RasterCanvas draws into an in-memory RGBA image.
//
// Rectangles are snapped outward to whole pixels. Text is drawn with a fixed
// 7x13 bitmap face.
type RasterCanvas struct {
	img    *image.RGBA
	face   font.Face
	origin Offset
	stack  []Offset
}

// NewRasterCanvas allocates a transparent canvas of the given pixel size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: basicfont.Face7x13,
	}
}

// Image returns the backing image. It is shared, not copied.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

// At returns the pixel at (x, y) as a Color.
func (c *RasterCanvas) At(x, y int) Color {
	p := c.img.RGBAAt(x, y)
	if p.A == 0 {
		return ColorTransparent
	}
	// Un-premultiply; opaque pixels pass through unchanged.
	if p.A == 0xFF {
		return RGBA(p.R, p.G, p.B, p.A)
	}
	n := imgcolor.NRGBAModel.Convert(p).(imgcolor.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// Save pushes the current translation.
func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.origin)
}

// Restore pops the most recent translation. Unbalanced calls are ignored.
func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.origin = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by the given offset.
func (c *RasterCanvas) Translate(dx, dy float64) {
	c.origin.X += dx
	c.origin.Y += dy
}

// Clear fills the whole image, ignoring the translation.
func (c *RasterCanvas) Clear(color Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(toNRGBA(color)), image.Point{}, draw.Src)
}

// DrawRect fills or strokes rect.
func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	rect = rect.Translate(c.origin.X, c.origin.Y)
	if paint.Style == PaintStyleStroke {
		w := paint.StrokeWidth
		if w <= 0 {
			w = 1
		}
		c.fill(Rect{rect.Left, rect.Top, rect.Right, rect.Top + w}, paint.Color)
		c.fill(Rect{rect.Left, rect.Bottom - w, rect.Right, rect.Bottom}, paint.Color)
		c.fill(Rect{rect.Left, rect.Top, rect.Left + w, rect.Bottom}, paint.Color)
		c.fill(Rect{rect.Right - w, rect.Top, rect.Right, rect.Bottom}, paint.Color)
		return
	}
	c.fill(rect, paint.Color)
}

func (c *RasterCanvas) fill(rect Rect, color Color) {
	r := image.Rect(
		int(math.Floor(rect.Left)),
		int(math.Floor(rect.Top)),
		int(math.Ceil(rect.Right)),
		int(math.Ceil(rect.Bottom)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	op := draw.Over
	if uint8(color>>24) == 0xFF {
		op = draw.Src
	}
	draw.Draw(c.img, r, image.NewUniform(toNRGBA(color)), image.Point{}, op)
}

// DrawText draws text with its top-left corner at position.
func (c *RasterCanvas) DrawText(text string, position Offset, color Color) {
	ascent := c.face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(toNRGBA(color)),
		Face: c.face,
		Dot: fixed.P(
			int(math.Round(position.X+c.origin.X)),
			int(math.Round(position.Y+c.origin.Y))+ascent,
		),
	}
	d.DrawString(text)
}

// MeasureText returns the pixel width and height of text in the canvas face.
func (c *RasterCanvas) MeasureText(text string) Size {
	m := c.face.Metrics()
	return Size{
		Width:  float64(font.MeasureString(c.face, text).Ceil()),
		Height: float64((m.Ascent + m.Descent).Ceil()),
	}
}

// Size returns the image size in pixels.
func (c *RasterCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func toNRGBA(c Color) imgcolor.NRGBA {
	r, g, b, a := c.Bytes()
	return imgcolor.NRGBA{R: r, G: g, B: b, A: a}
}
