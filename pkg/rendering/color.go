package rendering

// Color is a swatch as canvases store it: one packed word laid out
// 0xAARRGGBB. Controls work in color.Color and convert at the draw call.
type Color uint32

// Named swatches used for backgrounds, markers and palette corners.
const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0xFF000000
	ColorWhite       Color = 0xFFFFFFFF
	ColorRed         Color = 0xFFFF0000
	ColorGreen       Color = 0xFF00FF00
	ColorBlue        Color = 0xFF0000FF
)

const channelMax = 255.0

// RGBA packs four channels into a swatch.
func RGBA(r, g, b, a uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGB packs a fully opaque swatch.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// Bytes unpacks the swatch in r, g, b, a order, the order image/color and
// the raster expect.
func (c Color) Bytes() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// RGBAF is Bytes scaled to [0, 1], for terminals that take float channels.
func (c Color) RGBAF() (r, g, b, a float64) {
	rb, gb, bb, ab := c.Bytes()
	return float64(rb) / channelMax, float64(gb) / channelMax, float64(bb) / channelMax, float64(ab) / channelMax
}

// WithAlpha swaps the alpha byte and keeps the channels.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}
