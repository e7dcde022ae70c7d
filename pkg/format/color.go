package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/tweak/pkg/color"
)

// ColorHexFormatter prints colors as "#rrggbb".
type ColorHexFormatter struct{}

// Format implements Formatter.
func (ColorHexFormatter) Format(c color.Color) string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ColorRGBFormatter prints colors as "rgb(r, g, b)".
type ColorRGBFormatter struct{}

// Format implements Formatter.
func (ColorRGBFormatter) Format(c color.Color) string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// ColorHexParser reads "#rgb", "#rrggbb" and "0xrrggbb" into an opaque RGB
// color.
type ColorHexParser struct{}

// Parse implements Parser.
func (ColorHexParser) Parse(text string) (color.Color, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.HasPrefix(s, "#"):
		s = s[1:]
	case strings.HasPrefix(s, "0x"):
		s = s[2:]
		if len(s) != 6 {
			return color.Color{}, false
		}
	default:
		return color.Color{}, false
	}

	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.Color{}, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.Color{}, false
	}
	return color.RGB(float64(n>>16&0xff), float64(n>>8&0xff), float64(n&0xff)), true
}
