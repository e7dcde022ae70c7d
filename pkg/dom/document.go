package dom

import "github.com/go-drift/tweak/pkg/rendering"

// SurfaceProvider acquires a drawing surface for a canvas element. It returns
// false when the environment cannot provide one.
type SurfaceProvider func(c *Canvas) (rendering.Canvas, bool)

// Document creates elements. The zero value creates canvases without a
// drawing surface.
type Document struct {
	Surfaces SurfaceProvider
}

// NewDocument returns a Document whose canvases draw through surfaces.
func NewDocument(surfaces SurfaceProvider) *Document {
	return &Document{Surfaces: surfaces}
}

// CreateElement returns a detached element.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{tag: tag}
}

// CreateCanvas returns a detached canvas element of the given pixel size.
func (d *Document) CreateCanvas(width, height int) *Canvas {
	return &Canvas{
		Element:  &Element{tag: "canvas"},
		width:    width,
		height:   height,
		provider: d.Surfaces,
	}
}

// Canvas is a canvas element: an Element plus a pixel size and a lazily
// acquired drawing surface.
type Canvas struct {
	*Element

	width, height int
	provider      SurfaceProvider
	surface       rendering.Canvas
}

// Width returns the pixel width.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the pixel height.
func (c *Canvas) Height() int {
	return c.height
}

// Context returns the canvas' drawing surface, acquiring it on first use.
// It returns false when no surface is available.
func (c *Canvas) Context() (rendering.Canvas, bool) {
	if c.surface != nil {
		return c.surface, true
	}
	if c.provider == nil {
		return nil, false
	}
	s, ok := c.provider(c)
	if !ok || s == nil {
		return nil, false
	}
	c.surface = s
	return s, true
}

// NoSurfaces is a SurfaceProvider for environments without drawing support.
func NoSurfaces(*Canvas) (rendering.Canvas, bool) {
	return nil, false
}

// RasterSurfaces gives every canvas its own in-memory raster image.
func RasterSurfaces(c *Canvas) (rendering.Canvas, bool) {
	if c.width <= 0 || c.height <= 0 {
		return nil, false
	}
	return rendering.NewRasterCanvas(c.width, c.height), true
}

// Recorders is a SurfaceProvider that records drawing into one
// PictureRecorder per canvas, for tests and replay.
type Recorders struct {
	byCanvas map[*Canvas]*rendering.PictureRecorder
}

// NewRecorders returns an empty Recorders.
func NewRecorders() *Recorders {
	return &Recorders{byCanvas: make(map[*Canvas]*rendering.PictureRecorder)}
}

// Provide implements SurfaceProvider.
func (r *Recorders) Provide(c *Canvas) (rendering.Canvas, bool) {
	rec := &rendering.PictureRecorder{}
	r.byCanvas[c] = rec
	return rec.BeginRecording(rendering.Size{Width: float64(c.width), Height: float64(c.height)}), true
}

// For returns the recorder backing c, or nil if c never acquired a surface.
func (r *Recorders) For(c *Canvas) *rendering.PictureRecorder {
	return r.byCanvas[c]
}
