// Package rendering defines the drawing surface used by palette views and the
// implementations shipped with tweak: a recorder for tests and replay, and a
// raster canvas backed by an in-memory image.
package rendering

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current translation.
	Save()

	// Restore pops the most recent translation.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawText draws a single line of text with its top-left corner at position.
	DrawText(text string, position Offset, color Color)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
