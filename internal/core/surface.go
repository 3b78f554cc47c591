package core

// Surface is the set of drawing primitives the simulation renders through.
// Coordinates are logical pixels with the origin at the top-left corner.
// Implementations own the mapping to real pixels or terminal cells.
type Surface interface {
	// Clear fills the whole surface with a background colour.
	Clear(c Color)

	// FillRect paints an axis-aligned rectangle with a solid colour.
	// Parts outside the surface are clipped.
	FillRect(r Rect, c Color)

	// DrawText writes text with its top-left corner at (x, y).
	// Scale is a size multiplier relative to the surface's base font.
	DrawText(x, y float64, text string, c Color, scale float64)

	// Width and Height return the logical size of the surface.
	Width() float64
	Height() float64
}
