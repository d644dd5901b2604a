// Package geometry provides cell-based rectangle math shared by the
// tiling and floating layout engines. All values are terminal cells;
// the origin is the top-left corner of the screen.
package geometry

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect returns a rectangle at (x, y) with the given dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive right edge (X + Width).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge (Y + Height).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Grow returns the rectangle with (dw, dh) added to its dimensions.
// Dimensions may go negative here; callers clamp with ClampMinSize.
func (r Rect) Grow(dw, dh int) Rect {
	r.Width += dw
	r.Height += dh
	return r
}

// ClampMinSize returns the rectangle with dimensions raised to at least
// (minW, minH).
func (r Rect) ClampMinSize(minW, minH int) Rect {
	r.Width = max(r.Width, minW)
	r.Height = max(r.Height, minH)
	return r
}

// ClampToScreen returns the rectangle adjusted to lie fully within
// [0, screenW) x [0, screenH). Dimensions larger than the screen are
// reduced first, then the position is clamped so the far edges stay on
// screen.
func (r Rect) ClampToScreen(screenW, screenH int) Rect {
	r.Width = min(r.Width, screenW)
	r.Height = min(r.Height, screenH)
	r.X = min(max(r.X, 0), max(screenW-r.Width, 0))
	r.Y = min(max(r.Y, 0), max(screenH-r.Height, 0))
	return r
}

// Contains reports whether the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether the two rectangles share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}
