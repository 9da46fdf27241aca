package canvas

import "math"

// Rect is an axis-aligned rectangle: top-left corner plus size.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectLTRB creates a Rect from its edges. Edges given in reverse order
// are swapped.
func RectLTRB(left, top, right, bottom float64) Rect {
	if right < left {
		left, right = right, left
	}
	if bottom < top {
		top, bottom = bottom, top
	}
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Right returns the right edge x-coordinate.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the bottom edge y-coordinate.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return !(r.W > 0 && r.H > 0)
}

// Contains returns true if the point is inside the rectangle
// (left/top edges inclusive, right/bottom exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether other lies entirely inside r.
// An empty rectangle is contained by every rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersect returns the intersection of two rectangles.
// Returns the zero Rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.Right(), other.Right())
	y1 := math.Min(r.Bottom(), other.Bottom())

	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle containing both rectangles.
// Empty rectangles are ignored.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x0 := math.Min(r.X, other.X)
	y0 := math.Min(r.Y, other.Y)
	x1 := math.Max(r.Right(), other.Right())
	y1 := math.Max(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// extend grows r (possibly zero-sized) so that it covers p.
func (r Rect) extend(p Point) Rect {
	x0 := math.Min(r.X, p.X)
	y0 := math.Min(r.Y, p.Y)
	x1 := math.Max(r.Right(), p.X)
	y1 := math.Max(r.Bottom(), p.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
