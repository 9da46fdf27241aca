package canvas

import "math"

// Point is a position or a displacement in 2D.
type Point struct {
	X, Y float64
}

// Pt returns Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Mul(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Dot is the scalar product.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross is the z component of the 3D cross product. In the y-down device
// space a positive value means q turns clockwise from p.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

func (p Point) Distance(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

// Normalize scales p to unit length. The zero vector stays zero.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return p.Mul(1 / l)
}

// Perp is p turned a quarter clockwise on screen.
func (p Point) Perp() Point { return Point{X: -p.Y, Y: p.X} }

// Lerp moves from p toward q by the fraction t.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Mul(t))
}
