package canvas

import "math"

// Matrix is a 2D affine transformation: the homogeneous 3x3 matrix
//
//	| A  B  C |
//	| D  E  F |
//	| 0  0  1 |
//
// stored as its top two rows. It maps a point as
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity maps every point to itself.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate moves points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale stretches x and y independently about the origin.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate turns points by angle radians, clockwise on a y-down surface.
func Rotate(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{A: c, B: -s, D: s, E: c}
}

// Multiply returns m * other: the result maps a point through other
// first and then through m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// PreConcat returns m * delta. A child coordinate space described by delta
// keeps mapping through every enclosing transform already in m.
func (m Matrix) PreConcat(delta Matrix) Matrix {
	return m.Multiply(delta)
}

// PreTranslate returns m * Translate(dx, dy).
func (m Matrix) PreTranslate(dx, dy float64) Matrix {
	return Matrix{
		A: m.A, B: m.B, C: m.A*dx + m.B*dy + m.C,
		D: m.D, E: m.E, F: m.D*dx + m.E*dy + m.F,
	}
}

func (m Matrix) TransformPoint(p Point) Point {
	return m.TransformVector(p).Add(Point{X: m.C, Y: m.F})
}

// TransformVector maps a displacement: the linear part only.
func (m Matrix) TransformVector(p Point) Point {
	return Point{X: m.A*p.X + m.B*p.Y, Y: m.D*p.X + m.E*p.Y}
}

// TransformRect returns the axis-aligned bounds of r after transformation.
func (m Matrix) TransformRect(r Rect) Rect {
	p0 := m.TransformPoint(Pt(r.X, r.Y))
	bounds := Rect{X: p0.X, Y: p0.Y}
	for _, p := range [...]Point{
		m.TransformPoint(Pt(r.Right(), r.Y)),
		m.TransformPoint(Pt(r.Right(), r.Bottom())),
		m.TransformPoint(Pt(r.X, r.Bottom())),
	} {
		bounds = bounds.extend(p)
	}
	return bounds
}

// Determinant of the linear part; its sign flips for mirrored transforms.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse of m. A singular m (|det| below 1e-12)
// yields the identity and false.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Identity(), false
	}
	k := 1 / det
	// Inverse of the linear part, then undo the translation with it.
	inv := Matrix{A: m.E * k, B: -m.B * k, D: -m.D * k, E: m.A * k}
	t := inv.TransformVector(Point{X: m.C, Y: m.F})
	inv.C, inv.F = -t.X, -t.Y
	return inv, true
}

// ScaleFactor returns the geometric mean scale of the transform, used to
// convert device-space tolerances into local space.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.Determinant()))
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation reports whether m only moves points.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// ApproxEqual reports whether every coefficient differs by at most eps.
func (m Matrix) ApproxEqual(other Matrix, eps float64) bool {
	return math.Abs(m.A-other.A) <= eps && math.Abs(m.B-other.B) <= eps &&
		math.Abs(m.C-other.C) <= eps && math.Abs(m.D-other.D) <= eps &&
		math.Abs(m.E-other.E) <= eps && math.Abs(m.F-other.F) <= eps
}
