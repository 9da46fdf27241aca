package canvas

import "math"

// SegmentOp identifies the kind of a path segment.
type SegmentOp uint8

const (
	SegmentLineTo  SegmentOp = iota // Points[0] is the end point
	SegmentQuadTo                   // Points[0] control, Points[1] end
	SegmentCubicTo                  // Points[0], Points[1] controls, Points[2] end
)

// String returns the segment operation name.
func (op SegmentOp) String() string {
	switch op {
	case SegmentLineTo:
		return "LineTo"
	case SegmentQuadTo:
		return "QuadTo"
	case SegmentCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// Segment is one drawing segment of a contour.
type Segment struct {
	Op     SegmentOp
	Points [3]Point
}

// End returns the end point of the segment.
func (s Segment) End() Point {
	switch s.Op {
	case SegmentQuadTo:
		return s.Points[1]
	case SegmentCubicTo:
		return s.Points[2]
	default:
		return s.Points[0]
	}
}

func (s Segment) pointCount() int {
	return int(s.Op) + 1
}

// DrawDecision is returned by Contour.Emit and tells the drawing routine
// whether the accumulated geometry group must be submitted before the
// next contour is emitted.
type DrawDecision uint8

const (
	// DrawContinue keeps accumulating into the current geometry group.
	DrawContinue DrawDecision = iota
	// DrawFlushAndRestart finalizes the current group; the next contour
	// starts a new one.
	DrawFlushAndRestart
)

// Contour is one continuous sub-path: a start point, its segments and
// whether it was explicitly closed.
type Contour struct {
	start    Point
	segments []Segment
	closed   bool

	// rule overrides the path fill rule for contours appended by AddPath.
	rule    FillRule
	ownRule bool

	// detached contours end their geometry group.
	detached bool
}

// Start returns the first point of the contour.
func (c *Contour) Start() Point { return c.start }

// Segments returns the contour's segments (not including the move).
func (c *Contour) Segments() []Segment { return c.segments }

// Closed reports whether the contour was explicitly closed.
func (c *Contour) Closed() bool { return c.closed }

// Emit writes the contour into pb. open tracks whether the previous
// figure is still unterminated; it is ended as an open figure before this
// contour begins, and set again when this contour is left open.
func (c *Contour) Emit(pb PathBuilder, open *bool) DrawDecision {
	if *open {
		pb.EndFigure(FigureOpen)
		*open = false
	}

	pb.BeginFigure(c.start)
	for _, s := range c.segments {
		switch s.Op {
		case SegmentLineTo:
			pb.AddLine(s.Points[0])
		case SegmentQuadTo:
			pb.AddQuadratic(s.Points[0], s.Points[1])
		case SegmentCubicTo:
			pb.AddCubic(s.Points[0], s.Points[1], s.Points[2])
		}
	}

	if c.closed {
		pb.EndFigure(FigureClosed)
	} else {
		*open = true
	}

	if c.detached {
		return DrawFlushAndRestart
	}
	return DrawContinue
}

// Path is an ordered sequence of contours with a path-level fill rule.
// The zero value is an empty path using the non-zero rule.
type Path struct {
	contours []Contour
	fillType FillRule
	current  Point
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// FillType returns the path fill rule.
func (p *Path) FillType() FillRule { return p.fillType }

// SetFillType sets the path fill rule.
func (p *Path) SetFillType(rule FillRule) { p.fillType = rule }

// Contours returns the path's contours.
func (p *Path) Contours() []Contour { return p.contours }

// IsEmpty reports whether the path has no contours.
func (p *Path) IsEmpty() bool { return len(p.contours) == 0 }

// Reset removes all contours, keeping the fill type.
func (p *Path) Reset() {
	p.contours = p.contours[:0]
	p.current = Point{}
}

// CurrentPoint returns the end point of the last segment.
func (p *Path) CurrentPoint() Point { return p.current }

// ruleOf returns the fill rule a contour is drawn with.
func (p *Path) ruleOf(c *Contour) FillRule {
	if c.ownRule {
		return c.rule
	}
	return p.fillType
}

// MoveTo starts a new contour at (x, y). A contour that has no segments
// yet is moved instead of left behind empty.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.current = pt
	if n := len(p.contours); n > 0 {
		last := &p.contours[n-1]
		if len(last.segments) == 0 && !last.closed {
			last.start = pt
			return
		}
	}
	p.contours = append(p.contours, Contour{start: pt})
}

// LineTo adds a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.appendSegment(Segment{Op: SegmentLineTo, Points: [3]Point{Pt(x, y)}})
}

// QuadTo adds a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.appendSegment(Segment{Op: SegmentQuadTo, Points: [3]Point{Pt(cx, cy), Pt(x, y)}})
}

// CubicTo adds a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.appendSegment(Segment{Op: SegmentCubicTo, Points: [3]Point{Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y)}})
}

// Close closes the current contour. The next segment starts a new
// contour at the closed contour's start point.
func (p *Path) Close() {
	n := len(p.contours)
	if n == 0 || p.contours[n-1].closed {
		return
	}
	p.contours[n-1].closed = true
	p.current = p.contours[n-1].start
}

func (p *Path) appendSegment(s Segment) {
	n := len(p.contours)
	if n == 0 || p.contours[n-1].closed {
		p.contours = append(p.contours, Contour{start: p.current})
		n++
	}
	p.contours[n-1].segments = append(p.contours[n-1].segments, s)
	p.current = s.End()
}

// AddRect adds r as a closed clockwise contour.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.Right(), r.Y)
	p.LineTo(r.Right(), r.Bottom())
	p.LineTo(r.X, r.Bottom())
	p.Close()
}

// kappa is the cubic control distance approximating a quarter circle.
const kappa = 0.5522847498307936

// AddOval adds the ellipse inscribed in r as a closed clockwise contour
// of four cubic segments, starting at the top.
func (p *Path) AddOval(r Rect) {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	rx, ry := r.W/2, r.H/2
	ox, oy := rx*kappa, ry*kappa

	p.MoveTo(cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.Close()
}

// AddCircle adds a circle as a closed contour.
func (p *Path) AddCircle(cx, cy, radius float64) {
	p.AddOval(NewRect(cx-radius, cy-radius, 2*radius, 2*radius))
}

// ArcTo appends an elliptical arc of the oval r, from startAngle sweeping
// sweepAngle (degrees, clockwise positive in y-down space). The arc is
// connected to the current contour with a line unless forceMoveTo is set
// or the path is empty, in which case it starts a new contour.
func (p *Path) ArcTo(r Rect, startAngle, sweepAngle float64, forceMoveTo bool) {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	rx, ry := r.W/2, r.H/2
	start := startAngle * math.Pi / 180
	sweep := sweepAngle * math.Pi / 180

	first := Pt(cx+rx*math.Cos(start), cy+ry*math.Sin(start))
	if forceMoveTo || len(p.contours) == 0 {
		p.MoveTo(first.X, first.Y)
	} else {
		p.LineTo(first.X, first.Y)
	}
	if sweep == 0 {
		return
	}

	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	a := start
	for i := 0; i < n; i++ {
		b := a + step
		cosA, sinA := math.Cos(a), math.Sin(a)
		cosB, sinB := math.Cos(b), math.Sin(b)
		p.CubicTo(
			cx+rx*(cosA-k*sinA), cy+ry*(sinA+k*cosA),
			cx+rx*(cosB+k*sinB), cy+ry*(sinB-k*cosB),
			cx+rx*cosB, cy+ry*sinB,
		)
		a = b
	}
}

// AddPath appends the contours of src transformed by m. The appended
// contours keep src's fill rule and form their own geometry group, so they
// are never combined with the contours around them.
func (p *Path) AddPath(src *Path, m Matrix) {
	if src == nil || len(src.contours) == 0 {
		return
	}
	if n := len(p.contours); n > 0 {
		p.contours[n-1].detached = true
	}
	for i := range src.contours {
		c := src.contours[i].transformed(m)
		c.rule = src.ruleOf(&src.contours[i])
		c.ownRule = true
		c.detached = false
		p.contours = append(p.contours, c)
	}
	p.contours[len(p.contours)-1].detached = true
	p.current = m.TransformPoint(src.current)
}

// Transform applies m to every point of the path.
func (p *Path) Transform(m Matrix) {
	for i := range p.contours {
		p.contours[i] = p.contours[i].transformed(m)
	}
	p.current = m.TransformPoint(p.current)
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{fillType: p.fillType, current: p.current}
	out.contours = make([]Contour, len(p.contours))
	for i, c := range p.contours {
		c.segments = append([]Segment(nil), c.segments...)
		out.contours[i] = c
	}
	return out
}

// Bounds returns the bounds of all points, control points included.
func (p *Path) Bounds() Rect {
	if len(p.contours) == 0 {
		return Rect{}
	}
	b := Rect{X: p.contours[0].start.X, Y: p.contours[0].start.Y}
	for i := range p.contours {
		c := &p.contours[i]
		b = b.extend(c.start)
		for _, s := range c.segments {
			for j := 0; j < s.pointCount(); j++ {
				b = b.extend(s.Points[j])
			}
		}
	}
	return b
}

func (c Contour) transformed(m Matrix) Contour {
	out := c
	out.start = m.TransformPoint(c.start)
	out.segments = make([]Segment, len(c.segments))
	for i, s := range c.segments {
		for j := 0; j < s.pointCount(); j++ {
			s.Points[j] = m.TransformPoint(s.Points[j])
		}
		out.segments[i] = s
	}
	return out
}
