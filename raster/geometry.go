// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"

	"github.com/gogpu/canvas"
)

// figure is one sub-path in local coordinates. Curves are kept as
// segments so they can be flattened with the tolerance of the transform
// they are drawn with.
type figure struct {
	start    canvas.Point
	segments []canvas.Segment
	closed   bool
}

// Path is the geometry built by a PathBuilder.
type Path struct {
	figures []figure
}

// Group combines geometries under one fill rule.
type Group struct {
	children []canvas.Geometry
	rule     canvas.FillRule
}

// builder implements canvas.PathBuilder.
type builder struct {
	path    *Path
	current *figure
}

func newBuilder() *builder {
	return &builder{path: &Path{}}
}

func (b *builder) BeginFigure(p canvas.Point) {
	b.finish(false)
	b.current = &figure{start: p}
}

func (b *builder) AddLine(p canvas.Point) {
	b.add(canvas.Segment{Op: canvas.SegmentLineTo, Points: [3]canvas.Point{p}})
}

func (b *builder) AddQuadratic(c, p canvas.Point) {
	b.add(canvas.Segment{Op: canvas.SegmentQuadTo, Points: [3]canvas.Point{c, p}})
}

func (b *builder) AddCubic(c1, c2, p canvas.Point) {
	b.add(canvas.Segment{Op: canvas.SegmentCubicTo, Points: [3]canvas.Point{c1, c2, p}})
}

func (b *builder) EndFigure(loop canvas.FigureLoop) {
	b.finish(loop == canvas.FigureClosed)
}

func (b *builder) Build() canvas.Geometry {
	b.finish(false)
	p := b.path
	b.path = &Path{}
	return p
}

func (b *builder) add(s canvas.Segment) {
	if b.current == nil {
		// Segments without BeginFigure start at the origin.
		b.current = &figure{}
	}
	b.current.segments = append(b.current.segments, s)
}

func (b *builder) finish(closed bool) {
	if b.current == nil {
		return
	}
	b.current.closed = closed
	b.path.figures = append(b.path.figures, *b.current)
	b.current = nil
}

// polyline is a flattened figure.
type polyline struct {
	pts    []canvas.Point
	closed bool
}

// flattenGeometry flattens g into polylines in local coordinates and
// returns the fill rule the geometry is drawn with. Plain paths use the
// non-zero rule; a group's rule applies to everything inside it.
func flattenGeometry(g canvas.Geometry, tol float64) ([]polyline, canvas.FillRule) {
	var out []polyline
	rule := canvas.FillRuleNonZero
	switch g := g.(type) {
	case *Path:
		out = g.flatten(out, tol)
	case *Group:
		rule = g.rule
		for _, child := range g.children {
			lines, _ := flattenGeometry(child, tol)
			out = append(out, lines...)
		}
	}
	return out, rule
}

func (p *Path) flatten(out []polyline, tol float64) []polyline {
	for _, f := range p.figures {
		pts := []canvas.Point{f.start}
		cur := f.start
		for _, s := range f.segments {
			switch s.Op {
			case canvas.SegmentLineTo:
				pts = append(pts, s.Points[0])
			case canvas.SegmentQuadTo:
				pts = flattenQuad(pts, cur, s.Points[0], s.Points[1], tol)
			case canvas.SegmentCubicTo:
				pts = flattenCubic(pts, cur, s.Points[0], s.Points[1], s.Points[2], tol)
			}
			cur = s.End()
		}
		out = append(out, polyline{pts: pts, closed: f.closed})
	}
	return out
}

// maxSubdivisions bounds the number of line segments per curve.
const maxSubdivisions = 256

// subdivisions returns the number of segments needed to keep a curve with
// the given control-polygon deviation dd within tol.
func subdivisions(dd, tol float64) int {
	n := int(math.Ceil(math.Sqrt(0.75 * dd / tol)))
	if n < 1 {
		return 1
	}
	if n > maxSubdivisions {
		return maxSubdivisions
	}
	return n
}

func flattenQuad(pts []canvas.Point, p0, p1, p2 canvas.Point, tol float64) []canvas.Point {
	dd := p0.Sub(p1.Mul(2)).Add(p2).Length()
	n := subdivisions(dd, tol)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		pts = append(pts, canvas.Pt(
			mt*mt*p0.X+2*mt*t*p1.X+t*t*p2.X,
			mt*mt*p0.Y+2*mt*t*p1.Y+t*t*p2.Y,
		))
	}
	return pts
}

func flattenCubic(pts []canvas.Point, p0, p1, p2, p3 canvas.Point, tol float64) []canvas.Point {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	n := subdivisions(2*math.Max(d1, d2), tol)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		pts = append(pts, canvas.Pt(
			a*p0.X+b*p1.X+c*p2.X+d*p3.X,
			a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y,
		))
	}
	return pts
}

// rectPolyline returns r as a closed clockwise polyline.
func rectPolyline(r canvas.Rect) polyline {
	return polyline{
		pts: []canvas.Point{
			{X: r.X, Y: r.Y},
			{X: r.Right(), Y: r.Y},
			{X: r.Right(), Y: r.Bottom()},
			{X: r.X, Y: r.Bottom()},
		},
		closed: true,
	}
}

// transformPolylines maps polylines through m into a new slice.
func transformPolylines(lines []polyline, m canvas.Matrix) []polyline {
	out := make([]polyline, len(lines))
	for i, l := range lines {
		pts := make([]canvas.Point, len(l.pts))
		for j, p := range l.pts {
			pts[j] = m.TransformPoint(p)
		}
		out[i] = polyline{pts: pts, closed: l.closed}
	}
	return out
}
