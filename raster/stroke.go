// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"

	"github.com/gogpu/canvas"
)

// stroker expands polylines into fill polygons. Every emitted polygon has
// the same orientation, so the union of segment bodies, joins and caps is
// filled correctly with the non-zero rule.
type stroker struct {
	hw    float64 // half width
	style canvas.StrokeStyle

	// arcSteps is the number of segments used for a full circle.
	arcSteps int

	out []polyline
}

func newStroker(width float64, style canvas.StrokeStyle, deviceScale float64) *stroker {
	hw := width / 2
	// Enough segments that the chord error stays under a quarter pixel.
	r := hw * deviceScale
	steps := 8
	if r > 0.25 {
		steps = int(math.Ceil(math.Pi / math.Acos(1-0.25/r)))
	}
	steps = min(max(steps, 8), 256)
	return &stroker{hw: hw, style: style, arcSteps: steps}
}

// stroke expands lines and returns the polygons, in local coordinates.
func (s *stroker) stroke(lines []polyline) []polyline {
	s.out = s.out[:0]
	for _, l := range lines {
		pts := dedupe(l.pts)
		if len(pts) == 1 {
			s.dot(pts[0])
			continue
		}
		s.strokePolyline(pts, l.closed)
	}
	return s.out
}

func (s *stroker) strokePolyline(pts []canvas.Point, closed bool) {
	n := len(pts)
	if closed && pts[0] == pts[n-1] {
		pts = pts[:n-1]
		n--
	}
	if closed && n < 2 {
		return
	}

	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		s.segment(pts[i], pts[(i+1)%n])
	}

	for i := 1; i < n-1; i++ {
		s.join(pts[i-1], pts[i], pts[i+1])
	}
	if closed {
		s.join(pts[n-1], pts[0], pts[1])
		if n > 2 {
			s.join(pts[n-2], pts[n-1], pts[0])
		}
		return
	}

	s.cap(pts[0], pts[0].Sub(pts[1]).Normalize(), s.style.StartCap)
	s.cap(pts[n-1], pts[n-1].Sub(pts[n-2]).Normalize(), s.style.EndCap)
}

func (s *stroker) segment(p0, p1 canvas.Point) {
	n := p1.Sub(p0).Normalize().Perp().Mul(s.hw)
	s.emit(p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n))
}

// join fills the wedge on the outer side of the corner at p.
func (s *stroker) join(prev, p, next canvas.Point) {
	d0 := p.Sub(prev).Normalize()
	d1 := next.Sub(p).Normalize()
	cross := d0.Cross(d1)
	if math.Abs(cross) < 1e-12 && d0.Dot(d1) > 0 {
		return
	}

	sign := -1.0
	if cross < 0 {
		sign = 1
	}
	o0 := d0.Perp().Mul(sign * s.hw)
	o1 := d1.Perp().Mul(sign * s.hw)
	a0, a1 := p.Add(o0), p.Add(o1)

	switch s.style.Join {
	case canvas.LineJoinRound:
		s.circle(p)
	case canvas.LineJoinMiter:
		cosTheta := o0.Dot(o1) / (s.hw * s.hw)
		halfCos := math.Sqrt(math.Max((1+cosTheta)/2, 0))
		limit := s.style.MiterLimit
		if limit <= 0 {
			limit = 4
		}
		if halfCos > 1e-9 && 1/halfCos <= limit {
			dir := o0.Add(o1).Normalize()
			tip := p.Add(dir.Mul(s.hw / halfCos))
			s.emit(p, a0, tip, a1)
			return
		}
		s.emit(p, a0, a1)
	default:
		s.emit(p, a0, a1)
	}
}

// cap adds the cap at endpoint p; dir points away from the line.
func (s *stroker) cap(p, dir canvas.Point, c canvas.LineCap) {
	switch c {
	case canvas.LineCapRound:
		s.circle(p)
	case canvas.LineCapSquare:
		n := dir.Perp().Mul(s.hw)
		e := dir.Mul(s.hw)
		s.emit(p.Add(n), p.Add(n).Add(e), p.Sub(n).Add(e), p.Sub(n))
	}
}

// dot strokes a zero-length sub-path: round and square caps still draw.
func (s *stroker) dot(p canvas.Point) {
	switch s.style.StartCap {
	case canvas.LineCapRound:
		s.circle(p)
	case canvas.LineCapSquare:
		s.emit(
			canvas.Pt(p.X-s.hw, p.Y-s.hw), canvas.Pt(p.X+s.hw, p.Y-s.hw),
			canvas.Pt(p.X+s.hw, p.Y+s.hw), canvas.Pt(p.X-s.hw, p.Y+s.hw),
		)
	}
}

func (s *stroker) circle(c canvas.Point) {
	pts := make([]canvas.Point, s.arcSteps)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(s.arcSteps)
		pts[i] = canvas.Pt(c.X+s.hw*math.Cos(a), c.Y+s.hw*math.Sin(a))
	}
	s.emit(pts...)
}

// emit adds a polygon, reversing it if needed to keep a positive signed
// area.
func (s *stroker) emit(pts ...canvas.Point) {
	var area float64
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		area += a.Cross(b)
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	s.out = append(s.out, polyline{pts: pts, closed: true})
}

// dedupe drops consecutive duplicate points.
func dedupe(pts []canvas.Point) []canvas.Point {
	out := make([]canvas.Point, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
