// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"
	"sort"

	"github.com/gogpu/canvas"
)

// SupersampleScale is the number of sub-scanlines per pixel row used for
// anti-aliased fills.
const SupersampleScale = 4

// edge is a non-horizontal polygon edge normalized so that y0 < y1.
type edge struct {
	x0, y0 float64
	y1     float64
	dxdy   float64
	dir    int // +1 when the original edge pointed down, -1 up
}

func newEdge(p0, p1 canvas.Point) (edge, bool) {
	if p0.Y == p1.Y {
		return edge{}, false
	}
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	return edge{
		x0:   p0.X,
		y0:   p0.Y,
		y1:   p1.Y,
		dxdy: (p1.X - p0.X) / (p1.Y - p0.Y),
		dir:  dir,
	}, true
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dxdy
}

type crossing struct {
	x   float64
	dir int
}

// Rasterizer converts device-space polygons to per-pixel coverage.
// A Rasterizer reuses its buffers between fills and is not safe for
// concurrent use.
type Rasterizer struct {
	edges     []edge
	active    []int
	crossings []crossing
	acc       []float64
}

// spanFunc receives the coverage (0..1] of one pixel.
type spanFunc func(x, y int, coverage float64)

// fill rasterizes the polygons (every polyline is implicitly closed) under
// rule, restricted to clip, and reports every covered pixel to span.
func (r *Rasterizer) fill(lines []polyline, rule canvas.FillRule, aa bool, clip image.Rectangle, span spanFunc) {
	r.edges = r.edges[:0]
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, l := range lines {
		n := len(l.pts)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0, p1 := l.pts[i], l.pts[(i+1)%n]
			xMin, xMax = math.Min(xMin, p0.X), math.Max(xMax, p0.X)
			if e, ok := newEdge(p0, p1); ok {
				r.edges = append(r.edges, e)
				yMin, yMax = math.Min(yMin, e.y0), math.Max(yMax, e.y1)
			}
		}
	}
	if len(r.edges) == 0 {
		return
	}

	bounds := image.Rect(
		int(math.Floor(xMin)), int(math.Floor(yMin)),
		int(math.Ceil(xMax))+1, int(math.Ceil(yMax))+1,
	).Intersect(clip)
	if bounds.Empty() {
		return
	}

	sort.Slice(r.edges, func(i, j int) bool { return r.edges[i].y0 < r.edges[j].y0 })

	width := bounds.Dx()
	if cap(r.acc) < width {
		r.acc = make([]float64, width)
	}
	r.acc = r.acc[:width]
	for i := range r.acc {
		r.acc[i] = 0
	}

	samples := 1
	if aa {
		samples = SupersampleScale
	}
	weight := 1 / float64(samples)

	r.active = r.active[:0]
	next := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		lo, hi := width, -1
		for s := 0; s < samples; s++ {
			sy := float64(y) + (float64(s)+0.5)*weight

			for next < len(r.edges) && r.edges[next].y0 <= sy {
				r.active = append(r.active, next)
				next++
			}
			j := 0
			for _, idx := range r.active {
				if r.edges[idx].y1 > sy {
					r.active[j] = idx
					j++
				}
			}
			r.active = r.active[:j]

			r.crossings = r.crossings[:0]
			for _, idx := range r.active {
				e := &r.edges[idx]
				if e.y0 <= sy {
					r.crossings = append(r.crossings, crossing{x: e.xAt(sy), dir: e.dir})
				}
			}
			if len(r.crossings) < 2 {
				continue
			}
			sort.Slice(r.crossings, func(a, b int) bool { return r.crossings[a].x < r.crossings[b].x })

			winding := 0
			for i, c := range r.crossings[:len(r.crossings)-1] {
				winding += c.dir
				if !inside(winding, rule) {
					continue
				}
				xa := c.x - float64(bounds.Min.X)
				xb := r.crossings[i+1].x - float64(bounds.Min.X)
				var a, b int
				if aa {
					a, b = r.addSpanAA(xa, xb, weight)
				} else {
					a, b = r.addSpan(xa, xb)
				}
				if a < lo {
					lo = a
				}
				if b > hi {
					hi = b
				}
			}
		}

		for x := max(lo, 0); x <= hi && x < width; x++ {
			if cov := r.acc[x]; cov > 0 {
				span(bounds.Min.X+x, y, math.Min(cov, 1))
			}
			r.acc[x] = 0
		}
	}
}

func inside(winding int, rule canvas.FillRule) bool {
	if rule == canvas.FillRuleEvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// addSpanAA adds exact horizontal coverage of [xa, xb) scaled by w and
// returns the touched index range.
func (r *Rasterizer) addSpanAA(xa, xb, w float64) (int, int) {
	limit := float64(len(r.acc))
	xa = math.Max(xa, 0)
	xb = math.Min(xb, limit)
	if xb <= xa {
		return len(r.acc), -1
	}
	ia := int(xa)
	ib := int(xb)
	if ia == ib {
		r.acc[ia] += (xb - xa) * w
		return ia, ia
	}
	r.acc[ia] += (float64(ia+1) - xa) * w
	for i := ia + 1; i < ib; i++ {
		r.acc[i] += w
	}
	if ib < len(r.acc) {
		r.acc[ib] += (xb - float64(ib)) * w
		return ia, ib
	}
	return ia, ib - 1
}

// addSpan marks pixels whose centers lie in [xa, xb).
func (r *Rasterizer) addSpan(xa, xb float64) (int, int) {
	a := int(math.Ceil(xa - 0.5))
	b := int(math.Ceil(xb-0.5)) - 1
	a = max(a, 0)
	b = min(b, len(r.acc)-1)
	for i := a; i <= b; i++ {
		r.acc[i] = 1
	}
	return a, b
}
