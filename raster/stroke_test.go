// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"
	"testing"

	"github.com/gogpu/canvas"
)

func signedArea(pts []canvas.Point) float64 {
	var a float64
	for i := range pts {
		a += pts[i].Cross(pts[(i+1)%len(pts)])
	}
	return a / 2
}

func TestStrokerOrientation(t *testing.T) {
	line := polyline{pts: []canvas.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 5}}}
	style := canvas.StrokeStyle{StartCap: canvas.LineCapRound, EndCap: canvas.LineCapSquare, Join: canvas.LineJoinRound}
	polys := newStroker(2, style, 1).stroke([]polyline{line})
	if len(polys) == 0 {
		t.Fatal("no polygons")
	}
	for i, p := range polys {
		if a := signedArea(p.pts); a < 0 {
			t.Errorf("polygon %d has negative area %v", i, a)
		}
	}
}

func TestStrokeHorizontalLine(t *testing.T) {
	line := polyline{pts: []canvas.Point{{X: 2, Y: 5}, {X: 8, Y: 5}}}
	polys := newStroker(2, canvas.StrokeStyle{}, 1).stroke([]polyline{line})
	grid := coverage(polys, canvas.FillRuleNonZero, true, 10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := 0.0
			if x >= 2 && x < 8 && y >= 4 && y < 6 {
				want = 1
			}
			if math.Abs(grid[y][x]-want) > 1e-9 {
				t.Errorf("coverage(%d, %d) = %v, want %v", x, y, grid[y][x], want)
			}
		}
	}
}

func TestStrokeCaps(t *testing.T) {
	line := polyline{pts: []canvas.Point{{X: 4, Y: 5}, {X: 6, Y: 5}}}
	tests := []struct {
		cap    canvas.LineCap
		filled bool // pixel (2, 4) lies one unit beyond the start
	}{
		{canvas.LineCapButt, false},
		{canvas.LineCapSquare, true},
	}
	for _, tt := range tests {
		style := canvas.StrokeStyle{StartCap: tt.cap, EndCap: tt.cap}
		polys := newStroker(4, style, 1).stroke([]polyline{line})
		grid := coverage(polys, canvas.FillRuleNonZero, true, 10, 10)
		if got := grid[4][2] > 0.99; got != tt.filled {
			t.Errorf("cap %v: pixel beyond start filled = %v, want %v", tt.cap, got, tt.filled)
		}
	}
}

func TestStrokeDot(t *testing.T) {
	dot := polyline{pts: []canvas.Point{{X: 5, Y: 5}, {X: 5, Y: 5}}}
	tests := []struct {
		cap  canvas.LineCap
		want int
	}{
		{canvas.LineCapButt, 0},
		{canvas.LineCapRound, 1},
		{canvas.LineCapSquare, 1},
	}
	for _, tt := range tests {
		polys := newStroker(2, canvas.StrokeStyle{StartCap: tt.cap}, 1).stroke([]polyline{dot})
		if len(polys) != tt.want {
			t.Errorf("cap %v: polygons = %d, want %d", tt.cap, len(polys), tt.want)
		}
	}
}

func TestStrokeMiterLimit(t *testing.T) {
	// A very sharp corner exceeds the default limit and falls back to bevel.
	sharp := []canvas.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 1}}
	s := newStroker(2, canvas.StrokeStyle{Join: canvas.LineJoinMiter}, 1)
	s.out = s.out[:0]
	s.join(sharp[0], sharp[1], sharp[2])
	if len(s.out) != 1 || len(s.out[0].pts) != 3 {
		t.Errorf("sharp miter = %+v, want a bevel triangle", s.out)
	}

	// A right angle stays mitered: ratio sqrt(2) < 4.
	right := []canvas.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	s.out = s.out[:0]
	s.join(right[0], right[1], right[2])
	if len(s.out) != 1 || len(s.out[0].pts) != 4 {
		t.Fatalf("right-angle miter = %+v, want a quad", s.out)
	}
	tip := s.out[0].pts
	found := false
	for _, p := range tip {
		if math.Abs(p.X-11) < 1e-9 && math.Abs(p.Y+1) < 1e-9 {
			found = true
		}
	}
	if !found {
		t.Errorf("miter tip (11, -1) not in %v", tip)
	}
}

func TestStrokeClosedPolyline(t *testing.T) {
	sq := rectPolyline(canvas.NewRect(2, 2, 6, 6))
	polys := newStroker(2, canvas.StrokeStyle{Join: canvas.LineJoinMiter}, 1).stroke([]polyline{sq})
	grid := coverage(polys, canvas.FillRuleNonZero, true, 10, 10)

	for _, p := range [][2]int{{1, 1}, {8, 1}, {8, 8}, {1, 8}, {4, 1}} {
		if got := grid[p[1]][p[0]]; math.Abs(got-1) > 1e-9 {
			t.Errorf("outline coverage(%d, %d) = %v, want 1", p[0], p[1], got)
		}
	}
	if got := grid[5][5]; got != 0 {
		t.Errorf("interior coverage = %v, want 0", got)
	}
}

func TestNewStrokerArcSteps(t *testing.T) {
	if s := newStroker(0.1, canvas.StrokeStyle{}, 1); s.arcSteps != 8 {
		t.Errorf("thin stroke arcSteps = %d, want 8", s.arcSteps)
	}
	if s := newStroker(1e6, canvas.StrokeStyle{}, 1); s.arcSteps != 256 {
		t.Errorf("wide stroke arcSteps = %d, want 256", s.arcSteps)
	}
}
