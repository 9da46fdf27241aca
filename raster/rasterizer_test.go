// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/canvas"
)

// coverage rasterizes lines into a w x h grid.
func coverage(lines []polyline, rule canvas.FillRule, aa bool, w, h int) [][]float64 {
	grid := make([][]float64, h)
	for i := range grid {
		grid[i] = make([]float64, w)
	}
	var r Rasterizer
	r.fill(lines, rule, aa, image.Rect(0, 0, w, h), func(x, y int, cov float64) {
		grid[y][x] += cov
	})
	return grid
}

func TestRasterizerAlignedRect(t *testing.T) {
	for _, aa := range []bool{true, false} {
		grid := coverage([]polyline{rectPolyline(canvas.NewRect(2, 2, 4, 3))}, canvas.FillRuleNonZero, aa, 10, 10)
		for y := range grid {
			for x, cov := range grid[y] {
				want := 0.0
				if x >= 2 && x < 6 && y >= 2 && y < 5 {
					want = 1
				}
				if math.Abs(cov-want) > 1e-9 {
					t.Errorf("aa=%v: coverage(%d, %d) = %v, want %v", aa, x, y, cov, want)
				}
			}
		}
	}
}

func TestRasterizerFractionalCoverage(t *testing.T) {
	grid := coverage([]polyline{rectPolyline(canvas.NewRect(1.5, 0, 2, 4))}, canvas.FillRuleNonZero, true, 5, 4)
	want := []float64{0, 0.5, 1, 0.5, 0}
	for x, w := range want {
		if got := grid[1][x]; math.Abs(got-w) > 1e-9 {
			t.Errorf("coverage(%d, 1) = %v, want %v", x, got, w)
		}
	}
}

func TestRasterizerWithoutAntialiasingSamplesCenters(t *testing.T) {
	grid := coverage([]polyline{rectPolyline(canvas.NewRect(1.4, 0, 2, 2))}, canvas.FillRuleNonZero, false, 5, 2)
	want := []float64{0, 1, 1, 0, 0}
	for x, w := range want {
		if got := grid[0][x]; got != w {
			t.Errorf("coverage(%d, 0) = %v, want %v", x, got, w)
		}
	}
}

func TestRasterizerFillRules(t *testing.T) {
	lines := []polyline{
		rectPolyline(canvas.NewRect(0, 0, 10, 10)),
		rectPolyline(canvas.NewRect(3, 3, 4, 4)),
	}
	reversed := rectPolyline(canvas.NewRect(3, 3, 4, 4))
	for i, j := 0, len(reversed.pts)-1; i < j; i, j = i+1, j-1 {
		reversed.pts[i], reversed.pts[j] = reversed.pts[j], reversed.pts[i]
	}

	tests := []struct {
		name  string
		lines []polyline
		rule  canvas.FillRule
		hole  bool
	}{
		{"nonzero same direction", lines, canvas.FillRuleNonZero, false},
		{"evenodd same direction", lines, canvas.FillRuleEvenOdd, true},
		{"nonzero opposite direction", []polyline{lines[0], reversed}, canvas.FillRuleNonZero, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := coverage(tt.lines, tt.rule, true, 10, 10)
			if grid[1][1] != 1 {
				t.Errorf("ring coverage = %v, want 1", grid[1][1])
			}
			if got := grid[5][5] == 0; got != tt.hole {
				t.Errorf("hole = %v, want %v (coverage %v)", got, tt.hole, grid[5][5])
			}
		})
	}
}

func TestRasterizerClip(t *testing.T) {
	var r Rasterizer
	hits := 0
	clip := image.Rect(2, 2, 4, 4)
	r.fill([]polyline{rectPolyline(canvas.NewRect(0, 0, 10, 10))}, canvas.FillRuleNonZero, true, clip,
		func(x, y int, _ float64) {
			if !(image.Point{X: x, Y: y}).In(clip) {
				t.Errorf("span outside clip at (%d, %d)", x, y)
			}
			hits++
		})
	if hits != 4 {
		t.Errorf("hits = %d, want 4", hits)
	}
}

func TestRasterizerTriangleArea(t *testing.T) {
	tri := polyline{pts: []canvas.Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: 20}}, closed: true}
	grid := coverage([]polyline{tri}, canvas.FillRuleNonZero, true, 20, 20)
	var total float64
	for _, row := range grid {
		for _, c := range row {
			total += c
		}
	}
	if math.Abs(total-200) > 2 {
		t.Errorf("total coverage = %v, want about 200", total)
	}
}

func TestSubdivisions(t *testing.T) {
	tests := []struct {
		dd, tol float64
		want    int
	}{
		{0, 0.25, 1},
		{1, 0.75, 1},
		{12, 0.25, 6},
		{1e9, 0.25, maxSubdivisions},
	}
	for _, tt := range tests {
		if got := subdivisions(tt.dd, tt.tol); got != tt.want {
			t.Errorf("subdivisions(%v, %v) = %d, want %d", tt.dd, tt.tol, got, tt.want)
		}
	}
}

func TestFlattenGeometry(t *testing.T) {
	b := newBuilder()
	b.BeginFigure(canvas.Pt(0, 0))
	b.AddQuadratic(canvas.Pt(10, 20), canvas.Pt(20, 0))
	b.EndFigure(canvas.FigureOpen)
	b.BeginFigure(canvas.Pt(0, 0))
	b.AddCubic(canvas.Pt(0, 10), canvas.Pt(10, 10), canvas.Pt(10, 0))
	b.EndFigure(canvas.FigureClosed)
	path := b.Build()

	lines, rule := flattenGeometry(path, 0.25)
	if rule != canvas.FillRuleNonZero {
		t.Errorf("path rule = %v, want nonzero", rule)
	}
	if len(lines) != 2 {
		t.Fatalf("polylines = %d, want 2", len(lines))
	}
	if lines[0].closed || !lines[1].closed {
		t.Errorf("closed flags = %v, %v", lines[0].closed, lines[1].closed)
	}
	for i, l := range lines {
		if len(l.pts) < 4 {
			t.Errorf("polyline %d has %d points, want a curve approximation", i, len(l.pts))
		}
	}
	if end := lines[0].pts[len(lines[0].pts)-1]; end != canvas.Pt(20, 0) {
		t.Errorf("quad end = %v, want (20, 0)", end)
	}

	s := New(1, 1)
	group := s.CreateGroup([]canvas.Geometry{path, path}, canvas.FillRuleEvenOdd)
	lines, rule = flattenGeometry(group, 0.25)
	if rule != canvas.FillRuleEvenOdd || len(lines) != 4 {
		t.Errorf("group flatten = %d lines, rule %v", len(lines), rule)
	}
}
