// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"
	"testing"

	"github.com/gogpu/canvas"
)

func TestDashLines(t *testing.T) {
	line := []polyline{{pts: []canvas.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}

	tests := []struct {
		name    string
		pattern []float64
		offset  float64
		want    [][2]float64 // x ranges of the dashes
	}{
		{"even", []float64{2, 2}, 0, [][2]float64{{0, 2}, {4, 6}, {8, 10}}},
		{"offset into dash", []float64{2, 2}, 1, [][2]float64{{0, 1}, {3, 5}, {7, 9}}},
		{"offset into gap", []float64{2, 2}, 3, [][2]float64{{1, 3}, {5, 7}, {9, 10}}},
		{"offset wraps", []float64{2, 2}, 5, [][2]float64{{0, 1}, {3, 5}, {7, 9}}},
		{"uneven", []float64{3, 1}, 0, [][2]float64{{0, 3}, {4, 7}, {8, 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dashLines(line, tt.pattern, tt.offset)
			if len(got) != len(tt.want) {
				t.Fatalf("dashes = %d (%+v), want %d", len(got), got, len(tt.want))
			}
			for i, d := range got {
				start, end := d.pts[0].X, d.pts[len(d.pts)-1].X
				if math.Abs(start-tt.want[i][0]) > 1e-9 || math.Abs(end-tt.want[i][1]) > 1e-9 {
					t.Errorf("dash %d = [%v, %v], want %v", i, start, end, tt.want[i])
				}
				if d.closed {
					t.Errorf("dash %d is closed", i)
				}
			}
		})
	}
}

func TestDashLinesAroundCorner(t *testing.T) {
	sq := []polyline{rectPolyline(canvas.NewRect(0, 0, 4, 4))}
	got := dashLines(sq, []float64{6, 2}, 0)
	if len(got) != 2 {
		t.Fatalf("dashes = %d, want 2", len(got))
	}
	// The first dash turns the corner at (4, 0).
	first := got[0].pts
	if len(first) != 3 || first[1] != canvas.Pt(4, 0) {
		t.Errorf("first dash = %v", first)
	}
}

func TestDashLinesZeroPattern(t *testing.T) {
	line := []polyline{{pts: []canvas.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}
	if got := dashLines(line, []float64{0, 0}, 0); len(got) != 1 {
		t.Errorf("zero pattern returned %d lines, want the input", len(got))
	}
}
