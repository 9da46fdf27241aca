// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"

	"github.com/gogpu/canvas"
)

// dashLines splits polylines into open dash pieces following the
// alternating dash/gap pattern, starting offset units into it. Each
// polyline restarts the pattern.
func dashLines(lines []polyline, pattern []float64, offset float64) []polyline {
	var total float64
	for _, d := range pattern {
		total += d
	}
	if total <= 0 {
		return lines
	}

	var out []polyline
	for _, l := range lines {
		pts := l.pts
		if l.closed && len(pts) > 1 {
			pts = append(append([]canvas.Point(nil), pts...), pts[0])
		}
		out = dashPolyline(out, pts, pattern, math.Mod(offset, total))
	}
	return out
}

func dashPolyline(out []polyline, pts []canvas.Point, pattern []float64, offset float64) []polyline {
	idx := 0
	remaining := pattern[0]
	for offset > 0 {
		if offset < remaining {
			remaining -= offset
			break
		}
		offset -= remaining
		idx = (idx + 1) % len(pattern)
		remaining = pattern[idx]
	}

	var cur []canvas.Point
	on := idx%2 == 0
	if on && len(pts) > 0 {
		cur = []canvas.Point{pts[0]}
	}

	for i := 1; i < len(pts); i++ {
		p0, p1 := pts[i-1], pts[i]
		segLen := p0.Distance(p1)
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			pt := p0.Lerp(p1, pos/segLen)
			if on {
				cur = append(cur, pt)
				out = append(out, polyline{pts: cur})
				cur = nil
			} else {
				cur = []canvas.Point{pt}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}
		remaining -= segLen - pos
		if on {
			cur = append(cur, p1)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, polyline{pts: cur})
	}
	return out
}
