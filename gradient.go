package canvas

import (
	"math"
	"sort"
)

// Shader is an optional paint source that overrides the paint's flat color.
// Brush resolves the shader for one draw call; alpha is the paint alpha
// (0..255) applied on top of the shader's own colors.
type Shader interface {
	Brush(alpha uint8) Brush
}

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA
}

// LinearGradient is a Shader interpolating colors along the line from
// Start to End.
type LinearGradient struct {
	Start, End Point
	Stops      []ColorStop
	Extend     ExtendMode
}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1).
// Colors are spread evenly when positions is nil.
func NewLinearGradient(x0, y0, x1, y1 float64, colors []RGBA, positions []float64) *LinearGradient {
	return &LinearGradient{
		Start: Pt(x0, y0),
		End:   Pt(x1, y1),
		Stops: makeStops(colors, positions),
	}
}

// Brush implements Shader.
func (g *LinearGradient) Brush(alpha uint8) Brush {
	return &LinearGradientBrush{
		Start:  g.Start,
		End:    g.End,
		Stops:  scaleStops(g.Stops, alpha),
		Extend: g.Extend,
	}
}

// RadialGradient is a Shader interpolating colors outward from Center.
type RadialGradient struct {
	Center Point
	Radius float64
	Stops  []ColorStop
	Extend ExtendMode
}

// NewRadialGradient creates a radial gradient centered at (cx, cy).
func NewRadialGradient(cx, cy, radius float64, colors []RGBA, positions []float64) *RadialGradient {
	return &RadialGradient{
		Center: Pt(cx, cy),
		Radius: radius,
		Stops:  makeStops(colors, positions),
	}
}

// Brush implements Shader.
func (g *RadialGradient) Brush(alpha uint8) Brush {
	return &RadialGradientBrush{
		Center: g.Center,
		Radius: g.Radius,
		Stops:  scaleStops(g.Stops, alpha),
		Extend: g.Extend,
	}
}

// LinearGradientBrush is a resolved linear gradient. Stops are sorted.
type LinearGradientBrush struct {
	Start, End Point
	Stops      []ColorStop
	Extend     ExtendMode
}

// ColorAt implements Brush.
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	// Project point onto the gradient line.
	t := ((x-g.Start.X)*dx + (y-g.Start.Y)*dy) / lengthSq
	return colorAtOffset(g.Stops, t, g.Extend)
}

// RadialGradientBrush is a resolved radial gradient. Stops are sorted.
type RadialGradientBrush struct {
	Center Point
	Radius float64
	Stops  []ColorStop
	Extend ExtendMode
}

// ColorAt implements Brush.
func (g *RadialGradientBrush) ColorAt(x, y float64) RGBA {
	if g.Radius <= 0 {
		return lastStopColor(g.Stops)
	}
	t := math.Hypot(x-g.Center.X, y-g.Center.Y) / g.Radius
	return colorAtOffset(g.Stops, t, g.Extend)
}

func makeStops(colors []RGBA, positions []float64) []ColorStop {
	stops := make([]ColorStop, len(colors))
	for i, c := range colors {
		var offset float64
		switch {
		case i < len(positions):
			offset = positions[i]
		case len(colors) > 1:
			offset = float64(i) / float64(len(colors)-1)
		}
		stops[i] = ColorStop{Offset: offset, Color: c}
	}
	return sortStops(stops)
}

// scaleStops returns sorted stops with alpha multiplied by a/255.
func scaleStops(stops []ColorStop, a uint8) []ColorStop {
	f := float64(a) / 255
	out := sortStops(stops)
	for i := range out {
		out[i].Color = out[i].Color.MulAlpha(f)
	}
	return out
}

// sortStops returns a sorted copy of the stops.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp01(t)
	}
	return t
}

// colorAtOffset interpolates sorted stops at t.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	t = applyExtendMode(t, mode)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	return s1.Color.Lerp(s2.Color, (t-s1.Offset)/(s2.Offset-s1.Offset))
}

func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return stops[0].Color
}

func lastStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return stops[len(stops)-1].Color
}
