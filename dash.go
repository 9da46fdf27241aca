package canvas

import "math"

// PathEffect adjusts the stroke style derived from a paint.
type PathEffect interface {
	Apply(style *StrokeStyle, p *Paint)
}

// DashPathEffect strokes with alternating dash and gap lengths, in local
// units. An odd number of intervals is logically repeated to make the
// pattern even ([5] becomes [5, 5]).
type DashPathEffect struct {
	Intervals []float64
	Phase     float64
}

// NewDashPathEffect creates a dash effect. It returns nil when no interval
// is positive, which strokes solid.
func NewDashPathEffect(phase float64, intervals ...float64) *DashPathEffect {
	positive := false
	normalized := make([]float64, len(intervals))
	for i, l := range intervals {
		normalized[i] = math.Abs(l)
		if l > 0 {
			positive = true
		}
	}
	if !positive {
		return nil
	}
	return &DashPathEffect{Intervals: normalized, Phase: phase}
}

// Apply implements PathEffect.
func (d *DashPathEffect) Apply(style *StrokeStyle, _ *Paint) {
	if d == nil || d.PatternLength() <= 0 {
		return
	}
	style.Dashes = d.effectiveIntervals()
	style.DashOffset = d.NormalizedPhase()
}

// PatternLength returns the total length of one complete pattern cycle.
func (d *DashPathEffect) PatternLength() float64 {
	var total float64
	for _, l := range d.effectiveIntervals() {
		total += l
	}
	return total
}

// NormalizedPhase returns the phase folded into one pattern cycle.
func (d *DashPathEffect) NormalizedPhase() float64 {
	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}
	offset := math.Mod(d.Phase, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

func (d *DashPathEffect) effectiveIntervals() []float64 {
	if len(d.Intervals)%2 == 0 {
		out := make([]float64, len(d.Intervals))
		copy(out, d.Intervals)
		return out
	}
	out := make([]float64, len(d.Intervals)*2)
	copy(out, d.Intervals)
	copy(out[len(d.Intervals):], d.Intervals)
	return out
}
