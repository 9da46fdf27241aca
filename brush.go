package canvas

// Brush is a resolved paint source, ready for a fill or stroke.
//
// Brushes are sampled in the local coordinate space of the draw call, i.e.
// before the canvas transform is applied.
type Brush interface {
	// ColorAt returns the (non-premultiplied) color at the given local point.
	ColorAt(x, y float64) RGBA
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	Color RGBA
}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// CustomBrush is a brush backed by an arbitrary color function. Color
// filters use it to post-process non-solid brushes per sample.
type CustomBrush struct {
	// Func returns the color at a local point. A nil Func paints transparent.
	Func func(x, y float64) RGBA

	// Name is an optional label used in recordings and logs.
	Name string
}

// ColorAt implements Brush.
func (b CustomBrush) ColorAt(x, y float64) RGBA {
	if b.Func == nil {
		return Transparent
	}
	return b.Func(x, y)
}

// resolveBrush turns a paint into a brush: the shader when present
// (parameterized by the paint alpha), otherwise the flat color, then
// post-processed by the color filter. Resolution happens per draw call.
func resolveBrush(p *Paint) Brush {
	var b Brush
	if p.Shader != nil {
		b = p.Shader.Brush(p.Alpha())
	}
	if b == nil {
		b = SolidBrush{Color: p.Color}
	}
	if p.ColorFilter != nil {
		if filtered := p.ColorFilter.Apply(b); filtered != nil {
			b = filtered
		}
	}
	return b
}
