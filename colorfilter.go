package canvas

// ColorFilter post-processes a resolved brush before it is used.
// Filters that cannot handle a brush return it unchanged.
type ColorFilter interface {
	Apply(b Brush) Brush
}

// CompositeModer is implemented by color filters that want bitmaps drawn
// with a specific compositing mode instead of source-over.
type CompositeModer interface {
	CompositeMode() BlendMode
}

// PorterDuffColorFilter composites a constant color (source) onto every
// brush sample (destination) with a Porter-Duff or separable mode.
type PorterDuffColorFilter struct {
	Color RGBA
	Mode  BlendMode
}

// NewSimpleColorFilter returns the filter used for layer color overrides:
// the color replaces the brush color where the brush is opaque.
func NewSimpleColorFilter(c RGBA) PorterDuffColorFilter {
	return PorterDuffColorFilter{Color: c, Mode: BlendSourceAtop}
}

// Apply implements ColorFilter.
func (f PorterDuffColorFilter) Apply(b Brush) Brush {
	if _, ok := compositeColor(f.Color, Transparent, f.Mode); !ok {
		Logger().Debug("canvas: color filter mode not supported, brush left unfiltered", "mode", f.Mode)
		return b
	}
	if sb, ok := b.(SolidBrush); ok {
		c, _ := compositeColor(f.Color, sb.Color, f.Mode)
		return SolidBrush{Color: c}
	}
	return CustomBrush{
		Name: "porter-duff " + f.Mode.String(),
		Func: func(x, y float64) RGBA {
			c, _ := compositeColor(f.Color, b.ColorAt(x, y), f.Mode)
			return c
		},
	}
}

// CompositeMode implements CompositeModer: bitmaps drawn with this filter
// composite with the filter mode.
func (f PorterDuffColorFilter) CompositeMode() BlendMode {
	return f.Mode
}

// compositeColor composites non-premultiplied src onto dst. It reports
// false for modes it does not implement.
func compositeColor(src, dst RGBA, mode BlendMode) (RGBA, bool) {
	s := src.Premultiply()
	d := dst.Premultiply()
	sa, da := s.A, d.A

	var out RGBA
	switch mode {
	case BlendClear:
	case BlendSource:
		out = s
	case BlendDestination:
		out = d
	case BlendSourceOver:
		out = pdMix(s, d, 1, 1-sa)
	case BlendDestinationOver:
		out = pdMix(s, d, 1-da, 1)
	case BlendSourceIn:
		out = pdMix(s, d, da, 0)
	case BlendDestinationIn:
		out = pdMix(s, d, 0, sa)
	case BlendSourceOut:
		out = pdMix(s, d, 1-da, 0)
	case BlendDestinationOut:
		out = pdMix(s, d, 0, 1-sa)
	case BlendSourceAtop:
		out = pdMix(s, d, da, 1-sa)
	case BlendDestinationAtop:
		out = pdMix(s, d, 1-da, sa)
	case BlendXor:
		out = pdMix(s, d, 1-da, 1-sa)
	case BlendMultiply:
		out = pdMix(s, d, 1-da, 1-sa)
		out.R += s.R * d.R
		out.G += s.G * d.G
		out.B += s.B * d.B
		out.A = sa + da - sa*da
	case BlendScreen:
		out = RGBA{
			R: s.R + d.R - s.R*d.R,
			G: s.G + d.G - s.G*d.G,
			B: s.B + d.B - s.B*d.B,
			A: sa + da - sa*da,
		}
	default:
		return dst, false
	}
	return unpremultiply(out), true
}

func pdMix(s, d RGBA, fs, fd float64) RGBA {
	return RGBA{
		R: s.R*fs + d.R*fd,
		G: s.G*fs + d.G*fd,
		B: s.B*fs + d.B*fd,
		A: s.A*fs + d.A*fd,
	}
}

func unpremultiply(c RGBA) RGBA {
	if c.A <= 0 {
		return Transparent
	}
	return RGBA{
		R: clamp01(c.R / c.A),
		G: clamp01(c.G / c.A),
		B: clamp01(c.B / c.A),
		A: clamp01(c.A),
	}
}

// TintColorFilter replaces the color channels of every brush sample with
// Color, scaling the sample alpha by Color's alpha.
type TintColorFilter struct {
	Color RGBA
}

// Apply implements ColorFilter.
func (f TintColorFilter) Apply(b Brush) Brush {
	tint := func(c RGBA) RGBA {
		return RGBA{R: f.Color.R, G: f.Color.G, B: f.Color.B, A: c.A * f.Color.A}
	}
	if sb, ok := b.(SolidBrush); ok {
		return SolidBrush{Color: tint(sb.Color)}
	}
	return CustomBrush{
		Name: "tint",
		Func: func(x, y float64) RGBA { return tint(b.ColorAt(x, y)) },
	}
}
