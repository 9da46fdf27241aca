package canvas

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns "nonzero" or "evenodd".
func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// PaintStyle selects whether geometry is filled or stroked.
type PaintStyle int

const (
	// StyleFill fills the interior of the geometry.
	StyleFill PaintStyle = iota
	// StyleStroke strokes the outline of the geometry.
	StyleStroke
)

// PaintFlags is a bit set of paint options.
type PaintFlags uint32

const (
	// AntiAliasFlag enables anti-aliasing for the draw call.
	AntiAliasFlag PaintFlags = 1 << iota
	// FilterBitmapFlag requests bilinear sampling for bitmaps.
	FilterBitmapFlag
	// DitherFlag is accepted for compatibility and ignored.
	DitherFlag
)

// Paint describes how a draw call is styled.
//
// Alpha lives in Color.A and is also exposed as a 0..255 value through
// Alpha and SetAlpha; a Shader receives that alpha when it is resolved.
type Paint struct {
	Style       PaintStyle
	StrokeWidth float64
	StrokeCap   LineCap
	StrokeJoin  LineJoin
	StrokeMiter float64

	// PathEffect adjusts the stroke style (for example dashing).
	PathEffect PathEffect

	Color RGBA

	// Shader, when set, overrides Color.
	Shader Shader

	// ColorFilter post-processes the resolved brush.
	ColorFilter ColorFilter

	// BlendMode is used when a clip-to-layer save is composited back.
	BlendMode BlendMode

	Flags PaintFlags

	Typeface Typeface
	TextSize float64
}

// NewPaint creates a Paint with default values: opaque black fill,
// 1 unit stroke width, miter limit 4, 12 unit text.
func NewPaint(flags ...PaintFlags) *Paint {
	p := &Paint{
		StrokeWidth: 1,
		StrokeMiter: 4,
		Color:       Black,
		TextSize:    12,
	}
	for _, f := range flags {
		p.Flags |= f
	}
	return p
}

// Alpha returns the paint alpha in the range 0..255.
func (p *Paint) Alpha() uint8 {
	return to8(p.Color.A)
}

// SetAlpha replaces the paint alpha, keeping the color channels.
func (p *Paint) SetAlpha(a uint8) {
	p.Color.A = float64(a) / 255
}

// Antialias reports whether AntiAliasFlag is set.
func (p *Paint) Antialias() bool {
	return p.Flags&AntiAliasFlag != 0
}

// Brush resolves the paint into the brush used for a single draw call.
func (p *Paint) Brush() Brush {
	return resolveBrush(p)
}

// StrokeStyle builds the backend stroke style: caps and join from the
// paint, then adjusted by the path effect.
func (p *Paint) StrokeStyle() StrokeStyle {
	style := StrokeStyle{
		StartCap:   p.StrokeCap,
		EndCap:     p.StrokeCap,
		DashCap:    p.StrokeCap,
		Join:       p.StrokeJoin,
		MiterLimit: p.StrokeMiter,
	}
	if p.PathEffect != nil {
		p.PathEffect.Apply(&style, p)
	}
	return style
}

// Clone returns a shallow copy of the paint. Shader, filter and path
// effect values are shared.
func (p *Paint) Clone() *Paint {
	c := *p
	return &c
}
