package canvas

// FontStyle is the slant of a typeface.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

// FontWeight is the CSS-style weight of a typeface (100..900).
type FontWeight int

const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

// Typeface names a font family with style and weight.
// An empty family selects the backend's default family.
type Typeface struct {
	Family string
	Style  FontStyle
	Weight FontWeight
}

// VerticalAlignment positions a text layout relative to its origin.
type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignCenter
	AlignBottom
)

// TextFormat is what a session needs to lay out and draw a text run.
type TextFormat struct {
	Family            string
	Style             FontStyle
	Weight            FontWeight
	Size              float64
	VerticalAlignment VerticalAlignment
}

// TextLayout is the measured layout of a text run.
type TextLayout struct {
	// Bounds is the layout box in local coordinates relative to the
	// draw origin, after vertical alignment.
	Bounds Rect

	// Advance is the horizontal pen advance.
	Advance float64

	// Ascent and Descent are positive distances from the baseline.
	Ascent, Descent float64
}

// textFormat builds the format for a paint: the typeface plus size,
// centered vertically on the origin.
func textFormat(p *Paint) TextFormat {
	weight := p.Typeface.Weight
	if weight == 0 {
		weight = FontWeightNormal
	}
	return TextFormat{
		Family:            p.Typeface.Family,
		Style:             p.Typeface.Style,
		Weight:            weight,
		Size:              p.TextSize,
		VerticalAlignment: AlignCenter,
	}
}
