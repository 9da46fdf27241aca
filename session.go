package canvas

import (
	"image"
	"io"
)

// Session is a live drawing session bound to one render pass. The canvas
// forwards every draw call to it; the session has no notion of clip or
// layer nesting beyond the layer handles it returns.
//
// # Coordinates
//
// Geometry, rectangles, images and text are given in local coordinates and
// mapped through the transform last passed to SetTransform. Layer clips and
// offscreen bounds are given in device coordinates.
//
// # Implementation Contract
//
// Each session must:
//  1. Release layers and offscreens strictly in reverse order of creation
//  2. Discard every open layer and offscreen on Clear
//  3. Treat unsupported blend modes as source-over
type Session interface {
	// SetTransform sets the transform for subsequent draw calls.
	SetTransform(m Matrix)

	// SetAntialiasing switches anti-aliasing for the whole session.
	// Callers flush before toggling.
	SetAntialiasing(enabled bool)

	// Flush submits pending drawing commands.
	Flush() error

	// Clear fills the whole surface with c, discarding open layers.
	Clear(c RGBA)

	// CreateLayer opens an isolated compositing layer restricted to clip
	// and composited with the given opacity (0..1) when closed.
	CreateLayer(opacity float64, clip Rect) (Layer, error)

	// BeginOffscreen redirects subsequent drawing into an offscreen target
	// covering bounds until the returned Offscreen is composited.
	BeginOffscreen(bounds Rect) (Offscreen, error)

	// NewPathBuilder starts a new geometry.
	NewPathBuilder() PathBuilder

	// CreateGroup combines geometries under a fill rule.
	CreateGroup(geometries []Geometry, rule FillRule) Geometry

	// FillGeometry fills g with b.
	FillGeometry(g Geometry, b Brush)

	// StrokeGeometry strokes g with b.
	StrokeGeometry(g Geometry, b Brush, width float64, style StrokeStyle)

	// FillRect fills r with b.
	FillRect(r Rect, b Brush)

	// StrokeRect strokes the outline of r with b.
	StrokeRect(r Rect, b Brush, width float64, style StrokeStyle)

	// DrawImage draws the src region of img into dst.
	DrawImage(img image.Image, dst, src Rect, opacity float64, interp Interpolation, mode BlendMode)

	// MeasureText lays out a single-line run without drawing it.
	MeasureText(text string, format TextFormat) (TextLayout, error)

	// DrawText draws a single-line run with its layout origin at (x, y).
	DrawText(text string, x, y float64, b Brush, format TextFormat) error
}

// Layer is a compositing layer opened by a Session. Close composites it
// back and releases it.
type Layer interface {
	io.Closer
}

// Offscreen is an offscreen target opened by Session.BeginOffscreen.
type Offscreen interface {
	// Composite draws the offscreen content back onto the previous target
	// with opacity (0..1) and mode, then releases the target.
	Composite(opacity float64, mode BlendMode) error
}

// Geometry is an opaque, session-specific geometry handle.
type Geometry interface{}

// FigureLoop tells EndFigure whether to close the figure.
type FigureLoop int

const (
	FigureOpen FigureLoop = iota
	FigureClosed
)

// PathBuilder builds one Geometry from figures.
type PathBuilder interface {
	BeginFigure(p Point)
	AddLine(p Point)
	AddQuadratic(c, p Point)
	AddCubic(c1, c2, p Point)
	EndFigure(loop FigureLoop)
	Build() Geometry
}

// StrokeStyle is the backend stroke description.
type StrokeStyle struct {
	StartCap   LineCap
	EndCap     LineCap
	DashCap    LineCap
	Join       LineJoin
	MiterLimit float64

	// Dashes alternates dash and gap lengths in local units.
	// Empty strokes solid.
	Dashes     []float64
	DashOffset float64
}

// Interpolation selects bitmap sampling.
type Interpolation int

const (
	InterpolationNearest Interpolation = iota
	InterpolationLinear
)
