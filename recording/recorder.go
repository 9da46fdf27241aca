package recording

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/canvas"
)

// ErrClosed is returned when a recorded layer or offscreen handle is
// released twice.
var ErrClosed = errors.New("recording: layer already closed")

// TextMeasurer measures text runs for a Recorder.
// *raster.Session implements it.
type TextMeasurer interface {
	MeasureText(text string, format canvas.TextFormat) (canvas.TextLayout, error)
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithMeasurer makes the recorder answer MeasureText with m instead of
// its fixed-pitch estimate.
func WithMeasurer(m TextMeasurer) Option {
	return func(r *Recorder) {
		r.measurer = m
	}
}

// Recorder is a canvas.Session that captures calls as commands.
// Use FinishRecording to obtain the Recording.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
	measurer      TextMeasurer

	nextLayer LayerRef
	open      []*handle
}

var _ canvas.Session = (*Recorder)(nil)

// NewRecorder creates a Recorder for a surface of the given size.
func NewRecorder(width, height int, opts ...Option) *Recorder {
	r := &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FinishRecording returns a Recording of the commands captured so far.
// The Recorder keeps recording into a fresh command list.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
	r.commands = make([]Command, 0, 256)
	r.resources = NewResourcePool()
	return rec
}

// Commands returns the commands captured so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// OpenLayers returns the number of layers and offscreen targets that were
// opened and not yet released or discarded.
func (r *Recorder) OpenLayers() int {
	return len(r.open)
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

// SetTransform implements canvas.Session.
func (r *Recorder) SetTransform(m canvas.Matrix) {
	r.record(SetTransformCommand{Matrix: m})
}

// SetAntialiasing implements canvas.Session.
func (r *Recorder) SetAntialiasing(enabled bool) {
	r.record(SetAntialiasingCommand{Enabled: enabled})
}

// Flush implements canvas.Session.
func (r *Recorder) Flush() error {
	r.record(FlushCommand{})
	return nil
}

// Clear implements canvas.Session. Open handles are discarded.
func (r *Recorder) Clear(c canvas.RGBA) {
	for _, h := range r.open {
		h.discarded = true
	}
	r.open = r.open[:0]
	r.record(ClearCommand{Color: c})
}

// handle is a recorded layer or offscreen target.
type handle struct {
	r         *Recorder
	ref       LayerRef
	closed    bool
	discarded bool
}

func (r *Recorder) openHandle() *handle {
	h := &handle{r: r, ref: r.nextLayer}
	r.nextLayer++
	r.open = append(r.open, h)
	return h
}

// release removes h from the open list. Handles may be released in any
// order; the recording keeps the order so tests can check it.
func (h *handle) release() error {
	if h.discarded {
		return nil
	}
	if h.closed {
		return fmt.Errorf("%w: layer %d", ErrClosed, h.ref)
	}
	h.closed = true
	for i, o := range h.r.open {
		if o == h {
			h.r.open = append(h.r.open[:i], h.r.open[i+1:]...)
			break
		}
	}
	return nil
}

// Layer is a recorded layer handle.
type Layer struct{ h *handle }

// Ref returns the layer reference used in commands.
func (l *Layer) Ref() LayerRef { return l.h.ref }

// Close implements canvas.Layer.
func (l *Layer) Close() error {
	if err := l.h.release(); err != nil || l.h.discarded {
		return err
	}
	l.h.r.record(CloseLayerCommand{Layer: l.h.ref})
	return nil
}

// CreateLayer implements canvas.Session.
func (r *Recorder) CreateLayer(opacity float64, clip canvas.Rect) (canvas.Layer, error) {
	h := r.openHandle()
	r.record(CreateLayerCommand{Layer: h.ref, Opacity: opacity, Clip: clip})
	return &Layer{h: h}, nil
}

// Offscreen is a recorded offscreen handle.
type Offscreen struct{ h *handle }

// Ref returns the offscreen reference used in commands.
func (o *Offscreen) Ref() LayerRef { return o.h.ref }

// Composite implements canvas.Offscreen.
func (o *Offscreen) Composite(opacity float64, mode canvas.BlendMode) error {
	if err := o.h.release(); err != nil || o.h.discarded {
		return err
	}
	o.h.r.record(CompositeCommand{Offscreen: o.h.ref, Opacity: opacity, Mode: mode})
	return nil
}

// BeginOffscreen implements canvas.Session.
func (r *Recorder) BeginOffscreen(bounds canvas.Rect) (canvas.Offscreen, error) {
	h := r.openHandle()
	r.record(BeginOffscreenCommand{Offscreen: h.ref, Bounds: bounds})
	return &Offscreen{h: h}, nil
}

// Geometry is a recorded geometry handle.
type Geometry struct {
	ref GeometryRef
}

// Ref returns the geometry reference used in commands.
func (g Geometry) Ref() GeometryRef { return g.ref }

// pathBuilder records figures until Build.
type pathBuilder struct {
	r       *Recorder
	figures []Figure
	current *Figure
}

// NewPathBuilder implements canvas.Session.
func (r *Recorder) NewPathBuilder() canvas.PathBuilder {
	return &pathBuilder{r: r}
}

func (b *pathBuilder) BeginFigure(p canvas.Point) {
	b.finish(false)
	b.current = &Figure{Start: p}
}

func (b *pathBuilder) AddLine(p canvas.Point) {
	b.add(canvas.Segment{Op: canvas.SegmentLineTo, Points: [3]canvas.Point{p}})
}

func (b *pathBuilder) AddQuadratic(c, p canvas.Point) {
	b.add(canvas.Segment{Op: canvas.SegmentQuadTo, Points: [3]canvas.Point{c, p}})
}

func (b *pathBuilder) AddCubic(c1, c2, p canvas.Point) {
	b.add(canvas.Segment{Op: canvas.SegmentCubicTo, Points: [3]canvas.Point{c1, c2, p}})
}

func (b *pathBuilder) EndFigure(loop canvas.FigureLoop) {
	b.finish(loop == canvas.FigureClosed)
}

func (b *pathBuilder) Build() canvas.Geometry {
	b.finish(false)
	ref := b.r.resources.addGeometry(b.figures)
	b.figures = nil
	b.r.record(BuildPathCommand{Geometry: ref})
	return Geometry{ref: ref}
}

func (b *pathBuilder) add(s canvas.Segment) {
	if b.current == nil {
		b.current = &Figure{}
	}
	b.current.Segments = append(b.current.Segments, s)
}

func (b *pathBuilder) finish(closed bool) {
	if b.current == nil {
		return
	}
	b.current.Closed = closed
	b.figures = append(b.figures, *b.current)
	b.current = nil
}

// geometryRef resolves a geometry created by this recorder.
func (r *Recorder) geometryRef(g canvas.Geometry) (GeometryRef, bool) {
	rg, ok := g.(Geometry)
	if !ok {
		canvas.Logger().Debug("recording: geometry from another session ignored", "type", fmt.Sprintf("%T", g))
	}
	return rg.ref, ok
}

// CreateGroup implements canvas.Session.
func (r *Recorder) CreateGroup(geometries []canvas.Geometry, rule canvas.FillRule) canvas.Geometry {
	children := make([]GeometryRef, 0, len(geometries))
	for _, g := range geometries {
		if ref, ok := r.geometryRef(g); ok {
			children = append(children, ref)
		}
	}
	ref := r.resources.addGeometry(nil)
	r.record(CreateGroupCommand{Geometry: ref, Children: children, Rule: rule})
	return Geometry{ref: ref}
}

// FillGeometry implements canvas.Session.
func (r *Recorder) FillGeometry(g canvas.Geometry, b canvas.Brush) {
	if ref, ok := r.geometryRef(g); ok {
		r.record(FillGeometryCommand{Geometry: ref, Brush: r.resources.AddBrush(b)})
	}
}

// StrokeGeometry implements canvas.Session.
func (r *Recorder) StrokeGeometry(g canvas.Geometry, b canvas.Brush, width float64, style canvas.StrokeStyle) {
	if ref, ok := r.geometryRef(g); ok {
		r.record(StrokeGeometryCommand{
			Geometry: ref,
			Brush:    r.resources.AddBrush(b),
			Width:    width,
			Style:    cloneStyle(style),
		})
	}
}

// FillRect implements canvas.Session.
func (r *Recorder) FillRect(rect canvas.Rect, b canvas.Brush) {
	r.record(FillRectCommand{Rect: rect, Brush: r.resources.AddBrush(b)})
}

// StrokeRect implements canvas.Session.
func (r *Recorder) StrokeRect(rect canvas.Rect, b canvas.Brush, width float64, style canvas.StrokeStyle) {
	r.record(StrokeRectCommand{Rect: rect, Brush: r.resources.AddBrush(b), Width: width, Style: cloneStyle(style)})
}

// DrawImage implements canvas.Session.
func (r *Recorder) DrawImage(img image.Image, dst, src canvas.Rect, opacity float64, interp canvas.Interpolation, mode canvas.BlendMode) {
	r.record(DrawImageCommand{
		Image:         r.resources.AddImage(img),
		Dst:           dst,
		Src:           src,
		Opacity:       opacity,
		Interpolation: interp,
		Mode:          mode,
	})
}

// MeasureText implements canvas.Session. Without a measurer the layout is
// a fixed-pitch estimate: 0.6 em per character, 0.8 em ascent, 0.2 em
// descent.
func (r *Recorder) MeasureText(text string, format canvas.TextFormat) (canvas.TextLayout, error) {
	r.record(MeasureTextCommand{Text: text, Format: format})
	if r.measurer != nil {
		return r.measurer.MeasureText(text, format)
	}
	return estimateLayout(text, format), nil
}

func estimateLayout(text string, format canvas.TextFormat) canvas.TextLayout {
	size := format.Size
	advance := 0.6 * size * float64(len([]rune(text)))
	ascent, descent := 0.8*size, 0.2*size
	h := ascent + descent

	var top float64
	switch format.VerticalAlignment {
	case canvas.AlignCenter:
		top = -h / 2
	case canvas.AlignBottom:
		top = -h
	}
	return canvas.TextLayout{
		Bounds:  canvas.NewRect(0, top, advance, h),
		Advance: advance,
		Ascent:  ascent,
		Descent: descent,
	}
}

// DrawText implements canvas.Session.
func (r *Recorder) DrawText(text string, x, y float64, b canvas.Brush, format canvas.TextFormat) error {
	r.record(DrawTextCommand{Text: text, X: x, Y: y, Brush: r.resources.AddBrush(b), Format: format})
	return nil
}

func cloneStyle(s canvas.StrokeStyle) canvas.StrokeStyle {
	s.Dashes = append([]float64(nil), s.Dashes...)
	return s
}
