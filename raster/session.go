// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/gogpu/canvas"
)

// target is a layer or offscreen buffer on the session stack.
type target struct {
	img *image.RGBA

	// clip masks the buffer when it is composited back.
	clip canvas.Rect

	opacity   float64
	offscreen bool
	depth     int

	closed    bool
	discarded bool
}

// Session is a software canvas.Session. It is not safe for concurrent
// use.
type Session struct {
	width, height int
	base          *image.RGBA

	stack []*target
	pool  []*image.RGBA

	transform canvas.Matrix
	antialias bool

	tolerance float64
	fonts     *FontSet
	rast      Rasterizer
}

var _ canvas.Session = (*Session)(nil)

// New creates a session drawing into a new transparent width x height
// image.
func New(width, height int, opts ...Option) *Session {
	return NewWithImage(image.NewRGBA(image.Rect(0, 0, width, height)), opts...)
}

// NewWithImage creates a session drawing into img. The image bounds must
// start at the origin.
func NewWithImage(img *image.RGBA, opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.fonts == nil {
		o.fonts = DefaultFonts()
	}
	b := img.Bounds()
	return &Session{
		width:     b.Dx(),
		height:    b.Dy(),
		base:      img,
		transform: canvas.Identity(),
		antialias: true,
		tolerance: o.tolerance,
		fonts:     o.fonts,
	}
}

// Image returns the base image. Content of open layers is not included
// until they are closed.
func (s *Session) Image() *image.RGBA { return s.base }

// Width returns the surface width.
func (s *Session) Width() int { return s.width }

// Height returns the surface height.
func (s *Session) Height() int { return s.height }

// Depth returns the number of open layers and offscreen targets.
func (s *Session) Depth() int { return len(s.stack) }

// EncodePNG writes the base image as PNG.
func (s *Session) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.base)
}

// SavePNG writes the base image to a PNG file.
func (s *Session) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.base); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// SetTransform implements canvas.Session.
func (s *Session) SetTransform(m canvas.Matrix) { s.transform = m }

// SetAntialiasing implements canvas.Session.
func (s *Session) SetAntialiasing(enabled bool) { s.antialias = enabled }

// Flush implements canvas.Session. Drawing is immediate, so there is
// nothing to submit.
func (s *Session) Flush() error { return nil }

// Clear implements canvas.Session. Open layers and offscreen targets are
// discarded; closing their handles afterwards is a no-op.
func (s *Session) Clear(c canvas.RGBA) {
	for _, t := range s.stack {
		t.discarded = true
		s.release(t.img)
		t.img = nil
	}
	s.stack = s.stack[:0]

	p := premul(c)
	px := [4]uint8{to8(p.r), to8(p.g), to8(p.b), to8(p.a)}
	for i := 0; i+4 <= len(s.base.Pix); i += 4 {
		copy(s.base.Pix[i:i+4], px[:])
	}
}

// current returns the image draws go to.
func (s *Session) current() *image.RGBA {
	if n := len(s.stack); n > 0 {
		return s.stack[n-1].img
	}
	return s.base
}

func (s *Session) acquire() *image.RGBA {
	if n := len(s.pool); n > 0 {
		img := s.pool[n-1]
		s.pool = s.pool[:n-1]
		clear(img.Pix)
		return img
	}
	return image.NewRGBA(image.Rect(0, 0, s.width, s.height))
}

func (s *Session) release(img *image.RGBA) {
	if img != nil {
		s.pool = append(s.pool, img)
	}
}

func (s *Session) push(clip canvas.Rect, opacity float64, offscreen bool) *target {
	t := &target{
		img:       s.acquire(),
		clip:      clip,
		opacity:   clampUnit(opacity),
		offscreen: offscreen,
		depth:     len(s.stack),
	}
	s.stack = append(s.stack, t)
	return t
}

// pop composites t onto the target below it and releases t.
func (s *Session) pop(t *target, opacity float64, mode canvas.BlendMode) error {
	if t.discarded {
		return nil
	}
	if t.closed {
		return ErrReleased
	}
	if top := len(s.stack) - 1; top != t.depth {
		return &LayerOrderError{Depth: t.depth, Top: top}
	}

	fn, ok := blendFuncFor(mode)
	if !ok {
		canvas.Logger().Debug("raster: blend mode not supported, using source-over", "mode", mode)
	}

	s.stack = s.stack[:len(s.stack)-1]
	compositeImage(s.current(), t.img, maskRect(t.clip), t.clip, opacity, fn)
	s.release(t.img)
	t.img = nil
	t.closed = true
	return nil
}

// Layer is a compositing layer returned by CreateLayer.
type Layer struct {
	s *Session
	t *target
}

// Close composites the layer onto the target below it with the layer
// opacity, masked by its clip. It returns a *LayerOrderError when layers
// opened after this one are still open.
func (l *Layer) Close() error {
	return l.s.pop(l.t, l.t.opacity, canvas.BlendSourceOver)
}

// CreateLayer implements canvas.Session.
func (s *Session) CreateLayer(opacity float64, clip canvas.Rect) (canvas.Layer, error) {
	return &Layer{s: s, t: s.push(clip, opacity, false)}, nil
}

// Offscreen is an offscreen target returned by BeginOffscreen.
type Offscreen struct {
	s *Session
	t *target
}

// Composite implements canvas.Offscreen.
func (o *Offscreen) Composite(opacity float64, mode canvas.BlendMode) error {
	return o.s.pop(o.t, clampUnit(opacity), mode)
}

// BeginOffscreen implements canvas.Session. Content outside bounds is
// dropped when the target is composited.
func (s *Session) BeginOffscreen(bounds canvas.Rect) (canvas.Offscreen, error) {
	return &Offscreen{s: s, t: s.push(bounds, 1, true)}, nil
}

// NewPathBuilder implements canvas.Session.
func (s *Session) NewPathBuilder() canvas.PathBuilder {
	return newBuilder()
}

// CreateGroup implements canvas.Session.
func (s *Session) CreateGroup(geometries []canvas.Geometry, rule canvas.FillRule) canvas.Geometry {
	return &Group{children: append([]canvas.Geometry(nil), geometries...), rule: rule}
}

// FillGeometry implements canvas.Session.
func (s *Session) FillGeometry(g canvas.Geometry, b canvas.Brush) {
	lines, rule := flattenGeometry(g, s.localTolerance())
	s.fillLocal(lines, rule, b)
}

// StrokeGeometry implements canvas.Session.
func (s *Session) StrokeGeometry(g canvas.Geometry, b canvas.Brush, width float64, style canvas.StrokeStyle) {
	lines, _ := flattenGeometry(g, s.localTolerance())
	s.strokeLocal(lines, b, width, style)
}

// FillRect implements canvas.Session.
func (s *Session) FillRect(r canvas.Rect, b canvas.Brush) {
	s.fillLocal([]polyline{rectPolyline(r)}, canvas.FillRuleNonZero, b)
}

// StrokeRect implements canvas.Session.
func (s *Session) StrokeRect(r canvas.Rect, b canvas.Brush, width float64, style canvas.StrokeStyle) {
	s.strokeLocal([]polyline{rectPolyline(r)}, b, width, style)
}

// localTolerance converts the device tolerance to local units.
func (s *Session) localTolerance() float64 {
	scale := s.transform.ScaleFactor()
	if scale <= 0 || math.IsNaN(scale) {
		return s.tolerance
	}
	return s.tolerance / scale
}

func (s *Session) strokeLocal(lines []polyline, b canvas.Brush, width float64, style canvas.StrokeStyle) {
	scale := s.transform.ScaleFactor()
	if scale <= 0 {
		return
	}
	if width <= 0 {
		width = 1 / scale
	}
	if len(style.Dashes) > 0 {
		lines = dashLines(lines, style.Dashes, style.DashOffset)
	}
	polys := newStroker(width, style, scale).stroke(lines)
	s.fillLocal(polys, canvas.FillRuleNonZero, b)
}

// fillLocal transforms local polygons to device space and paints them
// with b, which is sampled in local coordinates.
func (s *Session) fillLocal(lines []polyline, rule canvas.FillRule, b canvas.Brush) {
	inv, ok := s.transform.Invert()
	if !ok {
		canvas.Logger().Debug("raster: draw skipped, transform is not invertible")
		return
	}
	dev := transformPolylines(lines, s.transform)
	dst := s.current()

	solid, isSolid := b.(canvas.SolidBrush)
	src := premul(solid.Color)
	s.rast.fill(dev, rule, s.antialias, dst.Bounds(), func(x, y int, cov float64) {
		p := src
		if !isSolid {
			lp := inv.TransformPoint(canvas.Pt(float64(x)+0.5, float64(y)+0.5))
			p = premul(b.ColorAt(lp.X, lp.Y))
		}
		if p.a <= 0 {
			return
		}
		storePixel(dst, x, y, sourceOver(p.scale(cov), loadPixel(dst, x, y)))
	})
}
