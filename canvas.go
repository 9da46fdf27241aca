package canvas

import (
	"errors"
	"fmt"
	"log/slog"
)

// Canvas is a stateful drawing surface. It owns the current transform,
// the live clip rectangle and a stack of save frames, and forwards every
// draw call to the Session bound for the current render pass.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width, height int

	session Session
	logger  *slog.Logger

	matrix Matrix
	clip   Rect

	// rootClip is the clip enforced by the session's root layer.
	rootClip Rect

	frames []frame

	// aborted is set by a stack-discipline violation and cleared by
	// CreateSession.
	aborted bool

	antialias    bool
	antialiasSet bool
}

// New creates a canvas of the given size with an identity transform and
// a clip covering the whole surface.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		width:   width,
		height:  height,
		logger:  o.logger,
		matrix:  Identity(),
		clip:    NewRect(0, 0, float64(width), float64(height)),
		session: o.session,
	}
	c.rootClip = c.clip
	return c, nil
}

func (c *Canvas) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// CreateSession binds s for a new render pass and opens a root layer
// restricted to the live clip. The caller closes the returned layer when
// the pass ends. Frames left open by a previous pass are abandoned and
// the transform and clip they saved are put back.
func (c *Canvas) CreateSession(s Session) (Layer, error) {
	if s == nil {
		return nil, ErrNoSession
	}
	if n := len(c.frames); n > 0 {
		c.log().Warn("canvas: abandoning open save frames", "count", n)
		c.abandonFrames()
	}
	c.session = s
	c.aborted = false
	c.antialiasSet = false

	layer, err := s.CreateLayer(1, c.clip)
	if err != nil {
		return nil, fmt.Errorf("canvas: root layer: %w", err)
	}
	c.rootClip = c.clip
	return layer, nil
}

// Session returns the bound session, or nil.
func (c *Canvas) Session() Session { return c.session }

// check reports whether op may touch the session.
func (c *Canvas) check(op string) error {
	if c.aborted {
		return fmt.Errorf("canvas: %s: %w", op, ErrPassAborted)
	}
	if c.session == nil {
		return fmt.Errorf("canvas: %s: %w", op, ErrNoSession)
	}
	return nil
}

// Matrix returns the current transform.
func (c *Canvas) Matrix() Matrix { return c.matrix }

// Concat pre-concatenates m onto the current transform: m applies to
// coordinates before the existing transform does.
func (c *Canvas) Concat(m Matrix) {
	c.matrix = c.matrix.Multiply(m)
}

// Translate pre-concatenates a translation.
func (c *Canvas) Translate(dx, dy float64) {
	c.matrix = c.matrix.PreTranslate(dx, dy)
}

// SetMatrix replaces the current transform.
func (c *Canvas) SetMatrix(m Matrix) {
	c.matrix = m
}

// ClipRect intersects the live clip with r and reports whether the result
// is non-empty. r is in device coordinates; the transform is not applied.
func (c *Canvas) ClipRect(r Rect) bool {
	c.clip = c.clip.Intersect(r)
	return !c.clip.IsEmpty()
}

// ClipReplaceRect replaces the live clip with r, in device coordinates.
func (c *Canvas) ClipReplaceRect(r Rect) {
	c.clip = r
}

// ClipBounds returns the live clip.
func (c *Canvas) ClipBounds() Rect {
	return c.clip
}

// enforcedClip is the clip the innermost open layer restricts drawing to.
func (c *Canvas) enforcedClip() Rect {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if cs := c.frames[i].clip; cs != nil {
			return cs.enforced
		}
	}
	return c.rootClip
}

// SaveCount returns the number of open save frames.
func (c *Canvas) SaveCount() int {
	return len(c.frames)
}

// Save saves the transform and the clip, opening a fully opaque layer
// that enforces the current clip.
func (c *Canvas) Save() error {
	return c.save("Save", Rect{}, nil, SaveMatrix|SaveClip)
}

// SaveLayer saves the state selected by flags. With SaveClip a layer is
// opened at the paint alpha, so everything drawn until the matching
// Restore is composited as one group. With SaveClipToLayer drawing is
// redirected to an offscreen target covering bounds (mapped through the
// current transform) and composited back on Restore using the paint alpha
// and blend mode. A nil paint is fully opaque source-over.
func (c *Canvas) SaveLayer(bounds Rect, p *Paint, flags SaveFlags) error {
	return c.save("SaveLayer", bounds, p, flags)
}

func (c *Canvas) save(op string, bounds Rect, p *Paint, flags SaveFlags) error {
	if c.aborted {
		return fmt.Errorf("canvas: %s: %w", op, ErrPassAborted)
	}
	if flags&(SaveClip|SaveClipToLayer) != 0 && c.session == nil {
		return fmt.Errorf("canvas: %s: %w", op, ErrNoSession)
	}

	alpha := uint8(255)
	mode := BlendSourceOver
	var flagsPaint PaintFlags
	if p != nil {
		alpha = p.Alpha()
		mode = p.BlendMode
		flagsPaint = p.Flags
	}

	f := frame{flags: flags}
	if flags&SaveMatrix != 0 {
		f.matrix = c.matrix
	}

	if flags&SaveClip != 0 {
		layer, err := c.session.CreateLayer(float64(alpha)/255, c.clip)
		if err != nil {
			return fmt.Errorf("canvas: %s: create layer: %w", op, err)
		}
		f.clip = &clipSave{clip: c.clip, layer: layer, enforced: c.clip}
	}

	if flags&SaveClipToLayer != 0 {
		if err := c.applyAntialias(flagsPaint); err != nil {
			return errors.Join(fmt.Errorf("canvas: %s: %w", op, err), c.releaseClip(f.clip))
		}
		target, err := c.session.BeginOffscreen(c.matrix.TransformRect(bounds))
		if err != nil {
			return errors.Join(fmt.Errorf("canvas: %s: begin offscreen: %w", op, err), c.releaseClip(f.clip))
		}
		f.offscreen = &offscreenSave{target: target, opacity: float64(alpha) / 255, mode: blendOrDefault(mode)}
	}

	c.frames = append(c.frames, f)
	return nil
}

func (c *Canvas) releaseClip(cs *clipSave) error {
	if cs == nil {
		return nil
	}
	return cs.layer.Close()
}

// Restore pops the most recent save frame: the offscreen target is
// composited back first, then the clip layer is closed and the clip
// restored, then the transform is restored.
//
// Restore without an open frame returns ErrUnbalancedRestore and aborts
// the render pass.
func (c *Canvas) Restore() error {
	if c.aborted {
		return fmt.Errorf("canvas: Restore: %w", ErrPassAborted)
	}
	n := len(c.frames)
	if n == 0 {
		c.log().Error("canvas: restore without matching save, aborting render pass")
		c.aborted = true
		return fmt.Errorf("canvas: Restore: %w", ErrUnbalancedRestore)
	}

	f := c.frames[n-1]
	c.frames[n-1] = frame{}
	c.frames = c.frames[:n-1]

	var errs []error
	if f.offscreen != nil {
		if err := f.offscreen.target.Composite(f.offscreen.opacity, f.offscreen.mode); err != nil {
			errs = append(errs, fmt.Errorf("composite offscreen: %w", err))
		}
	}
	if f.clip != nil {
		c.clip = f.clip.clip
		if err := f.clip.layer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close layer: %w", err))
		}
	}
	if f.flags&SaveMatrix != 0 {
		c.matrix = f.matrix
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("canvas: Restore: %w", err)
	}
	return nil
}

// RestoreToCount restores frames until SaveCount equals count.
// All frames are restored even if some fail; the errors are joined.
func (c *Canvas) RestoreToCount(count int) error {
	if count < 0 {
		count = 0
	}
	var errs []error
	for len(c.frames) > count {
		if err := c.Restore(); err != nil {
			errs = append(errs, err)
			if c.aborted {
				break
			}
		}
	}
	return errors.Join(errs...)
}

// WithSave runs fn between Save and a matching restore. The frame is
// restored when fn returns an error or panics, and frames fn leaves open
// are restored as well.
func (c *Canvas) WithSave(fn func() error) error {
	return c.with(fn, c.Save)
}

// WithSaveLayer is WithSave for SaveLayer.
func (c *Canvas) WithSaveLayer(bounds Rect, p *Paint, flags SaveFlags, fn func() error) error {
	return c.with(fn, func() error { return c.SaveLayer(bounds, p, flags) })
}

func (c *Canvas) with(fn func() error, save func() error) (err error) {
	depth := len(c.frames)
	if err := save(); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, c.RestoreToCount(depth))
	}()
	return fn()
}

// Clear fills the whole surface with col and drops every save frame
// without releasing its layers; the session discards them itself. The
// transform and clip return to their values before the outermost save.
func (c *Canvas) Clear(col RGBA) {
	if c.session == nil {
		c.log().Debug("canvas: clear without session")
		c.abandonFrames()
		return
	}
	if n := len(c.frames); n > 0 {
		c.log().Warn("canvas: clear drops open save frames", "count", n)
	}
	if err := c.applyAntialias(0); err != nil {
		c.log().Warn("canvas: flush before clear failed", "err", err)
	}
	c.session.Clear(col)
	c.abandonFrames()
	// The session dropped its root layer along with the frames.
	c.rootClip = NewRect(0, 0, float64(c.width), float64(c.height))
}

// abandonFrames drops every save frame without closing its layers, and
// puts back the transform and clip that were live before the outermost
// frame that saved them.
func (c *Canvas) abandonFrames() {
	for i := len(c.frames) - 1; i >= 0; i-- {
		f := c.frames[i]
		if f.clip != nil {
			c.clip = f.clip.clip
		}
		if f.flags&SaveMatrix != 0 {
			c.matrix = f.matrix
		}
		c.frames[i] = frame{}
	}
	c.frames = c.frames[:0]
}

// applyAntialias switches the session's anti-aliasing to match flags,
// flushing pending work before the switch.
func (c *Canvas) applyAntialias(flags PaintFlags) error {
	want := flags&AntiAliasFlag != 0
	if c.antialiasSet && c.antialias == want {
		return nil
	}
	if err := c.session.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	c.session.SetAntialiasing(want)
	c.antialias = want
	c.antialiasSet = true
	return nil
}
