package canvas

import (
	"errors"
	"fmt"
	"image"
)

// beginDraw readies the session for one draw call: anti-aliasing from the
// paint flags, then the current transform. ok is false when the live clip
// is empty and nothing should be drawn. When the live clip is narrower
// than the clip enforced by the innermost layer, the draw is wrapped in a
// temporary layer and end closes it.
func (c *Canvas) beginDraw(op string, flags PaintFlags) (end func() error, ok bool, err error) {
	if err := c.check(op); err != nil {
		return nil, false, err
	}
	if c.clip.IsEmpty() {
		c.log().Debug("canvas: draw skipped, clip is empty", "op", op)
		return nil, false, nil
	}
	if err := c.applyAntialias(flags); err != nil {
		return nil, false, fmt.Errorf("canvas: %s: %w", op, err)
	}
	c.session.SetTransform(c.matrix)

	if c.clip == c.enforcedClip() {
		return c.flush, true, nil
	}
	layer, err := c.session.CreateLayer(1, c.clip)
	if err != nil {
		return nil, false, fmt.Errorf("canvas: %s: clip layer: %w", op, err)
	}
	return func() error {
		return errors.Join(layer.Close(), c.flush())
	}, true, nil
}

// paintOrDefault lets draw calls take a nil paint as NewPaint().
func paintOrDefault(p *Paint) *Paint {
	if p == nil {
		return NewPaint()
	}
	return p
}

func (c *Canvas) flush() error {
	if err := c.session.Flush(); err != nil {
		return fmt.Errorf("canvas: flush: %w", err)
	}
	return nil
}

// DrawRect fills or strokes r according to the paint style. Draw calls
// treat a nil paint as NewPaint(): an opaque black fill.
func (c *Canvas) DrawRect(r Rect, p *Paint) (err error) {
	p = paintOrDefault(p)
	end, ok, err := c.beginDraw("DrawRect", p.Flags)
	if !ok {
		return err
	}
	defer func() { err = errors.Join(err, end()) }()

	brush := resolveBrush(p)
	if p.Style == StyleStroke {
		c.session.StrokeRect(r, brush, p.StrokeWidth, p.StrokeStyle())
	} else {
		c.session.FillRect(r, brush)
	}
	return nil
}

// DrawRectXY draws the rectangle with corners (x1, y1) and (x2, y2).
func (c *Canvas) DrawRectXY(x1, y1, x2, y2 float64, p *Paint) error {
	return c.DrawRect(RectLTRB(x1, y1, x2, y2), p)
}

// DrawPath fills or strokes path. Contours are accumulated into one
// geometry group under the path fill rule; a contour that ends its group
// causes the group to be submitted and a new one started, so a path
// combined from N independent pieces is drawn with N submissions.
// An unclosed final contour is ended as an open figure.
func (c *Canvas) DrawPath(path *Path, p *Paint) (err error) {
	p = paintOrDefault(p)
	if path == nil || path.IsEmpty() {
		return c.check("DrawPath")
	}
	end, ok, err := c.beginDraw("DrawPath", p.Flags)
	if !ok {
		return err
	}
	defer func() { err = errors.Join(err, end()) }()

	brush := resolveBrush(p)
	var style StrokeStyle
	if p.Style == StyleStroke {
		style = p.StrokeStyle()
	}
	submit := func(g Geometry, rule FillRule) {
		group := c.session.CreateGroup([]Geometry{g}, rule)
		if p.Style == StyleStroke {
			c.session.StrokeGeometry(group, brush, p.StrokeWidth, style)
		} else {
			c.session.FillGeometry(group, brush)
		}
	}

	pb := c.session.NewPathBuilder()
	open, pending := false, false
	var rule FillRule

	contours := path.Contours()
	for i := range contours {
		ct := &contours[i]
		rule = path.ruleOf(ct)
		decision := ct.Emit(pb, &open)
		pending = true

		if decision == DrawFlushAndRestart {
			if open {
				pb.EndFigure(FigureOpen)
				open = false
			}
			submit(pb.Build(), rule)
			pb = c.session.NewPathBuilder()
			pending = false
		}
	}

	if pending {
		if open {
			pb.EndFigure(FigureOpen)
		}
		submit(pb.Build(), rule)
	}
	return nil
}

// DrawBitmap draws the src region of img into dst with the paint alpha.
// Sampling is nearest-neighbour unless the paint has FilterBitmapFlag.
// Bitmaps composite source-over unless the paint's color filter names a
// composite mode.
func (c *Canvas) DrawBitmap(img image.Image, src, dst Rect, p *Paint) (err error) {
	p = paintOrDefault(p)
	if img == nil {
		return c.check("DrawBitmap")
	}
	end, ok, err := c.beginDraw("DrawBitmap", p.Flags)
	if !ok {
		return err
	}
	defer func() { err = errors.Join(err, end()) }()

	interp := InterpolationNearest
	if p.Flags&FilterBitmapFlag != 0 {
		interp = InterpolationLinear
	}
	mode := BlendSourceOver
	if cm, ok := p.ColorFilter.(CompositeModer); ok {
		mode = blendOrDefault(cm.CompositeMode())
	}
	c.session.DrawImage(img, dst, src, float64(p.Alpha())/255, interp, mode)
	return nil
}

// DrawText draws a single character with its layout box vertically
// centered on the local origin and returns the layout bounds. The bounds
// are returned even when the live clip is empty and nothing is drawn.
func (c *Canvas) DrawText(ch rune, p *Paint) (bounds Rect, err error) {
	p = paintOrDefault(p)
	if err := c.check("DrawText"); err != nil {
		return Rect{}, err
	}
	text := string(ch)
	format := textFormat(p)

	layout, err := c.session.MeasureText(text, format)
	if err != nil {
		return Rect{}, fmt.Errorf("canvas: DrawText: measure: %w", err)
	}

	brush := resolveBrush(p)
	end, ok, err := c.beginDraw("DrawText", p.Flags)
	if !ok {
		return layout.Bounds, err
	}
	defer func() { err = errors.Join(err, end()) }()

	if err := c.session.DrawText(text, 0, 0, brush, format); err != nil {
		return layout.Bounds, fmt.Errorf("canvas: DrawText: %w", err)
	}
	return layout.Bounds, nil
}
