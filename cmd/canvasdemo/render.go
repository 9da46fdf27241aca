package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for scene images
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/gogpu/canvas"
)

// render draws the scene through a canvas bound to s. Relative image
// paths are resolved against dir. Frames left open by the scene are
// restored at the end.
func render(sc *Scene, s canvas.Session, dir string) (err error) {
	c, err := canvas.New(sc.Width, sc.Height)
	if err != nil {
		return err
	}
	root, err := c.CreateSession(s)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, c.RestoreToCount(0), root.Close())
	}()

	if sc.Background != "" {
		c.Clear(canvas.Hex(sc.Background))
	}
	for i := range sc.Ops {
		if err := apply(c, &sc.Ops[i], dir); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, sc.Ops[i].Kind, err)
		}
	}
	return nil
}

func apply(c *canvas.Canvas, op *Op, dir string) error {
	switch op.Kind {
	case "save":
		return c.Save()
	case "restore":
		return c.Restore()
	case "saveLayer":
		bounds, err := rectOf(op.Rect)
		if err != nil {
			return err
		}
		flags, err := flagsOf(op.Flags)
		if err != nil {
			return err
		}
		p, err := paintOf(op)
		if err != nil {
			return err
		}
		return c.SaveLayer(bounds, p, flags)
	case "translate":
		c.Translate(op.X, op.Y)
	case "concat", "setMatrix":
		m, err := matrixOf(op.Matrix)
		if err != nil {
			return err
		}
		if op.Kind == "concat" {
			c.Concat(m)
		} else {
			c.SetMatrix(m)
		}
	case "clip":
		r, err := rectOf(op.Rect)
		if err != nil {
			return err
		}
		if !c.ClipRect(r) {
			canvas.Logger().Debug("canvasdemo: clip is empty", "rect", r)
		}
	case "clipReplace":
		r, err := rectOf(op.Rect)
		if err != nil {
			return err
		}
		c.ClipReplaceRect(r)
	case "rect":
		r, err := rectOf(op.Rect)
		if err != nil {
			return err
		}
		p, err := paintOf(op)
		if err != nil {
			return err
		}
		return c.DrawRect(r, p)
	case "path":
		path, err := parsePath(op.Path)
		if err != nil {
			return err
		}
		if op.FillRule == "evenodd" {
			path.SetFillType(canvas.FillRuleEvenOdd)
		}
		p, err := paintOf(op)
		if err != nil {
			return err
		}
		return c.DrawPath(path, p)
	case "text":
		runes := []rune(op.Char)
		if len(runes) != 1 {
			return fmt.Errorf("text needs exactly one character, got %q", op.Char)
		}
		p, err := paintOf(op)
		if err != nil {
			return err
		}
		c.Translate(op.X, op.Y)
		defer c.Translate(-op.X, -op.Y)
		_, err = c.DrawText(runes[0], p)
		return err
	case "image":
		return drawImage(c, op, dir)
	default:
		return fmt.Errorf("unknown op kind %q", op.Kind)
	}
	return nil
}

func drawImage(c *canvas.Canvas, op *Op, dir string) error {
	path := op.Image
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	f, err := os.Open(path) //nolint:gosec // path comes from the scene file
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", op.Image, err)
	}

	dst, err := rectOf(op.Rect)
	if err != nil {
		return err
	}
	src := canvas.NewRect(
		float64(img.Bounds().Min.X), float64(img.Bounds().Min.Y),
		float64(img.Bounds().Dx()), float64(img.Bounds().Dy()),
	)
	if len(op.Src) > 0 {
		if src, err = rectOf(op.Src); err != nil {
			return err
		}
	}
	p, err := paintOf(op)
	if err != nil {
		return err
	}
	return c.DrawBitmap(img, src, dst, p)
}
