// Package canvas provides a stateful 2D drawing surface on top of an
// immediate-mode drawing session.
//
// # Overview
//
// A Canvas accumulates an affine transform and a clip rectangle and keeps
// a stack of save frames. Each frame records which state it captured: the
// transform, the clip (enforced by a compositing layer opened on the
// session), or an offscreen target composited back on restore. Drawing
// calls (rectangles, multi-contour paths, bitmaps and single characters)
// are forwarded to the bound Session with the current transform.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/canvas"
//	    "github.com/gogpu/canvas/raster"
//	)
//
//	c, _ := canvas.New(256, 256)
//	s := raster.New(256, 256)
//	root, _ := c.CreateSession(s)
//
//	c.Clear(canvas.White)
//	_ = c.WithSave(func() error {
//	    c.Translate(64, 64)
//	    p := canvas.NewPaint(canvas.AntiAliasFlag)
//	    p.Color = canvas.Red
//	    return c.DrawRect(canvas.NewRect(0, 0, 128, 128), p)
//	})
//	_ = root.Close()
//	_ = s.SavePNG("out.png")
//
// # Sessions
//
// A Session is the backend: it builds geometry, opens layers and
// offscreen targets, and rasterizes. The raster sub-package draws into an
// *image.RGBA; the recording sub-package captures calls for inspection and
// playback.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Clip
// rectangles are in device coordinates: ClipRect does not apply the
// transform.
//
// # Stack Discipline
//
// Every Save or SaveLayer must be matched by one Restore. A Restore with
// no open frame aborts the render pass (ErrUnbalancedRestore, then
// ErrPassAborted until the next CreateSession). WithSave and
// WithSaveLayer restore their frame even when the callback fails or
// panics.
package canvas
