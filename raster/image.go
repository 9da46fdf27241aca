// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/canvas"
)

func interpolator(i canvas.Interpolation) xdraw.Interpolator {
	if i == canvas.InterpolationLinear {
		return xdraw.BiLinear
	}
	return xdraw.NearestNeighbor
}

// DrawImage implements canvas.Session. The src region of img is mapped
// onto dst in local coordinates, then through the session transform.
func (s *Session) DrawImage(img image.Image, dst, src canvas.Rect, opacity float64, interp canvas.Interpolation, mode canvas.BlendMode) {
	if img == nil || dst.IsEmpty() || src.IsEmpty() || opacity <= 0 {
		return
	}
	sr := image.Rect(
		int(math.Floor(src.X)), int(math.Floor(src.Y)),
		int(math.Ceil(src.Right())), int(math.Ceil(src.Bottom())),
	).Intersect(img.Bounds())
	if sr.Empty() {
		return
	}

	kx, ky := dst.W/src.W, dst.H/src.H
	local := canvas.Matrix{
		A: kx, C: dst.X - src.X*kx,
		E: ky, F: dst.Y - src.Y*ky,
	}
	m := s.transform.Multiply(local)
	src0, m := originSource(img, sr, m)

	tmp := s.acquire()
	defer s.release(tmp)
	interpolator(interp).Transform(tmp, f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}, src0, src0.Bounds(), xdraw.Src, nil)

	fn, ok := blendFuncFor(mode)
	if !ok {
		canvas.Logger().Debug("raster: blend mode not supported, using source-over", "mode", mode)
	}
	area := maskRect(s.transform.TransformRect(dst)).Inset(-1)
	full := canvas.NewRect(0, 0, float64(s.width), float64(s.height))
	compositeImage(s.current(), tmp, area, full, clampUnit(opacity), fn)
}

// originSource returns the sr region of img as an image whose bounds
// start at the origin, and m adjusted to map it. The integer-translation
// fast path of Transform misplaces rows when sr.Min.X != sr.Min.Y, so the
// region is never passed with a non-zero origin.
func originSource(img image.Image, sr image.Rectangle, m canvas.Matrix) (image.Image, canvas.Matrix) {
	if sr.Min == (image.Point{}) {
		return img, m
	}
	dst := image.NewRGBA(image.Rect(0, 0, sr.Dx(), sr.Dy()))
	xdraw.Copy(dst, image.Point{}, img, sr, xdraw.Src, nil)
	return dst, m.Multiply(canvas.Translate(float64(sr.Min.X), float64(sr.Min.Y)))
}
