// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/canvas"
)

func approxPixel(a, b pixel) bool {
	const tol = 1e-9
	return math.Abs(a.r-b.r) < tol && math.Abs(a.g-b.g) < tol &&
		math.Abs(a.b-b.b) < tol && math.Abs(a.a-b.a) < tol
}

func TestBlendFuncFor(t *testing.T) {
	red := pixel{r: 1, a: 1}
	halfBlue := pixel{b: 0.5, a: 0.5}
	gray := pixel{r: 0.5, g: 0.5, b: 0.5, a: 1}

	tests := []struct {
		mode canvas.BlendMode
		s, d pixel
		want pixel
	}{
		{canvas.BlendSourceOver, halfBlue, red, pixel{r: 0.5, b: 0.5, a: 1}},
		{canvas.BlendDestinationOver, halfBlue, red, red},
		{canvas.BlendClear, red, red, pixel{}},
		{canvas.BlendSource, halfBlue, red, halfBlue},
		{canvas.BlendDestination, halfBlue, red, red},
		{canvas.BlendSourceIn, red, halfBlue, pixel{r: 0.5, a: 0.5}},
		{canvas.BlendDestinationIn, halfBlue, red, pixel{r: 0.5, a: 0.5}},
		{canvas.BlendSourceOut, red, pixel{}, red},
		{canvas.BlendDestinationOut, halfBlue, red, pixel{r: 0.5, a: 0.5}},
		{canvas.BlendXor, red, red, pixel{}},
		{canvas.BlendPlus, gray, gray, pixel{r: 1, g: 1, b: 1, a: 1}},
		{canvas.BlendMultiply, gray, gray, pixel{r: 0.25, g: 0.25, b: 0.25, a: 1}},
		{canvas.BlendScreen, gray, gray, pixel{r: 0.75, g: 0.75, b: 0.75, a: 1}},
		{canvas.BlendDarken, red, gray, pixel{r: 0.5, a: 1}},
		{canvas.BlendLighten, red, gray, pixel{r: 1, g: 0.5, b: 0.5, a: 1}},
		{canvas.BlendDifference, red, gray, pixel{r: 0.5, g: 0.5, b: 0.5, a: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			fn, ok := blendFuncFor(tt.mode)
			if !ok {
				t.Fatalf("blendFuncFor(%v) not supported", tt.mode)
			}
			if got := fn(tt.s, tt.d); !approxPixel(got, tt.want) {
				t.Errorf("%v(%+v, %+v) = %+v, want %+v", tt.mode, tt.s, tt.d, got, tt.want)
			}
		})
	}
}

func TestBlendFuncForNonSeparable(t *testing.T) {
	for _, m := range []canvas.BlendMode{canvas.BlendHue, canvas.BlendSaturation, canvas.BlendColor, canvas.BlendLuminosity} {
		fn, ok := blendFuncFor(m)
		if ok {
			t.Errorf("blendFuncFor(%v) reported support", m)
		}
		s, d := pixel{g: 1, a: 1}, pixel{r: 1, a: 1}
		if got := fn(s, d); !approxPixel(got, sourceOver(s, d)) {
			t.Errorf("fallback for %v is not source-over", m)
		}
	}
}

func TestSeparableKeepsOpaqueDestination(t *testing.T) {
	// Any separable mode over an opaque destination with a transparent
	// source leaves the destination unchanged.
	d := pixel{r: 0.2, g: 0.4, b: 0.6, a: 1}
	for m := canvas.BlendMultiply; m <= canvas.BlendExclusion; m++ {
		fn, _ := blendFuncFor(m)
		if got := fn(pixel{}, d); !approxPixel(got, d) {
			t.Errorf("%v(transparent, d) = %+v, want %+v", m, got, d)
		}
	}
}

func TestCompositeImageMask(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 1))
	src := image.NewRGBA(image.Rect(0, 0, 4, 1))
	for x := 0; x < 4; x++ {
		src.SetRGBA(x, 0, color.RGBA{255, 0, 0, 255})
	}

	mask := canvas.NewRect(0.5, 0, 2, 1)
	compositeImage(dst, src, maskRect(mask), mask, 1, sourceOver)

	wantA := []uint8{128, 255, 128, 0}
	for x, want := range wantA {
		if got := dst.RGBAAt(x, 0).A; got != want {
			t.Errorf("alpha at %d = %d, want %d", x, got, want)
		}
	}
}

func TestCompositeImageOpacity(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
	dst.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{0, 0, 0, 255})

	compositeImage(dst, src, dst.Bounds(), canvas.NewRect(0, 0, 1, 1), 0.25, sourceOver)
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{191, 191, 191, 255}) {
		t.Errorf("pixel = %v, want 75%% white", got)
	}
}

func TestMaskRect(t *testing.T) {
	tests := []struct {
		r    canvas.Rect
		want image.Rectangle
	}{
		{canvas.NewRect(0, 0, 10, 10), image.Rect(0, 0, 10, 10)},
		{canvas.NewRect(0.5, 1.2, 2, 2), image.Rect(0, 1, 3, 4)},
		{canvas.Rect{}, image.Rectangle{}},
	}
	for _, tt := range tests {
		if got := maskRect(tt.r); got != tt.want {
			t.Errorf("maskRect(%+v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestStorePixelClampsToAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	storePixel(img, 0, 0, pixel{r: 2, g: 0.8, b: -1, a: 0.5})
	if got := img.RGBAAt(0, 0); got != (color.RGBA{128, 128, 0, 128}) {
		t.Errorf("stored = %v, want premultiplied values clamped to alpha", got)
	}
}
