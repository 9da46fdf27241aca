// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"

	"github.com/gogpu/canvas"
)

// pixel is a premultiplied color with components in 0..1.
type pixel struct {
	r, g, b, a float64
}

func premul(c canvas.RGBA) pixel {
	return pixel{r: c.R * c.A, g: c.G * c.A, b: c.B * c.A, a: c.A}
}

func (p pixel) scale(f float64) pixel {
	return pixel{r: p.r * f, g: p.g * f, b: p.b * f, a: p.a * f}
}

func loadPixel(img *image.RGBA, x, y int) pixel {
	i := img.PixOffset(x, y)
	s := img.Pix[i : i+4 : i+4]
	return pixel{
		r: float64(s[0]) / 255,
		g: float64(s[1]) / 255,
		b: float64(s[2]) / 255,
		a: float64(s[3]) / 255,
	}
}

func storePixel(img *image.RGBA, x, y int, p pixel) {
	i := img.PixOffset(x, y)
	s := img.Pix[i : i+4 : i+4]
	a := clampUnit(p.a)
	s[0] = to8(math.Min(clampUnit(p.r), a))
	s[1] = to8(math.Min(clampUnit(p.g), a))
	s[2] = to8(math.Min(clampUnit(p.b), a))
	s[3] = to8(a)
}

func to8(v float64) uint8 {
	return uint8(v*255 + 0.5)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// blendFunc composites premultiplied s onto d.
type blendFunc func(s, d pixel) pixel

// blendFuncFor returns the function for mode. Non-separable modes are not
// implemented and report false; callers fall back to source-over.
func blendFuncFor(mode canvas.BlendMode) (blendFunc, bool) {
	switch mode {
	case canvas.BlendSourceOver:
		return sourceOver, true
	case canvas.BlendClear:
		return func(_, _ pixel) pixel { return pixel{} }, true
	case canvas.BlendSource:
		return func(s, _ pixel) pixel { return s }, true
	case canvas.BlendDestination:
		return func(_, d pixel) pixel { return d }, true
	case canvas.BlendDestinationOver:
		return porterDuff(func(_, da float64) (float64, float64) { return 1 - da, 1 }), true
	case canvas.BlendSourceIn:
		return porterDuff(func(_, da float64) (float64, float64) { return da, 0 }), true
	case canvas.BlendDestinationIn:
		return porterDuff(func(sa, _ float64) (float64, float64) { return 0, sa }), true
	case canvas.BlendSourceOut:
		return porterDuff(func(_, da float64) (float64, float64) { return 1 - da, 0 }), true
	case canvas.BlendDestinationOut:
		return porterDuff(func(sa, _ float64) (float64, float64) { return 0, 1 - sa }), true
	case canvas.BlendSourceAtop:
		return porterDuff(func(sa, da float64) (float64, float64) { return da, 1 - sa }), true
	case canvas.BlendDestinationAtop:
		return porterDuff(func(sa, da float64) (float64, float64) { return 1 - da, sa }), true
	case canvas.BlendXor:
		return porterDuff(func(sa, da float64) (float64, float64) { return 1 - da, 1 - sa }), true
	case canvas.BlendPlus:
		return func(s, d pixel) pixel {
			return pixel{r: s.r + d.r, g: s.g + d.g, b: s.b + d.b, a: math.Min(s.a+d.a, 1)}
		}, true
	case canvas.BlendMultiply:
		return separable(func(cs, cd float64) float64 { return cs * cd }), true
	case canvas.BlendScreen:
		return separable(func(cs, cd float64) float64 { return cs + cd - cs*cd }), true
	case canvas.BlendOverlay:
		return separable(func(cs, cd float64) float64 { return hardLight(cd, cs) }), true
	case canvas.BlendDarken:
		return separable(math.Min), true
	case canvas.BlendLighten:
		return separable(math.Max), true
	case canvas.BlendColorDodge:
		return separable(colorDodge), true
	case canvas.BlendColorBurn:
		return separable(colorBurn), true
	case canvas.BlendHardLight:
		return separable(hardLight), true
	case canvas.BlendSoftLight:
		return separable(softLight), true
	case canvas.BlendDifference:
		return separable(func(cs, cd float64) float64 { return math.Abs(cs - cd) }), true
	case canvas.BlendExclusion:
		return separable(func(cs, cd float64) float64 { return cs + cd - 2*cs*cd }), true
	default:
		return sourceOver, false
	}
}

func sourceOver(s, d pixel) pixel {
	inv := 1 - s.a
	return pixel{r: s.r + d.r*inv, g: s.g + d.g*inv, b: s.b + d.b*inv, a: s.a + d.a*inv}
}

// porterDuff builds an operator from its source and destination factors.
func porterDuff(factors func(sa, da float64) (fs, fd float64)) blendFunc {
	return func(s, d pixel) pixel {
		fs, fd := factors(s.a, d.a)
		return pixel{
			r: s.r*fs + d.r*fd,
			g: s.g*fs + d.g*fd,
			b: s.b*fs + d.b*fd,
			a: s.a*fs + d.a*fd,
		}
	}
}

// separable builds a W3C separable blend mode from its per-channel
// function on non-premultiplied values.
func separable(mix func(cs, cd float64) float64) blendFunc {
	return func(s, d pixel) pixel {
		ch := func(sc, dc float64) float64 {
			var cs, cd float64
			if s.a > 0 {
				cs = sc / s.a
			}
			if d.a > 0 {
				cd = dc / d.a
			}
			return (1-d.a)*sc + (1-s.a)*dc + s.a*d.a*clampUnit(mix(cs, cd))
		}
		return pixel{
			r: ch(s.r, d.r),
			g: ch(s.g, d.g),
			b: ch(s.b, d.b),
			a: s.a + d.a - s.a*d.a,
		}
	}
}

func hardLight(cs, cd float64) float64 {
	if cs <= 0.5 {
		return cd * 2 * cs
	}
	return cd + (2*cs - 1) - cd*(2*cs-1)
}

func colorDodge(cs, cd float64) float64 {
	switch {
	case cd == 0:
		return 0
	case cs >= 1:
		return 1
	default:
		return math.Min(1, cd/(1-cs))
	}
}

func colorBurn(cs, cd float64) float64 {
	switch {
	case cd >= 1:
		return 1
	case cs <= 0:
		return 0
	default:
		return 1 - math.Min(1, (1-cd)/cs)
	}
}

func softLight(cs, cd float64) float64 {
	if cs <= 0.5 {
		return cd - (1-2*cs)*cd*(1-cd)
	}
	var d float64
	if cd <= 0.25 {
		d = ((16*cd-12)*cd + 4) * cd
	} else {
		d = math.Sqrt(cd)
	}
	return cd + (2*cs-1)*(d-cd)
}

// compositeImage composites src onto dst inside area with opacity,
// masked by the fractional coverage of mask (device rect), using fn.
func compositeImage(dst, src *image.RGBA, area image.Rectangle, mask canvas.Rect, opacity float64, fn blendFunc) {
	area = area.Intersect(dst.Bounds()).Intersect(src.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		cy := overlap(float64(y), mask.Y, mask.Bottom())
		if cy <= 0 {
			continue
		}
		for x := area.Min.X; x < area.Max.X; x++ {
			cov := cy * overlap(float64(x), mask.X, mask.Right()) * opacity
			if cov <= 0 {
				continue
			}
			s := loadPixel(src, x, y)
			d := loadPixel(dst, x, y)
			out := fn(s, d)
			if cov < 1 {
				out = lerpPixel(d, out, cov)
			}
			storePixel(dst, x, y, out)
		}
	}
}

// overlap returns how much of the unit interval [p, p+1) lies in [lo, hi).
func overlap(p, lo, hi float64) float64 {
	return math.Max(0, math.Min(p+1, hi)-math.Max(p, lo))
}

func lerpPixel(a, b pixel, t float64) pixel {
	return pixel{
		r: a.r + (b.r-a.r)*t,
		g: a.g + (b.g-a.g)*t,
		b: a.b + (b.b-a.b)*t,
		a: a.a + (b.a-a.a)*t,
	}
}

// maskRect returns the pixel rectangle touched by r.
func maskRect(r canvas.Rect) image.Rectangle {
	if r.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}
