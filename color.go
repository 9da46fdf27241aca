package canvas

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGBA is a straight (not premultiplied) color with components in 0..1.
type RGBA struct {
	R, G, B, A float64
}

// Color returns c as an 8-bit color.NRGBA.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// FromColor converts any color.Color, un-premultiplying it.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// RGB returns an opaque color.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// ARGB creates a color from a packed 0xAARRGGBB value, the layout used by
// animation documents and Android color ints.
func ARGB(v uint32) RGBA {
	return RGBA{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: float64(v>>24&0xff) / 255,
	}
}

// Hex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an optional
// leading '#'. Malformed input yields opaque black.
func Hex(hex string) RGBA {
	hex = strings.TrimPrefix(hex, "#")
	if n := len(hex); n == 3 || n == 4 {
		var b strings.Builder
		for _, c := range hex {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		hex = b.String()
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Black
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Black
	}
	// RRGGBBAA to AARRGGBB.
	return ARGB(uint32(v>>8) | uint32(v&0xff)<<24)
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// MulAlpha returns the color with its alpha scaled by f.
func (c RGBA) MulAlpha(f float64) RGBA {
	c.A *= f
	return c
}

// Premultiply scales the color channels by alpha.
func (c RGBA) Premultiply() RGBA {
	return RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Lerp interpolates every channel, alpha included, from c to other.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Transparent = RGBA{}
)
