package canvas

import "testing"

func TestLinearGradientColorAt(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0, []RGBA{Black, White}, nil)
	b := g.Brush(255)

	tests := []struct {
		x    float64
		want RGBA
	}{
		{-5, Black},
		{0, Black},
		{5, RGB(0.5, 0.5, 0.5)},
		{10, White},
		{20, White},
	}
	for _, tt := range tests {
		if got := b.ColorAt(tt.x, 3); !approxColor(got, tt.want) {
			t.Errorf("ColorAt(%v) = %+v, want %+v", tt.x, got, tt.want)
		}
	}
}

func TestGradientExtendModes(t *testing.T) {
	tests := []struct {
		mode ExtendMode
		x    float64
		want RGBA
	}{
		{ExtendPad, 15, White},
		{ExtendRepeat, 12.5, RGB(0.25, 0.25, 0.25)},
		{ExtendReflect, 12.5, RGB(0.75, 0.75, 0.75)},
		{ExtendReflect, -2.5, RGB(0.25, 0.25, 0.25)},
	}
	for _, tt := range tests {
		g := NewLinearGradient(0, 0, 10, 0, []RGBA{Black, White}, nil)
		g.Extend = tt.mode
		if got := g.Brush(255).ColorAt(tt.x, 0); !approxColor(got, tt.want) {
			t.Errorf("mode %d at %v = %+v, want %+v", tt.mode, tt.x, got, tt.want)
		}
	}
}

func TestGradientStops(t *testing.T) {
	// Out-of-order positions are sorted.
	g := NewLinearGradient(0, 0, 10, 0, []RGBA{White, Red, Black}, []float64{1, 0.5, 0})
	b := g.Brush(255)
	if got := b.ColorAt(5, 0); !approxColor(got, Red) {
		t.Errorf("ColorAt(mid) = %+v, want red", got)
	}
	if got := b.ColorAt(0, 0); !approxColor(got, Black) {
		t.Errorf("ColorAt(start) = %+v, want black", got)
	}

	empty := NewLinearGradient(0, 0, 10, 0, nil, nil).Brush(255)
	if got := empty.ColorAt(5, 0); got != Transparent {
		t.Errorf("empty gradient = %+v, want transparent", got)
	}
	degenerate := NewLinearGradient(3, 3, 3, 3, []RGBA{Red, Blue}, nil).Brush(255)
	if got := degenerate.ColorAt(9, 9); got != Red {
		t.Errorf("zero-length gradient = %+v, want first stop", got)
	}
}

func TestRadialGradientColorAt(t *testing.T) {
	g := NewRadialGradient(10, 10, 10, []RGBA{White, Black}, nil)
	b := g.Brush(255)
	if got := b.ColorAt(10, 10); !approxColor(got, White) {
		t.Errorf("center = %+v, want white", got)
	}
	if got := b.ColorAt(15, 10); !approxColor(got, RGB(0.5, 0.5, 0.5)) {
		t.Errorf("half radius = %+v, want gray", got)
	}
	if got := b.ColorAt(30, 30); !approxColor(got, Black) {
		t.Errorf("outside = %+v, want black", got)
	}

	zero := NewRadialGradient(0, 0, 0, []RGBA{White, Black}, nil).Brush(255)
	if got := zero.ColorAt(0, 0); got != Black {
		t.Errorf("zero radius = %+v, want last stop", got)
	}
}

func TestGradientBrushAlpha(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0, []RGBA{Red, Red}, nil)
	got := g.Brush(51).ColorAt(5, 0)
	if !approxColor(got, Red.WithAlpha(0.2)) {
		t.Errorf("ColorAt = %+v, want red at 20%% alpha", got)
	}
	if g.Stops[0].Color.A != 1 {
		t.Error("Brush modified the shader's stops")
	}
}
