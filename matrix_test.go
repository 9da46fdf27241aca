package canvas

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 2), Pt(11, -3)},
		{"scale", Scale(2, 3), Pt(1, 2), Pt(2, 6)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"scale then translate", Translate(10, 0).Multiply(Scale(2, 2)), Pt(1, 1), Pt(12, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if math.Abs(got.X-tt.want.X) > epsilon || math.Abs(got.Y-tt.want.Y) > epsilon {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixTranslateInverse(t *testing.T) {
	base := Rotate(0.3).Multiply(Scale(2, 0.5))
	got := base.PreTranslate(7, -3).PreTranslate(-7, 3)
	if !got.ApproxEqual(base, epsilon) {
		t.Errorf("translate then inverse translate = %+v, want %+v", got, base)
	}
}

func TestMatrixPreTranslateMatchesMultiply(t *testing.T) {
	m := Matrix{A: 1.5, B: 0.2, C: 3, D: -0.4, E: 2, F: 7}
	got := m.PreTranslate(4, 5)
	want := m.Multiply(Translate(4, 5))
	if !got.ApproxEqual(want, epsilon) {
		t.Errorf("PreTranslate = %+v, want %+v", got, want)
	}
}

func TestMatrixMultiplyAssociative(t *testing.T) {
	a := Translate(5, 6)
	b := Rotate(math.Pi / 6)
	c := Scale(2, -1)

	left := a.Multiply(b).Multiply(c)
	right := a.Multiply(b.Multiply(c))
	if !left.ApproxEqual(right, epsilon) {
		t.Errorf("(a*b)*c = %+v, a*(b*c) = %+v", left, right)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(3, 4).Multiply(Rotate(1.1)).Multiply(Scale(2, 5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() reported singular matrix")
	}
	if got := m.Multiply(inv); !got.ApproxEqual(Identity(), epsilon) {
		t.Errorf("m * inv = %+v, want identity", got)
	}

	inv, ok = Scale(0, 1).Invert()
	if ok {
		t.Error("Invert() of singular matrix reported ok")
	}
	if !inv.IsIdentity() {
		t.Errorf("Invert() of singular matrix = %+v, want identity", inv)
	}
}

func TestMatrixTransformRect(t *testing.T) {
	got := Rotate(math.Pi / 2).TransformRect(NewRect(0, 0, 10, 20))
	want := NewRect(-20, 0, 20, 10)
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon ||
		math.Abs(got.W-want.W) > epsilon || math.Abs(got.H-want.H) > epsilon {
		t.Errorf("TransformRect = %+v, want %+v", got, want)
	}
}

func TestMatrixPredicates(t *testing.T) {
	tests := []struct {
		name        string
		m           Matrix
		identity    bool
		translation bool
	}{
		{"identity", Identity(), true, true},
		{"translate", Translate(1, 2), false, true},
		{"scale", Scale(2, 2), false, false},
		{"zero", Matrix{}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.identity {
				t.Errorf("IsIdentity() = %v, want %v", got, tt.identity)
			}
			if got := tt.m.IsTranslation(); got != tt.translation {
				t.Errorf("IsTranslation() = %v, want %v", got, tt.translation)
			}
		})
	}
}

func TestMatrixScaleFactor(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1},
		{"uniform", Scale(3, 3), 3},
		{"non-uniform", Scale(2, 8), 4},
		{"rotation", Rotate(0.7), 1},
		{"mirror", Scale(-2, 2), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.ScaleFactor(); math.Abs(got-tt.want) > epsilon {
				t.Errorf("ScaleFactor() = %v, want %v", got, tt.want)
			}
		})
	}
}
