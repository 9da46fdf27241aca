// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"testing"

	"github.com/go-text/typesetting/di"

	"github.com/gogpu/canvas"
)

func TestMeasureText(t *testing.T) {
	s := New(1, 1)
	format := canvas.TextFormat{Family: DefaultFamily, Size: 20}

	one, err := s.MeasureText("H", format)
	if err != nil {
		t.Fatal(err)
	}
	word, err := s.MeasureText("Hello", format)
	if err != nil {
		t.Fatal(err)
	}

	if one.Advance <= 0 || one.Bounds.IsEmpty() {
		t.Fatalf("MeasureText(H) = %+v, want non-empty", one)
	}
	if word.Advance <= one.Advance {
		t.Errorf("advance(Hello) = %v, want more than advance(H) = %v", word.Advance, one.Advance)
	}
	if one.Ascent <= 0 || one.Ascent > 20 {
		t.Errorf("ascent = %v, want within the em size", one.Ascent)
	}
	if one.Bounds.Y != 0 {
		t.Errorf("top-aligned bounds Y = %v, want 0", one.Bounds.Y)
	}
}

func TestMeasureTextAlignment(t *testing.T) {
	s := New(1, 1)
	tests := []struct {
		align canvas.VerticalAlignment
		top   func(h float64) float64
	}{
		{canvas.AlignTop, func(float64) float64 { return 0 }},
		{canvas.AlignCenter, func(h float64) float64 { return -h / 2 }},
		{canvas.AlignBottom, func(h float64) float64 { return -h }},
	}
	for _, tt := range tests {
		l, err := s.MeasureText("x", canvas.TextFormat{Size: 16, VerticalAlignment: tt.align})
		if err != nil {
			t.Fatal(err)
		}
		if want := tt.top(l.Bounds.H); l.Bounds.Y != want {
			t.Errorf("align %d: bounds Y = %v, want %v", tt.align, l.Bounds.Y, want)
		}
	}
}

func TestMeasureTextInvalidSize(t *testing.T) {
	s := New(1, 1)
	for _, size := range []float64{0, -3} {
		if _, err := s.MeasureText("a", canvas.TextFormat{Size: size}); err == nil {
			t.Errorf("MeasureText with size %v succeeded", size)
		}
	}
}

func TestDrawText(t *testing.T) {
	s := New(40, 40)
	if err := s.DrawText("H", 5, 5, canvas.Solid(canvas.Black), canvas.TextFormat{Size: 24}); err != nil {
		t.Fatal(err)
	}

	var inked int
	img := s.Image()
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y).A > 0 {
				if x < 5 || y < 5 {
					t.Fatalf("ink at (%d, %d) left of or above the origin", x, y)
				}
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("DrawText produced no pixels")
	}
}

func TestDrawTextEmpty(t *testing.T) {
	s := New(10, 10)
	if err := s.DrawText("", 0, 0, canvas.Solid(canvas.Black), canvas.TextFormat{Size: 12}); err != nil {
		t.Fatal(err)
	}
	for _, v := range s.Image().Pix {
		if v != 0 {
			t.Fatal("empty text drew pixels")
		}
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		text string
		want di.Direction
	}{
		{"abc", di.DirectionLTR},
		{"123 abc", di.DirectionLTR},
		{"שלום", di.DirectionRTL},
		{"123", di.DirectionLTR},
	}
	for _, tt := range tests {
		if got := direction([]rune(tt.text)); got != tt.want {
			t.Errorf("direction(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
