// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/canvas"
)

// shaperPool pools HarfbuzzShaper instances; a shaper keeps mutable
// buffers and must not be used concurrently.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// direction returns the run direction from the bidi class of the first
// strong character.
func direction(runes []rune) di.Direction {
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		case bidi.L:
			return di.DirectionLTR
		}
	}
	return di.DirectionLTR
}

func script(runes []rune) language.Script {
	for _, r := range runes {
		if s := language.LookupScript(r); s != language.Common && s != language.Inherited {
			return s
		}
	}
	return language.Latin
}

// shape lays out text as a single run.
func (s *Session) shape(text string, format canvas.TextFormat) (shaping.Output, *fontFace, error) {
	if format.Size <= 0 || math.IsNaN(format.Size) {
		return shaping.Output{}, nil, fmt.Errorf("raster: invalid text size %v", format.Size)
	}
	face, err := s.fonts.lookup(format.Family, format.Style, format.Weight)
	if err != nil {
		return shaping.Output{}, nil, err
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: direction(runes),
		Face:      font.NewFace(face.shape),
		Size:      toFixed(format.Size),
		Script:    script(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	shaperPool.Put(shaper)
	return out, face, nil
}

func layoutOf(out shaping.Output, align canvas.VerticalAlignment) canvas.TextLayout {
	ascent := math.Abs(fromFixed(out.LineBounds.Ascent))
	descent := math.Abs(fromFixed(out.LineBounds.Descent))
	advance := math.Abs(fromFixed(out.Advance))
	h := ascent + descent

	var top float64
	switch align {
	case canvas.AlignCenter:
		top = -h / 2
	case canvas.AlignBottom:
		top = -h
	}
	return canvas.TextLayout{
		Bounds:  canvas.NewRect(0, top, advance, h),
		Advance: advance,
		Ascent:  ascent,
		Descent: descent,
	}
}

// MeasureText implements canvas.Session.
func (s *Session) MeasureText(text string, format canvas.TextFormat) (canvas.TextLayout, error) {
	out, _, err := s.shape(text, format)
	if err != nil {
		return canvas.TextLayout{}, err
	}
	return layoutOf(out, format.VerticalAlignment), nil
}

// DrawText implements canvas.Session. Glyph outlines are filled with the
// non-zero rule in local coordinates, with the layout box positioned at
// (x, y) according to the vertical alignment.
func (s *Session) DrawText(text string, x, y float64, b canvas.Brush, format canvas.TextFormat) error {
	out, face, err := s.shape(text, format)
	if err != nil {
		return err
	}
	layout := layoutOf(out, format.VerticalAlignment)
	baseline := y + layout.Bounds.Y + layout.Ascent

	var (
		buf  sfnt.Buffer
		pb   = newBuilder()
		pen  = x
		ppem = toFixed(format.Size)
	)
	for _, g := range out.Glyphs {
		gx := pen + fromFixed(g.XOffset)
		gy := baseline - fromFixed(g.YOffset)
		segs, err := face.outline.LoadGlyph(&buf, sfnt.GlyphIndex(g.GlyphID), ppem, nil)
		if err != nil {
			return fmt.Errorf("raster: load glyph %d: %w", g.GlyphID, err)
		}
		addGlyph(pb, segs, gx, gy)
		pen += fromFixed(g.Advance)
	}

	s.FillGeometry(pb.Build(), b)
	return nil
}

// addGlyph appends glyph outline segments (y-down, relative to the
// glyph origin) translated to (ox, oy).
func addGlyph(pb *builder, segs sfnt.Segments, ox, oy float64) {
	pt := func(p fixed.Point26_6) canvas.Point {
		return canvas.Pt(ox+fromFixed(p.X), oy+fromFixed(p.Y))
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				pb.EndFigure(canvas.FigureClosed)
			}
			pb.BeginFigure(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			pb.AddLine(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			pb.AddQuadratic(pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			pb.AddCubic(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if open {
		pb.EndFigure(canvas.FigureClosed)
	}
}
