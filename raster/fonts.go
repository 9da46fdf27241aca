// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/cases"

	"github.com/gogpu/canvas"
)

// DefaultFamily is the family name of the bundled Go fonts.
const DefaultFamily = "Go"

// fontFace is one parsed font file. The go-text font shapes, the sfnt
// font provides outlines. Both are read-only and safe to share.
type fontFace struct {
	shape   *font.Font
	outline *sfnt.Font
}

// variant indexes the faces of a family.
type variant int

const (
	variantRegular variant = iota
	variantItalic
	variantBold
	variantBoldItalic
	variantCount
)

func variantOf(style canvas.FontStyle, weight canvas.FontWeight) variant {
	v := variantRegular
	if style != canvas.FontStyleNormal {
		v |= variantItalic
	}
	if weight >= 600 {
		v |= variantBold
	}
	return v
}

type family struct {
	name  string
	faces [variantCount]*fontFace
}

// face returns the closest loaded variant: the exact one, then the
// upright one of the same weight, then regular, then anything.
func (f *family) face(v variant) *fontFace {
	for _, c := range []variant{v, v &^ variantItalic, variantRegular} {
		if f.faces[c] != nil {
			return f.faces[c]
		}
	}
	for _, ff := range f.faces {
		if ff != nil {
			return ff
		}
	}
	return nil
}

// FontSet maps family names to fonts. Family lookup is case-insensitive
// (Unicode case folding). A FontSet is safe for concurrent use.
type FontSet struct {
	mu            sync.RWMutex
	families      map[string]*family
	defaultFamily string
}

// NewFontSet creates an empty font set.
func NewFontSet() *FontSet {
	return &FontSet{families: make(map[string]*family)}
}

func foldFamily(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Add parses a TrueType or OpenType font and registers it as the given
// family variant. The first family added becomes the default.
func (fs *FontSet) Add(name string, style canvas.FontStyle, weight canvas.FontWeight, data []byte) error {
	shape, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("raster: parse font %q: %w", name, err)
	}
	outline, err := sfnt.Parse(data)
	if err != nil {
		return fmt.Errorf("raster: parse font outlines %q: %w", name, err)
	}

	key := foldFamily(name)
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fam := fs.families[key]
	if fam == nil {
		fam = &family{name: name}
		fs.families[key] = fam
	}
	fam.faces[variantOf(style, weight)] = &fontFace{shape: shape.Font, outline: outline}
	if fs.defaultFamily == "" {
		fs.defaultFamily = key
	}
	return nil
}

// SetDefault selects the family used for empty or unknown family names.
func (fs *FontSet) SetDefault(name string) error {
	key := foldFamily(name)
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if _, ok := fs.families[key]; !ok {
		return fmt.Errorf("raster: unknown font family %q", name)
	}
	fs.defaultFamily = key
	return nil
}

// Families returns the registered family names, sorted.
func (fs *FontSet) Families() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	names := make([]string, 0, len(fs.families))
	for _, f := range fs.families {
		names = append(names, f.name)
	}
	sort.Strings(names)
	return names
}

// lookup resolves a family and variant. Unknown families fall back to the
// default family.
func (fs *FontSet) lookup(name string, style canvas.FontStyle, weight canvas.FontWeight) (*fontFace, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	key := foldFamily(name)
	fam := fs.families[key]
	if fam == nil {
		if key != "" {
			canvas.Logger().Debug("raster: unknown font family, using default", "family", name)
		}
		fam = fs.families[fs.defaultFamily]
	}
	if fam == nil {
		return nil, fmt.Errorf("raster: no fonts available for family %q", name)
	}
	face := fam.face(variantOf(style, weight))
	if face == nil {
		return nil, fmt.Errorf("raster: family %q has no faces", fam.name)
	}
	return face, nil
}

var defaultFonts = sync.OnceValue(func() *FontSet {
	fs := NewFontSet()
	for _, f := range []struct {
		style  canvas.FontStyle
		weight canvas.FontWeight
		data   []byte
	}{
		{canvas.FontStyleNormal, canvas.FontWeightNormal, goregular.TTF},
		{canvas.FontStyleItalic, canvas.FontWeightNormal, goitalic.TTF},
		{canvas.FontStyleNormal, canvas.FontWeightBold, gobold.TTF},
		{canvas.FontStyleItalic, canvas.FontWeightBold, gobolditalic.TTF},
	} {
		if err := fs.Add(DefaultFamily, f.style, f.weight, f.data); err != nil {
			canvas.Logger().Error("raster: bundled font failed to load", "err", err)
		}
	}
	return fs
})

// DefaultFonts returns the shared font set holding the Go fonts.
func DefaultFonts() *FontSet {
	return defaultFonts()
}
