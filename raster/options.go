// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// DefaultTolerance is the default curve flattening tolerance in device
// pixels.
const DefaultTolerance = 0.25

type options struct {
	fonts     *FontSet
	tolerance float64
}

// Option configures a Session.
type Option func(*options)

// WithFonts sets the font set used for text. By default the Go fonts are
// used.
func WithFonts(fs *FontSet) Option {
	return func(o *options) {
		o.fonts = fs
	}
}

// WithTolerance sets the maximum distance in device pixels between a curve
// and its flattened polyline. Non-positive values keep the default.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

func defaultOptions() options {
	return options{tolerance: DefaultTolerance}
}
