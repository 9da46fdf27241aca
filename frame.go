package canvas

import "strings"

// SaveFlags selects which state a save frame captures.
type SaveFlags uint8

const (
	// SaveMatrix saves the transform.
	SaveMatrix SaveFlags = 1 << iota
	// SaveClip saves the clip and opens a compositing layer that enforces
	// it, at the paint's alpha.
	SaveClip
	// SaveHasAlphaLayer is accepted for compatibility and ignored.
	SaveHasAlphaLayer
	// SaveFullColorLayer is accepted for compatibility and ignored.
	SaveFullColorLayer
	// SaveClipToLayer redirects drawing into an offscreen target that is
	// composited back on Restore with the paint's alpha and blend mode.
	SaveClipToLayer

	// SaveAll combines every flag.
	SaveAll SaveFlags = SaveMatrix | SaveClip | SaveHasAlphaLayer | SaveFullColorLayer | SaveClipToLayer
)

var saveFlagNames = [...]string{"Matrix", "Clip", "HasAlphaLayer", "FullColorLayer", "ClipToLayer"}

// String returns the set flags joined with "|", or "None".
func (f SaveFlags) String() string {
	if f == 0 {
		return "None"
	}
	if f == SaveAll {
		return "All"
	}
	var parts []string
	for i, name := range saveFlagNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// clipSave pairs the clip in effect before a save with the layer opened
// to enforce it.
type clipSave struct {
	clip  Rect
	layer Layer

	// enforced is the clip the layer restricts drawing to.
	enforced Rect
}

// offscreenSave is an open offscreen target and how to composite it back.
type offscreenSave struct {
	target  Offscreen
	opacity float64
	mode    BlendMode
}

// frame is one save/saveLayer entry. flags drives a symmetric restore;
// matrix is valid when flags has SaveMatrix.
type frame struct {
	flags     SaveFlags
	matrix    Matrix
	clip      *clipSave
	offscreen *offscreenSave
}
