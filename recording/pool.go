package recording

import (
	"image"

	"github.com/gogpu/canvas"
)

// Figure is one recorded sub-path of a path geometry.
type Figure struct {
	Start    canvas.Point
	Segments []canvas.Segment
	Closed   bool
}

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	// geometries holds the figures of path geometries; group
	// geometries have a nil entry.
	geometries [][]Figure
	brushes    []canvas.Brush
	images     []image.Image
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		geometries: make([][]Figure, 0, 64),
		brushes:    make([]canvas.Brush, 0, 32),
		images:     make([]image.Image, 0, 8),
	}
}

func (p *ResourcePool) addGeometry(figures []Figure) GeometryRef {
	p.geometries = append(p.geometries, figures)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return GeometryRef(uint32(len(p.geometries) - 1))
}

// Figures returns the figures of a path geometry. Returns nil for group
// geometries and invalid references.
func (p *ResourcePool) Figures(ref GeometryRef) []Figure {
	if int(ref) >= len(p.geometries) {
		return nil
	}
	return p.geometries[ref]
}

// GeometryCount returns the number of geometries in the pool.
func (p *ResourcePool) GeometryCount() int {
	return len(p.geometries)
}

// AddBrush adds a brush to the pool and returns its reference.
// Brushes are stored directly as they are typically immutable value types.
func (p *ResourcePool) AddBrush(b canvas.Brush) BrushRef {
	p.brushes = append(p.brushes, b)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return BrushRef(uint32(len(p.brushes) - 1))
}

// GetBrush returns the brush for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetBrush(ref BrushRef) canvas.Brush {
	if int(ref) >= len(p.brushes) {
		return nil
	}
	return p.brushes[ref]
}

// BrushCount returns the number of brushes in the pool.
func (p *ResourcePool) BrushCount() int {
	return len(p.brushes)
}

// AddImage adds an image to the pool and returns its reference.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// GetImage returns the image for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetImage(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	p.geometries = p.geometries[:0]
	p.brushes = p.brushes[:0]
	p.images = p.images[:0]
}
