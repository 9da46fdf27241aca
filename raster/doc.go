// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides a software canvas.Session that draws into an
// *image.RGBA.
//
// Paths are flattened and filled with a scanline rasterizer using an
// active edge table. Anti-aliased fills take four sub-scanlines per pixel
// row with exact horizontal coverage; aliased fills sample pixel centers.
// Strokes are expanded into polygons (segment bodies, joins and caps) and
// filled with the non-zero rule.
//
// Layers and offscreen targets are full-size buffers stacked on top of the
// base image. Drawing always goes to the top of the stack; closing a layer
// composites it onto the one below, masked by its clip rectangle.
//
// Usage:
//
//	s := raster.New(256, 256)
//	c, _ := canvas.New(256, 256)
//	root, _ := c.CreateSession(s)
//	// ... draw ...
//	_ = root.Close()
//	img := s.Image()
package raster
