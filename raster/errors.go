// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"fmt"
)

// ErrReleased is returned when a layer or offscreen handle is used after
// it was released or discarded by Clear.
var ErrReleased = errors.New("raster: target already released")

// LayerOrderError is returned when a layer or offscreen target is released
// while targets opened after it are still open.
type LayerOrderError struct {
	// Depth is the stack position of the target being released.
	Depth int
	// Top is the stack position of the innermost open target.
	Top int
}

func (e *LayerOrderError) Error() string {
	return fmt.Sprintf("raster: target at depth %d released while depth %d is open", e.Depth, e.Top)
}
