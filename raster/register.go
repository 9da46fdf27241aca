// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/recording"
)

func init() {
	recording.Register("raster", func(width, height int) canvas.Session {
		return New(width, height)
	})
}
