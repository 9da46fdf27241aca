// Package recording provides a canvas.Session that records drawing calls.
//
// Every call a canvas makes on its session is captured as a typed command
// structure instead of being rasterized. Commands are stored in a
// Recording and can be inspected (tests use this to observe the canvas
// state machine) or replayed onto any other session.
//
// Design follows Cairo's approach of typed command structs for
// inspectability and debuggability, rather than a binary serialization
// format.
//
// # Architecture
//
// Commands capture all session calls:
//   - State commands (SetTransform, SetAntialiasing, Flush, Clear)
//   - Layer commands (CreateLayer, CloseLayer, BeginOffscreen, Composite)
//   - Geometry commands (BuildPath, CreateGroup)
//   - Drawing commands (FillGeometry, StrokeGeometry, FillRect,
//     StrokeRect, DrawImage, MeasureText, DrawText)
//
// Resources (path figures, brushes, images) are stored in a ResourcePool
// and referenced by typed handles (GeometryRef, BrushRef, ImageRef).
// Layers and offscreen targets are identified by LayerRef.
//
// # Example
//
//	rec := recording.NewRecorder(800, 600)
//	c, _ := canvas.New(800, 600)
//	root, _ := c.CreateSession(rec)
//	// ... draw ...
//	_ = root.Close()
//
//	r := rec.FinishRecording()
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//	err := r.Playback(raster.New(800, 600))
package recording
