package recording

import (
	"github.com/gogpu/canvas"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one canvas.Session call.
type CommandType uint8

const (
	// State commands
	CmdSetTransform    CommandType = iota // Set transformation matrix
	CmdSetAntialiasing                    // Switch anti-aliasing
	CmdFlush                              // Flush pending work
	CmdClear                              // Clear the surface

	// Layer commands
	CmdCreateLayer    // Open a compositing layer
	CmdCloseLayer     // Close a compositing layer
	CmdBeginOffscreen // Redirect drawing to an offscreen target
	CmdComposite      // Composite an offscreen target back

	// Geometry commands
	CmdBuildPath   // Build a path geometry
	CmdCreateGroup // Combine geometries under a fill rule

	// Drawing commands
	CmdFillGeometry   // Fill a geometry
	CmdStrokeGeometry // Stroke a geometry
	CmdFillRect       // Fill a rectangle
	CmdStrokeRect     // Stroke a rectangle
	CmdDrawImage      // Draw an image
	CmdMeasureText    // Measure text
	CmdDrawText       // Draw text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSetTransform:    "SetTransform",
	CmdSetAntialiasing: "SetAntialiasing",
	CmdFlush:           "Flush",
	CmdClear:           "Clear",
	CmdCreateLayer:     "CreateLayer",
	CmdCloseLayer:      "CloseLayer",
	CmdBeginOffscreen:  "BeginOffscreen",
	CmdComposite:       "Composite",
	CmdBuildPath:       "BuildPath",
	CmdCreateGroup:     "CreateGroup",
	CmdFillGeometry:    "FillGeometry",
	CmdStrokeGeometry:  "StrokeGeometry",
	CmdFillRect:        "FillRect",
	CmdStrokeRect:      "StrokeRect",
	CmdDrawImage:       "DrawImage",
	CmdMeasureText:     "MeasureText",
	CmdDrawText:        "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Reference Types
// --------------------------------------------------------------------------

// GeometryRef is a reference to a geometry in the resource pool.
type GeometryRef uint32

// BrushRef is a reference to a brush in the resource pool.
type BrushRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// LayerRef identifies a layer or offscreen target, in creation order.
type LayerRef uint32

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SetTransformCommand sets the current transformation matrix.
type SetTransformCommand struct {
	Matrix canvas.Matrix
}

// Type implements Command.
func (SetTransformCommand) Type() CommandType { return CmdSetTransform }

// SetAntialiasingCommand switches anti-aliasing.
type SetAntialiasingCommand struct {
	Enabled bool
}

// Type implements Command.
func (SetAntialiasingCommand) Type() CommandType { return CmdSetAntialiasing }

// FlushCommand flushes pending drawing work.
type FlushCommand struct{}

// Type implements Command.
func (FlushCommand) Type() CommandType { return CmdFlush }

// ClearCommand fills the surface and discards open layers.
type ClearCommand struct {
	Color canvas.RGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// --------------------------------------------------------------------------
// Layer Commands
// --------------------------------------------------------------------------

// CreateLayerCommand opens a compositing layer.
type CreateLayerCommand struct {
	Layer   LayerRef
	Opacity float64
	Clip    canvas.Rect
}

// Type implements Command.
func (CreateLayerCommand) Type() CommandType { return CmdCreateLayer }

// CloseLayerCommand closes a compositing layer.
type CloseLayerCommand struct {
	Layer LayerRef
}

// Type implements Command.
func (CloseLayerCommand) Type() CommandType { return CmdCloseLayer }

// BeginOffscreenCommand redirects drawing to an offscreen target.
type BeginOffscreenCommand struct {
	Offscreen LayerRef
	Bounds    canvas.Rect
}

// Type implements Command.
func (BeginOffscreenCommand) Type() CommandType { return CmdBeginOffscreen }

// CompositeCommand composites an offscreen target back.
type CompositeCommand struct {
	Offscreen LayerRef
	Opacity   float64
	Mode      canvas.BlendMode
}

// Type implements Command.
func (CompositeCommand) Type() CommandType { return CmdComposite }

// --------------------------------------------------------------------------
// Geometry Commands
// --------------------------------------------------------------------------

// BuildPathCommand builds a path geometry from pooled figures.
type BuildPathCommand struct {
	Geometry GeometryRef
}

// Type implements Command.
func (BuildPathCommand) Type() CommandType { return CmdBuildPath }

// CreateGroupCommand combines geometries under a fill rule.
type CreateGroupCommand struct {
	Geometry GeometryRef
	Children []GeometryRef
	Rule     canvas.FillRule
}

// Type implements Command.
func (CreateGroupCommand) Type() CommandType { return CmdCreateGroup }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillGeometryCommand fills a geometry with a brush.
type FillGeometryCommand struct {
	Geometry GeometryRef
	Brush    BrushRef
}

// Type implements Command.
func (FillGeometryCommand) Type() CommandType { return CmdFillGeometry }

// StrokeGeometryCommand strokes a geometry with a brush.
type StrokeGeometryCommand struct {
	Geometry GeometryRef
	Brush    BrushRef
	Width    float64
	Style    canvas.StrokeStyle
}

// Type implements Command.
func (StrokeGeometryCommand) Type() CommandType { return CmdStrokeGeometry }

// FillRectCommand fills a rectangle with a brush.
type FillRectCommand struct {
	Rect  canvas.Rect
	Brush BrushRef
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// StrokeRectCommand strokes a rectangle with a brush.
type StrokeRectCommand struct {
	Rect  canvas.Rect
	Brush BrushRef
	Width float64
	Style canvas.StrokeStyle
}

// Type implements Command.
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

// DrawImageCommand draws an image region.
type DrawImageCommand struct {
	Image         ImageRef
	Dst, Src      canvas.Rect
	Opacity       float64
	Interpolation canvas.Interpolation
	Mode          canvas.BlendMode
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// MeasureTextCommand measures a text run.
type MeasureTextCommand struct {
	Text   string
	Format canvas.TextFormat
}

// Type implements Command.
func (MeasureTextCommand) Type() CommandType { return CmdMeasureText }

// DrawTextCommand draws a text run.
type DrawTextCommand struct {
	Text   string
	X, Y   float64
	Brush  BrushRef
	Format canvas.TextFormat
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
