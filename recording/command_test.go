package recording

import (
	"testing"

	"github.com/gogpu/canvas"
)

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdSetTransform, "SetTransform"},
		{CmdSetAntialiasing, "SetAntialiasing"},
		{CmdFlush, "Flush"},
		{CmdClear, "Clear"},
		{CmdCreateLayer, "CreateLayer"},
		{CmdCloseLayer, "CloseLayer"},
		{CmdBeginOffscreen, "BeginOffscreen"},
		{CmdComposite, "Composite"},
		{CmdBuildPath, "BuildPath"},
		{CmdCreateGroup, "CreateGroup"},
		{CmdFillGeometry, "FillGeometry"},
		{CmdStrokeGeometry, "StrokeGeometry"},
		{CmdFillRect, "FillRect"},
		{CmdStrokeRect, "StrokeRect"},
		{CmdDrawImage, "DrawImage"},
		{CmdMeasureText, "MeasureText"},
		{CmdDrawText, "DrawText"},
		{CommandType(254), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ct.String(); got != tt.want {
				t.Errorf("CommandType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandInterface(t *testing.T) {
	tests := []struct {
		cmd  Command
		want CommandType
	}{
		{SetTransformCommand{Matrix: canvas.Identity()}, CmdSetTransform},
		{SetAntialiasingCommand{Enabled: true}, CmdSetAntialiasing},
		{FlushCommand{}, CmdFlush},
		{ClearCommand{Color: canvas.White}, CmdClear},
		{CreateLayerCommand{Opacity: 1}, CmdCreateLayer},
		{CloseLayerCommand{}, CmdCloseLayer},
		{BeginOffscreenCommand{}, CmdBeginOffscreen},
		{CompositeCommand{Mode: canvas.BlendMultiply}, CmdComposite},
		{BuildPathCommand{}, CmdBuildPath},
		{CreateGroupCommand{Rule: canvas.FillRuleEvenOdd}, CmdCreateGroup},
		{FillGeometryCommand{}, CmdFillGeometry},
		{StrokeGeometryCommand{Width: 2}, CmdStrokeGeometry},
		{FillRectCommand{}, CmdFillRect},
		{StrokeRectCommand{}, CmdStrokeRect},
		{DrawImageCommand{}, CmdDrawImage},
		{MeasureTextCommand{Text: "a"}, CmdMeasureText},
		{DrawTextCommand{Text: "a"}, CmdDrawText},
	}
	for _, tt := range tests {
		if got := tt.cmd.Type(); got != tt.want {
			t.Errorf("%T.Type() = %v, want %v", tt.cmd, got, tt.want)
		}
	}
}
