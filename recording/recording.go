package recording

import (
	"fmt"

	"github.com/gogpu/canvas"
)

// Recording is an immutable container for recorded session calls.
// It can be replayed to any canvas.Session.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recorded surface.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recorded surface.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Types returns the type of every command, in order.
func (r *Recording) Types() []CommandType {
	types := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		types[i] = c.Type()
	}
	return types
}

// Playback replays the recording onto s. Layers and offscreen targets
// are opened and released on s in the recorded order. Playback stops at
// the first failing command.
func (r *Recording) Playback(s canvas.Session) error {
	p := player{
		s:          s,
		pool:       r.resources,
		layers:     make(map[LayerRef]canvas.Layer),
		offscreens: make(map[LayerRef]canvas.Offscreen),
		geometries: make(map[GeometryRef]canvas.Geometry),
	}
	for i, cmd := range r.commands {
		if err := p.play(cmd); err != nil {
			return fmt.Errorf("recording: playback command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}

type player struct {
	s          canvas.Session
	pool       *ResourcePool
	layers     map[LayerRef]canvas.Layer
	offscreens map[LayerRef]canvas.Offscreen
	geometries map[GeometryRef]canvas.Geometry
}

func (p *player) play(cmd Command) error {
	switch c := cmd.(type) {
	case SetTransformCommand:
		p.s.SetTransform(c.Matrix)
	case SetAntialiasingCommand:
		p.s.SetAntialiasing(c.Enabled)
	case FlushCommand:
		return p.s.Flush()
	case ClearCommand:
		p.s.Clear(c.Color)
		clear(p.layers)
		clear(p.offscreens)

	case CreateLayerCommand:
		l, err := p.s.CreateLayer(c.Opacity, c.Clip)
		if err != nil {
			return err
		}
		p.layers[c.Layer] = l
	case CloseLayerCommand:
		l, ok := p.layers[c.Layer]
		if !ok {
			return fmt.Errorf("unknown layer %d", c.Layer)
		}
		delete(p.layers, c.Layer)
		return l.Close()
	case BeginOffscreenCommand:
		o, err := p.s.BeginOffscreen(c.Bounds)
		if err != nil {
			return err
		}
		p.offscreens[c.Offscreen] = o
	case CompositeCommand:
		o, ok := p.offscreens[c.Offscreen]
		if !ok {
			return fmt.Errorf("unknown offscreen %d", c.Offscreen)
		}
		delete(p.offscreens, c.Offscreen)
		return o.Composite(c.Opacity, c.Mode)

	case BuildPathCommand:
		pb := p.s.NewPathBuilder()
		for _, f := range p.pool.Figures(c.Geometry) {
			pb.BeginFigure(f.Start)
			for _, seg := range f.Segments {
				switch seg.Op {
				case canvas.SegmentLineTo:
					pb.AddLine(seg.Points[0])
				case canvas.SegmentQuadTo:
					pb.AddQuadratic(seg.Points[0], seg.Points[1])
				case canvas.SegmentCubicTo:
					pb.AddCubic(seg.Points[0], seg.Points[1], seg.Points[2])
				}
			}
			loop := canvas.FigureOpen
			if f.Closed {
				loop = canvas.FigureClosed
			}
			pb.EndFigure(loop)
		}
		p.geometries[c.Geometry] = pb.Build()
	case CreateGroupCommand:
		children := make([]canvas.Geometry, 0, len(c.Children))
		for _, ref := range c.Children {
			g, err := p.geometry(ref)
			if err != nil {
				return err
			}
			children = append(children, g)
		}
		p.geometries[c.Geometry] = p.s.CreateGroup(children, c.Rule)

	case FillGeometryCommand:
		g, err := p.geometry(c.Geometry)
		if err != nil {
			return err
		}
		p.s.FillGeometry(g, p.pool.GetBrush(c.Brush))
	case StrokeGeometryCommand:
		g, err := p.geometry(c.Geometry)
		if err != nil {
			return err
		}
		p.s.StrokeGeometry(g, p.pool.GetBrush(c.Brush), c.Width, c.Style)
	case FillRectCommand:
		p.s.FillRect(c.Rect, p.pool.GetBrush(c.Brush))
	case StrokeRectCommand:
		p.s.StrokeRect(c.Rect, p.pool.GetBrush(c.Brush), c.Width, c.Style)
	case DrawImageCommand:
		p.s.DrawImage(p.pool.GetImage(c.Image), c.Dst, c.Src, c.Opacity, c.Interpolation, c.Mode)
	case MeasureTextCommand:
		_, err := p.s.MeasureText(c.Text, c.Format)
		return err
	case DrawTextCommand:
		return p.s.DrawText(c.Text, c.X, c.Y, p.pool.GetBrush(c.Brush), c.Format)
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
	return nil
}

func (p *player) geometry(ref GeometryRef) (canvas.Geometry, error) {
	g, ok := p.geometries[ref]
	if !ok {
		return nil, fmt.Errorf("unknown geometry %d", ref)
	}
	return g, nil
}
