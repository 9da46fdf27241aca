package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/canvas"
)

// Scene is a TOML scene description: a surface and a list of canvas
// operations applied in order.
type Scene struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
	Ops        []Op   `toml:"op"`
}

// Op is one canvas operation. Kind selects the operation; the other
// fields are read as the kind needs them.
type Op struct {
	Kind string `toml:"kind"`

	// Geometry
	Rect     []float64 `toml:"rect"`
	Src      []float64 `toml:"src"`
	X        float64   `toml:"x"`
	Y        float64   `toml:"y"`
	Matrix   []float64 `toml:"matrix"`
	Path     string    `toml:"path"`
	FillRule string    `toml:"fill_rule"`
	Flags    []string  `toml:"flags"`
	Char     string    `toml:"char"`
	Image    string    `toml:"image"`

	// Paint
	Color       string        `toml:"color"`
	Alpha       *int          `toml:"alpha"`
	Style       string        `toml:"style"`
	StrokeWidth float64       `toml:"stroke_width"`
	Cap         string        `toml:"cap"`
	Join        string        `toml:"join"`
	Dash        []float64     `toml:"dash"`
	Antialias   *bool         `toml:"antialias"`
	Filter      bool          `toml:"filter"`
	Blend       string        `toml:"blend"`
	Gradient    *GradientSpec `toml:"gradient"`
	Family      string        `toml:"family"`
	Size        float64       `toml:"size"`
	Bold        bool          `toml:"bold"`
	Italic      bool          `toml:"italic"`
}

// GradientSpec describes a linear (Points = x0, y0, x1, y1) or radial
// (Points = cx, cy, r) gradient shader.
type GradientSpec struct {
	Kind      string    `toml:"kind"`
	Points    []float64 `toml:"points"`
	Colors    []string  `toml:"colors"`
	Positions []float64 `toml:"positions"`
}

// LoadScene reads and decodes a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	return ParseScene(string(data))
}

// ParseScene decodes a scene. Unknown keys are rejected.
func ParseScene(data string) (*Scene, error) {
	sc := &Scene{Width: 256, Height: 256}
	md, err := toml.Decode(data, sc)
	if err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("undecoded fields in scene: %v", undecoded)
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return nil, fmt.Errorf("invalid scene size %dx%d", sc.Width, sc.Height)
	}
	return sc, nil
}

func rectOf(v []float64) (canvas.Rect, error) {
	if len(v) != 4 {
		return canvas.Rect{}, fmt.Errorf("rect needs 4 values (x, y, w, h), got %d", len(v))
	}
	return canvas.NewRect(v[0], v[1], v[2], v[3]), nil
}

func matrixOf(v []float64) (canvas.Matrix, error) {
	if len(v) != 6 {
		return canvas.Matrix{}, fmt.Errorf("matrix needs 6 values (a, b, c, d, e, f), got %d", len(v))
	}
	return canvas.Matrix{A: v[0], B: v[1], C: v[2], D: v[3], E: v[4], F: v[5]}, nil
}

func flagsOf(names []string) (canvas.SaveFlags, error) {
	if len(names) == 0 {
		return canvas.SaveMatrix | canvas.SaveClip, nil
	}
	var f canvas.SaveFlags
	for _, n := range names {
		switch strings.ToLower(n) {
		case "matrix":
			f |= canvas.SaveMatrix
		case "clip":
			f |= canvas.SaveClip
		case "cliptolayer", "clip_to_layer":
			f |= canvas.SaveClipToLayer
		case "all":
			f |= canvas.SaveAll
		default:
			return 0, fmt.Errorf("unknown save flag %q", n)
		}
	}
	return f, nil
}

func blendOf(name string) (canvas.BlendMode, error) {
	if name == "" {
		return canvas.BlendSourceOver, nil
	}
	for m := canvas.BlendMode(0); m.Valid(); m++ {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown blend mode %q", name)
}

// paintOf builds the paint of an op.
func paintOf(op *Op) (*canvas.Paint, error) {
	p := canvas.NewPaint()
	if op.Antialias == nil || *op.Antialias {
		p.Flags |= canvas.AntiAliasFlag
	}
	if op.Filter {
		p.Flags |= canvas.FilterBitmapFlag
	}
	if op.Color != "" {
		p.Color = canvas.Hex(op.Color)
	}
	if op.Alpha != nil {
		if *op.Alpha < 0 || *op.Alpha > 255 {
			return nil, fmt.Errorf("alpha %d out of range 0..255", *op.Alpha)
		}
		p.SetAlpha(uint8(*op.Alpha))
	}

	switch strings.ToLower(op.Style) {
	case "", "fill":
	case "stroke":
		p.Style = canvas.StyleStroke
	default:
		return nil, fmt.Errorf("unknown style %q", op.Style)
	}
	if op.StrokeWidth > 0 {
		p.StrokeWidth = op.StrokeWidth
	}
	switch strings.ToLower(op.Cap) {
	case "", "butt":
	case "round":
		p.StrokeCap = canvas.LineCapRound
	case "square":
		p.StrokeCap = canvas.LineCapSquare
	default:
		return nil, fmt.Errorf("unknown cap %q", op.Cap)
	}
	switch strings.ToLower(op.Join) {
	case "", "miter":
	case "round":
		p.StrokeJoin = canvas.LineJoinRound
	case "bevel":
		p.StrokeJoin = canvas.LineJoinBevel
	default:
		return nil, fmt.Errorf("unknown join %q", op.Join)
	}
	if len(op.Dash) > 0 {
		if d := canvas.NewDashPathEffect(0, op.Dash...); d != nil {
			p.PathEffect = d
		}
	}

	mode, err := blendOf(op.Blend)
	if err != nil {
		return nil, err
	}
	p.BlendMode = mode

	if op.Gradient != nil {
		sh, err := shaderOf(op.Gradient)
		if err != nil {
			return nil, err
		}
		p.Shader = sh
	}

	p.Typeface.Family = op.Family
	if op.Bold {
		p.Typeface.Weight = canvas.FontWeightBold
	}
	if op.Italic {
		p.Typeface.Style = canvas.FontStyleItalic
	}
	if op.Size > 0 {
		p.TextSize = op.Size
	}
	return p, nil
}

func shaderOf(g *GradientSpec) (canvas.Shader, error) {
	colors := make([]canvas.RGBA, len(g.Colors))
	for i, c := range g.Colors {
		colors[i] = canvas.Hex(c)
	}
	if len(colors) < 2 {
		return nil, fmt.Errorf("gradient needs at least 2 colors")
	}
	switch strings.ToLower(g.Kind) {
	case "", "linear":
		if len(g.Points) != 4 {
			return nil, fmt.Errorf("linear gradient needs 4 points values")
		}
		return canvas.NewLinearGradient(g.Points[0], g.Points[1], g.Points[2], g.Points[3], colors, g.Positions), nil
	case "radial":
		if len(g.Points) != 3 {
			return nil, fmt.Errorf("radial gradient needs 3 points values")
		}
		return canvas.NewRadialGradient(g.Points[0], g.Points[1], g.Points[2], colors, g.Positions), nil
	default:
		return nil, fmt.Errorf("unknown gradient kind %q", g.Kind)
	}
}

// parsePath parses SVG-like path data with absolute commands
// M, L, Q, C and Z, e.g. "M 0 0 L 10 0 L 10 10 Z".
func parsePath(data string) (*canvas.Path, error) {
	fields := strings.Fields(strings.NewReplacer(",", " ").Replace(data))
	p := canvas.NewPath()
	var cmd string
	nums := func(i, n int) ([]float64, error) {
		if i+n > len(fields) {
			return nil, fmt.Errorf("command %s needs %d numbers", cmd, n)
		}
		out := make([]float64, n)
		for j := range out {
			v, err := strconv.ParseFloat(fields[i+j], 64)
			if err != nil {
				return nil, fmt.Errorf("command %s: %w", cmd, err)
			}
			out[j] = v
		}
		return out, nil
	}

	for i := 0; i < len(fields); {
		cmd = strings.ToUpper(fields[i])
		i++
		var n int
		switch cmd {
		case "M", "L":
			n = 2
		case "Q":
			n = 4
		case "C":
			n = 6
		case "Z":
			p.Close()
			continue
		default:
			return nil, fmt.Errorf("unknown path command %q", fields[i-1])
		}
		v, err := nums(i, n)
		if err != nil {
			return nil, err
		}
		i += n
		switch cmd {
		case "M":
			p.MoveTo(v[0], v[1])
		case "L":
			p.LineTo(v[0], v[1])
		case "Q":
			p.QuadTo(v[0], v[1], v[2], v[3])
		case "C":
			p.CubicTo(v[0], v[1], v[2], v[3], v[4], v[5])
		}
	}
	return p, nil
}
