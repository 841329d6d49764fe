package settings

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gogpu/textpath/shapes"
	"github.com/gogpu/textpath/text"
)

// Shaper names accepted by TextSettings.Shaper.
const (
	ShaperBuiltin = "builtin"
	ShaperGoText  = "gotext"
)

// Settings is the complete configuration.
type Settings struct {
	Text   TextSettings   `toml:"text" yaml:"text"`
	Layout LayoutSettings `toml:"layout" yaml:"layout"`
	Shape  ShapeSettings  `toml:"shape" yaml:"shape"`
	Editor EditorSettings `toml:"editor" yaml:"editor"`
	Render RenderSettings `toml:"render" yaml:"render"`
}

// TextSettings selects the string and how it is shaped.
type TextSettings struct {
	Content string `toml:"content" yaml:"content"`

	// FontFile is a TrueType or OpenType file. Empty selects the bundled
	// Go Regular font.
	FontFile string  `toml:"font_file" yaml:"font_file"`
	Size     float64 `toml:"size" yaml:"size"`
	Tracking float64 `toml:"tracking" yaml:"tracking"`
	Shaper   string  `toml:"shaper" yaml:"shaper"`
	Language string  `toml:"language" yaml:"language"`
}

// LayoutSettings mirrors text.PathLayoutOptions.
type LayoutSettings struct {
	Alignment      string  `toml:"alignment" yaml:"alignment"`
	VerticalOffset float64 `toml:"vertical_offset" yaml:"vertical_offset"`
	FitWidth       bool    `toml:"fit_width" yaml:"fit_width"`
	Rotate         bool    `toml:"rotate" yaml:"rotate"`
}

// ShapeSettings describes the path. Fields that do not apply to Kind are
// ignored. Angles are in degrees.
type ShapeSettings struct {
	Kind    string  `toml:"kind" yaml:"kind"`
	CenterX float64 `toml:"center_x" yaml:"center_x"`
	CenterY float64 `toml:"center_y" yaml:"center_y"`

	// Radius is the circle, polygon and outer star radius, the horizontal
	// ellipse radius and the outer spiral radius.
	Radius float64 `toml:"radius" yaml:"radius"`

	// RadiusY is the vertical ellipse radius. Zero uses Radius.
	RadiusY float64 `toml:"radius_y" yaml:"radius_y"`

	// InnerRadius is the inner star and spiral radius.
	InnerRadius float64 `toml:"inner_radius" yaml:"inner_radius"`

	Width        float64 `toml:"width" yaml:"width"`
	Height       float64 `toml:"height" yaml:"height"`
	CornerRadius float64 `toml:"corner_radius" yaml:"corner_radius"`

	Sides  int     `toml:"sides" yaml:"sides"`
	Points int     `toml:"points" yaml:"points"`
	Turns  float64 `toml:"turns" yaml:"turns"`

	StartAngle float64 `toml:"start_angle" yaml:"start_angle"`

	// File is the shapefile read for the freeform kind.
	File       string `toml:"file" yaml:"file"`
	Iterations int    `toml:"iterations" yaml:"iterations"`
}

// EditorSettings mirrors editor.Config. The canvas starts at the origin.
type EditorSettings struct {
	GridGap          float64 `toml:"grid_gap" yaml:"grid_gap"`
	Closed           bool    `toml:"closed" yaml:"closed"`
	Smoothing        bool    `toml:"smoothing" yaml:"smoothing"`
	SmoothIterations int     `toml:"smooth_iterations" yaml:"smooth_iterations"`
	DeleteTolerance  float64 `toml:"delete_tolerance" yaml:"delete_tolerance"`
	MoveTolerance    float64 `toml:"move_tolerance" yaml:"move_tolerance"`
	CanvasWidth      float64 `toml:"canvas_width" yaml:"canvas_width"`
	CanvasHeight     float64 `toml:"canvas_height" yaml:"canvas_height"`
	Margin           float64 `toml:"margin" yaml:"margin"`
}

// RenderSettings controls image output. Colors are SVG color names.
type RenderSettings struct {
	Width       int    `toml:"width" yaml:"width"`
	Height      int    `toml:"height" yaml:"height"`
	Background  string `toml:"background" yaml:"background"`
	Foreground  string `toml:"foreground" yaml:"foreground"`
	ShowPath    bool   `toml:"show_path" yaml:"show_path"`
	PathColor   string `toml:"path_color" yaml:"path_color"`
	Output      string `toml:"output" yaml:"output"`
	Supersample int    `toml:"supersample" yaml:"supersample"`
}

// Default returns a 400x400 canvas with a circle of radius 150 and centered
// text starting at the top.
func Default() Settings {
	return Settings{
		Text: TextSettings{
			Content:  "The quick brown fox jumps over the lazy dog",
			Size:     24,
			Shaper:   ShaperBuiltin,
			Language: "en",
		},
		Layout: LayoutSettings{
			Alignment: text.AlignCenter.String(),
			Rotate:    true,
		},
		Shape: ShapeSettings{
			Kind:        shapes.KindCircle.String(),
			CenterX:     200,
			CenterY:     200,
			Radius:      150,
			InnerRadius: 60,
			Width:       300,
			Height:      200,
			Sides:       6,
			Points:      5,
			Turns:       3,
			StartAngle:  -90,
			Iterations:  5,
		},
		Editor: EditorSettings{
			SmoothIterations: 5,
			DeleteTolerance:  10,
			MoveTolerance:    20,
			CanvasWidth:      400,
			CanvasHeight:     400,
			Margin:           20,
		},
		Render: RenderSettings{
			Width:       400,
			Height:      400,
			Background:  "white",
			Foreground:  "black",
			PathColor:   "lightgray",
			Output:      "textpath.png",
			Supersample: 2,
		},
	}
}

// Validate reports every problem found, joined.
func (s Settings) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("settings: "+format, args...))
	}

	if !(s.Text.Size > 0) {
		add("text.size must be positive, got %v", s.Text.Size)
	}
	switch strings.ToLower(s.Text.Shaper) {
	case "", ShaperBuiltin, ShaperGoText:
	default:
		add("text.shaper %q is not %q or %q", s.Text.Shaper, ShaperBuiltin, ShaperGoText)
	}
	if _, err := text.ParseAlignment(s.Layout.Alignment); err != nil {
		errs = append(errs, fmt.Errorf("settings: layout.alignment: %w", err))
	}
	if _, err := shapes.ParseKind(s.Shape.Kind); err != nil {
		errs = append(errs, fmt.Errorf("settings: shape.kind: %w", err))
	}
	if s.Editor.CanvasWidth <= 0 || s.Editor.CanvasHeight <= 0 {
		add("editor canvas must be positive, got %vx%v", s.Editor.CanvasWidth, s.Editor.CanvasHeight)
	}
	if s.Editor.GridGap < 0 {
		add("editor.grid_gap must not be negative, got %v", s.Editor.GridGap)
	}
	if s.Render.Width <= 0 || s.Render.Height <= 0 {
		add("render size must be positive, got %dx%d", s.Render.Width, s.Render.Height)
	}
	for _, c := range []struct{ field, name string }{
		{"render.background", s.Render.Background},
		{"render.foreground", s.Render.Foreground},
		{"render.path_color", s.Render.PathColor},
	} {
		if _, ok := colornames.Map[strings.ToLower(c.name)]; !ok {
			add("%s: unknown color %q", c.field, c.name)
		}
	}
	return errors.Join(errs...)
}
