package settings

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/editor"
	"github.com/gogpu/textpath/shapefile"
	"github.com/gogpu/textpath/shapes"
	"github.com/gogpu/textpath/text"
)

// LayoutOptions returns the layout options for text.LayoutOnPath.
func (s Settings) LayoutOptions() (text.PathLayoutOptions, error) {
	a, err := text.ParseAlignment(s.Layout.Alignment)
	if err != nil {
		return text.PathLayoutOptions{}, err
	}
	return text.PathLayoutOptions{
		Alignment:      a,
		VerticalOffset: s.Layout.VerticalOffset,
		FitWidth:       s.Layout.FitWidth,
		Rotate:         s.Layout.Rotate,
	}, nil
}

// ShapeOptions returns the shaping options.
func (s Settings) ShapeOptions() text.ShapeOptions {
	return text.ShapeOptions{Tracking: s.Text.Tracking}
}

// Shaper returns the configured shaper. Unknown names use the builtin one.
func (s Settings) Shaper() text.Shaper {
	if strings.EqualFold(s.Text.Shaper, ShaperGoText) {
		return text.NewGoTextShaper()
	}
	return text.BuiltinShaper{}
}

// FaceOptions returns the options for FontSource.Face.
func (s Settings) FaceOptions() []text.FaceOption {
	if s.Text.Language == "" {
		return nil
	}
	return []text.FaceOption{text.WithLanguage(s.Text.Language)}
}

// EditorConfig returns the editor configuration.
func (s Settings) EditorConfig() editor.Config {
	e := s.Editor
	return editor.Config{
		GridGap:          e.GridGap,
		Closed:           e.Closed,
		Smoothing:        e.Smoothing,
		SmoothIterations: e.SmoothIterations,
		DeleteTolerance:  e.DeleteTolerance,
		MoveTolerance:    e.MoveTolerance,
		Canvas:           textpath.RectXYWH(0, 0, e.CanvasWidth, e.CanvasHeight),
		Margin:           e.Margin,
	}
}

// BuildShape returns the configured shape generator. The freeform kind
// reads its points from Shape.File.
func (s Settings) BuildShape() (shapes.Shape, error) {
	sh := s.Shape
	kind, err := shapes.ParseKind(sh.Kind)
	if err != nil {
		return nil, err
	}
	center := textpath.Pt(sh.CenterX, sh.CenterY)
	start := sh.StartAngle * math.Pi / 180
	bounds := textpath.RectXYWH(sh.CenterX-sh.Width/2, sh.CenterY-sh.Height/2, sh.Width, sh.Height)

	switch kind {
	case shapes.KindCircle:
		return shapes.Circle{Center: center, Radius: sh.Radius, Start: start}, nil
	case shapes.KindEllipse:
		ry := sh.RadiusY
		if ry == 0 {
			ry = sh.Radius
		}
		return shapes.Ellipse{Center: center, RX: sh.Radius, RY: ry, Start: start}, nil
	case shapes.KindRectangle:
		return shapes.Rectangle{Bounds: bounds, Radius: sh.CornerRadius}, nil
	case shapes.KindTriangle:
		return shapes.Triangle{Bounds: bounds}, nil
	case shapes.KindPolygon:
		return shapes.Polygon{Center: center, Radius: sh.Radius, Sides: sh.Sides, Start: start}, nil
	case shapes.KindStar:
		return shapes.Star{Center: center, Outer: sh.Radius, Inner: sh.InnerRadius, Points: sh.Points, Start: start}, nil
	case shapes.KindSpiral:
		return shapes.Spiral{Center: center, Inner: sh.InnerRadius, Outer: sh.Radius, Turns: sh.Turns, Start: start}, nil
	case shapes.KindFreeform:
		if sh.File == "" {
			return nil, fmt.Errorf("settings: shape.file is required for %s", kind)
		}
		f, err := shapefile.Load(sh.File)
		if err != nil {
			return nil, err
		}
		return shapes.Freeform{Points: f.Points, Closed: f.Closed, Iterations: sh.Iterations}, nil
	}
	return nil, fmt.Errorf("settings: shape kind %s has no generator", kind)
}

// Color looks up an SVG color name, falling back to fallback.
func Color(name string, fallback color.Color) color.Color {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c
	}
	return fallback
}

// EditorRenderOptions returns options for editor.Editor.Render.
func (s Settings) EditorRenderOptions() editor.RenderOptions {
	o := editor.DefaultRenderOptions()
	o.Width, o.Height = s.Render.Width, s.Render.Height
	o.Supersample = s.Render.Supersample
	o.Background = Color(s.Render.Background, o.Background)
	o.Stroke = Color(s.Render.Foreground, o.Stroke)
	o.ShowGrid = s.Editor.GridGap > 0
	return o
}
