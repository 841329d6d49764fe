package editor

import "github.com/gogpu/textpath"

// Default tolerances in canvas units.
const (
	DefaultDeleteTolerance = 10
	DefaultMoveTolerance   = 20
)

// Config holds the initial editor state.
type Config struct {
	// GridGap snaps added points to a grid of this spacing. Zero disables
	// snapping.
	GridGap float64

	Closed           bool
	Smoothing        bool
	SmoothIterations int

	DeleteTolerance float64
	MoveTolerance   float64

	// Canvas is the drawing area. It is also the initial viewport.
	Canvas textpath.Rect

	// Margin is kept clear around the shape by FitCanvas.
	Margin float64
}

// DefaultConfig returns a 400x400 canvas with the default tolerances and
// five smoothing passes.
func DefaultConfig() Config {
	return Config{
		SmoothIterations: textpath.DefaultChaikinIterations,
		DeleteTolerance:  DefaultDeleteTolerance,
		MoveTolerance:    DefaultMoveTolerance,
		Canvas:           textpath.RectXYWH(0, 0, 400, 400),
		Margin:           20,
	}
}

// normalize replaces unusable values with defaults.
func (c Config) normalize() Config {
	d := DefaultConfig()
	if c.DeleteTolerance <= 0 {
		c.DeleteTolerance = d.DeleteTolerance
	}
	if c.MoveTolerance <= 0 {
		c.MoveTolerance = d.MoveTolerance
	}
	if c.Canvas.IsEmpty() {
		c.Canvas = d.Canvas
	}
	c.GridGap = max(c.GridGap, 0)
	c.SmoothIterations = max(c.SmoothIterations, 0)
	c.Margin = max(c.Margin, 0)
	return c
}
