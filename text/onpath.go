package text

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/textpath"
)

// Alignment selects where a run sits along a path.
type Alignment int

const (
	// AlignNatural starts the run at the beginning of the path.
	AlignNatural Alignment = iota

	// AlignCenter centers the run on the path.
	AlignCenter

	// AlignRight ends the run at the end of the path.
	AlignRight

	// AlignJustified spreads the glyphs over the whole path.
	AlignJustified
)

// String returns the lowercase name used in configuration files.
func (a Alignment) String() string {
	switch a {
	case AlignNatural:
		return "natural"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustified:
		return "justified"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// ParseAlignment parses an alignment name. Matching is case-insensitive and
// accepts "left" for natural and "justify" for justified.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "natural", "left":
		return AlignNatural, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	case "justified", "justify":
		return AlignJustified, nil
	}
	return AlignNatural, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

// PathLayoutOptions configures LayoutOnPath.
type PathLayoutOptions struct {
	Alignment Alignment

	// VerticalOffset shifts glyphs perpendicular to the path, as a
	// fraction of the run's line height. Positive values move toward the
	// right-hand side of the direction of travel.
	VerticalOffset float64

	// FitWidth shrinks a run that is longer than the path so that it
	// fits.
	FitWidth bool

	// Rotate turns each glyph to follow the path tangent. When false the
	// glyphs stay upright.
	Rotate bool
}

// DefaultPathLayoutOptions returns natural alignment with rotated glyphs.
func DefaultPathLayoutOptions() PathLayoutOptions {
	return PathLayoutOptions{Rotate: true}
}

// LinePlan is the outcome of fitting a run to a path length, before any
// glyph is placed.
type LinePlan struct {
	StringWidth    float64
	PathLength     float64
	Scale          float64
	RemainingSpace float64

	// Alignment is the effective alignment. A run that overflows the path
	// is always justified.
	Alignment Alignment

	// LinePos is the arc-length offset where the first glyph starts.
	LinePos float64

	// CharSpacing is the gap added between consecutive glyphs. It is
	// negative when an overflowing run is compressed.
	CharSpacing float64
}

// PlanLine computes scale, alignment and spacing for run on a path of the
// given length.
//
// With FitWidth set and a run longer than the path, the run is scaled down
// to fill the path and no slack remains. Otherwise a run longer than the
// path is forced to justified alignment so that its spacing compresses.
func PlanLine(pathLength float64, run *GlyphRun, opts PathLayoutOptions) LinePlan {
	plan := LinePlan{
		StringWidth: run.Width(),
		PathLength:  pathLength,
		Scale:       1,
		Alignment:   opts.Alignment,
	}

	if opts.FitWidth && pathLength < plan.StringWidth {
		plan.Scale = min(1, pathLength/plan.StringWidth)
	} else {
		plan.RemainingSpace = pathLength - plan.StringWidth
	}

	if plan.RemainingSpace < 0 {
		plan.Alignment = AlignJustified
	}

	switch plan.Alignment {
	case AlignCenter:
		plan.LinePos = plan.RemainingSpace / 2
	case AlignRight:
		plan.LinePos = plan.RemainingSpace
	case AlignJustified:
		n := run.Len()
		plan.CharSpacing = plan.RemainingSpace / float64(max(2, n-1))
		if n == 1 {
			// A lone glyph is pushed to the end rather than left at 0.
			plan.LinePos = plan.RemainingSpace
		}
	}
	return plan
}

// PlacedGlyph is a glyph positioned on a path.
type PlacedGlyph struct {
	Glyph Glyph

	// Index is the glyph's position in the run.
	Index int

	// X is the pen position of the glyph within the run.
	X float64

	// Offset is the arc length at which the path was sampled.
	Offset float64

	// Pos and Angle are the path sample at Offset.
	Pos   textpath.Point
	Angle float64

	// Transform maps run space (y up, this glyph's origin at (X, 0)) to
	// device space.
	Transform textpath.Matrix
}

// DeviceOutline returns the glyph outline mapped to device space.
func (pg PlacedGlyph) DeviceOutline(face *Face) (*GlyphOutline, error) {
	o, err := face.Outline(pg.Glyph.ID)
	if err != nil {
		return nil, err
	}
	return o.Transform(textpath.Translate(pg.X, 0).Then(pg.Transform)), nil
}

// LayoutOnPath places the glyphs of run along ap.
//
// Each glyph is centered on the path at its arc-length offset. Layout stops
// at the first glyph whose offset falls outside the path, so the result may
// hold fewer glyphs than the run. A degenerate path or an empty run yields
// nil.
func LayoutOnPath(ap *textpath.ArcLengthPath, run *GlyphRun, opts PathLayoutOptions) []PlacedGlyph {
	if ap == nil || ap.IsDegenerate() || run.Len() == 0 {
		return nil
	}

	plan := PlanLine(ap.Length(), run, opts)
	cur := ap.Cursor()
	placed := make([]PlacedGlyph, 0, run.Len())

	linePos := plan.LinePos
	var running float64
	for i, g := range run.Glyphs {
		width := g.Width()
		offset := linePos + width/2
		s, err := cur.At(offset)
		if err != nil {
			textpath.Logger().Debug("text: layout truncated",
				slog.Int("placed", i),
				slog.Int("glyphs", run.Len()),
				slog.Float64("offset", offset),
				slog.Float64("length", ap.Length()))
			break
		}

		m := textpath.FlipY().
			Then(textpath.Translate(-running-width/(2*plan.Scale), run.LineHeight*(0.5+opts.VerticalOffset))).
			Then(textpath.Scale(plan.Scale, plan.Scale))
		if opts.Rotate {
			m = m.Then(textpath.Rotate(s.Angle))
		}
		m = m.Then(textpath.Translate(s.Pos.X, s.Pos.Y))

		placed = append(placed, PlacedGlyph{
			Glyph:     g,
			Index:     i,
			X:         running,
			Offset:    offset,
			Pos:       s.Pos,
			Angle:     s.Angle,
			Transform: m,
		})

		running += width + g.Kerning
		linePos += (plan.CharSpacing + width + g.Kerning) * plan.Scale
	}
	return placed
}
