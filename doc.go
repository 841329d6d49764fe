// Package textpath lays text out along arbitrary curves.
//
// # Overview
//
// A [Path] is a contiguous run of [Line] and [CubicBez] segments produced by
// a shape generator or by the interactive editor. [NewArcLengthPath] flattens
// it into a table of cumulative arc-length checkpoints, after which any
// distance along the curve maps to a position and tangent angle:
//
//	p, err := textpath.BuildPath().Circle(200, 200, 150, -math.Pi/2).Build()
//	if err != nil {
//	    return err
//	}
//	ap := textpath.NewArcLengthPath(p)
//	s, err := ap.At(ap.Length() / 4)
//
// The text sub-package walks the index while placing shaped glyphs. The
// editor sub-package builds free-form polylines and smooths them with
// [Chaikin].
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases clockwise on screen
//
// # Concurrency
//
// Paths and arc-length indexes are immutable and may be shared between
// goroutines. Cursors, editors and glyph layouts are owned by one goroutine
// at a time. The package keeps no mutable global state besides the logger.
package textpath
