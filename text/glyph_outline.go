package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textpath"
)

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// pointCount returns how many entries of OutlineSegment.Points op uses.
func (op OutlineOp) pointCount() int {
	switch op {
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 1
	}
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]textpath.Point
}

// GlyphOutline is the vector outline of a glyph: one or more closed
// contours, each starting with a MoveTo.
type GlyphOutline struct {
	GID      GlyphID
	Segments []OutlineSegment

	// Bounds covers every point, including control points.
	Bounds textpath.Rect
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Transform returns a new outline with every point mapped through m.
func (o *GlyphOutline) Transform(m textpath.Matrix) *GlyphOutline {
	if o == nil {
		return nil
	}
	out := &GlyphOutline{
		GID:      o.GID,
		Segments: make([]OutlineSegment, len(o.Segments)),
	}
	pts := make([]textpath.Point, 0, len(o.Segments)*2)
	for i, seg := range o.Segments {
		out.Segments[i].Op = seg.Op
		for j, n := 0, seg.Op.pointCount(); j < n; j++ {
			p := m.TransformPoint(seg.Points[j])
			out.Segments[i].Points[j] = p
			pts = append(pts, p)
		}
	}
	out.Bounds = textpath.BoundingRect(pts)
	return out
}

// extractOutline loads gid from an sfnt font and flips it to y-up.
func extractOutline(f *sfnt.Font, buf *sfnt.Buffer, gid GlyphID, ppem fixed.Int26_6) (*GlyphOutline, error) {
	segments, err := f.LoadGlyph(buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, err
	}

	o := &GlyphOutline{
		GID:      gid,
		Segments: make([]OutlineSegment, 0, len(segments)),
	}
	pts := make([]textpath.Point, 0, len(segments)*2)
	for _, seg := range segments {
		var out OutlineSegment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
		case sfnt.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
		}
		for j, n := 0, out.Op.pointCount(); j < n; j++ {
			out.Points[j] = yUp(seg.Args[j])
			pts = append(pts, out.Points[j])
		}
		o.Segments = append(o.Segments, out)
	}
	o.Bounds = textpath.BoundingRect(pts)
	return o, nil
}

// yUp converts an sfnt point (y down) to outline space (y up).
func yUp(p fixed.Point26_6) textpath.Point {
	return textpath.Pt(fixedToFloat(p.X), -fixedToFloat(p.Y))
}
