// path_builder.go

package textpath

import "math"

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining. The first error is kept and
// reported by Build; later commands are ignored.
type PathBuilder struct {
	segments []Segment
	start    Point
	current  Point
	hasPoint bool
	err      error
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{segments: make([]Segment, 0, 16)}
}

// MoveTo sets the starting point. It may only be called before the first
// drawing command, since a Path is a single contiguous run.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	if b.err != nil {
		return b
	}
	if len(b.segments) > 0 {
		b.err = ErrDisjointSubpath
		return b
	}
	b.start = Pt(x, y)
	b.current = b.start
	b.hasPoint = true
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	if !b.ready() {
		return b
	}
	pt := Pt(x, y)
	b.segments = append(b.segments, Line{P0: b.current, P1: pt})
	b.current = pt
	return b
}

// QuadTo draws a quadratic Bezier curve, stored as its cubic elevation.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	if !b.ready() {
		return b
	}
	q := QuadBez{P0: b.current, P1: Pt(cx, cy), P2: Pt(x, y)}
	b.segments = append(b.segments, q.Raise())
	b.current = q.P2
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	if !b.ready() {
		return b
	}
	c := CubicBez{P0: b.current, P1: Pt(c1x, c1y), P2: Pt(c2x, c2y), P3: Pt(x, y)}
	b.segments = append(b.segments, c)
	b.current = c.P3
	return b
}

// Close draws a line back to the starting point if the path is not
// already there.
func (b *PathBuilder) Close() *PathBuilder {
	if !b.ready() {
		return b
	}
	if b.current != b.start {
		b.segments = append(b.segments, Line{P0: b.current, P1: b.start})
		b.current = b.start
	}
	return b
}

func (b *PathBuilder) ready() bool {
	if b.err != nil {
		return false
	}
	if !b.hasPoint {
		b.err = ErrNoCurrentPoint
		return false
	}
	return true
}

// Arc adds a circular arc around (cx, cy) from angle1 to angle2 (radians).
// Angles increase clockwise on a y-down canvas. If the builder has no
// current point the arc starts the path; otherwise a line joins the current
// point to the arc start.
func (b *PathBuilder) Arc(cx, cy, r, angle1, angle2 float64) *PathBuilder {
	return b.EllipticalArc(cx, cy, r, r, angle1, angle2)
}

// EllipticalArc adds an axis-aligned elliptical arc. See Arc.
func (b *PathBuilder) EllipticalArc(cx, cy, rx, ry, angle1, angle2 float64) *PathBuilder {
	if b.err != nil {
		return b
	}
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	sin1, cos1 := math.Sincos(angle1)
	startPt := Pt(cx+rx*cos1, cy+ry*sin1)
	if !b.hasPoint {
		b.MoveTo(startPt.X, startPt.Y)
	} else if !b.current.ApproxEqual(startPt, contiguityEpsilon) {
		b.LineTo(startPt.X, startPt.Y)
	}
	if angle2 == angle1 {
		return b
	}

	// At most 90 degrees per cubic.
	const maxAngle = math.Pi / 2
	n := int(math.Ceil((angle2-angle1)/maxAngle - 1e-9))
	step := (angle2 - angle1) / float64(n)
	for i := 0; i < n; i++ {
		a1 := angle1 + float64(i)*step
		b.arcSegment(cx, cy, rx, ry, a1, a1+step)
	}
	return b
}

// arcSegment adds a single arc segment of at most 90 degrees.
func (b *PathBuilder) arcSegment(cx, cy, rx, ry, a1, a2 float64) {
	// Control distance for a unit arc of angle a2-a1.
	k := 4.0 / 3.0 * math.Tan((a2-a1)/4)

	sin1, cos1 := math.Sincos(a1)
	sin2, cos2 := math.Sincos(a2)

	x2 := cx + rx*cos2
	y2 := cy + ry*sin2
	c1x := b.current.X - k*rx*sin1
	c1y := b.current.Y + k*ry*cos1
	c2x := x2 + k*rx*sin2
	c2y := y2 - k*ry*cos2

	b.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// Ellipse adds a full ellipse starting at angle start, running clockwise
// on a y-down canvas.
func (b *PathBuilder) Ellipse(cx, cy, rx, ry, start float64) *PathBuilder {
	b.EllipticalArc(cx, cy, rx, ry, start, start+2*math.Pi)
	if b.err == nil {
		// Snap the end onto the start to remove rounding drift.
		b.closeExactly()
	}
	return b
}

// Circle adds a full circle starting at angle start.
func (b *PathBuilder) Circle(cx, cy, r, start float64) *PathBuilder {
	return b.Ellipse(cx, cy, r, r, start)
}

func (b *PathBuilder) closeExactly() {
	n := len(b.segments)
	if n == 0 {
		return
	}
	if c, ok := b.segments[n-1].(CubicBez); ok {
		c.P3 = b.start
		b.segments[n-1] = c
	}
	b.current = b.start
}

// Rect adds a rectangle to the path, starting at its top-left corner.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	return b.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// RoundRect adds a rectangle with rounded corners.
func (b *PathBuilder) RoundRect(x, y, w, h, r float64) *PathBuilder {
	r = min(r, min(w, h)/2)
	if r <= 0 {
		return b.Rect(x, y, w, h)
	}
	b.MoveTo(x+r, y)
	b.LineTo(x+w-r, y)
	b.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	b.LineTo(x+w, y+h-r)
	b.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	b.LineTo(x+r, y+h)
	b.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	b.LineTo(x, y+r)
	b.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	return b.Close()
}

// Polyline adds straight lines through points. The first point becomes the
// start when the builder has no current point.
func (b *PathBuilder) Polyline(points []Point) *PathBuilder {
	for i, p := range points {
		if i == 0 && !b.hasPoint {
			b.MoveTo(p.X, p.Y)
			continue
		}
		b.LineTo(p.X, p.Y)
	}
	return b
}

// Build returns the constructed path, or the first error recorded.
func (b *PathBuilder) Build() (*Path, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewPath(b.segments...)
}
