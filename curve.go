package textpath

import "math"

// Segment is one piece of a Path. It is a closed sum type: the only
// implementations are Line and CubicBez, so a type switch over them is
// exhaustive.
type Segment interface {
	// Start returns the point at t=0.
	Start() Point

	// End returns the point at t=1.
	End() Point

	// Eval evaluates the segment at parameter t (0 to 1).
	Eval(t float64) Point

	// Tangent returns the (unnormalized) derivative at parameter t.
	Tangent(t float64) Point

	// Arclen returns the arc length of the segment to within accuracy.
	Arclen(accuracy float64) float64

	// BoundingBox returns the tight axis-aligned bounding box.
	BoundingBox() Rect

	// Transform returns the segment with m applied to every control point.
	Transform(m Matrix) Segment

	// Reversed returns the segment traversed from End to Start.
	Reversed() Segment

	isSegment()
}

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// NewLine creates a new line segment.
func NewLine(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

func (Line) isSegment() {}

// Start returns the starting point of the line.
func (l Line) Start() Point {
	return l.P0
}

// End returns the ending point of the line.
func (l Line) End() Point {
	return l.P1
}

// Eval evaluates the line at parameter t (0 to 1).
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Tangent returns the direction of the line. It does not depend on t.
func (l Line) Tangent(float64) Point {
	return l.P1.Sub(l.P0)
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Arclen implements Segment. Lines are measured exactly.
func (l Line) Arclen(float64) float64 {
	return l.Length()
}

// BoundingBox returns the axis-aligned bounding box of the line.
func (l Line) BoundingBox() Rect {
	return NewRect(l.P0, l.P1)
}

// Transform implements Segment.
func (l Line) Transform(m Matrix) Segment {
	return Line{P0: m.TransformPoint(l.P0), P1: m.TransformPoint(l.P1)}
}

// Reversed returns a copy of the line with endpoints swapped.
func (l Line) Reversed() Segment {
	return Line{P0: l.P1, P1: l.P0}
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve. It is not a Segment of its
// own; paths store quadratics as their exact cubic elevation.
type QuadBez struct {
	P0, P1, P2 Point
}

// Raise elevates the quadratic to an exact cubic Bezier curve.
func (q QuadBez) Raise() CubicBez {
	// C1 = P0 + 2/3 (P1 - P0), C2 = P2 + 2/3 (P1 - P2)
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Lerp(q.P1, 2.0/3.0),
		P2: q.P2.Lerp(q.P1, 2.0/3.0),
		P3: q.P2,
	}
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

func (CubicBez) isSegment() {}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Point {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez) End() Point {
	return c.P3
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Tangent returns the first derivative at parameter t.
func (c CubicBez) Tangent(t float64) Point {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	// 3[(1-t)^2 (P1-P0) + 2(1-t)t (P2-P1) + t^2 (P3-P2)]
	return d0.Mul(3 * mt * mt).Add(d1.Mul(6 * mt * t)).Add(d2.Mul(3 * t * t))
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Legendre-Gauss abscissae and weights on [-1, 1], 8 points.
var gaussLegendre8 = [8][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

// maxArclenDepth bounds the adaptive subdivision in Arclen.
const maxArclenDepth = 16

// Arclen returns the arc length of the curve.
//
// The integral of |B'(t)| is estimated with 8-point Legendre-Gauss
// quadrature and refined by subdivision until both halves agree with the
// whole to within accuracy.
func (c CubicBez) Arclen(accuracy float64) float64 {
	if accuracy <= 0 {
		accuracy = 1e-9
	}
	return c.arclen(c.gauss8(), accuracy, 0)
}

func (c CubicBez) arclen(whole, accuracy float64, depth int) float64 {
	left, right := c.Subdivide()
	l, r := left.gauss8(), right.gauss8()
	if depth >= maxArclenDepth || math.Abs(l+r-whole) <= accuracy {
		return l + r
	}
	return left.arclen(l, accuracy/2, depth+1) + right.arclen(r, accuracy/2, depth+1)
}

func (c CubicBez) gauss8() float64 {
	var sum float64
	for _, wx := range gaussLegendre8 {
		t := 0.5 * (wx[1] + 1)
		sum += wx[0] * c.Tangent(t).Length()
	}
	return 0.5 * sum
}

// BoundingBox returns the bounding box of the control polygon sampled at
// the curve's extrema.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.extrema() {
		p := c.Eval(t)
		bbox = bbox.Union(NewRect(p, p))
	}
	return bbox
}

// extrema returns the parameters in (0, 1) where either coordinate of the
// derivative vanishes.
func (c CubicBez) extrema() []float64 {
	result := make([]float64, 0, 4)
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	result = append(result, quadRootsInUnit(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, quadRootsInUnit(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)
	return result
}

// quadRootsInUnit solves a*t^2 + b*t + c = 0 for t in (0, 1).
func quadRootsInUnit(a, b, c float64) []float64 {
	const eps = 1e-12
	var roots []float64
	add := func(t float64) {
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
	}
	if math.Abs(a) < eps {
		if math.Abs(b) > eps {
			add(-c / b)
		}
		return roots
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return roots
	}
	sq := math.Sqrt(disc)
	add((-b + sq) / (2 * a))
	add((-b - sq) / (2 * a))
	return roots
}

// Transform implements Segment.
func (c CubicBez) Transform(m Matrix) Segment {
	return CubicBez{
		P0: m.TransformPoint(c.P0),
		P1: m.TransformPoint(c.P1),
		P2: m.TransformPoint(c.P2),
		P3: m.TransformPoint(c.P3),
	}
}

// Reversed returns the curve traversed from P3 to P0.
func (c CubicBez) Reversed() Segment {
	return CubicBez{P0: c.P3, P1: c.P2, P2: c.P1, P3: c.P0}
}
