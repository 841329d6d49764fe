package shapes

import (
	"math"

	"github.com/gogpu/textpath"
)

// spiralSteps is the number of chords per turn of a Spiral.
const spiralSteps = 72

// Circle is a full circle starting at angle Start.
type Circle struct {
	Center textpath.Point
	Radius float64
	Start  float64
}

func (Circle) Kind() Kind { return KindCircle }
func (Circle) sealed()    {}

func (c Circle) Path() (*textpath.Path, error) {
	if !(c.Radius > 0) {
		return nil, invalid(KindCircle, "radius %v", c.Radius)
	}
	return textpath.BuildPath().Circle(c.Center.X, c.Center.Y, c.Radius, c.Start).Build()
}

// Ellipse is an axis-aligned ellipse starting at angle Start.
type Ellipse struct {
	Center textpath.Point
	RX, RY float64
	Start  float64
}

func (Ellipse) Kind() Kind { return KindEllipse }
func (Ellipse) sealed()    {}

func (e Ellipse) Path() (*textpath.Path, error) {
	if !(e.RX > 0 && e.RY > 0) {
		return nil, invalid(KindEllipse, "radii %v, %v", e.RX, e.RY)
	}
	return textpath.BuildPath().Ellipse(e.Center.X, e.Center.Y, e.RX, e.RY, e.Start).Build()
}

// Rectangle starts at the top-left corner, after the corner radius.
type Rectangle struct {
	Bounds textpath.Rect
	Radius float64
}

func (Rectangle) Kind() Kind { return KindRectangle }
func (Rectangle) sealed()    {}

func (r Rectangle) Path() (*textpath.Path, error) {
	if r.Bounds.IsEmpty() {
		return nil, invalid(KindRectangle, "empty bounds")
	}
	b := r.Bounds
	return textpath.BuildPath().RoundRect(b.Min.X, b.Min.Y, b.Width(), b.Height(), max(r.Radius, 0)).Build()
}

// Triangle is the isosceles triangle inscribed in Bounds with its apex at
// the top. It starts at the bottom-left corner.
type Triangle struct {
	Bounds textpath.Rect
}

func (Triangle) Kind() Kind { return KindTriangle }
func (Triangle) sealed()    {}

func (t Triangle) Path() (*textpath.Path, error) {
	if t.Bounds.IsEmpty() {
		return nil, invalid(KindTriangle, "empty bounds")
	}
	b := t.Bounds
	return textpath.Polyline([]textpath.Point{
		{X: b.Min.X, Y: b.Max.Y},
		{X: b.Center().X, Y: b.Min.Y},
		b.Max,
	}, true), nil
}

// Polygon is a regular polygon with its first vertex at angle Start.
type Polygon struct {
	Center textpath.Point
	Radius float64
	Sides  int
	Start  float64
}

func (Polygon) Kind() Kind { return KindPolygon }
func (Polygon) sealed()    {}

func (p Polygon) Path() (*textpath.Path, error) {
	if p.Sides < 3 {
		return nil, invalid(KindPolygon, "%d sides", p.Sides)
	}
	if !(p.Radius > 0) {
		return nil, invalid(KindPolygon, "radius %v", p.Radius)
	}
	return textpath.Polyline(ring(p.Center, p.Sides, p.Start, func(int) float64 { return p.Radius }), true), nil
}

// Star alternates between Outer and Inner radius, starting with an outer
// point at angle Start.
type Star struct {
	Center       textpath.Point
	Outer, Inner float64
	Points       int
	Start        float64
}

func (Star) Kind() Kind { return KindStar }
func (Star) sealed()    {}

func (s Star) Path() (*textpath.Path, error) {
	if s.Points < 2 {
		return nil, invalid(KindStar, "%d points", s.Points)
	}
	if !(s.Outer > 0 && s.Inner > 0) {
		return nil, invalid(KindStar, "radii %v, %v", s.Outer, s.Inner)
	}
	radius := func(i int) float64 {
		if i%2 == 0 {
			return s.Outer
		}
		return s.Inner
	}
	return textpath.Polyline(ring(s.Center, 2*s.Points, s.Start, radius), true), nil
}

// ring places n points clockwise around center, the i-th at radius(i).
func ring(center textpath.Point, n int, start float64, radius func(int) float64) []textpath.Point {
	pts := make([]textpath.Point, n)
	for i := range pts {
		sin, cos := math.Sincos(start + 2*math.Pi*float64(i)/float64(n))
		r := radius(i)
		pts[i] = textpath.Pt(center.X+r*cos, center.Y+r*sin)
	}
	return pts
}

// Spiral is an Archimedean spiral winding clockwise from Inner to Outer
// radius over Turns revolutions, starting at angle Start.
type Spiral struct {
	Center       textpath.Point
	Inner, Outer float64
	Turns        float64
	Start        float64
}

func (Spiral) Kind() Kind { return KindSpiral }
func (Spiral) sealed()    {}

func (s Spiral) Path() (*textpath.Path, error) {
	if !(s.Turns > 0) {
		return nil, invalid(KindSpiral, "%v turns", s.Turns)
	}
	if s.Inner < 0 || !(s.Outer > s.Inner) {
		return nil, invalid(KindSpiral, "radii %v, %v", s.Inner, s.Outer)
	}
	n := int(math.Ceil(s.Turns * spiralSteps))
	sweep := 2 * math.Pi * s.Turns
	pts := make([]textpath.Point, n+1)
	for i := range pts {
		f := float64(i) / float64(n)
		r := s.Inner + (s.Outer-s.Inner)*f
		sin, cos := math.Sincos(s.Start + sweep*f)
		pts[i] = textpath.Pt(s.Center.X+r*cos, s.Center.Y+r*sin)
	}
	return textpath.Polyline(pts, false), nil
}

// Freeform is a user-drawn point set, smoothed with Iterations passes of
// Chaikin corner cutting.
type Freeform struct {
	Points     []textpath.Point
	Closed     bool
	Iterations int
}

func (Freeform) Kind() Kind { return KindFreeform }
func (Freeform) sealed()    {}

func (f Freeform) Path() (*textpath.Path, error) {
	if len(f.Points) < 2 {
		return nil, invalid(KindFreeform, "%d points", len(f.Points))
	}
	return textpath.Polyline(textpath.Chaikin(f.Points, f.Iterations, f.Closed), f.Closed), nil
}
