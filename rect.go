package textpath

import "math"

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// RectXYWH creates a rectangle from an origin and a size. Negative sizes
// are normalized.
func RectXYWH(x, y, w, h float64) Rect {
	return NewRect(Pt(x, y), Pt(x+w, y+h))
}

// BoundingRect returns the smallest rectangle containing all points.
// It returns the zero Rect for an empty slice.
func BoundingRect(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Midpoint(r.Max)
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Inset shrinks the rectangle by d on every side. A negative d grows it.
// The result never inverts; it collapses onto the center instead.
func (r Rect) Inset(d float64) Rect {
	c := r.Center()
	hw := math.Max(r.Width()/2-d, 0)
	hh := math.Max(r.Height()/2-d, 0)
	return Rect{Min: Pt(c.X-hw, c.Y-hh), Max: Pt(c.X+hw, c.Y+hh)}
}

// FitScale returns the largest uniform scale factor s such that r scaled
// by s fits inside into. It returns 0 when either rectangle is empty in both
// dimensions.
func (r Rect) FitScale(into Rect) float64 {
	sx, sy := math.Inf(1), math.Inf(1)
	if r.Width() > 0 {
		sx = into.Width() / r.Width()
	}
	if r.Height() > 0 {
		sy = into.Height() / r.Height()
	}
	s := math.Min(sx, sy)
	if math.IsInf(s, 1) {
		return 0
	}
	return s
}
