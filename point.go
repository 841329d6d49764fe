package textpath

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// DistanceSquared returns the squared distance between two points.
// Nearest-point searches compare these to avoid the square root.
func (p Point) DistanceSquared(q Point) float64 {
	return p.Sub(q).LengthSquared()
}

// Normalize returns a unit vector in the same direction.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{X: 0, Y: 0}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// RotateAround returns the point rotated by angle radians around center.
func (p Point) RotateAround(center Point, angle float64) Point {
	return p.Sub(center).Rotate(angle).Add(center)
}

// Angle returns the direction of the vector in radians, in (-Pi, Pi].
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// AngleTo returns the direction from p towards q in radians.
func (p Point) AngleTo(q Point) float64 {
	return q.Sub(p).Angle()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return p.Lerp(q, 0.5)
}

// ApproxEqual reports whether p and q differ by at most eps on each axis.
func (p Point) ApproxEqual(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// AngleBetween returns the signed angle at vertex b of the corner a-b-c,
// measured from ray b->a to ray b->c, in (-Pi, Pi].
func AngleBetween(a, b, c Point) float64 {
	u := a.Sub(b)
	v := c.Sub(b)
	return math.Atan2(u.Cross(v), u.Dot(v))
}

// NormalizeAngle wraps an angle into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// LerpAngle interpolates between two angles along the shorter arc.
func LerpAngle(a, b, t float64) float64 {
	return a + NormalizeAngle(b-a)*t
}
