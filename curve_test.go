package textpath

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

// quarterCircle approximates the arc from angle 0 to Pi/2 of a circle of
// radius r centred on the origin.
func quarterCircle(r float64) CubicBez {
	const k = 0.5522847498307936
	return NewCubicBez(Pt(r, 0), Pt(r, k*r), Pt(k*r, r), Pt(0, r))
}

func TestLine(t *testing.T) {
	l := NewLine(Pt(0, 0), Pt(10, 10))

	tests := []struct {
		name   string
		t      float64
		expect Point
	}{
		{"t=0", 0, Pt(0, 0)},
		{"t=1", 1, Pt(10, 10)},
		{"t=0.5", 0.5, Pt(5, 5)},
		{"t=0.25", 0.25, Pt(2.5, 2.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Eval(tt.t); !pointsEqual(got, tt.expect, epsilon) {
				t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.expect)
			}
		})
	}

	if got := l.Arclen(0); math.Abs(got-10*math.Sqrt2) > epsilon {
		t.Errorf("Arclen = %v, want %v", got, 10*math.Sqrt2)
	}
	if got := l.Tangent(0.3); got != Pt(10, 10) {
		t.Errorf("Tangent = %v, want (10, 10)", got)
	}
	rev := l.Reversed()
	if rev.Start() != l.End() || rev.End() != l.Start() {
		t.Errorf("Reversed = %+v", rev)
	}
}

func TestCubicBez_EvalEndpoints(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(10, 20), Pt(30, 20), Pt(40, 0))
	if got := c.Eval(0); got != c.P0 {
		t.Errorf("Eval(0) = %v, want %v", got, c.P0)
	}
	if got := c.Eval(1); !pointsEqual(got, c.P3, epsilon) {
		t.Errorf("Eval(1) = %v, want %v", got, c.P3)
	}
	// Derivative at the ends points along the control polygon.
	if got := c.Tangent(0); got != Pt(30, 60) {
		t.Errorf("Tangent(0) = %v, want (30, 60)", got)
	}
	if got := c.Tangent(1); !pointsEqual(got, Pt(30, -60), epsilon) {
		t.Errorf("Tangent(1) = %v, want (30, -60)", got)
	}
}

func TestCubicBez_Subdivide(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(10, 20), Pt(30, 20), Pt(40, 0))
	left, right := c.Subdivide()
	mid := c.Eval(0.5)
	if !pointsEqual(left.P3, mid, epsilon) || !pointsEqual(right.P0, mid, epsilon) {
		t.Errorf("halves do not meet at the midpoint %v", mid)
	}
	if !pointsEqual(left.Eval(0.5), c.Eval(0.25), epsilon) {
		t.Errorf("left half does not reparameterise the curve")
	}
}

func TestCubicBez_Arclen(t *testing.T) {
	tests := []struct {
		name string
		c    CubicBez
		want float64
		tol  float64
	}{
		{"straight", NewCubicBez(Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)), 3, 1e-9},
		{"straight uneven", NewCubicBez(Pt(0, 0), Pt(0, 0), Pt(0, 0), Pt(0, 7)), 7, 1e-6},
		{"quarter circle", quarterCircle(100), 50 * math.Pi, 0.05},
		{"degenerate", NewCubicBez(Pt(5, 5), Pt(5, 5), Pt(5, 5), Pt(5, 5)), 0, 1e-12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Arclen(1e-9)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Arclen = %v, want %v (+-%v)", got, tt.want, tt.tol)
			}
		})
	}
}

func TestCubicBez_BoundingBox(t *testing.T) {
	c := quarterCircle(10)
	bb := c.BoundingBox()
	if !pointsEqual(bb.Min, Pt(0, 0), 1e-9) {
		t.Errorf("Min = %v, want (0, 0)", bb.Min)
	}
	if !pointsEqual(bb.Max, Pt(10, 10), 1e-9) {
		t.Errorf("Max = %v, want (10, 10)", bb.Max)
	}

	// A bulge beyond the endpoints is found through the extrema.
	arch := NewCubicBez(Pt(0, 0), Pt(0, -40), Pt(40, -40), Pt(40, 0))
	if got := arch.BoundingBox().Min.Y; math.Abs(got+30) > 1e-9 {
		t.Errorf("arch top = %v, want -30", got)
	}
}

func TestQuadBez_Raise(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(50, 100), P2: Pt(100, 0)}
	c := q.Raise()
	for _, tt := range []float64{0, 0.2, 0.5, 0.9, 1} {
		mt := 1 - tt
		want := q.P0.Mul(mt * mt).Add(q.P1.Mul(2 * mt * tt)).Add(q.P2.Mul(tt * tt))
		if got := c.Eval(tt); !pointsEqual(got, want, 1e-9) {
			t.Errorf("raised Eval(%v) = %v, want %v", tt, got, want)
		}
	}
}

func TestSegmentTransform(t *testing.T) {
	var segs = []Segment{
		NewLine(Pt(0, 0), Pt(1, 0)),
		NewCubicBez(Pt(1, 0), Pt(2, 0), Pt(3, 1), Pt(3, 2)),
	}
	m := Translate(10, 20)
	for _, s := range segs {
		got := s.Transform(m)
		if got.Start() != s.Start().Add(Pt(10, 20)) || got.End() != s.End().Add(Pt(10, 20)) {
			t.Errorf("%T.Transform moved endpoints to %v..%v", s, got.Start(), got.End())
		}
	}
}
