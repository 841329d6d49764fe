package textpath

import (
	"math"
	"testing"
)

func TestPoint_Arithmetic(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, 2)
	if got := p.Add(q); got != Pt(4, 6) {
		t.Errorf("Add = %v, want (4, 6)", got)
	}
	if got := p.Sub(q); got != Pt(2, 2) {
		t.Errorf("Sub = %v, want (2, 2)", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.Distance(Pt(0, 0)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := p.DistanceSquared(Pt(0, 0)); got != 25 {
		t.Errorf("DistanceSquared = %v, want 25", got)
	}
	if got := (Point{}).Normalize(); got != (Point{}) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}

func TestPoint_Rotate(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		center Point
		angle  float64
		want   Point
	}{
		{"quarter about origin", Pt(1, 0), Pt(0, 0), math.Pi / 2, Pt(0, 1)},
		{"half about origin", Pt(1, 0), Pt(0, 0), math.Pi, Pt(-1, 0)},
		{"quarter about center", Pt(2, 1), Pt(1, 1), math.Pi / 2, Pt(1, 2)},
		{"zero", Pt(5, 7), Pt(1, 1), 0, Pt(5, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.RotateAround(tt.center, tt.angle)
			if !pointsEqual(got, tt.want, epsilon) {
				t.Errorf("RotateAround = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAngles(t *testing.T) {
	if got := Pt(0, 0).AngleTo(Pt(0, 10)); math.Abs(got-math.Pi/2) > epsilon {
		t.Errorf("AngleTo = %v, want Pi/2", got)
	}
	if got := AngleBetween(Pt(1, 0), Pt(0, 0), Pt(0, 1)); math.Abs(got-math.Pi/2) > epsilon {
		t.Errorf("AngleBetween = %v, want Pi/2", got)
	}
	if got := AngleBetween(Pt(0, 1), Pt(0, 0), Pt(1, 0)); math.Abs(got+math.Pi/2) > epsilon {
		t.Errorf("AngleBetween reversed = %v, want -Pi/2", got)
	}

	norm := []struct{ in, want float64 }{
		{0, 0},
		{3 * math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{2*math.Pi + 0.5, 0.5},
		{-2*math.Pi - 0.5, -0.5},
	}
	for _, tt := range norm {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	// Interpolation takes the short way across the +-Pi seam.
	got := NormalizeAngle(LerpAngle(3, -3, 0.5))
	if math.Abs(math.Abs(got)-math.Pi) > 1e-9 {
		t.Errorf("LerpAngle across seam = %v, want +-Pi", got)
	}
}

func TestRect(t *testing.T) {
	r := NewRect(Pt(10, 10), Pt(0, 5))
	if r.Min != Pt(0, 5) || r.Max != Pt(10, 10) {
		t.Fatalf("NewRect did not normalize: %+v", r)
	}
	if r.Center() != Pt(5, 7.5) {
		t.Errorf("Center = %v, want (5, 7.5)", r.Center())
	}
	if !r.Contains(Pt(0, 5)) || r.Contains(Pt(11, 6)) {
		t.Error("Contains mismatch")
	}

	b := BoundingRect([]Point{Pt(3, -1), Pt(-2, 4), Pt(0, 0)})
	if b.Min != Pt(-2, -1) || b.Max != Pt(3, 4) {
		t.Errorf("BoundingRect = %+v", b)
	}
	if !(BoundingRect(nil) == Rect{}) {
		t.Error("BoundingRect(nil) should be zero")
	}

	in := RectXYWH(0, 0, 100, 50).Inset(10)
	if in.Width() != 80 || in.Height() != 30 {
		t.Errorf("Inset = %vx%v, want 80x30", in.Width(), in.Height())
	}
	if got := RectXYWH(0, 0, 10, 10).Inset(20); !got.IsEmpty() {
		t.Errorf("over-inset should collapse, got %+v", got)
	}
}

func TestRect_FitScale(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		into Rect
		want float64
	}{
		{"wide into square", RectXYWH(0, 0, 200, 100), RectXYWH(0, 0, 100, 100), 0.5},
		{"tall into square", RectXYWH(0, 0, 50, 200), RectXYWH(0, 0, 100, 100), 0.5},
		{"grow", RectXYWH(0, 0, 10, 10), RectXYWH(0, 0, 100, 50), 5},
		{"horizontal line", RectXYWH(0, 0, 10, 0), RectXYWH(0, 0, 100, 50), 10},
		{"point", RectXYWH(3, 3, 0, 0), RectXYWH(0, 0, 100, 50), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.FitScale(tt.into); math.Abs(got-tt.want) > epsilon {
				t.Errorf("FitScale = %v, want %v", got, tt.want)
			}
		})
	}
}
