package textpath

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func square(side float64) *Path {
	return Polyline([]Point{Pt(0, 0), Pt(side, 0), Pt(side, side), Pt(0, side)}, true)
}

func TestArcLengthPath_Square(t *testing.T) {
	ap := NewArcLengthPath(square(100))
	if got := ap.Length(); got != 400 {
		t.Fatalf("Length() = %v, want 400", got)
	}

	tests := []struct {
		offset float64
		want   Sample
	}{
		{0, Sample{Offset: 0, Pos: Pt(0, 0), Angle: 0}},
		{50, Sample{Offset: 50, Pos: Pt(50, 0), Angle: 0}},
		// At a corner the angle is the arriving direction.
		{100, Sample{Offset: 100, Pos: Pt(100, 0), Angle: 0}},
		// The second side is straight down with no blend from the first.
		{101, Sample{Offset: 101, Pos: Pt(100, 1), Angle: math.Pi / 2}},
		{150, Sample{Offset: 150, Pos: Pt(100, 50), Angle: math.Pi / 2}},
		{250, Sample{Offset: 250, Pos: Pt(50, 100), Angle: math.Pi}},
		{400, Sample{Offset: 400, Pos: Pt(0, 0), Angle: -math.Pi / 2}},
	}
	opt := cmpopts.EquateApprox(0, 1e-9)
	for _, tt := range tests {
		got, err := ap.At(tt.offset)
		if err != nil {
			t.Errorf("At(%v) error = %v", tt.offset, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got, opt); diff != "" {
			t.Errorf("At(%v) mismatch (-want +got):\n%s", tt.offset, diff)
		}
	}
}

func TestArcLengthPath_Errors(t *testing.T) {
	ap := NewArcLengthPath(square(10))
	for _, off := range []float64{-1, 40.5, math.NaN(), math.Inf(1)} {
		if _, err := ap.At(off); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(%v) error = %v, want ErrOutOfRange", off, err)
		}
	}

	degenerate := []*Path{
		nil,
		Polyline(nil, false),
		Polyline([]Point{Pt(5, 5), Pt(5, 5)}, false),
	}
	for i, p := range degenerate {
		ap := NewArcLengthPath(p)
		if !ap.IsDegenerate() || ap.Length() != 0 {
			t.Errorf("case %d: Length() = %v, want degenerate", i, ap.Length())
		}
		if _, err := ap.At(0); !errors.Is(err, ErrDegeneratePath) {
			t.Errorf("case %d: At(0) error = %v, want ErrDegeneratePath", i, err)
		}
		if d := ap.Distance(0, 10); d != 0 {
			t.Errorf("case %d: Distance = %v, want 0", i, d)
		}
	}
}

func TestArcLengthPath_Circle(t *testing.T) {
	const r = 50.0
	p, err := BuildPath().Circle(0, 0, r, -math.Pi/2).Build()
	if err != nil {
		t.Fatal(err)
	}
	ap := NewArcLengthPath(p)

	if got, want := ap.Length(), 2*math.Pi*r; math.Abs(got-want) > 0.05 {
		t.Errorf("Length() = %v, want %v", got, want)
	}

	for _, s := range []float64{0, 10, 50, 100, 157, 250, 300} {
		got, err := ap.At(s)
		if err != nil {
			t.Fatalf("At(%v) error = %v", s, err)
		}
		theta := -math.Pi/2 + s/r
		wantPos := Pt(r*math.Cos(theta), r*math.Sin(theta))
		if !pointsEqual(got.Pos, wantPos, 0.05) {
			t.Errorf("At(%v).Pos = %v, want %v", s, got.Pos, wantPos)
		}
		// The tangent of a clockwise circle leads the radius by 90 degrees.
		if d := NormalizeAngle(got.Angle - (theta + math.Pi/2)); math.Abs(d) > 5e-3 {
			t.Errorf("At(%v).Angle = %v, want %v", s, got.Angle, theta+math.Pi/2)
		}
	}
}

func TestArcLengthPath_CheckpointsIncrease(t *testing.T) {
	p := Polyline([]Point{Pt(0, 0), Pt(10, 0), Pt(10, 0), Pt(20, 0)}, false)
	cps := NewArcLengthPath(p).Checkpoints()

	want := []Checkpoint{
		{Length: 0, Pos: Pt(0, 0)},
		{Length: 10, Pos: Pt(10, 0)},
		{Length: 20, Pos: Pt(20, 0)},
	}
	if diff := cmp.Diff(want, cps, cmpopts.IgnoreUnexported(Checkpoint{})); diff != "" {
		t.Errorf("Checkpoints mismatch (-want +got):\n%s", diff)
	}
}

func TestArcLengthPath_Resolution(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(0, -80), Pt(120, -80), Pt(120, 0))
	p, err := NewPath(c)
	if err != nil {
		t.Fatal(err)
	}
	exact := c.Arclen(1e-9)

	coarse := NewArcLengthPath(p, WithResolution(4)).Length()
	fine := NewArcLengthPath(p, WithResolution(256)).Length()

	// Chords never exceed the arc they span.
	if coarse > fine || fine > exact+1e-6 {
		t.Errorf("lengths not monotone: coarse=%v fine=%v exact=%v", coarse, fine, exact)
	}
	if math.Abs(fine-exact) > 1e-3 {
		t.Errorf("fine length = %v, want %v", fine, exact)
	}

	if n := len(NewArcLengthPath(p, WithResolution(0)).Checkpoints()); n != 2 {
		t.Errorf("WithResolution(0) gave %d checkpoints, want 2", n)
	}
}

func TestArcLengthPath_Distance(t *testing.T) {
	ap := NewArcLengthPath(square(100))
	tests := []struct {
		a, b, want float64
	}{
		{50, 250, 200},
		{250, 50, 200},
		{10, 20, 10},
		{-5, 500, 400},
		{120, 120, 0},
	}
	for _, tt := range tests {
		if got := ap.Distance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCursor_MatchesAt(t *testing.T) {
	p, err := BuildPath().Circle(100, 100, 80, 0).Build()
	if err != nil {
		t.Fatal(err)
	}
	ap := NewArcLengthPath(p)
	cur := ap.Cursor()

	offsets := []float64{0, 3, 3, 40, 41.5, 200, 120, 121, ap.Length()}
	for _, off := range offsets {
		want, err := ap.At(off)
		if err != nil {
			t.Fatal(err)
		}
		got, err := cur.At(off)
		if err != nil {
			t.Fatalf("Cursor.At(%v) error = %v", off, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Cursor.At(%v) mismatch (-At +Cursor):\n%s", off, diff)
		}
	}

	if _, err := cur.At(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Cursor.At(-1) error = %v, want ErrOutOfRange", err)
	}
	cur.Reset()
	if got, _ := cur.At(0); got.Pos != p.Start() {
		t.Errorf("after Reset, At(0).Pos = %v, want %v", got.Pos, p.Start())
	}
}
