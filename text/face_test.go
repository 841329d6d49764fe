package text

import (
	"math"
	"sync"
	"testing"
)

func TestFaceMetrics(t *testing.T) {
	source := loadTestFont(t)

	var prev Metrics
	for _, size := range []float64{12, 16, 24, 48} {
		m := source.Face(size).Metrics()
		if m.Ascent <= 0 || m.Descent <= 0 {
			t.Errorf("size %v: Ascent=%v Descent=%v, want both positive", size, m.Ascent, m.Descent)
		}
		if m.LineGap < 0 {
			t.Errorf("size %v: LineGap=%v, want >= 0", size, m.LineGap)
		}
		if got := m.LineHeight(); got != m.Ascent+m.Descent+m.LineGap {
			t.Errorf("size %v: LineHeight=%v", size, got)
		}
		if m.Ascent <= prev.Ascent {
			t.Errorf("size %v: Ascent %v should grow with size (previous %v)", size, m.Ascent, prev.Ascent)
		}
		prev = m
	}
}

func TestFaceAdvanceScalesWithSize(t *testing.T) {
	source := loadTestFont(t)
	small, large := source.Face(10), source.Face(40)

	gid := small.GlyphIndex('W')
	if gid == 0 {
		t.Fatal("no glyph for 'W'")
	}
	a, b := small.Advance(gid), large.Advance(gid)
	if a <= 0 {
		t.Fatalf("Advance = %v, want > 0", a)
	}
	// Unhinted advances are linear in size up to 26.6 rounding.
	if math.Abs(b-4*a) > 4.0/64 {
		t.Errorf("Advance at 40px = %v, want about 4 * %v", b, a)
	}
}

func TestFaceGlyphIndex(t *testing.T) {
	face := loadTestFont(t).Face(16)
	if face.GlyphIndex('A') == face.GlyphIndex('B') {
		t.Error("'A' and 'B' should map to different glyphs")
	}
	if face.HasGlyph('\U0001F600') {
		t.Error("Go Regular should not have an emoji glyph")
	}
}

func TestFaceOutline(t *testing.T) {
	face := loadTestFont(t).Face(32)

	o, err := face.Outline(face.GlyphIndex('O'))
	if err != nil {
		t.Fatalf("Outline('O') error = %v", err)
	}
	if o.IsEmpty() {
		t.Fatal("'O' should have contours")
	}
	if o.Segments[0].Op != OutlineOpMoveTo {
		t.Errorf("first op = %v, want MoveTo", o.Segments[0].Op)
	}
	// Outlines are y-up: the letter sits above the baseline.
	if o.Bounds.Max.Y <= 0 || o.Bounds.Min.Y < -1 {
		t.Errorf("Bounds = %+v, want the glyph above the baseline", o.Bounds)
	}
	if o.Bounds.Max.Y > face.Metrics().Ascent+1 {
		t.Errorf("Bounds.Max.Y = %v exceeds ascent %v", o.Bounds.Max.Y, face.Metrics().Ascent)
	}

	again, err := face.Outline(face.GlyphIndex('O'))
	if err != nil || again != o {
		t.Error("second Outline call should hit the cache")
	}

	space, err := face.Outline(face.GlyphIndex(' '))
	if err != nil {
		t.Fatalf("Outline(' ') error = %v", err)
	}
	if !space.IsEmpty() {
		t.Error("space should have an empty outline")
	}
}

func TestFaceConcurrentUse(t *testing.T) {
	face := loadTestFont(t).Face(20)
	want := face.Advance(face.GlyphIndex('g'))

	var wg sync.WaitGroup
	for k := 0; k < 8; k++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				gid := face.GlyphIndex('g')
				if got := face.Advance(gid); got != want {
					t.Errorf("Advance = %v, want %v", got, want)
					return
				}
				if _, err := face.Outline(gid); err != nil {
					t.Errorf("Outline error = %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
