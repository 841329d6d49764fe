package text

// Glyph is one shaped glyph of a run.
type Glyph struct {
	// ID is the glyph index in the run's face.
	ID GlyphID

	// Cluster is the index of the first rune of the NFC-normalized input
	// that produced this glyph.
	Cluster int

	// Advance is how far the pen moves after this glyph. It includes
	// Kerning.
	Advance float64

	// Kerning is extra spacing requested for the run (tracking), already
	// folded into Advance.
	Kerning float64
}

// Width returns the glyph's own advance without the run's extra spacing.
func (g Glyph) Width() float64 {
	return g.Advance - g.Kerning
}

// GlyphRun is a shaped string: glyphs in left-to-right order plus the
// vertical metrics of the face that shaped them.
type GlyphRun struct {
	Glyphs []Glyph

	// Face renders the glyphs. It may be nil for runs built by hand.
	Face *Face

	Ascent     float64
	Descent    float64
	LineHeight float64
}

// NewGlyphRun wraps glyphs shaped with face and copies its metrics.
func NewGlyphRun(face *Face, glyphs []Glyph) *GlyphRun {
	r := &GlyphRun{Glyphs: glyphs, Face: face}
	if face != nil {
		m := face.Metrics()
		r.Ascent = m.Ascent
		r.Descent = m.Descent
		r.LineHeight = m.LineHeight()
	}
	return r
}

// Len returns the number of glyphs. A nil run is empty.
func (r *GlyphRun) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Glyphs)
}

// Width returns the sum of all advances, kerning included.
func (r *GlyphRun) Width() float64 {
	if r == nil {
		return 0
	}
	var w float64
	for _, g := range r.Glyphs {
		w += g.Advance
	}
	return w
}

// applyTracking adds t to every glyph as kerning.
func applyTracking(glyphs []Glyph, t float64) {
	if t == 0 {
		return
	}
	for i := range glyphs {
		glyphs[i].Kerning += t
		glyphs[i].Advance += t
	}
}
