package text

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ShapeOptions controls how a string is shaped.
type ShapeOptions struct {
	// Tracking is extra space in pixels added after every glyph. It is
	// recorded as the glyph's Kerning.
	Tracking float64
}

// Shaper converts text to a glyph run.
// Implementations:
//   - BuiltinShaper: cmap lookup with pair kerning, no substitutions
//   - GoTextShaper: HarfBuzz shaping from go-text/typesetting
//
// Input is normalized to NFC before shaping so that precomposed and
// decomposed spellings produce the same glyphs.
type Shaper interface {
	Shape(s string, face *Face, opts ShapeOptions) *GlyphRun
}

// BuiltinShaper maps each rune to one glyph through the font's cmap and
// applies the font's pair kerning. It handles Latin, Cyrillic, Greek, CJK
// and other scripts that need no ligatures or contextual forms.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (BuiltinShaper) Shape(s string, face *Face, opts ShapeOptions) *GlyphRun {
	s = norm.NFC.String(s)
	if s == "" || face == nil {
		return NewGlyphRun(face, nil)
	}

	glyphs := make([]Glyph, 0, utf8.RuneCountInString(s))
	cluster := 0
	for _, r := range s {
		gid := face.GlyphIndex(r)
		if n := len(glyphs); n > 0 {
			// Pair kerning moves the pen after the left glyph.
			glyphs[n-1].Advance += face.Kern(glyphs[n-1].ID, gid)
		}
		glyphs = append(glyphs, Glyph{
			ID:      gid,
			Cluster: cluster,
			Advance: face.Advance(gid),
		})
		cluster++
	}

	applyTracking(glyphs, opts.Tracking)
	return NewGlyphRun(face, glyphs)
}
