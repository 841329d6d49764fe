package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphID is a glyph index within a font. The zero glyph is .notdef.
type GlyphID uint16

// Face is a font at a specific pixel size. It is a lightweight handle on
// its FontSource and is safe for concurrent use.
//
// Layout metrics are unhinted so that advances stay fractional.
type Face struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Size returns the size of this face in pixels per em.
func (f *Face) Size() float64 {
	return f.size
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Language returns the language tag used when shaping.
func (f *Face) Language() string {
	return f.config.language
}

func (f *Face) ppem() fixed.Int26_6 {
	return floatToFixed(f.size)
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	var m font.Metrics
	var err error
	ok := f.source.withFont(func(sf *sfnt.Font, buf *sfnt.Buffer) {
		m, err = sf.Metrics(buf, f.ppem(), font.HintingNone)
	})
	if !ok || err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	if descent < 0 {
		descent = -descent
	}
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   max(fixedToFloat(m.Height)-ascent-descent, 0),
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// GlyphIndex returns the glyph for r, or 0 when the font has none.
func (f *Face) GlyphIndex(r rune) GlyphID {
	var gid sfnt.GlyphIndex
	f.source.withFont(func(sf *sfnt.Font, buf *sfnt.Buffer) {
		gid, _ = sf.GlyphIndex(buf, r)
	})
	return GlyphID(gid)
}

// HasGlyph reports whether the font has a glyph for r.
func (f *Face) HasGlyph(r rune) bool {
	return f.GlyphIndex(r) != 0
}

// Advance returns the horizontal advance of gid in pixels.
func (f *Face) Advance(gid GlyphID) float64 {
	var adv fixed.Int26_6
	f.source.withFont(func(sf *sfnt.Font, buf *sfnt.Buffer) {
		adv, _ = sf.GlyphAdvance(buf, sfnt.GlyphIndex(gid), f.ppem(), font.HintingNone)
	})
	return fixedToFloat(adv)
}

// Kern returns the pair kerning adjustment between left and right in
// pixels. Fonts without a kern table return 0.
func (f *Face) Kern(left, right GlyphID) float64 {
	var k fixed.Int26_6
	f.source.withFont(func(sf *sfnt.Font, buf *sfnt.Buffer) {
		var err error
		k, err = sf.Kern(buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), f.ppem(), font.HintingNone)
		if err != nil {
			k = 0
		}
	})
	return fixedToFloat(k)
}

// Outline returns the vector outline of gid at this face's size, in
// pixels, y-up, relative to the glyph origin on the baseline. Outlines are
// cached per source and must be treated as read-only.
//
// A glyph without contours (such as a space) returns an empty outline.
func (f *Face) Outline(gid GlyphID) (*GlyphOutline, error) {
	key := outlineKey{gid: gid, size: f.size}
	if o, ok := f.source.outlines.Get(key); ok {
		return o, nil
	}

	var (
		o   *GlyphOutline
		err error
	)
	ok := f.source.withFont(func(sf *sfnt.Font, buf *sfnt.Buffer) {
		o, err = extractOutline(sf, buf, gid, f.ppem())
	})
	if !ok {
		return nil, ErrSourceClosed
	}
	if err != nil {
		return nil, &FontError{GID: gid, Reason: "failed to load glyph outline", Err: err}
	}
	f.source.outlines.Set(key, o)
	return o, nil
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
