package text

import (
	"bytes"
	"log/slog"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/textpath"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It supports advanced OpenType features including:
//   - Ligature substitution (fi, fl, ffi, etc.)
//   - GPOS kerning pairs (AV, To, etc.)
//   - Complex scripts (Devanagari, Thai, etc.)
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font
// objects (which are read-only) and creates a font.Face per Shape call,
// since font.Face is not safe for concurrent use. HarfbuzzShaper instances
// are pooled for the same reason.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a new GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface. Glyphs come back in visual
// left-to-right order. A font that go-text cannot parse yields an empty run.
func (s *GoTextShaper) Shape(str string, face *Face, opts ShapeOptions) *GlyphRun {
	str = norm.NFC.String(str)
	if str == "" || face == nil {
		return NewGlyphRun(face, nil)
	}

	gf, err := s.getOrCreateFont(face.Source())
	if err != nil {
		textpath.Logger().Debug("text: go-text cannot parse font",
			slog.String("font", face.Source().Name()),
			slog.Any("error", err))
		return NewGlyphRun(face, nil)
	}

	runes := []rune(str)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(gf),
		Size:      floatToFixed(face.Size()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(face.Language()),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	glyphs := make([]Glyph, len(output.Glyphs))
	for i, g := range output.Glyphs {
		glyphs[i] = Glyph{
			ID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph indices fit in uint16
			Cluster: g.TextIndex(),
			Advance: fixedToFloat(g.Advance),
		}
	}
	applyTracking(glyphs, opts.Tracking)
	return NewGlyphRun(face, glyphs)
}

// getOrCreateFont returns the cached go-text font for source, parsing it
// on first use.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	data := source.rawData()
	if data == nil {
		return nil, ErrSourceClosed
	}
	gf, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = gf.Font
	return gf.Font, nil
}

// RemoveSource drops the cached parse of source, e.g. after it is closed.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// detectScript returns the script of the first non-space rune.
// Mixed-script text should be split into runs before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
