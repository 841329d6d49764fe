package text

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/textpath"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr must point to the FontSource itself.
	addr *FontSource

	mu   sync.RWMutex
	data []byte
	font *sfnt.Font
	name string

	// buffers are scratch space for sfnt calls; sfnt.Buffer is not safe
	// for concurrent use but the Font itself is.
	buffers sync.Pool

	outlines *Cache[outlineKey, *GlyphOutline]
}

type outlineKey struct {
	gid  GlyphID
	size float64
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data:     dataCopy,
		font:     f,
		outlines: NewCache[outlineKey, *GlyphOutline](config.cacheLimit),
	}
	s.addr = s
	s.buffers.New = func() any { return new(sfnt.Buffer) }
	s.name = extractFontName(f)

	textpath.Logger().Debug("text: font loaded",
		slog.String("name", s.name),
		slog.Int("glyphs", f.NumGlyphs()))
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size in pixels per em.
// Multiple faces can be created from the same FontSource.
// Panics if s is nil (e.g. when the NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) *Face {
	if s == nil {
		panic("text: FontSource is nil; check the error from NewFontSource")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Face{source: s, size: size, config: config}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Close releases the font data. Faces created from the source report
// ErrSourceClosed or zero metrics afterwards.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.font = nil
	s.outlines.Clear()
	return nil
}

// withFont calls fn with the parsed font and a scratch buffer. It reports
// false when the source has been closed.
func (s *FontSource) withFont(fn func(f *sfnt.Font, buf *sfnt.Buffer)) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.font == nil {
		return false
	}
	buf := s.buffers.Get().(*sfnt.Buffer)
	fn(s.font, buf)
	s.buffers.Put(buf)
	return true
}

// rawData returns the font bytes for shapers that parse the file themselves.
func (s *FontSource) rawData() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

func extractFontName(f *sfnt.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
