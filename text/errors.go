package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrSourceClosed is returned when a face outlives its FontSource.
	ErrSourceClosed = errors.New("text: font source is closed")

	// ErrUnknownAlignment is returned by ParseAlignment.
	ErrUnknownAlignment = errors.New("text: unknown alignment")
)

// FontError represents a font-related error.
type FontError struct {
	GID    GlyphID
	Reason string
	Err    error
}

func (e *FontError) Error() string {
	if e.Err != nil {
		return "text: " + e.Reason + ": " + e.Err.Error()
	}
	return "text: " + e.Reason
}

func (e *FontError) Unwrap() error {
	return e.Err
}
