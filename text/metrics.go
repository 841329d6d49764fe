package text

// Metrics holds font metrics at a specific size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font.
	// It is stored as a positive value.
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
