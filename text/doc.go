// Package text shapes strings into glyph runs and lays them out along
// curves.
//
// # Fonts
//
// A [FontSource] holds one parsed TrueType or OpenType file and hands out
// lightweight [Face] values at specific pixel sizes:
//
//	source, err := text.NewFontSourceFromFile("DejaVuSans.ttf")
//	if err != nil {
//	    return err
//	}
//	face := source.Face(32)
//
// # Shaping
//
// A [Shaper] turns a string into a [GlyphRun]. [BuiltinShaper] maps runes
// through the cmap and applies pair kerning; [GoTextShaper] runs HarfBuzz
// shaping from go-text/typesetting for ligatures and complex scripts.
//
// # Text on a path
//
// [LayoutOnPath] places every glyph of a run along a
// [textpath.ArcLengthPath] and returns one [PlacedGlyph] per glyph with the
// affine transform from run space to device space. [DrawOnPath] performs the
// same layout and rasterizes the outlines into an image.
package text
