package text

import (
	"image"
	"image/draw"
	"log/slog"

	"golang.org/x/image/vector"

	"github.com/gogpu/textpath"
)

// DrawGlyphs rasterizes placed glyphs of face into dst, filling them with
// src. Glyphs whose outline cannot be loaded are skipped.
func DrawGlyphs(dst draw.Image, placed []PlacedGlyph, face *Face, src image.Image) {
	if len(placed) == 0 || face == nil {
		return
	}
	b := dst.Bounds()
	if b.Empty() {
		return
	}

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	origin := textpath.Translate(-float64(b.Min.X), -float64(b.Min.Y))

	for _, pg := range placed {
		o, err := pg.DeviceOutline(face)
		if err != nil {
			textpath.Logger().Debug("text: skipping glyph",
				slog.Int("gid", int(pg.Glyph.ID)),
				slog.Any("error", err))
			continue
		}
		if o.IsEmpty() {
			continue
		}
		rasterizeOutline(z, o.Transform(origin))
	}
	z.Draw(dst, b, src, b.Min)
}

// DrawOnPath lays run out along ap and draws it. The result is identical to
// calling DrawGlyphs on the output of LayoutOnPath.
func DrawOnPath(dst draw.Image, ap *textpath.ArcLengthPath, run *GlyphRun, opts PathLayoutOptions, src image.Image) {
	if run == nil {
		return
	}
	DrawGlyphs(dst, LayoutOnPath(ap, run, opts), run.Face, src)
}

func rasterizeOutline(z *vector.Rasterizer, o *GlyphOutline) {
	f := func(p textpath.Point) (float32, float32) { return float32(p.X), float32(p.Y) }
	for _, seg := range o.Segments {
		switch seg.Op {
		case OutlineOpMoveTo:
			z.ClosePath()
			z.MoveTo(f(seg.Points[0]))
		case OutlineOpLineTo:
			z.LineTo(f(seg.Points[0]))
		case OutlineOpQuadTo:
			bx, by := f(seg.Points[0])
			cx, cy := f(seg.Points[1])
			z.QuadTo(bx, by, cx, cy)
		case OutlineOpCubicTo:
			bx, by := f(seg.Points[0])
			cx, cy := f(seg.Points[1])
			dx, dy := f(seg.Points[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	z.ClosePath()
}
