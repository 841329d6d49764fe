package editor

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textpath"
)

// RenderOptions controls Render. Sizes are in canvas units unless noted.
type RenderOptions struct {
	// Width and Height are the output size in pixels. Zero uses the
	// canvas size.
	Width, Height int

	// Supersample renders at this multiple of the output size and scales
	// down for anti-aliasing. Values below 1 mean 1.
	Supersample int

	Background  color.Color
	Stroke      color.Color
	StrokeWidth float64

	ShowGrid  bool
	GridColor color.Color

	ShowViewport  bool
	ViewportColor color.Color

	ShowPoints  bool
	PointColor  color.Color
	PointRadius float64
}

// DefaultRenderOptions draws a black curve on white with grid, viewport
// border and point markers.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Supersample:   2,
		Background:    colornames.White,
		Stroke:        colornames.Black,
		StrokeWidth:   2,
		ShowGrid:      true,
		GridColor:     colornames.Lightgray,
		ShowViewport:  true,
		ViewportColor: colornames.Steelblue,
		ShowPoints:    true,
		PointColor:    colornames.Crimson,
		PointRadius:   4,
	}
}

// Render draws the editor state. The canvas is fitted into the output
// size, preserving aspect ratio. Fewer than two active points draw no
// curve; markers for the original points are still drawn.
func (e *Editor) Render(opts RenderOptions) *image.RGBA {
	canvas := e.cfg.Canvas
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = int(math.Ceil(canvas.Width())), int(math.Ceil(canvas.Height()))
	}
	k := max(opts.Supersample, 1)

	big := image.NewRGBA(image.Rect(0, 0, w*k, h*k))
	if opts.Background != nil {
		draw.Draw(big, big.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	// Canvas to supersampled pixels.
	out := textpath.RectXYWH(0, 0, float64(w*k), float64(h*k))
	s := canvas.FitScale(out)
	c, oc := canvas.Center(), out.Center()
	m := textpath.Translate(-c.X, -c.Y).
		Then(textpath.Scale(s, s)).
		Then(textpath.Translate(oc.X, oc.Y))

	r := newPainter(big)
	if opts.ShowGrid && e.cfg.GridGap > 0 {
		r.grid(canvas, e.cfg.GridGap, m, s, opts.GridColor)
	}
	if opts.ShowViewport {
		r.polyline(rectPoints(e.viewport), true, m, s, opts.ViewportColor)
	}
	if active := e.ActivePoints(); len(active) >= 2 {
		r.stroke(active, e.cfg.Closed, m, opts.StrokeWidth*s, opts.Stroke)
	}
	if opts.ShowPoints {
		for _, p := range e.points {
			r.dot(m.TransformPoint(p), opts.PointRadius*s, opts.PointColor)
		}
	}

	if k == 1 {
		return big
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), big, big.Bounds(), draw.Src, nil)
	return dst
}

func rectPoints(r textpath.Rect) []textpath.Point {
	return []textpath.Point{r.Min, {X: r.Max.X, Y: r.Min.Y}, r.Max, {X: r.Min.X, Y: r.Max.Y}}
}

// painter wraps a rasterx scanner with a dasher for strokes and a filler
// for markers.
type painter struct {
	dasher *rasterx.Dasher
	filler *rasterx.Filler
}

func newPainter(img *image.RGBA) *painter {
	b := img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b)
	return &painter{
		dasher: rasterx.NewDasher(b.Dx(), b.Dy(), scanner),
		filler: rasterx.NewFiller(b.Dx(), b.Dy(), scanner),
	}
}

func toFixed(p textpath.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X, p.Y)
}

// stroke draws a round-capped polyline of the given pixel width.
func (r *painter) stroke(pts []textpath.Point, closed bool, m textpath.Matrix, width float64, c color.Color) {
	if c == nil || width <= 0 {
		return
	}
	r.dasher.Clear()
	r.dasher.SetStroke(fixed.Int26_6(width*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	r.dasher.Start(toFixed(m.TransformPoint(pts[0])))
	for _, p := range pts[1:] {
		r.dasher.Line(toFixed(m.TransformPoint(p)))
	}
	r.dasher.Stop(closed)
	r.dasher.SetColor(c)
	r.dasher.Draw()
}

// polyline draws a hairline one canvas unit wide.
func (r *painter) polyline(pts []textpath.Point, closed bool, m textpath.Matrix, scale float64, c color.Color) {
	r.stroke(pts, closed, m, scale, c)
}

func (r *painter) grid(canvas textpath.Rect, gap float64, m textpath.Matrix, scale float64, c color.Color) {
	for x := canvas.Min.X; x <= canvas.Max.X; x += gap {
		r.polyline([]textpath.Point{{X: x, Y: canvas.Min.Y}, {X: x, Y: canvas.Max.Y}}, false, m, scale*0.5, c)
	}
	for y := canvas.Min.Y; y <= canvas.Max.Y; y += gap {
		r.polyline([]textpath.Point{{X: canvas.Min.X, Y: y}, {X: canvas.Max.X, Y: y}}, false, m, scale*0.5, c)
	}
}

func (r *painter) dot(center textpath.Point, radius float64, c color.Color) {
	if c == nil || radius <= 0 {
		return
	}
	r.filler.Clear()
	rasterx.AddCircle(center.X, center.Y, radius, r.filler)
	r.filler.SetColor(c)
	r.filler.Draw()
}
