// Command textpath renders a string along a shape to a PNG file.
//
// Settings come from defaults, then an optional TOML or YAML file, then
// flags. With -watch the image is rewritten whenever the settings file
// changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/editor"
	"github.com/gogpu/textpath/settings"
	"github.com/gogpu/textpath/text"
)

func main() {
	var (
		config  = flag.String("config", "", "settings file (.toml, .yaml)")
		content = flag.String("text", "", "text to lay out")
		shape   = flag.String("shape", "", "shape kind (circle, ellipse, rectangle, triangle, polygon, star, spiral, freeform)")
		fontArg = flag.String("font", "", "TrueType or OpenType font file")
		size    = flag.Float64("size", 0, "font size in pixels")
		align   = flag.String("align", "", "alignment (natural, center, right, justified)")
		width   = flag.Int("width", 0, "image width")
		height  = flag.Int("height", 0, "image height")
		output  = flag.String("output", "", "output file")
		watch   = flag.Bool("watch", false, "re-render when the settings file changes")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	textpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s := settings.Default()
	if *config != "" {
		var err error
		if s, err = settings.Load(*config); err != nil {
			log.Fatal(err)
		}
	}

	// Flags override the file, both now and on every reload.
	override := func(s *settings.Settings) {
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "text":
				s.Text.Content = *content
			case "shape":
				s.Shape.Kind = *shape
			case "font":
				s.Text.FontFile = *fontArg
			case "size":
				s.Text.Size = *size
			case "align":
				s.Layout.Alignment = *align
			case "width":
				s.Render.Width = *width
			case "height":
				s.Render.Height = *height
			case "output":
				s.Render.Output = *output
			}
		})
	}
	override(&s)

	store := settings.NewStore(settings.Default())
	if err := store.Replace(s); err != nil {
		log.Fatal(err)
	}
	if err := renderFile(store.Get()); err != nil {
		log.Fatal(err)
	}
	if !*watch {
		return
	}
	if *config == "" {
		log.Fatal("-watch needs -config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w, err := settings.NewWatcher(*config, store)
	if err != nil {
		log.Fatal(err)
	}
	store.Subscribe(func(_, next settings.Settings) {
		override(&next)
		if err := renderFile(next); err != nil {
			textpath.Logger().Warn("render failed", slog.Any("error", err))
		}
	})
	textpath.Logger().Info("watching", slog.String("path", *config))
	if err := w.Run(ctx); err != nil {
		log.Fatal(err)
	}
}

func renderFile(s settings.Settings) error {
	img, err := render(s)
	if err != nil {
		return err
	}
	f, err := os.Create(s.Render.Output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	textpath.Logger().Info("image written",
		slog.String("path", s.Render.Output),
		slog.Int("width", s.Render.Width),
		slog.Int("height", s.Render.Height))
	return nil
}

func render(s settings.Settings) (*image.RGBA, error) {
	src, err := loadFont(s.Text.FontFile)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	sh, err := s.BuildShape()
	if err != nil {
		return nil, err
	}
	p, err := sh.Path()
	if err != nil {
		return nil, err
	}
	opts, err := s.LayoutOptions()
	if err != nil {
		return nil, err
	}
	ap := textpath.NewArcLengthPath(p)
	if ap.IsDegenerate() {
		return nil, fmt.Errorf("%s: %w", sh.Kind(), textpath.ErrDegeneratePath)
	}

	w, h := s.Render.Width, s.Render.Height
	var img *image.RGBA
	if s.Render.ShowPath {
		img = drawPath(s, ap, p.Closed())
	} else {
		img = image.NewRGBA(image.Rect(0, 0, w, h))
		bg := settings.Color(s.Render.Background, image.White)
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	face := src.Face(s.Text.Size, s.FaceOptions()...)
	run := s.Shaper().Shape(s.Text.Content, face, s.ShapeOptions())
	fg := settings.Color(s.Render.Foreground, image.Black)
	text.DrawOnPath(img, ap, run, opts, image.NewUniform(fg))
	return img, nil
}

// drawPath renders the flattened path through the editor's renderer, with
// the canvas matching the image so that the text lines up.
func drawPath(s settings.Settings, ap *textpath.ArcLengthPath, closed bool) *image.RGBA {
	w, h := s.Render.Width, s.Render.Height
	cfg := s.EditorConfig()
	cfg.Canvas = textpath.RectXYWH(0, 0, float64(w), float64(h))
	cfg.Closed = closed
	cfg.Smoothing = false

	cps := ap.Checkpoints()
	pts := make([]textpath.Point, len(cps))
	for i, c := range cps {
		pts[i] = c.Pos
	}
	e := editor.New(cfg)
	e.SetPoints(pts)

	o := s.EditorRenderOptions()
	o.Stroke = settings.Color(s.Render.PathColor, o.Stroke)
	o.StrokeWidth = 1
	o.ShowViewport = false
	o.ShowPoints = false
	return e.Render(o)
}

func loadFont(path string) (*text.FontSource, error) {
	if path == "" {
		return text.NewFontSource(goregular.TTF)
	}
	return text.NewFontSourceFromFile(path)
}
