// Command ggedit-demo lays out a text box and renders it to a PNG: the
// selection highlight, the glyph quads and the caret, all positioned from
// the same measurements a text editor would use.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/layout"
	"github.com/gogpu/ggedit/text"
)

const margin = 16

var (
	selectionColor = color.NRGBA{R: 0x9c, G: 0xc8, B: 0xff, A: 0xff}
	textColor      = color.Black
	caretColor     = color.NRGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff}
)

func main() {
	var (
		fontPath = flag.String("font", "", "TrueType/OpenType font file (default: Go Regular)")
		sysFont  = flag.String("sysfont", "", "system font name, e.g. DejaVuSans")
		size     = flag.Float64("size", 32, "pixel size")
		content  = flag.String("text", "Hello, AVATAR!\nTab\there.", "text box contents")
		cursor   = flag.Int("cursor", -1, "caret offset (default: end of text)")
		sel      = flag.String("sel", "", "selection as start,end")
		output   = flag.String("output", "ggedit.png", "output file")
		shaped   = flag.Bool("shaped", false, "kern with HarfBuzz pair shaping instead of the kern table")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ggedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	face, err := loadFace(*fontPath, *sysFont, *size, *shaped)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	font, err := layout.NewFont(face, layout.WithPixelSize(*size), layout.WithMode(layout.MultiLine))
	if err != nil {
		log.Fatalf("Failed to create font: %v", err)
	}
	s, err := ggedit.NewSession(font, ggedit.WithText(*content))
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	if *cursor < 0 {
		*cursor = s.Len()
	}
	var selA, selB int
	if *sel != "" {
		if _, err := fmt.Sscanf(*sel, "%d,%d", &selA, &selB); err != nil {
			log.Fatalf("Invalid -sel %q: %v", *sel, err)
		}
	}

	img, err := render(s, face, *cursor, selA, selB)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, img.Bounds().Dx(), img.Bounds().Dy())
}

func loadFace(path, name string, size float64, shaped bool) (*text.SystemFace, error) {
	var (
		src *text.FontSource
		err error
	)
	switch {
	case path != "":
		src, err = text.NewFontSourceFromFile(path)
	case name != "":
		src, err = text.FindFontSource(name)
	default:
		src, err = text.NewFontSource(goregular.TTF)
	}
	if err != nil {
		return nil, err
	}

	opts := []text.SystemOption{
		text.WithRasterSize(size),
		text.WithLogger(ggedit.Logger()),
	}
	if shaped {
		opts = append(opts, text.WithShapedKerning())
	}
	return text.NewSystemFace(src, opts...)
}

func render(s *ggedit.Session, face *text.SystemFace, cursor, selA, selB int) (*image.RGBA, error) {
	font := s.Font()
	extent, err := s.Measure(s.SelectAll())
	if err != nil {
		return nil, err
	}
	caret, err := s.Caret(cursor)
	if err != nil {
		return nil, err
	}
	selection, err := s.Selection(selA, selB)
	if err != nil {
		return nil, err
	}
	run, err := s.Quads(0, 0)
	if err != nil {
		return nil, err
	}
	ggedit.Logger().Info("ggedit-demo: measured",
		"len", s.Len(),
		"width", extent.Width,
		"height", extent.Height,
		"caretX", caret.X,
		"quads", len(run.Quads))

	w := extent.Width + int(math.Ceil(caret.W)) + 2*margin
	h := extent.Height + 2*margin
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	for _, r := range selection {
		fillRect(dst, r, selectionColor)
	}

	// Quads are y-up from the first baseline.
	baseline := margin + font.Provider().Metrics().Ascent*font.Scale()
	atlas := face.AtlasImage()
	aw, ah := float64(atlas.Bounds().Dx()), float64(atlas.Bounds().Dy())
	ink := image.NewUniform(textColor)
	for _, q := range run.Quads {
		bl, tr := q.Vertices[0], q.Vertices[2]
		dr := image.Rect(
			int(math.Round(margin+float64(bl.Pos[0]))),
			int(math.Round(baseline-float64(tr.Pos[1]))),
			int(math.Round(margin+float64(tr.Pos[0]))),
			int(math.Round(baseline-float64(bl.Pos[1]))),
		)
		sr := image.Rect(
			int(math.Round(float64(bl.UV[0])*aw)),
			int(math.Round(float64(tr.UV[1])*ah)),
			int(math.Round(float64(tr.UV[0])*aw)),
			int(math.Round(float64(bl.UV[1])*ah)),
		)
		if dr.Empty() || sr.Empty() {
			continue
		}
		mask := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
		xdraw.BiLinear.Scale(mask, mask.Bounds(), atlas, sr, xdraw.Src, nil)
		draw.DrawMask(dst, dr, ink, image.Point{}, mask, image.Point{}, draw.Over)
	}

	fillRect(dst, caret, caretColor)
	return dst, nil
}

func fillRect(dst draw.Image, r ggedit.Rect, c color.Color) {
	rect := image.Rect(
		margin+int(math.Floor(r.X)),
		margin+int(math.Floor(r.Y)),
		margin+int(math.Ceil(r.X+r.W)),
		margin+int(math.Ceil(r.Y+r.H)),
	)
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Over)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
