package text

import (
	"fmt"
	"image"
	"log/slog"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// minAtlasSize is the side length the atlas search starts from.
const minAtlasSize = 256

// glyphImage is a rasterized glyph awaiting placement in the atlas.
type glyphImage struct {
	r rune

	// mask is a private copy; opentype faces reuse their mask buffer.
	mask *image.Alpha

	// bounds relative to the pen on the baseline, Y down, in pixels.
	bounds image.Rectangle
}

// rasterizeCharset renders every rune of charset that f maps to a glyph at
// scale pixels per font unit. Runes without a glyph are skipped.
func rasterizeCharset(f *sfnt.Font, charset []rune, scale float64, logger *slog.Logger) ([]glyphImage, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    scale * float64(f.UnitsPerEm()),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create raster face: %w", err)
	}
	defer face.Close()

	var buf sfnt.Buffer
	images := make([]glyphImage, 0, len(charset))
	for _, r := range charset {
		if gi, err := f.GlyphIndex(&buf, r); err != nil || gi == 0 {
			logger.Debug("text: no glyph for rune", "rune", r)
			continue
		}

		dr, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			logger.Warn("text: glyph could not be rasterized", "rune", r)
			continue
		}
		img := glyphImage{r: r, bounds: dr}
		if !dr.Empty() {
			img.mask = image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
			draw.Draw(img.mask, img.mask.Bounds(), mask, maskp, draw.Src)
		}
		images = append(images, img)
	}
	return images, nil
}

// packedAtlas is the result of packAtlas.
type packedAtlas struct {
	image *image.Alpha

	// origins holds each image's top-left corner, indexed like the input.
	origins []image.Point

	utilization float64
	shelves     int
}

// packAtlas places the glyph images into the smallest square power-of-two
// atlas not exceeding maxSize.
func packAtlas(images []glyphImage, padding, maxSize int) (packedAtlas, error) {
	for size := min(minAtlasSize, maxSize); size <= maxSize; size *= 2 {
		alloc := NewShelfAllocator(size, size, padding)
		origins := make([]image.Point, len(images))
		fits := true
		for i, img := range images {
			if img.mask == nil {
				continue
			}
			x, y, ok := alloc.Allocate(img.bounds.Dx(), img.bounds.Dy())
			if !ok {
				fits = false
				break
			}
			origins[i] = image.Pt(x, y)
		}
		if !fits {
			continue
		}

		atlas := image.NewAlpha(image.Rect(0, 0, size, size))
		for i, img := range images {
			if img.mask == nil {
				continue
			}
			r := image.Rectangle{Min: origins[i], Max: origins[i].Add(img.bounds.Size())}
			draw.Draw(atlas, r, img.mask, image.Point{}, draw.Src)
		}
		return packedAtlas{
			image:       atlas,
			origins:     origins,
			utilization: alloc.Utilization(),
			shelves:     alloc.ShelfCount(),
		}, nil
	}
	return packedAtlas{}, fmt.Errorf("%w: %d glyphs, max size %d", ErrAtlasFull, len(images), maxSize)
}
