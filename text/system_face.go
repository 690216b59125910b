package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SystemFace is a MetricsProvider backed by a TrueType/OpenType font parsed
// with golang.org/x/image. Metrics come straight from the font in font units;
// the glyphs of the configured charset are rasterized once, at creation, into
// a bitmap atlas.
//
// SystemFace is immutable after creation and safe for concurrent use.
// Pair advances are memoized in an internal Cache.
type SystemFace struct {
	source  *FontSource
	metrics FontMetrics
	ppem    fixed.Int26_6

	glyphs map[rune]GlyphMetrics
	gids   map[rune]sfnt.GlyphIndex

	atlas      AtlasInfo
	atlasImage *image.Alpha

	shaper *PairShaper
	pairs  *Cache[PairKey, pairAdvance]
}

type pairAdvance struct {
	advance float64
	ok      bool
}

// NewSystemFace loads the metrics of source and bakes its bitmap atlas.
func NewSystemFace(source *FontSource, opts ...SystemOption) (*SystemFace, error) {
	if source == nil {
		return nil, ErrEmptyFontData
	}
	cfg := defaultSystemConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := source.Font()
	upem := int(f.UnitsPerEm())
	s := &SystemFace{
		source: source,
		// ppem == unitsPerEm makes every sfnt measurement come out in font units.
		ppem:   fixed.I(upem),
		glyphs: make(map[rune]GlyphMetrics, len(cfg.charset)),
		gids:   make(map[rune]sfnt.GlyphIndex, len(cfg.charset)),
		pairs:  NewCache[PairKey, pairAdvance](cfg.pairCacheLimit),
	}

	var buf sfnt.Buffer
	m, err := f.Metrics(&buf, s.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font metrics: %w", err)
	}
	s.metrics = FontMetrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    -fixedToFloat(m.Descent),
		LineHeight: fixedToFloat(m.Height),
		UnitsPerEm: float64(upem),
	}
	if s.metrics.Extent() <= 0 {
		return nil, fmt.Errorf("text: font %q has no vertical extent", source.Name())
	}

	scale := cfg.rasterSize / s.metrics.Extent()
	images, err := rasterizeCharset(f, cfg.charset, scale, cfg.logger)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, ErrNoGlyphs
	}
	packed, err := packAtlas(images, cfg.padding, cfg.maxAtlasSize)
	if err != nil {
		return nil, err
	}
	atlasImage, origins := packed.image, packed.origins
	s.atlasImage = atlasImage
	s.atlas = AtlasInfo{
		Width:         atlasImage.Bounds().Dx(),
		Height:        atlasImage.Bounds().Dy(),
		Kind:          AtlasBitmap,
		TexelsPerUnit: scale,
		YOrigin:       YOriginTop,
	}

	for i, img := range images {
		gi, _ := f.GlyphIndex(&buf, img.r)
		adv, err := f.GlyphAdvance(&buf, gi, s.ppem, font.HintingNone)
		if err != nil {
			cfg.logger.Warn("text: glyph advance unavailable", "rune", img.r, "err", err)
			continue
		}
		g := GlyphMetrics{Advance: fixedToFloat(adv)}
		if img.mask != nil {
			b := img.bounds
			g.Plane = Bounds{
				Left:   float64(b.Min.X) / scale,
				Bottom: float64(-b.Max.Y) / scale,
				Right:  float64(b.Max.X) / scale,
				Top:    float64(-b.Min.Y) / scale,
			}
			o := origins[i]
			g.Atlas = Bounds{
				Left:   float64(o.X),
				Bottom: float64(o.Y + b.Dy()),
				Right:  float64(o.X + b.Dx()),
				Top:    float64(o.Y),
			}
		}
		s.glyphs[img.r] = g
		s.gids[img.r] = gi
	}

	if cfg.shapedKerning {
		if s.shaper, err = NewPairShaper(source); err != nil {
			return nil, err
		}
	}

	cfg.logger.Info("text: system face loaded",
		"font", source.Name(),
		"glyphs", len(s.glyphs),
		"atlas", s.atlas.Width,
		"shelves", packed.shelves,
		"utilization", packed.utilization,
		"shaped", cfg.shapedKerning)
	return s, nil
}

// Metrics implements MetricsProvider.Metrics.
func (s *SystemFace) Metrics() FontMetrics {
	return s.metrics
}

// Glyph implements MetricsProvider.Glyph.
// Only glyphs baked into the atlas are reported.
func (s *SystemFace) Glyph(r rune) (GlyphMetrics, bool) {
	g, ok := s.glyphs[r]
	return g, ok
}

// PairAdvance implements MetricsProvider.PairAdvance.
// Both runes must have baked glyphs.
func (s *SystemFace) PairAdvance(r, next rune) (float64, bool) {
	g, ok := s.glyphs[r]
	if !ok {
		return 0, false
	}
	if _, ok := s.glyphs[next]; !ok {
		return 0, false
	}
	p := s.pairs.GetOrCreate(PairKey{Left: r, Right: next}, func() pairAdvance {
		return s.computePair(r, next, g.Advance)
	})
	return p.advance, p.ok
}

func (s *SystemFace) computePair(r, next rune, advance float64) pairAdvance {
	if s.shaper != nil {
		if adv, ok := s.shaper.PairAdvance(r, next); ok {
			return pairAdvance{advance: adv, ok: true}
		}
		return pairAdvance{advance: advance, ok: true}
	}

	var buf sfnt.Buffer
	k, err := s.source.Font().Kern(&buf, s.gids[r], s.gids[next], s.ppem, font.HintingNone)
	if err != nil {
		// sfnt.ErrNotFound: no 'kern' table or no entry for the pair.
		// Any other kern table failure is treated the same way.
		k = 0
	}
	return pairAdvance{advance: advance + fixedToFloat(k), ok: true}
}

// Atlas implements MetricsProvider.Atlas.
func (s *SystemFace) Atlas() AtlasInfo {
	return s.atlas
}

// AtlasImage returns the baked coverage atlas. It must not be modified.
func (s *SystemFace) AtlasImage() *image.Alpha {
	return s.atlasImage
}

// Source returns the FontSource this face was created from.
func (s *SystemFace) Source() *FontSource {
	return s.source
}

// NumGlyphs returns the number of baked glyphs.
func (s *SystemFace) NumGlyphs() int {
	return len(s.glyphs)
}
