package text

import "fmt"

// AtlasGlyph is one entry of an atlas glyph table.
type AtlasGlyph struct {
	Rune rune
	GlyphMetrics
}

// KerningPair adjusts the advance of Left when it is followed by Right.
type KerningPair struct {
	Left, Right rune
	// Adjust is added to Left's advance, in font units.
	Adjust float64
}

// AtlasLayout is the complete description of a prebuilt glyph atlas.
type AtlasLayout struct {
	Metrics FontMetrics
	Atlas   AtlasInfo
	Glyphs  []AtlasGlyph
	Kerning []KerningPair
}

// AtlasFace is a MetricsProvider backed by a prebuilt atlas glyph table.
// It is immutable and safe for concurrent use.
type AtlasFace struct {
	metrics FontMetrics
	atlas   AtlasInfo
	glyphs  map[rune]GlyphMetrics
	kerning map[[2]rune]float64
}

// NewAtlasFace validates layout and builds a provider from it.
// Duplicate glyph or kerning entries are rejected.
func NewAtlasFace(layout AtlasLayout) (*AtlasFace, error) {
	if !layout.Atlas.Valid() {
		return nil, &AtlasError{Field: "Atlas", Reason: "width and height must be positive"}
	}
	if layout.Metrics.Extent() <= 0 {
		return nil, &AtlasError{Field: "Metrics", Reason: "ascent must be greater than descent"}
	}
	if layout.Metrics.LineHeight <= 0 {
		return nil, &AtlasError{Field: "Metrics.LineHeight", Reason: "must be positive"}
	}
	if len(layout.Glyphs) == 0 {
		return nil, ErrNoGlyphs
	}

	f := &AtlasFace{
		metrics: layout.Metrics,
		atlas:   layout.Atlas,
		glyphs:  make(map[rune]GlyphMetrics, len(layout.Glyphs)),
		kerning: make(map[[2]rune]float64, len(layout.Kerning)),
	}
	for _, g := range layout.Glyphs {
		if _, dup := f.glyphs[g.Rune]; dup {
			return nil, &AtlasError{Field: "Glyphs", Reason: fmt.Sprintf("duplicate glyph %q", g.Rune)}
		}
		f.glyphs[g.Rune] = g.GlyphMetrics
	}
	for _, k := range layout.Kerning {
		key := [2]rune{k.Left, k.Right}
		if _, dup := f.kerning[key]; dup {
			return nil, &AtlasError{Field: "Kerning", Reason: fmt.Sprintf("duplicate pair %q%q", k.Left, k.Right)}
		}
		f.kerning[key] = k.Adjust
	}
	return f, nil
}

// Metrics implements MetricsProvider.Metrics.
func (f *AtlasFace) Metrics() FontMetrics {
	return f.metrics
}

// Glyph implements MetricsProvider.Glyph.
func (f *AtlasFace) Glyph(r rune) (GlyphMetrics, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// PairAdvance implements MetricsProvider.PairAdvance.
// Both glyphs must be present in the table.
func (f *AtlasFace) PairAdvance(r, next rune) (float64, bool) {
	g, ok := f.glyphs[r]
	if !ok {
		return 0, false
	}
	if _, ok := f.glyphs[next]; !ok {
		return 0, false
	}
	return g.Advance + f.kerning[[2]rune{r, next}], true
}

// Atlas implements MetricsProvider.Atlas.
func (f *AtlasFace) Atlas() AtlasInfo {
	return f.atlas
}

// NumGlyphs returns the number of glyphs in the table.
func (f *AtlasFace) NumGlyphs() int {
	return len(f.glyphs)
}
