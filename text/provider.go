package text

// MetricsProvider supplies glyph and font metrics to the measurer and the
// quad builder.
//
// Implementations must be immutable for the lifetime of a loaded font:
// any number of measurements may read them without coordination.
type MetricsProvider interface {
	// Metrics returns the font-wide metrics in font units.
	Metrics() FontMetrics

	// Glyph returns the metrics of the glyph for r.
	// The second result is false if the provider has no such glyph.
	Glyph(r rune) (GlyphMetrics, bool)

	// PairAdvance returns the advance of r in font units when it is
	// followed by next, kerning included. The second result is false when
	// the provider cannot resolve the pair; callers then use the lone
	// glyph advance.
	PairAdvance(r, next rune) (float64, bool)

	// Atlas describes the texture referenced by GlyphMetrics.Atlas.
	Atlas() AtlasInfo
}
