package text

// FontMetrics holds font-wide metrics in font units.
// Unlike golang.org/x/image's font.Metrics, Descent is negative (below the
// baseline), matching the ascender/descender convention of atlas generators.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float64

	// LineHeight is the recommended distance between consecutive baselines.
	LineHeight float64

	// UnitsPerEm is the size of the em square in font units.
	UnitsPerEm float64
}

// Extent returns Ascent - Descent, the span a pixel size is mapped onto.
func (m FontMetrics) Extent() float64 {
	return m.Ascent - m.Descent
}

// GlyphMetrics describes one glyph of a provider.
type GlyphMetrics struct {
	// Advance is the pen advance in font units, without kerning.
	Advance float64

	// Plane is the quad rectangle in font units relative to the pen position
	// on the baseline. Empty for glyphs with nothing to draw (space).
	Plane Bounds

	// Atlas is the glyph's rectangle in the atlas texture, in texels.
	Atlas Bounds
}

// AtlasInfo describes the texture a provider's atlas bounds refer to.
type AtlasInfo struct {
	// Width and Height of the atlas image in texels.
	Width, Height int

	// Kind tells whether the atlas holds coverage or distance values.
	Kind AtlasKind

	// DistanceRange is the SDF distance range in atlas texels (SDF only).
	DistanceRange float64

	// TexelsPerUnit is the number of atlas texels per font unit.
	TexelsPerUnit float64

	// YOrigin is the origin of the atlas bounds' Y axis.
	YOrigin YOrigin
}

// Valid reports whether the atlas has usable dimensions.
func (a AtlasInfo) Valid() bool {
	return a.Width > 0 && a.Height > 0
}
