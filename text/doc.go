// Package text provides glyph metrics for the text box.
//
// Everything the measurer and the quad builder know about a font comes
// through the MetricsProvider interface:
//
//   - font-wide metrics (ascent, descent, line height) in font units
//   - per-glyph advance, plane bounds and atlas bounds
//   - kerning-adjusted advances for a pair of characters
//   - the dimensions and kind of the atlas texture
//
// Two providers are included:
//
//   - AtlasFace: a signed-distance-field atlas described by a glyph table,
//     typically produced offline by msdf-atlas-gen and read with ParseAtlasJSON
//   - SystemFace: a TrueType/OpenType font parsed with golang.org/x/image,
//     whose glyphs are rasterized once into a bitmap atlas at load time
//
// # Example usage
//
//	// Load font (do once, share across application)
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Bake a bitmap atlas and expose it as a provider
//	face, err := text.NewSystemFace(source, text.WithRasterSize(32))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Providers are immutable once constructed and safe for concurrent reads.
package text
