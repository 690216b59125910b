// Package layout turns buffer contents into pixel measurements and glyph
// quads.
//
// Three consumers share one Font and one pen-advance routine:
//
//   - Measurer: pixel width and height of a span, for cursor and selection
//     placement
//   - RowOracle: the row contract a cursor/navigation state machine needs
//     (row extent, characters per row, x to offset mapping)
//   - QuadBuilder: one textured quad per visible glyph
//
// The measurer and the quad builder walk text with the same code, so the
// pen position after building a span is exactly the width the measurer
// reports for it. Keeping them in lockstep is what keeps the caret and the
// selection highlight aligned with the drawn glyphs.
//
// Control characters: '\n' starts a new line, '\r' is ignored, '\t'
// advances by TabWidth space advances. Kerning is looked up between a
// character and the one that follows it, never across a line break.
// Characters without a glyph fall back to Config.Fallback and, failing
// that, take no space.
//
// Everything here is synchronous and allocation-light; it is meant to be
// called on every keystroke and every frame from the thread that owns the
// editing session.
package layout
