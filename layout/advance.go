package layout

import "github.com/gogpu/ggedit/text"

// resolve returns the glyph drawn for c: its own, else the fallback glyph.
// The rune is the one whose glyph was found.
func (f *Font) resolve(c byte) (rune, text.GlyphMetrics, bool) {
	r := rune(c)
	if g, ok := f.provider.Glyph(r); ok {
		return r, g, true
	}
	if g, ok := f.provider.Glyph(f.cfg.Fallback); ok {
		return f.cfg.Fallback, g, true
	}
	return 0, text.GlyphMetrics{}, false
}

// isBreak reports whether c ends a kerning context.
func isBreak(c byte) bool {
	return c == '\n' || c == '\r'
}

// advance returns the pen advance in pixels of s[i], which must not be '\n'.
//
// This is the only place pen arithmetic is defined. The measurer, the row
// oracle and the quad builder all move their pens by it.
func (f *Font) advance(s []byte, i int) float64 {
	c := s[i]
	switch c {
	case '\r':
		return 0
	case '\t':
		return float64(f.cfg.TabWidth) * (f.scale * f.space)
	}

	r, g, ok := f.resolve(c)
	if !ok {
		return 0
	}
	adv := g.Advance
	if i+1 < len(s) && !isBreak(s[i+1]) {
		if pair, ok := f.provider.PairAdvance(r, rune(s[i+1])); ok {
			adv = pair
		}
	}
	return f.scale * adv
}

// pen is the state of a walk over text.
type pen struct {
	x, y    float64
	originX float64
	maxX    float64 // furthest x reached on any completed or current line
	lines   int
}

// glyphVisitor receives each drawable character with the pen position at
// which it is drawn.
type glyphVisitor func(i int, c byte, g text.GlyphMetrics, x, y float64)

// walk advances a pen from (x, y) over s and returns its final state.
// visit, if not nil, is called for every character that has a glyph and is
// not whitespace.
func (f *Font) walk(s []byte, x, y float64, visit glyphVisitor) pen {
	p := pen{x: x, y: y, originX: x, maxX: x, lines: 1}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\n':
			p.maxX = max(p.maxX, p.x)
			p.x = p.originX
			p.y -= f.lineHeight
			p.lines++
			continue
		case '\r', ' ', '\t':
			p.x += f.advance(s, i)
			continue
		}

		if visit != nil {
			if _, g, ok := f.resolve(c); ok {
				visit(i, c, g, p.x, p.y)
			}
		}
		p.x += f.advance(s, i)
	}
	p.maxX = max(p.maxX, p.x)
	return p
}
