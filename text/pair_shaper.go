package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// PairShaper computes kerning-adjusted pair advances with HarfBuzz shaping
// via go-text/typesetting. Unlike the legacy 'kern' table read by
// golang.org/x/image, shaping applies GPOS pair positioning, which is where
// most modern fonts keep their kerning.
//
// PairShaper is safe for concurrent use. It keeps the parsed font.Font
// (read-only) and creates a font.Face per call, since font.Face is not safe
// for concurrent use. HarfbuzzShaper instances are pooled.
type PairShaper struct {
	font *font.Font
	size fixed.Int26_6
	lang language.Language

	shaperPool sync.Pool
}

// NewPairShaper parses the source's font data for shaping.
// Advances are reported in font units.
func NewPairShaper(source *FontSource) (*PairShaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}
	upem := int(source.Font().UnitsPerEm())
	return &PairShaper{
		font: face.Font,
		size: fixed.I(upem),
		lang: language.NewLanguage("en"),
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// PairAdvance returns the shaped advance of r when followed by next.
// It reports false when shaping does not map the pair onto exactly two
// glyphs in order (a ligature, for instance).
func (s *PairShaper) PairAdvance(r, next rune) (float64, bool) {
	input := shaping.Input{
		Text:      []rune{r, next},
		RunStart:  0,
		RunEnd:    2,
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      s.size,
		Script:    language.LookupScript(r),
		Language:  s.lang,
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	glyphs := output.Glyphs
	if len(glyphs) != 2 || glyphs[0].TextIndex() != 0 || glyphs[1].TextIndex() != 1 {
		return 0, false
	}
	return fixedToFloat(glyphs[0].Advance), true
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
