package layout

import (
	"math"

	"github.com/gogpu/ggedit/buffer"
	"github.com/gogpu/ggedit/text"
)

// Size is a measured extent in whole pixels, rounded up.
type Size struct {
	Width  int
	Height int
}

// measureKey identifies a measurement. The buffer generation makes stale
// entries unreachable as soon as the buffer changes.
type measureKey struct {
	buf   *buffer.Buffer
	gen   uint64
	font  uint64
	start int
	n     int
}

type measurement struct {
	width float64
	lines int
}

// Measurer computes pixel extents of text spans.
//
// A Measurer never mutates its source and never fails on a valid span.
// Measurer is not safe for concurrent use when caching is enabled on a
// buffer that is being edited; it is meant for the session goroutine.
type Measurer struct {
	font  *Font
	cache *text.Cache[measureKey, measurement]
}

// NewMeasurer creates a measurer for font.
// Measurements of *buffer.Buffer spans are memoized when the font was
// created WithMeasureCache.
func NewMeasurer(font *Font) *Measurer {
	m := &Measurer{font: font}
	if font != nil && font.cfg.MeasureCache > 0 {
		m.cache = text.NewCache[measureKey, measurement](font.cfg.MeasureCache)
	}
	return m
}

// Font returns the font the measurer lays text out with.
func (m *Measurer) Font() *Font {
	return m.font
}

// Measure returns the width of the widest line of span and the height of
// all its lines, both rounded up to whole pixels.
// An empty span measures zero wide and one line high.
func (m *Measurer) Measure(src Source, span buffer.Span) (Size, error) {
	r, err := m.measure(src, span)
	if err != nil {
		return Size{}, err
	}
	return Size{
		Width:  int(math.Ceil(r.width)),
		Height: int(math.Ceil(float64(r.lines) * m.font.lineHeight)),
	}, nil
}

// Advance returns the exact width in pixels of the widest line of span.
// It equals the pen travel of QuadBuilder over a single-line span.
func (m *Measurer) Advance(src Source, span buffer.Span) (float64, error) {
	r, err := m.measure(src, span)
	if err != nil {
		return 0, err
	}
	return r.width, nil
}

// MeasureBytes measures text held outside a buffer.
func (m *Measurer) MeasureBytes(s []byte) (Size, error) {
	return m.Measure(bytesSource(s), buffer.SpanOf(0, len(s)))
}

// CharAdvance returns the pen advance of the character at i, kerned against
// the character after it. A '\n' has no advance.
func (m *Measurer) CharAdvance(src Source, i int) (float64, error) {
	if err := m.font.check(); err != nil {
		return 0, err
	}
	n := min(2, src.Len()-i)
	s, err := view(src, buffer.SpanOf(i, max(n, 1)))
	if err != nil {
		return 0, err
	}
	if s[0] == '\n' {
		return 0, nil
	}
	return m.font.advance(s, 0), nil
}

// CacheStats returns measurement cache hits and misses.
// Both are zero when caching is disabled.
func (m *Measurer) CacheStats() (hits, misses int64) {
	if m.cache == nil {
		return 0, 0
	}
	return m.cache.Stats()
}

func (m *Measurer) measure(src Source, span buffer.Span) (measurement, error) {
	if err := m.font.check(); err != nil {
		return measurement{}, err
	}
	s, err := view(src, span)
	if err != nil {
		return measurement{}, err
	}

	buf, ok := src.(*buffer.Buffer)
	if m.cache == nil || !ok {
		return m.walk(s), nil
	}
	key := measureKey{
		buf:   buf,
		gen:   buf.Generation(),
		font:  m.font.gen,
		start: span.Start,
		n:     span.Len,
	}
	return m.cache.GetOrCreate(key, func() measurement {
		return m.walk(s)
	}), nil
}

func (m *Measurer) walk(s []byte) measurement {
	p := m.font.walk(s, 0, 0, nil)
	return measurement{width: p.maxX, lines: p.lines}
}
