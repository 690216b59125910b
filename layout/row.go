package layout

import (
	"bytes"

	"github.com/gogpu/ggedit/buffer"
)

// RowMetrics describes one visual row.
type RowMetrics struct {
	X0, X1        float64
	YMin, YMax    float64
	BaselineDelta float64

	// CharCount is the number of bytes that belong to the row, including
	// its terminating '\n'. The next row starts at start + CharCount.
	CharCount int
}

// RowOracle answers the row queries of a cursor navigation state machine.
type RowOracle struct {
	m *Measurer
}

// NewRowOracle creates a row oracle measuring with m.
func NewRowOracle(m *Measurer) *RowOracle {
	return &RowOracle{m: m}
}

// RowAt returns the row that begins at start.
//
// In SingleLine mode the row runs to the end of the text. In MultiLine mode
// it ends after the first '\n', or at the end of the text.
func (o *RowOracle) RowAt(src Source, start int) (RowMetrics, error) {
	f := o.m.font
	if err := f.check(); err != nil {
		return RowMetrics{}, err
	}
	rest, err := view(src, buffer.SpanOf(start, src.Len()-start))
	if err != nil {
		return RowMetrics{}, err
	}

	n := len(rest)
	if f.cfg.Mode == MultiLine {
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			n = i + 1
		}
	}
	width, err := o.m.Advance(src, buffer.SpanOf(start, content(rest[:n])))
	if err != nil {
		return RowMetrics{}, err
	}
	return RowMetrics{
		X1:            width,
		YMax:          f.lineHeight,
		BaselineDelta: f.lineHeight,
		CharCount:     n,
	}, nil
}

// OffsetAt maps x, relative to the start of the row beginning at rowStart,
// to the nearest character boundary on that row's first line. On an exact
// tie the earlier offset wins.
func (o *RowOracle) OffsetAt(src Source, rowStart int, x float64) (int, error) {
	f := o.m.font
	if err := f.check(); err != nil {
		return 0, err
	}
	rest, err := view(src, buffer.SpanOf(rowStart, src.Len()-rowStart))
	if err != nil {
		return 0, err
	}
	line := rest
	if i := bytes.IndexByte(rest, '\n'); i >= 0 {
		line = rest[:i]
	}

	pos := 0.0
	for i := range line {
		next := pos + f.advance(line, i)
		if x <= (pos+next)/2 {
			return rowStart + i, nil
		}
		pos = next
	}
	return rowStart + len(line), nil
}

// content returns the length of row without its terminating '\n'.
func content(row []byte) int {
	if n := len(row); n > 0 && row[n-1] == '\n' {
		return n - 1
	}
	return len(row)
}
