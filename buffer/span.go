package buffer

// Span is a transient (Start, Len) view into a buffer.
// It never owns storage and must be checked against the current buffer
// length before use.
type Span struct {
	Start int
	Len   int
}

// SpanOf returns the span [start, start+n).
func SpanOf(start, n int) Span {
	return Span{Start: start, Len: n}
}

// SpanBetween returns the span covering [min(a,b), max(a,b)).
// It is how selection endpoints, which may be in either order, become a span.
func SpanBetween(a, b int) Span {
	if a > b {
		a, b = b, a
	}
	return Span{Start: a, Len: b - a}
}

// End returns the exclusive end offset.
func (s Span) End() int {
	return s.Start + s.Len
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Len == 0
}

// Check validates the span against a buffer of the given length.
func (s Span) Check(length int) error {
	if s.Start < 0 || s.Len < 0 || s.Start > length || s.Len > length-s.Start {
		return &RangeError{Op: "span", Pos: s.Start, Count: s.Len, Len: length}
	}
	return nil
}
