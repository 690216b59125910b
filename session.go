package ggedit

import (
	"bytes"
	"errors"

	"github.com/gogpu/ggedit/buffer"
	"github.com/gogpu/ggedit/clipboard"
	"github.com/gogpu/ggedit/layout"
)

// Document is what a cursor/navigation state machine needs from the text
// it edits. Offsets are byte offsets; every byte is one character.
type Document interface {
	Len() int
	CharAt(i int) (byte, error)
	Insert(pos int, p []byte) error
	Delete(pos, count int) error

	// MeasureWidth returns the exact pixel width of a span.
	MeasureWidth(span buffer.Span) (float64, error)

	// CharWidth returns the advance of the character at i, kerned against
	// the character after it.
	CharWidth(i int) (float64, error)

	RowAt(start int) (layout.RowMetrics, error)
	OffsetAt(rowStart int, x float64) (int, error)
}

var _ Document = (*Session)(nil)

// Session is one text box: a buffer plus the font it is laid out with.
type Session struct {
	buf        *buffer.Buffer
	font       *layout.Font
	measurer   *layout.Measurer
	rows       *layout.RowOracle
	quads      *layout.QuadBuilder
	caretWidth float64
}

// NewSession creates a session editing text in font.
func NewSession(font *layout.Font, opts ...Option) (*Session, error) {
	if font == nil {
		return nil, ErrNilFont
	}
	if font.Closed() {
		return nil, layout.ErrFontClosed
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.caretWidth <= 0 {
		return nil, ErrInvalidCaretWidth
	}

	buf, err := buffer.FromString(o.text, o.bufferOpts...)
	if err != nil {
		return nil, err
	}
	s := &Session{buf: buf, caretWidth: o.caretWidth}
	s.bind(font)
	return s, nil
}

func (s *Session) bind(font *layout.Font) {
	s.font = font
	s.measurer = layout.NewMeasurer(font)
	s.rows = layout.NewRowOracle(s.measurer)
	s.quads = layout.NewQuadBuilder(font)
}

// Font returns the current font.
func (s *Session) Font() *layout.Font {
	return s.font
}

// Buffer returns the session's buffer. Edits should go through the
// session so they are logged.
func (s *Session) Buffer() *buffer.Buffer {
	return s.buf
}

// SetFont replaces the font and closes the previous one.
// It must not be called while a measurement or build is in flight.
func (s *Session) SetFont(font *layout.Font) error {
	if font == nil {
		return ErrNilFont
	}
	if font.Closed() {
		return layout.ErrFontClosed
	}
	if font == s.font {
		return nil
	}
	old := s.font
	s.bind(font)
	if err := old.Close(); err != nil {
		Logger().Warn("ggedit: closing previous font failed", "err", err)
	}
	Logger().Info("ggedit: font reloaded",
		"generation", font.Generation(),
		"pixelSize", font.Config().PixelSize,
		"lineHeight", font.LineHeight())
	return nil
}

// Len returns the number of characters in the buffer.
func (s *Session) Len() int {
	return s.buf.Len()
}

// CharAt returns the character at i.
func (s *Session) CharAt(i int) (byte, error) {
	return s.buf.At(i)
}

// Insert inserts p at pos. On failure the buffer is unchanged.
func (s *Session) Insert(pos int, p []byte) error {
	grows := s.buf.Grows()
	if err := s.buf.Insert(pos, p); err != nil {
		if errors.Is(err, buffer.ErrAllocation) {
			Logger().Warn("ggedit: insert rejected", "pos", pos, "n", len(p), "err", err)
		}
		return err
	}
	if s.buf.Grows() != grows {
		Logger().Debug("ggedit: buffer grew", "len", s.buf.Len(), "cap", s.buf.Cap())
	}
	return nil
}

// Delete removes count characters at pos. On failure the buffer is
// unchanged.
func (s *Session) Delete(pos, count int) error {
	return s.buf.Delete(pos, count)
}

// Measure returns the rounded-up pixel size of span.
func (s *Session) Measure(span buffer.Span) (layout.Size, error) {
	return s.measurer.Measure(s.buf, span)
}

// MeasureWidth implements Document.
func (s *Session) MeasureWidth(span buffer.Span) (float64, error) {
	return s.measurer.Advance(s.buf, span)
}

// CharWidth implements Document.
func (s *Session) CharWidth(i int) (float64, error) {
	return s.measurer.CharAdvance(s.buf, i)
}

// RowAt implements Document.
func (s *Session) RowAt(start int) (layout.RowMetrics, error) {
	return s.rows.RowAt(s.buf, start)
}

// OffsetAt implements Document.
func (s *Session) OffsetAt(rowStart int, x float64) (int, error) {
	return s.rows.OffsetAt(s.buf, rowStart, x)
}

// SelectAll returns the span of the whole buffer.
func (s *Session) SelectAll() buffer.Span {
	return buffer.SpanOf(0, s.buf.Len())
}

// Caret returns the caret rectangle for a cursor before character cursor.
// X is the measured width of the cursor's line up to the cursor. That span
// ends at the cursor, so the character before the caret is not kerned
// against the one after it: with a kerned pair the caret sits at the
// unkerned advance, a few pixels right of where the next glyph is drawn.
func (s *Session) Caret(cursor int) (Rect, error) {
	head, err := s.buf.Slice(0, cursor)
	if err != nil {
		return Rect{}, err
	}
	lineStart := bytes.LastIndexByte(head, '\n') + 1
	size, err := s.Measure(buffer.SpanOf(lineStart, cursor-lineStart))
	if err != nil {
		return Rect{}, err
	}
	lh := s.font.LineHeight()
	return Rect{
		X: float64(size.Width),
		Y: float64(bytes.Count(head, newline)) * lh,
		W: s.caretWidth,
		H: lh,
	}, nil
}

var newline = []byte{'\n'}

// Selection returns the highlight rectangles of the selection between a
// and b, one per line. The endpoints may be in either order. Edges are
// measured like Caret, so they line up with the caret.
func (s *Session) Selection(a, b int) ([]Rect, error) {
	span := buffer.SpanBetween(a, b)
	if err := span.Check(s.buf.Len()); err != nil {
		return nil, err
	}
	if span.Empty() {
		return nil, nil
	}
	head, _ := s.buf.Slice(0, span.End())

	lh := s.font.LineHeight()
	lineStart := bytes.LastIndexByte(head[:span.Start], '\n') + 1
	line := bytes.Count(head[:span.Start], newline)

	var rects []Rect
	for pos := span.Start; pos < span.End(); {
		end := span.End()
		if i := bytes.IndexByte(head[pos:end], '\n'); i >= 0 {
			end = pos + i
		}
		x, err := s.Measure(buffer.SpanOf(lineStart, pos-lineStart))
		if err != nil {
			return nil, err
		}
		w, err := s.Measure(buffer.SpanOf(pos, end-pos))
		if err != nil {
			return nil, err
		}
		rects = append(rects, Rect{
			X: float64(x.Width),
			Y: float64(line) * lh,
			W: float64(w.Width),
			H: lh,
		})
		pos = end + 1
		lineStart = pos
		line++
	}
	return rects, nil
}

// Quads lays out the whole buffer with the pen starting at (x, y).
func (s *Session) Quads(x, y float64) (layout.Run, error) {
	return s.quads.Build(s.buf, s.SelectAll(), x, y)
}

// AppendQuads is like Quads but appends to dst.
func (s *Session) AppendQuads(dst []layout.GlyphQuad, x, y float64) (layout.Run, error) {
	return s.quads.Append(dst, s.buf, s.SelectAll(), x, y)
}

// Copy returns the text between a and b as UTF-8.
func (s *Session) Copy(a, b int) (string, error) {
	span := buffer.SpanBetween(a, b)
	if err := span.Check(s.buf.Len()); err != nil {
		return "", err
	}
	p, err := s.buf.Slice(span.Start, span.Len)
	if err != nil {
		return "", err
	}
	return clipboard.Decode(p), nil
}

// Cut is like Copy and then deletes the text.
func (s *Session) Cut(a, b int) (string, error) {
	text, err := s.Copy(a, b)
	if err != nil {
		return "", err
	}
	span := buffer.SpanBetween(a, b)
	if err := s.Delete(span.Start, span.Len); err != nil {
		return "", err
	}
	return text, nil
}

// Paste inserts UTF-8 text at pos with a single insert. Text that encodes
// to one buffer byte is reported as EditKey, anything longer as EditPaste.
func (s *Session) Paste(pos int, text string) (Edit, error) {
	p := clipboard.Encode(text)
	if len(p) == 0 {
		return Edit{Kind: EditNone, Pos: pos}, nil
	}
	kind := EditPaste
	if len(p) == 1 {
		kind = EditKey
	}
	if err := s.Insert(pos, p); err != nil {
		return Edit{Kind: EditNone, Pos: pos}, err
	}
	return Edit{Kind: kind, Pos: pos, Len: len(p)}, nil
}

// CopyTo stores the text between a and b in cb.
func (s *Session) CopyTo(cb clipboard.Clipboard, a, b int) error {
	text, err := s.Copy(a, b)
	if err != nil {
		return err
	}
	Logger().Debug("ggedit: copy", "n", len(text))
	return cb.Store(text)
}

// CutTo stores the text between a and b in cb and deletes it.
// Nothing is deleted if the clipboard rejects the text.
func (s *Session) CutTo(cb clipboard.Clipboard, a, b int) error {
	if err := s.CopyTo(cb, a, b); err != nil {
		return err
	}
	span := buffer.SpanBetween(a, b)
	return s.Delete(span.Start, span.Len)
}

// PasteFrom inserts the contents of cb at pos.
func (s *Session) PasteFrom(cb clipboard.Clipboard, pos int) (Edit, error) {
	text, err := cb.Fetch()
	if err != nil {
		return Edit{Kind: EditNone, Pos: pos}, err
	}
	Logger().Debug("ggedit: paste", "pos", pos, "n", len(text))
	return s.Paste(pos, text)
}
