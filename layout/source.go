package layout

import "github.com/gogpu/ggedit/buffer"

// Source is the read-only view of edited text the layout consumers need.
// *buffer.Buffer implements it.
type Source interface {
	// Len returns the number of bytes in use.
	Len() int

	// Slice returns a read-only view of n bytes starting at start.
	Slice(start, n int) ([]byte, error)

	// Generation changes on every mutation of the text.
	Generation() uint64
}

var _ Source = (*buffer.Buffer)(nil)

// view validates span against src and returns its bytes.
func view(src Source, span buffer.Span) ([]byte, error) {
	if err := span.Check(src.Len()); err != nil {
		return nil, err
	}
	return src.Slice(span.Start, span.Len)
}

// bytesSource adapts a plain byte slice, for measuring text that is not in
// a buffer yet.
type bytesSource []byte

func (b bytesSource) Len() int { return len(b) }

func (b bytesSource) Slice(start, n int) ([]byte, error) {
	return b[start : start+n : start+n], nil
}

func (b bytesSource) Generation() uint64 { return 0 }
