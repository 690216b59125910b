package buffer

import "math"

// minGrowCapacity is the smallest capacity allocated by the first growth.
const minGrowCapacity = 16

// Option configures a Buffer.
type Option func(*config)

type config struct {
	capacity    int
	maxCapacity int
}

// WithCapacity preallocates n bytes of storage.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithMaxCapacity bounds the storage the buffer may allocate.
// Inserts that would need more fail with ErrAllocation.
// A value of 0 means unlimited.
func WithMaxCapacity(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxCapacity = n
		}
	}
}

// Buffer is a growable byte sequence with bounds-checked positional edits.
//
// The invariant Cap() >= Len() holds after every call. Only Insert and Delete
// mutate the content; everything else is a read.
//
// Buffer is not safe for concurrent use. It is owned by one editing session.
type Buffer struct {
	data   []byte // len(data) is the capacity, data[:length] is the content
	length int
	limit  int
	gen    uint64
	grows  int
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.maxCapacity > 0 && c.capacity > c.maxCapacity {
		c.capacity = c.maxCapacity
	}
	return &Buffer{
		data:  make([]byte, c.capacity),
		limit: c.maxCapacity,
	}
}

// FromString creates a buffer holding s.
func FromString(s string, opts ...Option) (*Buffer, error) {
	b := New(opts...)
	if err := b.Insert(0, []byte(s)); err != nil {
		return nil, err
	}
	return b, nil
}

// Len returns the number of bytes in use.
func (b *Buffer) Len() int {
	return b.length
}

// Cap returns the number of bytes allocated.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Generation returns a counter that changes on every successful mutation.
func (b *Buffer) Generation() uint64 {
	return b.gen
}

// Grows returns how many times the storage has been reallocated.
func (b *Buffer) Grows() int {
	return b.grows
}

// At returns the byte at offset i.
func (b *Buffer) At(i int) (byte, error) {
	if i < 0 || i >= b.length {
		return 0, &RangeError{Op: "at", Pos: i, Count: 1, Len: b.length}
	}
	return b.data[i], nil
}

// Slice returns a read-only view of [start, start+n).
// The view is invalidated by the next Insert or Delete.
func (b *Buffer) Slice(start, n int) ([]byte, error) {
	if err := (Span{Start: start, Len: n}).Check(b.length); err != nil {
		return nil, err
	}
	return b.data[start : start+n : start+n], nil
}

// Bytes returns a copy of the content.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, b.length)
	copy(out, b.data[:b.length])
	return out
}

// String returns the content as a string.
func (b *Buffer) String() string {
	return string(b.data[:b.length])
}

// Insert inserts p at pos, shifting [pos, Len()) right by len(p).
//
// It fails with ErrOutOfRange if pos is outside [0, Len()], and with
// ErrAllocation if the storage cannot grow. In both cases the buffer is
// unchanged. Inserting an empty slice is a no-op.
func (b *Buffer) Insert(pos int, p []byte) error {
	count := len(p)
	if pos < 0 || pos > b.length {
		return &RangeError{Op: "insert", Pos: pos, Count: count, Len: b.length}
	}
	if count == 0 {
		return nil
	}
	if count > math.MaxInt-b.length {
		return &AllocationError{Need: math.MaxInt, Limit: b.limit}
	}

	need := b.length + count
	if need > len(b.data) {
		if err := b.grow(need); err != nil {
			return err
		}
	}

	copy(b.data[pos+count:need], b.data[pos:b.length])
	copy(b.data[pos:pos+count], p)
	b.length = need
	b.gen++
	return nil
}

// Delete removes [pos, pos+count), shifting the tail left.
//
// It fails with ErrOutOfRange if the range is not inside the buffer.
// Delete never reallocates.
func (b *Buffer) Delete(pos, count int) error {
	if pos < 0 || count < 0 || pos > b.length || count > b.length-pos {
		return &RangeError{Op: "delete", Pos: pos, Count: count, Len: b.length}
	}
	if count == 0 {
		return nil
	}

	copy(b.data[pos:], b.data[pos+count:b.length])
	b.length -= count
	clear(b.data[b.length : b.length+count])
	b.gen++
	return nil
}

// grow reallocates the storage so that it holds at least need bytes.
// Capacity doubles and is raised to need when doubling is not enough.
func (b *Buffer) grow(need int) (err error) {
	newCap := len(b.data)
	if newCap > math.MaxInt/2 {
		newCap = math.MaxInt
	} else {
		newCap *= 2
	}
	if newCap < minGrowCapacity {
		newCap = minGrowCapacity
	}
	if newCap < need {
		newCap = need
	}
	if b.limit > 0 && newCap > b.limit {
		if need > b.limit {
			return &AllocationError{Need: need, Limit: b.limit}
		}
		newCap = b.limit
	}

	defer func() {
		if r := recover(); r != nil {
			err = &AllocationError{Need: newCap, Limit: b.limit}
		}
	}()

	data := make([]byte, newCap)
	copy(data, b.data[:b.length])
	b.data = data
	b.grows++
	return nil
}
