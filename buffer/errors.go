package buffer

import (
	"errors"
	"fmt"
)

// Sentinel errors for buffer package.
var (
	// ErrOutOfRange is returned when a position, count or span lies outside
	// the current buffer bounds.
	ErrOutOfRange = errors.New("buffer: out of range")

	// ErrAllocation is returned when growing the storage fails.
	// The buffer is left unchanged.
	ErrAllocation = errors.New("buffer: allocation failure")
)

// RangeError describes a rejected insert, delete or span access.
// It unwraps to ErrOutOfRange.
type RangeError struct {
	Op    string
	Pos   int
	Count int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("buffer: %s [%d, %d+%d) out of range for length %d",
		e.Op, e.Pos, e.Pos, e.Count, e.Len)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// AllocationError reports a growth request that could not be satisfied.
// It unwraps to ErrAllocation.
type AllocationError struct {
	Need  int
	Limit int
}

func (e *AllocationError) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("buffer: cannot grow to %d bytes (limit %d)", e.Need, e.Limit)
	}
	return fmt.Sprintf("buffer: cannot grow to %d bytes", e.Need)
}

// Unwrap returns ErrAllocation.
func (e *AllocationError) Unwrap() error {
	return ErrAllocation
}
