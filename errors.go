package ggedit

import "errors"

// Sentinel errors for ggedit package.
var (
	// ErrNilFont is returned when a session is given no font.
	ErrNilFont = errors.New("ggedit: nil font")

	// ErrInvalidCaretWidth is returned by NewSession when the caret width is
	// not positive.
	ErrInvalidCaretWidth = errors.New("ggedit: caret width must be positive")
)
