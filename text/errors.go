package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoGlyphs is returned when a provider would contain no glyphs.
	ErrNoGlyphs = errors.New("text: no glyphs")

	// ErrAtlasFull is returned when the charset does not fit the largest atlas.
	ErrAtlasFull = errors.New("text: glyphs do not fit in atlas")

	// ErrInvalidAtlas is returned when an atlas description cannot be parsed.
	ErrInvalidAtlas = errors.New("text: invalid atlas description")
)

// AtlasError represents an atlas layout validation error.
type AtlasError struct {
	Field  string
	Reason string
}

func (e *AtlasError) Error() string {
	return "text: invalid atlas." + e.Field + ": " + e.Reason
}

// Unwrap returns ErrInvalidAtlas.
func (e *AtlasError) Unwrap() error {
	return ErrInvalidAtlas
}
