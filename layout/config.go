package layout

import (
	"image/color"
	"unicode/utf8"
)

// Mode selects how rows are formed.
type Mode int

const (
	// SingleLine treats everything from a row start to the end of the
	// buffer as one row.
	SingleLine Mode = iota
	// MultiLine ends a row after each '\n'.
	MultiLine
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case SingleLine:
		return "SingleLine"
	case MultiLine:
		return "MultiLine"
	default:
		return "Unknown"
	}
}

// Config holds the layout parameters of a Font.
type Config struct {
	// PixelSize is the pixel distance between ascent and descent.
	// Default: 24
	PixelSize float64

	// TabWidth is the advance of '\t' in space advances.
	// Default: 4
	TabWidth int

	// Fallback is the glyph substituted for characters the provider lacks.
	// Default: '?'
	Fallback rune

	// Mode selects single- or multi-line rows.
	// Default: SingleLine
	Mode Mode

	// Color is the flat vertex color of glyph quads.
	// Default: opaque black
	Color color.Color

	// MeasureCache is the soft limit of the measurement cache.
	// 0 disables caching. Default: 0
	MeasureCache int
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() Config {
	return Config{
		PixelSize: 24,
		TabWidth:  4,
		Fallback:  '?',
		Mode:      SingleLine,
		Color:     color.Black,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.PixelSize <= 0 {
		return &ConfigError{Field: "PixelSize", Reason: "must be positive"}
	}
	if c.TabWidth < 0 {
		return &ConfigError{Field: "TabWidth", Reason: "must be non-negative"}
	}
	if !utf8.ValidRune(c.Fallback) {
		return &ConfigError{Field: "Fallback", Reason: "must be a valid rune"}
	}
	if c.Mode != SingleLine && c.Mode != MultiLine {
		return &ConfigError{Field: "Mode", Reason: "unknown mode"}
	}
	if c.Color == nil {
		return &ConfigError{Field: "Color", Reason: "must not be nil"}
	}
	if c.MeasureCache < 0 {
		return &ConfigError{Field: "MeasureCache", Reason: "must be non-negative"}
	}
	return nil
}

// Option configures a Font.
type Option func(*Config)

// WithPixelSize sets the target pixel size.
func WithPixelSize(px float64) Option {
	return func(c *Config) {
		c.PixelSize = px
	}
}

// WithTabWidth sets the tab advance in space advances.
func WithTabWidth(n int) Option {
	return func(c *Config) {
		c.TabWidth = n
	}
}

// WithFallback sets the glyph used for unmapped characters.
func WithFallback(r rune) Option {
	return func(c *Config) {
		c.Fallback = r
	}
}

// WithMode selects single- or multi-line rows.
func WithMode(m Mode) Option {
	return func(c *Config) {
		c.Mode = m
	}
}

// WithColor sets the vertex color of glyph quads.
func WithColor(col color.Color) Option {
	return func(c *Config) {
		c.Color = col
	}
}

// WithMeasureCache enables memoized measurements with the given soft limit.
func WithMeasureCache(n int) Option {
	return func(c *Config) {
		c.MeasureCache = n
	}
}
