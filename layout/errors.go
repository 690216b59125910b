package layout

import "errors"

// Sentinel errors for layout package.
var (
	// ErrFontClosed is returned by operations on a Font after Close.
	ErrFontClosed = errors.New("layout: font is closed")

	// ErrNilProvider is returned by NewFont when no provider is given.
	ErrNilProvider = errors.New("layout: nil metrics provider")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "layout: invalid config." + e.Field + ": " + e.Reason
}
