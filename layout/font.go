package layout

import (
	"image/color"
	"sync/atomic"

	"github.com/gogpu/ggedit/text"
)

// fontGenerations hands out a distinct generation to every loaded Font.
var fontGenerations atomic.Uint64

// Font is a metrics provider bound to a pixel size and layout settings.
// It is created explicitly, passed explicitly to the measurer, row oracle
// and quad builder, and closed when the font is unloaded.
//
// The provider is treated as immutable while the Font is open. Replacing a
// font is done by closing the old Font and creating a new one while no
// measurement or build call is in flight.
type Font struct {
	provider text.MetricsProvider
	cfg      Config
	metrics  text.FontMetrics
	atlas    text.AtlasInfo

	scale      float64
	lineHeight float64
	space      float64 // unkerned space advance in font units
	color      [4]float32

	gen    uint64
	closed bool
}

// NewFont binds provider to the layout configuration built from opts.
func NewFont(provider text.MetricsProvider, opts ...Option) (*Font, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := provider.Metrics()
	if m.Extent() <= 0 {
		return nil, &ConfigError{Field: "provider", Reason: "ascent must be greater than descent"}
	}

	f := &Font{
		provider: provider,
		cfg:      cfg,
		metrics:  m,
		atlas:    provider.Atlas(),
		scale:    cfg.PixelSize / m.Extent(),
		color:    colorToFloat(cfg.Color),
		gen:      fontGenerations.Add(1),
	}
	f.lineHeight = f.scale * m.LineHeight
	if _, g, ok := f.resolve(' '); ok {
		f.space = g.Advance
	}
	return f, nil
}

// Close unloads the font. Later calls through it return ErrFontClosed.
func (f *Font) Close() error {
	f.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (f *Font) Closed() bool {
	return f.closed
}

// Provider returns the underlying metrics provider.
func (f *Font) Provider() text.MetricsProvider {
	return f.provider
}

// Config returns the layout configuration.
func (f *Font) Config() Config {
	return f.cfg
}

// Scale returns pixels per font unit: PixelSize / (Ascent - Descent).
func (f *Font) Scale() float64 {
	return f.scale
}

// LineHeight returns the scaled baseline-to-baseline distance in pixels.
func (f *Font) LineHeight() float64 {
	return f.lineHeight
}

// SpaceAdvance returns the scaled, unkerned space advance in pixels.
func (f *Font) SpaceAdvance() float64 {
	return f.scale * f.space
}

// Generation identifies this load of the font.
func (f *Font) Generation() uint64 {
	return f.gen
}

func (f *Font) check() error {
	if f == nil || f.closed {
		return ErrFontClosed
	}
	return nil
}

func colorToFloat(c color.Color) [4]float32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [4]float32{
		float32(n.R) / 255,
		float32(n.G) / 255,
		float32(n.B) / 255,
		float32(n.A) / 255,
	}
}
