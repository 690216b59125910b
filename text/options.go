package text

import "log/slog"

// SystemOption configures SystemFace creation.
type SystemOption func(*systemConfig)

// systemConfig holds configuration for SystemFace.
type systemConfig struct {
	rasterSize     float64
	charset        []rune
	padding        int
	maxAtlasSize   int
	shapedKerning  bool
	pairCacheLimit int
	logger         *slog.Logger
}

// defaultSystemConfig returns the default SystemFace configuration.
func defaultSystemConfig() systemConfig {
	return systemConfig{
		rasterSize:     32,
		charset:        Latin1Charset(),
		padding:        1,
		maxAtlasSize:   4096,
		pairCacheLimit: 4096,
		logger:         slog.New(slog.DiscardHandler),
	}
}

// WithRasterSize sets the pixel size (ascent to descent) glyphs are
// rasterized at. Quads scaled far beyond it look blurry. Default: 32.
func WithRasterSize(px float64) SystemOption {
	return func(c *systemConfig) {
		if px > 0 {
			c.rasterSize = px
		}
	}
}

// WithCharset sets the characters baked into the atlas.
// Default: printable Latin-1 (Latin1Charset).
func WithCharset(runes []rune) SystemOption {
	return func(c *systemConfig) {
		c.charset = runes
	}
}

// WithPadding sets the texels left between atlas cells. Default: 1.
func WithPadding(n int) SystemOption {
	return func(c *systemConfig) {
		if n >= 0 {
			c.padding = n
		}
	}
}

// WithMaxAtlasSize bounds the atlas side length. Default: 4096.
func WithMaxAtlasSize(n int) SystemOption {
	return func(c *systemConfig) {
		if n > 0 {
			c.maxAtlasSize = n
		}
	}
}

// WithShapedKerning takes pair advances from HarfBuzz shaping (GPOS)
// instead of the font's legacy 'kern' table.
func WithShapedKerning() SystemOption {
	return func(c *systemConfig) {
		c.shapedKerning = true
	}
}

// WithPairCacheLimit sets the soft limit of the pair advance cache.
// A value of 0 disables the limit. Default: 4096.
func WithPairCacheLimit(n int) SystemOption {
	return func(c *systemConfig) {
		if n >= 0 {
			c.pairCacheLimit = n
		}
	}
}

// WithLogger sets the logger used while loading. By default nothing is logged.
func WithLogger(l *slog.Logger) SystemOption {
	return func(c *systemConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// ASCIICharset returns the printable ASCII characters.
func ASCIICharset() []rune {
	return runeRange(nil, 0x20, 0x7E)
}

// Latin1Charset returns the printable ASCII and Latin-1 supplement
// characters, the repertoire a single-byte buffer can address.
func Latin1Charset() []rune {
	return runeRange(ASCIICharset(), 0xA0, 0xFF)
}

func runeRange(dst []rune, lo, hi rune) []rune {
	for r := lo; r <= hi; r++ {
		dst = append(dst, r)
	}
	return dst
}
