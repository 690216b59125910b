package text

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can back several SystemFaces (different raster sizes,
// charsets or kerning modes). FontSource is heavyweight and should be shared.
//
// FontSource is read-only after creation and safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data []byte
	font *sfnt.Font
	name string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data: dataCopy,
		font: f,
	}
	s.addr = s // Self-reference for copy detection
	s.name = extractFontName(f)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data)
}

// FindFontSource locates an installed system font by file name
// (for example "DejaVuSans.ttf" or "arial") and loads it.
func FindFontSource(name string) (*FontSource, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return nil, fmt.Errorf("text: system font %q: %w", name, err)
	}
	return NewFontSourceFromFile(path)
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Font returns the parsed font.
func (s *FontSource) Font() *sfnt.Font {
	s.copyCheck()
	return s.font
}

// Data returns the raw font data. It must not be modified.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	return s.data
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName returns the family name, the full name, or a placeholder.
func extractFontName(f *sfnt.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
