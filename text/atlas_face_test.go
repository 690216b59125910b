package text

import (
	"errors"
	"testing"
)

func testAtlasLayout() AtlasLayout {
	return AtlasLayout{
		Metrics: FontMetrics{Ascent: 0.75, Descent: -0.25, LineHeight: 1.25, UnitsPerEm: 1},
		Atlas:   AtlasInfo{Width: 128, Height: 64, Kind: AtlasSDF, DistanceRange: 2, TexelsPerUnit: 32},
		Glyphs: []AtlasGlyph{
			{Rune: ' ', GlyphMetrics: GlyphMetrics{Advance: 0.25}},
			{Rune: 'A', GlyphMetrics: GlyphMetrics{
				Advance: 0.625,
				Plane:   Bounds{Left: 0, Bottom: -0.0625, Right: 0.625, Top: 0.75},
				Atlas:   Bounds{Left: 0.5, Bottom: 0.5, Right: 20.5, Top: 26.5},
			}},
			{Rune: 'V', GlyphMetrics: GlyphMetrics{Advance: 0.5}},
		},
		Kerning: []KerningPair{{Left: 'A', Right: 'V', Adjust: -0.125}},
	}
}

func TestNewAtlasFace(t *testing.T) {
	f, err := NewAtlasFace(testAtlasLayout())
	if err != nil {
		t.Fatalf("NewAtlasFace() error = %v", err)
	}
	if f.NumGlyphs() != 3 {
		t.Errorf("NumGlyphs() = %d, want 3", f.NumGlyphs())
	}
	if got := f.Metrics().LineHeight; got != 1.25 {
		t.Errorf("Metrics().LineHeight = %v, want 1.25", got)
	}
	if got := f.Atlas(); got.Kind != AtlasSDF || got.Width != 128 {
		t.Errorf("Atlas() = %+v, want SDF 128 wide", got)
	}

	g, ok := f.Glyph('A')
	if !ok || g.Advance != 0.625 || g.Plane.Top != 0.75 {
		t.Errorf("Glyph('A') = (%+v, %v)", g, ok)
	}
	if _, ok := f.Glyph('Z'); ok {
		t.Error("Glyph('Z') reported ok for a missing glyph")
	}
}

func TestAtlasFacePairAdvance(t *testing.T) {
	f, _ := NewAtlasFace(testAtlasLayout())

	tests := []struct {
		name    string
		r, next rune
		want    float64
		ok      bool
	}{
		{"kerned", 'A', 'V', 0.5, true},
		{"unkerned", 'V', 'A', 0.5, true},
		{"space", ' ', 'A', 0.25, true},
		{"missing left", 'Z', 'A', 0, false},
		{"missing right", 'A', 'Z', 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.PairAdvance(tt.r, tt.next)
			if got != tt.want || ok != tt.ok {
				t.Errorf("PairAdvance(%q, %q) = (%v, %v), want (%v, %v)",
					tt.r, tt.next, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNewAtlasFaceValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AtlasLayout)
		want   error
	}{
		{"no atlas", func(l *AtlasLayout) { l.Atlas.Width = 0 }, ErrInvalidAtlas},
		{"no extent", func(l *AtlasLayout) { l.Metrics.Descent = l.Metrics.Ascent }, ErrInvalidAtlas},
		{"no line height", func(l *AtlasLayout) { l.Metrics.LineHeight = 0 }, ErrInvalidAtlas},
		{"no glyphs", func(l *AtlasLayout) { l.Glyphs = nil }, ErrNoGlyphs},
		{"duplicate glyph", func(l *AtlasLayout) { l.Glyphs = append(l.Glyphs, l.Glyphs[0]) }, ErrInvalidAtlas},
		{"duplicate pair", func(l *AtlasLayout) { l.Kerning = append(l.Kerning, l.Kerning[0]) }, ErrInvalidAtlas},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := testAtlasLayout()
			tt.mutate(&layout)
			if _, err := NewAtlasFace(layout); !errors.Is(err, tt.want) {
				t.Errorf("NewAtlasFace() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAtlasErrorMessage(t *testing.T) {
	err := &AtlasError{Field: "Atlas", Reason: "width and height must be positive"}
	want := "text: invalid atlas.Atlas: width and height must be positive"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
