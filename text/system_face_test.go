package text

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func newTestSystemFace(t *testing.T, opts ...SystemOption) *SystemFace {
	t.Helper()
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	face, err := NewSystemFace(source, opts...)
	if err != nil {
		t.Fatalf("NewSystemFace() error = %v", err)
	}
	return face
}

func TestSystemFaceMetrics(t *testing.T) {
	face := newTestSystemFace(t)
	m := face.Metrics()

	if m.Ascent <= 0 {
		t.Errorf("Ascent = %v, want > 0", m.Ascent)
	}
	if m.Descent >= 0 {
		t.Errorf("Descent = %v, want < 0", m.Descent)
	}
	if m.LineHeight < m.Extent()*0.9 {
		t.Errorf("LineHeight = %v, want about Extent() = %v or more", m.LineHeight, m.Extent())
	}
	if want := float64(face.Source().Font().UnitsPerEm()); m.UnitsPerEm != want {
		t.Errorf("UnitsPerEm = %v, want %v", m.UnitsPerEm, want)
	}
}

func TestSystemFaceGlyphs(t *testing.T) {
	face := newTestSystemFace(t, WithRasterSize(24))
	atlas := face.Atlas()

	if atlas.Kind != AtlasBitmap || atlas.YOrigin != YOriginTop {
		t.Errorf("Atlas() = %+v, want bitmap with top origin", atlas)
	}
	if got := face.AtlasImage().Bounds().Dx(); got != atlas.Width {
		t.Errorf("AtlasImage width = %d, want %d", got, atlas.Width)
	}
	if face.NumGlyphs() < len(ASCIICharset()) {
		t.Errorf("NumGlyphs() = %d, want at least %d", face.NumGlyphs(), len(ASCIICharset()))
	}

	h, ok := face.Glyph('H')
	if !ok {
		t.Fatal("Glyph('H') missing")
	}
	if h.Advance <= 0 {
		t.Errorf("Glyph('H').Advance = %v, want > 0", h.Advance)
	}
	if h.Plane.Top <= h.Plane.Bottom || h.Plane.Right <= h.Plane.Left {
		t.Errorf("Glyph('H').Plane = %+v, want Y-up non-empty bounds", h.Plane)
	}
	if h.Atlas.Bottom <= h.Atlas.Top {
		t.Errorf("Glyph('H').Atlas = %+v, want top-origin bounds", h.Atlas)
	}
	if h.Atlas.Left < 0 || h.Atlas.Right > float64(atlas.Width) ||
		h.Atlas.Top < 0 || h.Atlas.Bottom > float64(atlas.Height) {
		t.Errorf("Glyph('H').Atlas = %+v outside %dx%d atlas", h.Atlas, atlas.Width, atlas.Height)
	}

	// The plane rectangle covers the atlas cell at TexelsPerUnit.
	if got, want := h.Plane.Width()*atlas.TexelsPerUnit, h.Atlas.Width(); abs(got-want) > 1e-9 {
		t.Errorf("plane width in texels = %v, want %v", got, want)
	}

	covered := false
	img := face.AtlasImage()
	for y := int(h.Atlas.Top); y < int(h.Atlas.Bottom) && !covered; y++ {
		for x := int(h.Atlas.Left); x < int(h.Atlas.Right); x++ {
			if img.AlphaAt(x, y).A > 0 {
				covered = true
				break
			}
		}
	}
	if !covered {
		t.Error("atlas cell of 'H' is blank")
	}

	space, ok := face.Glyph(' ')
	if !ok || space.Advance <= 0 || !space.Plane.Empty() {
		t.Errorf("Glyph(' ') = (%+v, %v), want positive advance and empty plane", space, ok)
	}
	if _, ok := face.Glyph('一'); ok {
		t.Error("Glyph(U+4E00) reported ok, Go Regular has no CJK")
	}
}

func TestSystemFacePairAdvance(t *testing.T) {
	for _, tt := range []struct {
		name string
		opts []SystemOption
	}{
		{"kern table", nil},
		{"shaped", []SystemOption{WithShapedKerning()}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			face := newTestSystemFace(t, tt.opts...)
			a, _ := face.Glyph('A')

			adv, ok := face.PairAdvance('A', 'V')
			if !ok {
				t.Fatal("PairAdvance('A', 'V') not ok")
			}
			if adv <= 0 || adv > a.Advance*1.5 {
				t.Errorf("PairAdvance('A', 'V') = %v, want near %v", adv, a.Advance)
			}
			again, _ := face.PairAdvance('A', 'V')
			if again != adv {
				t.Errorf("PairAdvance not stable: %v then %v", adv, again)
			}
			if _, ok := face.PairAdvance('A', '一'); ok {
				t.Error("PairAdvance with a missing glyph reported ok")
			}
		})
	}
}

// loadKernedSource loads Roboto, which carries both a 'kern' table and
// GPOS pair kerning. Go Regular has neither for the pairs tested here.
func loadKernedSource(t *testing.T) *FontSource {
	t.Helper()
	source, err := NewFontSourceFromFile(filepath.Join("testdata", "Roboto-Regular.ttf"))
	if err != nil {
		t.Fatalf("NewFontSourceFromFile() error = %v", err)
	}
	return source
}

func TestSystemFaceKerning(t *testing.T) {
	source := loadKernedSource(t)

	for _, tt := range []struct {
		name string
		opts []SystemOption
	}{
		{"kern table", nil},
		{"shaped", []SystemOption{WithShapedKerning()}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]SystemOption{WithCharset(ASCIICharset())}, tt.opts...)
			face, err := NewSystemFace(source, opts...)
			if err != nil {
				t.Fatalf("NewSystemFace() error = %v", err)
			}

			for _, pair := range [][2]rune{{'A', 'V'}, {'T', 'o'}, {'V', 'A'}} {
				lone, _ := face.Glyph(pair[0])
				adv, ok := face.PairAdvance(pair[0], pair[1])
				if !ok {
					t.Fatalf("PairAdvance(%q, %q) not ok", pair[0], pair[1])
				}
				if adv >= lone.Advance {
					t.Errorf("PairAdvance(%q, %q) = %v, want less than lone advance %v",
						pair[0], pair[1], adv, lone.Advance)
				}
			}

			h, _ := face.Glyph('H')
			if adv, _ := face.PairAdvance('H', 'H'); adv != h.Advance {
				t.Errorf("PairAdvance('H', 'H') = %v, want unkerned %v", adv, h.Advance)
			}
		})
	}
}

func TestSystemFaceLoadLog(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	newTestSystemFace(t, WithLogger(logger))

	out := logs.String()
	for _, key := range []string{"system face loaded", "shelves=", "utilization="} {
		if !strings.Contains(out, key) {
			t.Errorf("load log missing %q: %s", key, out)
		}
	}
}

func TestSystemFaceConcurrentPairs(t *testing.T) {
	face := newTestSystemFace(t, WithPairCacheLimit(16))
	want := make(map[PairKey]float64)
	for _, r := range "abcdefgh" {
		adv, _ := face.PairAdvance(r, 'o')
		want[PairKey{r, 'o'}] = adv
	}

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				for _, r := range "abcdefgh" {
					if adv, _ := face.PairAdvance(r, 'o'); adv != want[PairKey{r, 'o'}] {
						t.Errorf("PairAdvance(%q, 'o') = %v, want %v", r, adv, want[PairKey{r, 'o'}])
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestSystemFaceErrors(t *testing.T) {
	source, _ := NewFontSource(goregular.TTF)

	if _, err := NewSystemFace(source, WithMaxAtlasSize(16)); !errors.Is(err, ErrAtlasFull) {
		t.Errorf("NewSystemFace(tiny atlas) error = %v, want ErrAtlasFull", err)
	}
	if _, err := NewSystemFace(source, WithCharset([]rune{'一'})); !errors.Is(err, ErrNoGlyphs) {
		t.Errorf("NewSystemFace(no glyphs) error = %v, want ErrNoGlyphs", err)
	}
	if _, err := NewSystemFace(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewSystemFace(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
