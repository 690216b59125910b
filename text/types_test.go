package text

import "testing"

func TestAtlasKindString(t *testing.T) {
	tests := []struct {
		kind AtlasKind
		want string
	}{
		{AtlasBitmap, "Bitmap"},
		{AtlasSDF, "SDF"},
		{AtlasKind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("AtlasKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestYOriginString(t *testing.T) {
	tests := []struct {
		o    YOrigin
		want string
	}{
		{YOriginTop, "Top"},
		{YOriginBottom, "Bottom"},
		{YOrigin(-1), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("YOrigin(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name   string
		b      Bounds
		width  float64
		height float64
		empty  bool
	}{
		{"plane", Bounds{Left: 1, Bottom: -2, Right: 5, Top: 8}, 4, 10, false},
		{"atlas top origin", Bounds{Left: 10, Bottom: 30, Right: 20, Top: 12}, 10, 18, false},
		{"zero", Bounds{}, 0, 0, true},
		{"flat", Bounds{Left: 0, Bottom: 3, Right: 4, Top: 3}, 4, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.Width(); got != tt.width {
				t.Errorf("Width() = %v, want %v", got, tt.width)
			}
			if got := tt.b.Height(); got != tt.height {
				t.Errorf("Height() = %v, want %v", got, tt.height)
			}
			if got := tt.b.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
		})
	}

	got := Bounds{Left: 1, Bottom: 2, Right: 3, Top: 4}.Scale(0.5)
	want := Bounds{Left: 0.5, Bottom: 1, Right: 1.5, Top: 2}
	if got != want {
		t.Errorf("Scale(0.5) = %+v, want %+v", got, want)
	}
}

func TestFontMetricsExtent(t *testing.T) {
	m := FontMetrics{Ascent: 0.75, Descent: -0.25, LineHeight: 1.25}
	if got := m.Extent(); got != 1 {
		t.Errorf("Extent() = %v, want 1", got)
	}
}

func TestCharsets(t *testing.T) {
	ascii := ASCIICharset()
	if len(ascii) != 95 || ascii[0] != ' ' || ascii[len(ascii)-1] != '~' {
		t.Errorf("ASCIICharset() = %d runes [%q..%q], want 95 [' '..'~']",
			len(ascii), ascii[0], ascii[len(ascii)-1])
	}
	latin1 := Latin1Charset()
	if len(latin1) != 95+96 || latin1[len(latin1)-1] != 'ÿ' {
		t.Errorf("Latin1Charset() = %d runes, want %d ending in 'ÿ'", len(latin1), 95+96)
	}
}
