package layout

import (
	"errors"
	"testing"

	"github.com/gogpu/ggedit/buffer"
	"github.com/gogpu/ggedit/text"
)

func TestBuildTab(t *testing.T) {
	f := newTestFont(t)
	qb := NewQuadBuilder(f)
	b := mustBuffer(t, "a\tb")

	run, err := qb.Build(b, buffer.SpanOf(0, 3), 0, 0)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(run.Quads) != 2 {
		t.Fatalf("len(Quads) = %d, want 2", len(run.Quads))
	}
	if run.Quads[0].Char != 'a' || run.Quads[1].Char != 'b' {
		t.Errorf("Chars = %q %q, want 'a' 'b'", run.Quads[0].Char, run.Quads[1].Char)
	}
	if run.Quads[1].Offset != 2 {
		t.Errorf("Quads[1].Offset = %d, want 2", run.Quads[1].Offset)
	}

	dx := run.Quads[1].Vertices[0].Pos[0] - run.Quads[0].Vertices[0].Pos[0]
	want := float32(12 + 4*f.SpaceAdvance())
	if dx != want {
		t.Errorf("pen advance between quads = %v, want %v", dx, want)
	}
}

func TestBuildSkipsWhitespace(t *testing.T) {
	qb := NewQuadBuilder(newTestFont(t))

	run, err := qb.BuildBytes([]byte("a b\r\n\tc"), 0, 0)
	if err != nil {
		t.Fatalf("BuildBytes() error = %v", err)
	}
	var got []byte
	for _, q := range run.Quads {
		got = append(got, q.Char)
	}
	if string(got) != "abc" {
		t.Errorf("quad chars = %q, want %q", got, "abc")
	}
}

func TestBuildNewline(t *testing.T) {
	qb := NewQuadBuilder(newTestFont(t))

	run, err := qb.BuildBytes([]byte("ab\ncd"), 10, 100)
	if err != nil {
		t.Fatalf("BuildBytes() error = %v", err)
	}
	if len(run.Quads) != 4 {
		t.Fatalf("len(Quads) = %d, want 4", len(run.Quads))
	}
	c := run.Quads[2].Vertices[0].Pos
	if c != [2]float32{10, 70} {
		t.Errorf("'c' origin = %v, want [10 70]", c)
	}
	if run.PenX != 34 || run.PenY != 70 {
		t.Errorf("pen = (%v, %v), want (34, 70)", run.PenX, run.PenY)
	}
	if run.MaxX != 34 {
		t.Errorf("MaxX = %v, want 34", run.MaxX)
	}
}

func TestBuildQuadGeometry(t *testing.T) {
	f := newTestFont(t, WithColor(colorRed))
	qb := NewQuadBuilder(f)

	run, err := qb.BuildBytes([]byte("ab"), 10, 20)
	if err != nil {
		t.Fatalf("BuildBytes() error = %v", err)
	}
	q := run.Quads[1]

	// 'b': plane (0, 0)-(0.5, 0.5) at scale 24, pen at x = 10 + 12.
	wantPos := [4][2]float32{{22, 20}, {34, 20}, {34, 32}, {22, 32}}
	// Atlas cell 1: texels (16, 32)-(32, 0) in a 256x64 top-origin atlas.
	wantUV := [4][2]float32{{0.0625, 0.5}, {0.125, 0.5}, {0.125, 0}, {0.0625, 0}}
	for i, v := range q.Vertices {
		if v.Pos != wantPos[i] {
			t.Errorf("Vertices[%d].Pos = %v, want %v", i, v.Pos, wantPos[i])
		}
		if v.UV != wantUV[i] {
			t.Errorf("Vertices[%d].UV = %v, want %v", i, v.UV, wantUV[i])
		}
		// distance range 2 texels, 32 texels per unit, 24px per unit
		if v.PxRange != [2]float32{1.5, 1.5} {
			t.Errorf("Vertices[%d].PxRange = %v, want [1.5 1.5]", i, v.PxRange)
		}
		if v.Color != [4]float32{1, 0, 0, 1} {
			t.Errorf("Vertices[%d].Color = %v", i, v.Color)
		}
	}
}

func TestBuildBottomOriginAtlas(t *testing.T) {
	l := testLayout()
	l.Atlas.YOrigin = text.YOriginBottom
	l.Atlas.Kind = text.AtlasBitmap
	face, err := text.NewAtlasFace(l)
	if err != nil {
		t.Fatal(err)
	}
	f, _ := NewFont(face)

	run, err := NewQuadBuilder(f).BuildBytes([]byte("a"), 0, 0)
	if err != nil {
		t.Fatalf("BuildBytes() error = %v", err)
	}
	v := run.Quads[0].Vertices
	if v[0].UV != [2]float32{0, 0.5} || v[2].UV != [2]float32{0.0625, 1} {
		t.Errorf("UVs = %v, %v, want [0 0.5], [0.0625 1]", v[0].UV, v[2].UV)
	}
	if v[0].PxRange != [2]float32{} {
		t.Errorf("bitmap PxRange = %v, want zero", v[0].PxRange)
	}
}

func TestBuildFallback(t *testing.T) {
	run, err := NewQuadBuilder(newTestFont(t)).BuildBytes([]byte("Za"), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(run.Quads) != 2 || run.Quads[0].Char != 'Z' {
		t.Fatalf("quads = %+v, want fallback quad for 'Z'", run.Quads)
	}
	// '?' lives in atlas cell 9.
	if u := run.Quads[0].Vertices[0].UV[0]; u != float32(144.0/256) {
		t.Errorf("fallback U = %v, want %v", u, float32(144.0/256))
	}

	// Without a fallback glyph the character is invisible and takes no space.
	run, _ = NewQuadBuilder(newTestFont(t, WithFallback('#'))).BuildBytes([]byte("Za"), 0, 0)
	if len(run.Quads) != 1 || run.Quads[0].Vertices[0].Pos[0] != 0 {
		t.Errorf("quads = %+v, want one quad at x=0", run.Quads)
	}
}

func TestBuildAdvancesPastLastChar(t *testing.T) {
	run, _ := NewQuadBuilder(newTestFont(t)).BuildBytes([]byte("Hi"), 0, 0)
	if run.PenX != 21 {
		t.Errorf("PenX = %v, want 21", run.PenX)
	}
}

func TestBuildSubspan(t *testing.T) {
	b := mustBuffer(t, "xxabxx")
	run, err := NewQuadBuilder(newTestFont(t)).Build(b, buffer.SpanOf(2, 2), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(run.Quads) != 2 || run.Quads[0].Offset != 2 || run.Quads[1].Offset != 3 {
		t.Errorf("quads = %+v, want offsets 2 and 3", run.Quads)
	}
}

func TestBuildErrors(t *testing.T) {
	f := newTestFont(t)
	qb := NewQuadBuilder(f)
	b := mustBuffer(t, "ab")

	if _, err := qb.Build(b, buffer.SpanOf(1, 5), 0, 0); !errors.Is(err, buffer.ErrOutOfRange) {
		t.Errorf("Build() error = %v, want ErrOutOfRange", err)
	}
	_ = f.Close()
	if _, err := qb.Build(b, buffer.SpanOf(0, 2), 0, 0); !errors.Is(err, ErrFontClosed) {
		t.Errorf("Build() error = %v, want ErrFontClosed", err)
	}
}

func TestMesh(t *testing.T) {
	run, _ := NewQuadBuilder(newTestFont(t)).BuildBytes([]byte("ab"), 0, 0)

	vertices, indices := Mesh(run.Quads)
	if len(vertices) != 8 {
		t.Errorf("len(vertices) = %d, want 8", len(vertices))
	}
	want := []uint32{0, 1, 2, 2, 3, 0, 4, 5, 6, 6, 7, 4}
	if len(indices) != len(want) {
		t.Fatalf("indices = %v, want %v", indices, want)
	}
	for i := range want {
		if indices[i] != want[i] {
			t.Errorf("indices[%d] = %d, want %d", i, indices[i], want[i])
		}
	}
	if vertices[4] != run.Quads[1].Vertices[0] {
		t.Errorf("vertices[4] = %+v, want first vertex of second quad", vertices[4])
	}
}

func BenchmarkBuild(b *testing.B) {
	qb := NewQuadBuilder(newTestFont(b))
	buf := mustBuffer(b, "Hello\tab cd\nHi ab cd ab cd ab cd Hello Hello")
	span := buffer.SpanOf(0, buf.Len())
	quads := make([]GlyphQuad, 0, 64)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		run, _ := qb.Append(quads[:0], buf, span, 0, 0)
		quads = run.Quads
	}
}
