package layout

import (
	"github.com/gogpu/ggedit/buffer"
	"github.com/gogpu/ggedit/text"
)

// Vertex is one corner of a glyph quad.
type Vertex struct {
	// Pos is the position in pixels, y up.
	Pos [2]float32

	// UV is the texture coordinate, normalized, origin at the top left of
	// the atlas image.
	UV [2]float32

	// PxRange is the SDF distance range in screen pixels along each axis.
	// Zero for bitmap atlases.
	PxRange [2]float32

	// Color is straight-alpha RGBA.
	Color [4]float32
}

// GlyphQuad is the textured rectangle of one drawn character.
// Vertices are ordered bottom-left, bottom-right, top-right, top-left.
type GlyphQuad struct {
	// Offset is the byte offset of the character in the source.
	Offset int

	// Char is the character as stored in the source.
	Char byte

	Vertices [4]Vertex
}

// quadIndices triangulates a quad as (0,1,2) and (2,3,0).
var quadIndices = [6]uint32{0, 1, 2, 2, 3, 0}

// Indices returns the six triangle indices of a quad whose first vertex is
// at base.
func (q *GlyphQuad) Indices(base uint32) [6]uint32 {
	var idx [6]uint32
	for i, v := range quadIndices {
		idx[i] = base + v
	}
	return idx
}

// Run is the result of a build.
type Run struct {
	Quads []GlyphQuad

	// PenX and PenY are the pen position after the last character.
	PenX, PenY float64

	// MaxX is the rightmost pen position reached on any line.
	MaxX float64
}

// QuadBuilder turns text spans into glyph quads.
type QuadBuilder struct {
	font *Font
}

// NewQuadBuilder creates a quad builder for font.
func NewQuadBuilder(font *Font) *QuadBuilder {
	return &QuadBuilder{font: font}
}

// Build lays out span with the pen starting at (x, y) on the baseline.
func (b *QuadBuilder) Build(src Source, span buffer.Span, x, y float64) (Run, error) {
	return b.Append(nil, src, span, x, y)
}

// BuildBytes lays out text held outside a buffer.
func (b *QuadBuilder) BuildBytes(s []byte, x, y float64) (Run, error) {
	return b.Append(nil, bytesSource(s), buffer.SpanOf(0, len(s)), x, y)
}

// Append is like Build but appends the quads to dst.
func (b *QuadBuilder) Append(dst []GlyphQuad, src Source, span buffer.Span, x, y float64) (Run, error) {
	f := b.font
	if err := f.check(); err != nil {
		return Run{}, err
	}
	s, err := view(src, span)
	if err != nil {
		return Run{}, err
	}

	atlas := f.atlas
	var pxRange float32
	if atlas.Kind == text.AtlasSDF && atlas.TexelsPerUnit > 0 {
		pxRange = float32(atlas.DistanceRange * f.scale / atlas.TexelsPerUnit)
	}

	p := f.walk(s, x, y, func(i int, c byte, g text.GlyphMetrics, px, py float64) {
		if g.Plane.Empty() {
			return
		}
		dst = append(dst, f.quad(span.Start+i, c, g, px, py, pxRange))
	})
	return Run{Quads: dst, PenX: p.x, PenY: p.y, MaxX: p.maxX}, nil
}

func (f *Font) quad(offset int, c byte, g text.GlyphMetrics, x, y float64, pxRange float32) GlyphQuad {
	pl := g.Plane.Scale(f.scale)
	l, r := float32(x+pl.Left), float32(x+pl.Right)
	bot, top := float32(y+pl.Bottom), float32(y+pl.Top)

	u0, v0, u1, v1 := f.uv(g.Atlas)

	pr := [2]float32{pxRange, pxRange}
	q := GlyphQuad{Offset: offset, Char: c}
	q.Vertices = [4]Vertex{
		{Pos: [2]float32{l, bot}, UV: [2]float32{u0, v0}, PxRange: pr, Color: f.color},
		{Pos: [2]float32{r, bot}, UV: [2]float32{u1, v0}, PxRange: pr, Color: f.color},
		{Pos: [2]float32{r, top}, UV: [2]float32{u1, v1}, PxRange: pr, Color: f.color},
		{Pos: [2]float32{l, top}, UV: [2]float32{u0, v1}, PxRange: pr, Color: f.color},
	}
	return q
}

// uv normalizes atlas bounds to top-left origin texture coordinates.
// v0 belongs to the glyph's bottom edge and v1 to its top edge.
func (f *Font) uv(a text.Bounds) (u0, v0, u1, v1 float32) {
	w, h := float64(f.atlas.Width), float64(f.atlas.Height)
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0
	}
	bottom, top := a.Bottom/h, a.Top/h
	if f.atlas.YOrigin == text.YOriginBottom {
		bottom, top = 1-bottom, 1-top
	}
	return float32(a.Left / w), float32(bottom), float32(a.Right / w), float32(top)
}

// Mesh batches quads into a single vertex and index list for one draw call.
func Mesh(quads []GlyphQuad) ([]Vertex, []uint32) {
	vertices := make([]Vertex, 0, 4*len(quads))
	indices := make([]uint32, 0, 6*len(quads))
	for i := range quads {
		idx := quads[i].Indices(uint32(len(vertices)))
		vertices = append(vertices, quads[i].Vertices[:]...)
		indices = append(indices, idx[:]...)
	}
	return vertices, indices
}
