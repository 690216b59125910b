package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// AtlasKind specifies how the atlas texture encodes glyph coverage.
type AtlasKind int

const (
	// AtlasBitmap stores plain coverage; UVs sample it directly.
	AtlasBitmap AtlasKind = iota
	// AtlasSDF stores a (multi-channel) signed distance field; the shader
	// needs the screen pixel range to soften edges.
	AtlasSDF
)

// String returns the string representation of the atlas kind.
func (k AtlasKind) String() string {
	switch k {
	case AtlasBitmap:
		return "Bitmap"
	case AtlasSDF:
		return "SDF"
	default:
		return unknownStr
	}
}

// YOrigin tells where atlas bounds measure their Y coordinate from.
type YOrigin int

const (
	// YOriginTop means Y grows downwards from the top row of the texture.
	YOriginTop YOrigin = iota
	// YOriginBottom means Y grows upwards from the bottom row.
	YOriginBottom
)

// String returns the string representation of the origin.
func (o YOrigin) String() string {
	switch o {
	case YOriginTop:
		return "Top"
	case YOriginBottom:
		return "Bottom"
	default:
		return unknownStr
	}
}

// Bounds is an axis-aligned rectangle given by its four edges.
// Plane bounds are in font units with Y up (Bottom < Top);
// atlas bounds are in texels, oriented as the atlas YOrigin says.
type Bounds struct {
	Left, Bottom, Right, Top float64
}

// Width returns the width of the rectangle.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the absolute height of the rectangle.
func (b Bounds) Height() float64 {
	if b.Top < b.Bottom {
		return b.Bottom - b.Top
	}
	return b.Top - b.Bottom
}

// Empty reports whether the rectangle has no area.
func (b Bounds) Empty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Scale returns the rectangle with every edge multiplied by s.
func (b Bounds) Scale(s float64) Bounds {
	return Bounds{Left: b.Left * s, Bottom: b.Bottom * s, Right: b.Right * s, Top: b.Top * s}
}
