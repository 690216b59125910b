package ggedit

// EditKind classifies an insertion for undo coalescing.
type EditKind int

const (
	// EditNone means nothing was inserted.
	EditNone EditKind = iota
	// EditKey is a single typed character. Consecutive key edits are
	// usually merged into one undo step.
	EditKey
	// EditPaste is a multi-character paste applied as one insert.
	EditPaste
)

// String returns the string representation of the edit kind.
func (k EditKind) String() string {
	switch k {
	case EditNone:
		return "None"
	case EditKey:
		return "Key"
	case EditPaste:
		return "Paste"
	default:
		return "Unknown"
	}
}

// Edit describes an insertion performed by Session.Paste.
type Edit struct {
	Kind EditKind
	Pos  int
	Len  int
}

// Rect is an axis-aligned rectangle in pixels. Y grows downward from the
// top of the first line.
type Rect struct {
	X, Y, W, H float64
}
