package text

// ShelfAllocator packs glyph bitmaps into an atlas in horizontal shelves.
//
// Each shelf is as tall as the tallest bitmap placed on it so far. Bitmaps
// are placed left to right until the shelf is full, then a new shelf is
// opened below. Glyph bitmaps of one font have similar heights, which keeps
// the wasted space small.
type ShelfAllocator struct {
	width   int
	height  int
	padding int
	shelves []shelf

	usedArea int
}

// shelf is a horizontal strip of the atlas.
type shelf struct {
	y      int // top of the shelf
	height int // tallest item so far
	x      int // next free column
}

// NewShelfAllocator creates an allocator for a width x height atlas that
// keeps padding texels between neighbours.
func NewShelfAllocator(width, height, padding int) *ShelfAllocator {
	return &ShelfAllocator{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// Allocate finds space for a w x h bitmap.
// Returns the top-left corner and true, or -1, -1, false if the atlas is full.
func (a *ShelfAllocator) Allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + a.padding
	paddedH := h + a.padding

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+paddedW > a.width {
			continue
		}
		if h > s.height {
			// Only the last shelf can grow, and only if there is room below.
			if i != len(a.shelves)-1 || s.y+paddedH > a.height {
				continue
			}
			s.height = h
		}
		x, y = s.x, s.y
		s.x += paddedW
		a.usedArea += w * h
		return x, y, true
	}

	newY := 0
	if len(a.shelves) > 0 {
		last := a.shelves[len(a.shelves)-1]
		newY = last.y + last.height + a.padding
	}
	if paddedW > a.width || newY+paddedH > a.height {
		return -1, -1, false
	}

	a.shelves = append(a.shelves, shelf{y: newY, height: h, x: paddedW})
	a.usedArea += w * h
	return 0, newY, true
}

// Utilization returns the fraction of atlas area in use (0.0 to 1.0).
func (a *ShelfAllocator) Utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.width*a.height)
}

// ShelfCount returns the number of shelves currently in use.
func (a *ShelfAllocator) ShelfCount() int {
	return len(a.shelves)
}
