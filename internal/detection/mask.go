package detection

// Mask is a boolean grid marking cells judged to lie on an object boundary
// in the source image. It has the same dimensions as the maze grid and is
// immutable once Detect returns it.
type Mask struct {
	W    int
	H    int
	Bits []bool
}

// NewMask returns an all-false mask of the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{
		W:    width,
		H:    height,
		Bits: make([]bool, width*height),
	}
}

// At reports whether (x, y) is an edge cell. Out-of-bounds coordinates
// report false.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return false
	}
	return m.Bits[y*m.W+x]
}

func (m *Mask) set(x, y int) {
	if x >= 0 && x < m.W && y >= 0 && y < m.H {
		m.Bits[y*m.W+x] = true
	}
}

// Count returns the number of edge cells in the mask.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}
