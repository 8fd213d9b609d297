package maze

// Cell is the state of a single maze grid cell.
type Cell uint8

const (
	// Wall blocks movement. The outer ring of every grid is wall.
	Wall Cell = iota
	// Open is a traversable corridor cell.
	Open
	// Entry marks the fixed start cell at (1,1).
	Entry
	// Exit marks the fixed goal cell at (width-2, height-2).
	Exit
	// Solution marks an open cell on the rendered solution path.
	Solution
)

// Point is a 2D cell coordinate. It is a value type and may be used as a
// map key; equality is component-wise.
type Point struct {
	X int
	Y int
}

// directions enumerates the four orthogonal moves in a fixed order:
// up, right, down, left.
var directions = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is a rectangular maze. Cells are stored row-major: the cell at
// (x, y) lives at index y*W + x.
type Grid struct {
	W     int
	H     int
	Cells []Cell
}

// NewGrid returns a width x height grid with every cell set to Wall.
func NewGrid(width, height int) *Grid {
	return &Grid{
		W:     width,
		H:     height,
		Cells: make([]Cell, width*height),
	}
}

// At returns the cell at (x, y). Out-of-bounds coordinates report Wall,
// which makes boundary checks in traversal code uniform.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.Cells[y*g.W+x]
}

// Set assigns the cell at (x, y). Out-of-bounds coordinates are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if g.InBounds(x, y) {
		g.Cells[y*g.W+x] = c
	}
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Interior reports whether (x, y) lies strictly inside the outer wall ring.
func (g *Grid) Interior(x, y int) bool {
	return x >= 1 && x < g.W-1 && y >= 1 && y < g.H-1
}

// Passable reports whether the cell at (x, y) can be traversed by a solver:
// anything except Wall.
func (g *Grid) Passable(x, y int) bool {
	return g.At(x, y) != Wall
}

// EntryPoint returns the fixed entry coordinate (1,1).
func (g *Grid) EntryPoint() Point { return Point{1, 1} }

// ExitPoint returns the fixed exit coordinate (width-2, height-2).
func (g *Grid) ExitPoint() Point { return Point{g.W - 2, g.H - 2} }

// openNeighbors counts 4-neighbors of (x, y) that are traversable.
func (g *Grid) openNeighbors(x, y int) int {
	n := 0
	for _, d := range directions {
		if g.Passable(x+d.X, y+d.Y) {
			n++
		}
	}
	return n
}
