package pathfind

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamienguyen9/maze-generator/internal/detection"
	"github.com/jamienguyen9/maze-generator/internal/maze"
)

// assertValidPath checks the path contract: starts at entry, ends at exit,
// consecutive cells 4-adjacent, and no wall cells anywhere on it.
func assertValidPath(t *testing.T, g *maze.Grid, path []maze.Point, entry, exit maze.Point) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, entry, path[0], "path must start at entry")
	assert.Equal(t, exit, path[len(path)-1], "path must end at exit")
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		manhattan := abs(dx) + abs(dy)
		assert.Equal(t, 1, manhattan, "step %d: %v -> %v is not 4-adjacent", i, path[i-1], path[i])
	}
	for _, p := range path {
		assert.NotEqual(t, maze.Wall, g.At(p.X, p.Y), "wall cell %v on path", p)
	}
}

func TestFind_OnGeneratedMazes(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g := maze.Generate(21, 17, rand.New(rand.NewSource(seed)))
		entry, exit := g.EntryPoint(), g.ExitPoint()

		path := Find(g, detection.NewMask(21, 17), entry, exit)

		assertValidPath(t, g, path, entry, exit)
	}
}

func TestFind_NilMask(t *testing.T) {
	g := maze.Generate(15, 15, rand.New(rand.NewSource(2)))
	entry, exit := g.EntryPoint(), g.ExitPoint()

	path := Find(g, nil, entry, exit)

	assertValidPath(t, g, path, entry, exit)
}

// ringGrid builds a grid whose interior border cells are all open,
// giving exactly two routes between opposite corners: clockwise along the
// top and right edges, or counter-clockwise along the left and bottom.
func ringGrid(size int) *maze.Grid {
	g := maze.NewGrid(size, size)
	for i := 1; i < size-1; i++ {
		g.Set(i, 1, maze.Open)
		g.Set(i, size-2, maze.Open)
		g.Set(1, i, maze.Open)
		g.Set(size-2, i, maze.Open)
	}
	g.Set(1, 1, maze.Entry)
	g.Set(size-2, size-2, maze.Exit)
	return g
}

func TestFind_PrefersEdgeMaskedRoute(t *testing.T) {
	const size = 11
	entry := maze.Point{X: 1, Y: 1}
	exit := maze.Point{X: size - 2, Y: size - 2}

	// Mark the clockwise route (top edge, then right edge) as image edges.
	clockwise := detection.NewMask(size, size)
	for i := 1; i < size-1; i++ {
		clockwise.Bits[1*size+i] = true        // (i, 1)
		clockwise.Bits[i*size+(size-2)] = true // (size-2, i)
	}

	g := ringGrid(size)
	path := Find(g, clockwise, entry, exit)
	assertValidPath(t, g, path, entry, exit)
	assert.Contains(t, path, maze.Point{X: size - 2, Y: 1},
		"biased search should take the masked clockwise route")

	// Same topology, opposite mask: the path must flip to the other route.
	counter := detection.NewMask(size, size)
	for i := 1; i < size-1; i++ {
		counter.Bits[i*size+1] = true        // (1, i)
		counter.Bits[(size-2)*size+i] = true // (i, size-2)
	}

	g = ringGrid(size)
	path = Find(g, counter, entry, exit)
	assertValidPath(t, g, path, entry, exit)
	assert.Contains(t, path, maze.Point{X: 1, Y: size - 2},
		"biased search should take the masked counter-clockwise route")
}

func TestFind_DisconnectedGridFallsBackAndCarves(t *testing.T) {
	// All-wall grid except the endpoints: A* has nowhere to go, so the
	// carving BFS must cut a corridor and still return a valid path.
	g := maze.NewGrid(12, 12)
	entry, exit := g.EntryPoint(), g.ExitPoint()
	g.Set(entry.X, entry.Y, maze.Entry)
	g.Set(exit.X, exit.Y, maze.Exit)

	path := Find(g, detection.NewMask(12, 12), entry, exit)

	assertValidPath(t, g, path, entry, exit)
}

func TestDirectLine(t *testing.T) {
	g := maze.NewGrid(10, 10)
	entry, exit := g.EntryPoint(), g.ExitPoint()

	path := directLine(g, entry, exit)

	assertValidPath(t, g, path, entry, exit)
	// x first then y: manhattan distance plus the starting cell.
	assert.Len(t, path, 15)
	assert.Equal(t, maze.Point{X: 8, Y: 1}, path[7], "x axis must be walked first")
}

func TestCarvingBFS_ShortestInCellCount(t *testing.T) {
	g := maze.NewGrid(10, 10)
	entry, exit := g.EntryPoint(), g.ExitPoint()

	path := carvingBFS(g, entry, exit)

	require.NotEmpty(t, path)
	// BFS over an unobstructed interior finds a manhattan-optimal route.
	assert.Len(t, path, 15)
}
