package maze

import "math/rand"

// maxRelaxations caps how many candidate cells the relaxation pass examines.
const maxRelaxations = 20

// relaxProbability gates each relaxation candidate.
const relaxProbability = 0.3

// Generate carves a fully connected maze of the given dimensions.
//
// The carve is randomized backtracking on the odd-aligned half-step lattice,
// producing a perfect maze, followed by a relaxation pass that opens a
// bounded number of extra cells to introduce alternate routes. The entry
// cell (1,1) and exit cell (width-2, height-2) are guaranteed open and
// reachable from one another, and the outer ring is guaranteed wall.
//
// All randomness is drawn from rng; the same seed yields the same grid.
func Generate(width, height int, rng *rand.Rand) *Grid {
	g := NewGrid(width, height)

	start := Point{
		X: 1 + 2*rng.Intn((width-1)/2),
		Y: 1 + 2*rng.Intn((height-1)/2),
	}
	carve(g, start, rng)
	relax(g, rng)
	sealOuterRing(g)
	placeEndpoints(g)

	return g
}

// frame is one level of the explicit carve stack: the lattice cell being
// expanded, its shuffled direction order, and how many directions have been
// tried so far.
type frame struct {
	p    Point
	dirs [4]int
	next int
}

// carve runs the backtracking carve from start using an explicit stack.
//
// The visit order is identical to the recursive formulation: each lattice
// cell shuffles its four directions once when first reached, and remaining
// directions are retried after backtracking from a child. Keeping that
// order intact is what makes carving reproducible across seeds.
func carve(g *Grid, start Point, rng *rand.Rand) {
	g.Set(start.X, start.Y, Open)
	stack := []frame{{p: start, dirs: shuffledDirs(rng)}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		pushed := false
		for f.next < len(f.dirs) {
			d := directions[f.dirs[f.next]]
			f.next++

			n := Point{f.p.X + 2*d.X, f.p.Y + 2*d.Y}
			if !g.Interior(n.X, n.Y) || g.At(n.X, n.Y) != Wall {
				continue
			}
			// Open the intermediate cell and the neighbor, then descend.
			g.Set(f.p.X+d.X, f.p.Y+d.Y, Open)
			g.Set(n.X, n.Y, Open)
			stack = append(stack, frame{p: n, dirs: shuffledDirs(rng)})
			pushed = true
			break
		}
		if !pushed {
			stack = stack[:len(stack)-1]
		}
	}
}

// shuffledDirs returns a random permutation of the four direction indices.
func shuffledDirs(rng *rand.Rand) [4]int {
	d := [4]int{0, 1, 2, 3}
	rng.Shuffle(4, func(i, j int) { d[i], d[j] = d[j], d[i] })
	return d
}

// relax opens a bounded number of wall cells that sit between existing
// corridors, turning the perfect maze into one with a few cycles. A
// candidate is opened only when it touches 2 or 3 open cells (so it joins
// corridors rather than hollowing out a room) and a probability gate passes.
func relax(g *Grid, rng *rand.Rand) {
	candidates := g.W * g.H / 50
	if candidates > maxRelaxations {
		candidates = maxRelaxations
	}

	for i := 0; i < candidates; i++ {
		x := 1 + rng.Intn(g.W-2)
		y := 1 + rng.Intn(g.H-2)
		if g.At(x, y) != Wall {
			continue
		}
		if n := g.openNeighbors(x, y); n < 2 || n > 3 {
			continue
		}
		if rng.Float64() < relaxProbability {
			g.Set(x, y, Open)
		}
	}
}

// sealOuterRing forces the border back to wall. The carve never touches the
// border, so this is an idempotent safety net against future edits to the
// relaxation bounds.
func sealOuterRing(g *Grid) {
	for x := 0; x < g.W; x++ {
		g.Set(x, 0, Wall)
		g.Set(x, g.H-1, Wall)
	}
	for y := 0; y < g.H; y++ {
		g.Set(0, y, Wall)
		g.Set(g.W-1, y, Wall)
	}
}

// placeEndpoints marks the fixed entry and exit cells and makes sure each
// has at least one open 4-neighbor. The exit in particular may sit off the
// odd carve lattice (for even dimensions) and would otherwise be walled in.
func placeEndpoints(g *Grid) {
	entry := g.EntryPoint()
	exit := g.ExitPoint()

	ensureConnected(g, entry)
	ensureConnected(g, exit)
	g.Set(entry.X, entry.Y, Entry)
	g.Set(exit.X, exit.Y, Exit)
}

// ensureConnected opens p and, if p has no traversable 4-neighbor, carves
// a corridor from p toward the nearest carved lattice cell so the endpoint
// joins the connected network rather than forming an isolated pocket.
func ensureConnected(g *Grid, p Point) {
	g.Set(p.X, p.Y, Open)
	if g.openNeighbors(p.X, p.Y) > 0 {
		return
	}
	// Walk toward the nearest odd-aligned cell, which the carve always
	// reached, opening cells along the way.
	tx, ty := nearestOdd(p.X, g.W), nearestOdd(p.Y, g.H)
	for x := p.X; x != tx; x += sign(tx - x) {
		g.Set(x, p.Y, Open)
	}
	for y := p.Y; y != ty; y += sign(ty - y) {
		g.Set(tx, y, Open)
	}
	g.Set(tx, ty, Open)
}

// nearestOdd returns the closest odd coordinate to v inside [1, limit-2].
func nearestOdd(v, limit int) int {
	if v%2 == 1 {
		return v
	}
	if v-1 >= 1 {
		return v - 1
	}
	return v + 1
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
