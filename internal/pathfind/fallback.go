package pathfind

import "github.com/jamienguyen9/maze-generator/internal/maze"

// carvingBFS finds a shortest path from entry to exit over all interior
// cells, ignoring walls, then carves any wall cell on the path open. The
// mutation is deliberate: it repairs a disconnected topology so the maze
// invariant (entry and exit mutually reachable) holds after the call.
func carvingBFS(g *maze.Grid, entry, exit maze.Point) []maze.Point {
	parent := make(map[maze.Point]maze.Point)
	visited := map[maze.Point]bool{entry: true}
	queue := []maze.Point{entry}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == exit {
			path := reconstruct(parent, current)
			carvePath(g, path)
			return path
		}
		for _, d := range directions {
			next := maze.Point{X: current.X + d.X, Y: current.Y + d.Y}
			if !g.Interior(next.X, next.Y) || visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = current
			queue = append(queue, next)
		}
	}
	return nil
}

// directLine builds a path by stepping one axis at a time toward the
// exit, x first then y, carving walls crossed along the way. It reaches
// the exit in at most width+height steps regardless of grid content.
func directLine(g *maze.Grid, entry, exit maze.Point) []maze.Point {
	path := []maze.Point{entry}
	current := entry
	for current.X != exit.X {
		current.X += sign(exit.X - current.X)
		path = append(path, current)
	}
	for current.Y != exit.Y {
		current.Y += sign(exit.Y - current.Y)
		path = append(path, current)
	}
	carvePath(g, path)
	return path
}

// carvePath opens every wall cell on the path. Entry, exit, and already
// open cells are left as they are.
func carvePath(g *maze.Grid, path []maze.Point) {
	for _, p := range path {
		if g.At(p.X, p.Y) == maze.Wall {
			g.Set(p.X, p.Y, maze.Open)
		}
	}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
