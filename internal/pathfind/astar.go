package pathfind

import (
	"container/heap"

	"github.com/jamienguyen9/maze-generator/internal/detection"
	"github.com/jamienguyen9/maze-generator/internal/maze"
)

// edgeBonus is subtracted from the unit step cost when the destination
// cell is in the edge mask. It must stay below 1.0 so step costs remain
// positive.
const edgeBonus = 0.8

var directions = [4]maze.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Find returns a path from entry to exit. It never returns an empty path:
// when the edge-biased A* search fails it falls back to a carving BFS and
// finally to a direct line. The grid may be mutated by the fallbacks,
// which carve walls to guarantee connectivity.
func Find(g *maze.Grid, mask *detection.Mask, entry, exit maze.Point) []maze.Point {
	if path := astar(g, mask, entry, exit); len(path) > 0 {
		return path
	}
	if path := carvingBFS(g, entry, exit); len(path) > 0 {
		return path
	}
	return directLine(g, entry, exit)
}

// node is a priority-queue entry for A*. seq is a monotonically increasing
// insertion counter so that equal f-scores pop in FIFO order.
type node struct {
	p   maze.Point
	f   float64
	seq int
}

type nodeQueue []node

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(node)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// astar runs edge-biased A* over traversable cells. Step cost is 1.0,
// reduced by edgeBonus when the destination is masked; the heuristic is
// Manhattan distance to the exit. Discounted steps make the heuristic
// slightly inadmissible, so the result can be marginally longer than the
// true cheapest path; the bias toward contours is what matters here, not
// cost optimality.
func astar(g *maze.Grid, mask *detection.Mask, entry, exit maze.Point) []maze.Point {
	h := func(p maze.Point) float64 {
		return float64(abs(p.X-exit.X) + abs(p.Y-exit.Y))
	}

	open := &nodeQueue{}
	heap.Init(open)
	seq := 0
	heap.Push(open, node{p: entry, f: h(entry), seq: seq})

	gScore := map[maze.Point]float64{entry: 0}
	cameFrom := make(map[maze.Point]maze.Point)
	closed := make(map[maze.Point]bool)

	for open.Len() > 0 {
		current := heap.Pop(open).(node).p
		if current == exit {
			return reconstruct(cameFrom, current)
		}
		if closed[current] {
			continue
		}
		closed[current] = true

		for _, d := range directions {
			next := maze.Point{X: current.X + d.X, Y: current.Y + d.Y}
			if !g.Passable(next.X, next.Y) || closed[next] {
				continue
			}
			cost := 1.0
			if mask != nil && mask.At(next.X, next.Y) {
				cost -= edgeBonus
			}
			tentative := gScore[current] + cost
			if best, seen := gScore[next]; !seen || tentative < best {
				cameFrom[next] = current
				gScore[next] = tentative
				seq++
				heap.Push(open, node{p: next, f: tentative + h(next), seq: seq})
			}
		}
	}
	return nil
}

// reconstruct walks the parent links back from the goal and reverses them.
func reconstruct(cameFrom map[maze.Point]maze.Point, current maze.Point) []maze.Point {
	path := []maze.Point{current}
	for {
		parent, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, parent)
		current = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
