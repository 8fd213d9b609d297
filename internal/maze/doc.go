// Package maze provides the maze grid model, randomized topology generation,
// and text rendering.
//
// A maze is a rectangular grid of cells, each either a wall or part of the
// open corridor network. Generation produces a fully connected maze: the
// fixed entry cell at (1,1) and exit cell at (width-2, height-2) are always
// mutually reachable through open cells, regardless of the random seed.
//
// # Coordinate System
//
// Coordinates are 0-based with origin at the top-left corner: X increases
// rightward, Y increases downward. The outer ring of the grid (x=0, y=0,
// x=width-1, y=height-1) is always wall.
//
// # Generation Algorithm
//
// Topology is carved by randomized backtracking on a half-step lattice
// (step 2 in both axes), which yields a perfect maze: exactly one simple
// path between any two open cells. A relaxation pass then opens a bounded
// number of extra wall cells to introduce controlled cycles, so solutions
// are not forced down a single corridor. Finally the entry and exit cells
// are guaranteed open and connected to the interior.
//
// # Determinism
//
// All randomness flows through the *rand.Rand passed to Generate. The same
// seed and dimensions produce an identical grid.
package maze
