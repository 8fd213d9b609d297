// Package pathfind computes a solution path through a maze, biased toward
// the detected image contours.
//
// Find never returns an empty path; that is its core contract. Three
// strategies run in order:
//
//  1. Edge-biased A* over the open topology. Moving onto a cell in the
//     edge mask is cheaper than a plain move, so the minimum-cost path
//     hugs detected contours without being forced onto them.
//  2. Carving breadth-first search. If A* finds no route (a disconnected
//     grid, which generation should prevent), BFS crosses walls and any
//     wall cell on the resulting path is carved open, restoring the
//     solvability invariant by construction.
//  3. A direct line from entry to exit, one axis at a time. Defensive
//     only; it terminates within width+height steps no matter what the
//     grid contains.
//
// All returned paths start at the entry, end at the exit, and step between
// 4-adjacent cells.
package pathfind
