// Package detection derives a boolean edge mask from a brightness grid.
//
// The detector never fails: it escalates through three tiers until it has
// enough signal for the pathfinder to bias toward.
//
//  1. Adaptive gradient: 4-neighborhood luminance gradients compared
//     against a threshold chosen from the 5x5 local contrast. Works well
//     on ordinary photos and diagrams.
//  2. Aggressive 8-directional difference: marks a cell when any of its 8
//     neighbors differs by more than a fixed low threshold. Used when the
//     adaptive pass finds fewer than 2% edge cells, as happens on soft or
//     low-contrast images.
//  3. Synthetic structure: a cross of straight lines through the grid
//     center plus a handful of randomly scattered cells. Used when even
//     the aggressive pass finds almost nothing (a blank image), so the
//     solution path always has some shape to trace.
//
// Each tier is a pure function over the input grid; Detect composes them
// and reports which tier produced the returned mask. Given the same grid
// and the same random source state, the result is deterministic.
package detection
