// Package generator orchestrates the image-to-maze pipeline.
//
// A generation request moves through a fixed sequence of stages:
//
//	Validating -> Sampling -> EdgeDetecting -> TopologyBuilding ->
//	Pathfinding -> Rendering -> Done
//
// with a terminal Failed outcome reachable from any stage. Validation and
// admission control (dimension bounds, cell ceiling, memory estimate) run
// before any grid is allocated, because the pipeline has no mid-flight
// cancellation: an oversized request must be rejected up front or not at
// all.
//
// Every failure carries a stable Kind plus a human-readable message. A
// successful Result carries the rendered maze text and its metadata; the
// intermediate brightness grid, edge mask, maze grid, and path are all
// local to the call and released when it returns.
//
// The generator is safe for concurrent Generate calls: each call builds
// its own random source and buffers, and the only shared state is the
// image store, which is insert-once and internally synchronized.
package generator
