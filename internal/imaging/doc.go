// Package imaging turns raw image bytes into a brightness grid at maze
// resolution.
//
// Sampling decodes the source bytes (PNG, JPEG, or GIF), resizes the image
// to the exact target dimensions with bilinear interpolation, and converts
// each pixel to an 8-bit luminance value using the ITU-R BT.601 weights
// (0.299*R + 0.587*G + 0.114*B), truncated to an integer. The resulting
// BrightnessGrid is the only input the edge detector needs; the decoded
// image is not retained.
//
// # Coordinate System
//
// Grid coordinates are 0-based with origin at the top-left corner: X
// increases rightward, Y increases downward.
//
// # Thread Safety
//
// Sampling is stateless; concurrent calls on different byte slices need no
// synchronization.
package imaging
