// Package preview renders diagnostic PNG images: the detected edge mask
// and the finished maze. These exist to debug edge detection and to give
// the surrounding application something visual to show; the core pipeline
// never depends on them.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jamienguyen9/maze-generator/internal/detection"
	"github.com/jamienguyen9/maze-generator/internal/maze"
)

// cellScale is the side length, in pixels, of one cell in a preview image.
const cellScale = 8

// EdgeMask renders a mask as a PNG: edge cells black on a white
// background, scaled up with nearest-neighbor so individual cells stay
// visible.
func EdgeMask(m *detection.Mask) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, m.W, m.H))
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.At(x, y) {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}

	scaled := transform.Resize(img, m.W*cellScale, m.H*cellScale, transform.NearestNeighbor)
	return encodePNG(scaled)
}

// Maze palette. Hues are picked in HSV so the solution trail reads
// clearly against walls and corridors.
var (
	wallColor     = mustHex("#1e2430")
	openColor     = mustHex("#f5f2e8")
	solutionColor = colorful.Hsv(45, 0.85, 0.95)  // amber trail
	entryColor    = colorful.Hsv(130, 0.75, 0.80) // green
	exitColor     = colorful.Hsv(0, 0.80, 0.90)   // red
)

// Maze renders generated maze text as a colored PNG, one cellScale-sized
// square per cell. The text must be the output of maze.Render; lines of
// uneven length return an error.
func Maze(text string) ([]byte, error) {
	rows := strings.Split(text, "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("preview: empty maze text")
	}
	width := len([]rune(rows[0]))

	img := image.NewRGBA(image.Rect(0, 0, width, len(rows)))
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != width {
			return nil, fmt.Errorf("preview: ragged maze text: row %d has %d cells, want %d",
				y, len(cells), width)
		}
		for x, cell := range cells {
			img.Set(x, y, cellColor(cell))
		}
	}

	scaled := transform.Resize(img, width*cellScale, len(rows)*cellScale, transform.NearestNeighbor)
	return encodePNG(scaled)
}

func cellColor(glyph rune) color.Color {
	var c colorful.Color
	switch glyph {
	case maze.GlyphOpen:
		c = openColor
	case maze.GlyphSolution:
		c = solutionColor
	case maze.GlyphEntry:
		c = entryColor
	case maze.GlyphExit:
		c = exitColor
	default:
		c = wallColor
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("preview: failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
