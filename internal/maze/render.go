package maze

import "strings"

// Glyphs used in the text rendering, one per cell.
const (
	GlyphWall     = '█'
	GlyphOpen     = ' '
	GlyphEntry    = 'S'
	GlyphExit     = 'E'
	GlyphSolution = '.'
)

// Render overlays the solution path onto the grid and serializes it to
// text: one character per cell, rows joined by newlines, no trailing
// newline after the last row.
//
// Open cells on the path become Solution. Entry and Exit markers are never
// overwritten. A wall cell on the path is also converted to Solution as a
// defensive measure; the pathfinder carves walls it crosses, so this only
// matters if the two ever disagree.
//
// Render mutates g: the caller hands over ownership of the grid, which is
// not used again after serialization.
func Render(g *Grid, path []Point) string {
	for _, p := range path {
		switch g.At(p.X, p.Y) {
		case Open, Wall:
			g.Set(p.X, p.Y, Solution)
		}
	}

	var sb strings.Builder
	sb.Grow(g.H * (g.W + 1))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			sb.WriteRune(glyph(g.At(x, y)))
		}
		if y < g.H-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func glyph(c Cell) rune {
	switch c {
	case Open:
		return GlyphOpen
	case Entry:
		return GlyphEntry
	case Exit:
		return GlyphExit
	case Solution:
		return GlyphSolution
	default:
		return GlyphWall
	}
}

// DifficultyFor rates a maze from its size and the fraction of cells the
// solution visits. Small mazes with short solutions are Easy; anything
// past 2000 cells or with a solution covering most of the grid is Expert.
func DifficultyFor(width, height, solutionLength int) string {
	totalCells := width * height
	complexity := float64(solutionLength) / float64(totalCells)

	switch {
	case totalCells < 500 && complexity < 0.3:
		return "Easy"
	case totalCells < 1000 && complexity < 0.5:
		return "Medium"
	case totalCells < 2000 && complexity < 0.7:
		return "Hard"
	default:
		return "Expert"
	}
}
