package detection

import (
	"math/rand"

	"github.com/jamienguyen9/maze-generator/internal/imaging"
)

// Tier identifies which detection pass produced a mask.
type Tier int

const (
	// TierAdaptive is the primary gradient detector with adaptive thresholds.
	TierAdaptive Tier = 1
	// TierAggressive is the 8-directional maximum-difference detector.
	TierAggressive Tier = 2
	// TierSynthetic is the fallback structure for blank or flat images.
	TierSynthetic Tier = 3
)

func (t Tier) String() string {
	switch t {
	case TierAdaptive:
		return "adaptive"
	case TierAggressive:
		return "aggressive"
	case TierSynthetic:
		return "synthetic"
	default:
		return "unknown"
	}
}

const (
	// minDensity is the fraction of cells below which the adaptive pass is
	// considered to have failed and the aggressive pass runs.
	minDensity = 0.02
	// minEdgeCells is the absolute floor below which the synthetic fallback
	// replaces whatever was detected.
	minEdgeCells = 10
	// aggressiveThreshold is the fixed difference threshold of tier 2.
	aggressiveThreshold = 10
	// maxScatter caps the random cells added by the synthetic fallback.
	maxScatter = 20
)

// Result is the outcome of edge detection: the mask, the tier that
// produced it, and the number of edge cells it contains.
type Result struct {
	Mask  *Mask
	Tier  Tier
	Count int
}

// Detect derives an edge mask from the grid, escalating through the
// detection tiers until the mask carries a usable amount of signal. It
// never fails: for any grid it returns a mask with at least minEdgeCells
// cells set (the synthetic fallback guarantees the floor).
//
// rng is consumed only by the synthetic tier; identical grid content and
// identical rng state produce an identical result.
func Detect(g *imaging.BrightnessGrid, rng *rand.Rand) *Result {
	mask := detectAdaptive(g)
	tier := TierAdaptive
	count := mask.Count()

	if float64(count) < minDensity*float64(g.W*g.H) {
		mask = detectAggressive(g)
		tier = TierAggressive
		count = mask.Count()
	}
	if count < minEdgeCells {
		mask = synthesize(g.W, g.H, rng)
		tier = TierSynthetic
		count = mask.Count()
	}

	return &Result{Mask: mask, Tier: tier, Count: count}
}

// detectAdaptive marks interior cells whose 4-neighborhood gradient
// magnitude exceeds a threshold adapted to the local contrast.
func detectAdaptive(g *imaging.BrightnessGrid) *Mask {
	mask := NewMask(g.W, g.H)
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			gx := abs(g.At(x+1, y) - g.At(x-1, y))
			gy := abs(g.At(x, y+1) - g.At(x, y-1))
			if gx+gy > adaptiveThreshold(g, x, y) {
				mask.set(x, y)
			}
		}
	}
	return mask
}

// adaptiveThreshold picks the gradient threshold for (x, y) from the
// contrast of its 5x5 neighborhood: high-contrast regions need a stronger
// gradient before a cell counts as an edge, so noise in busy areas does
// not swamp the mask.
func adaptiveThreshold(g *imaging.BrightnessGrid, x, y int) int {
	minB, maxB := 255, 0
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= g.W || ny < 0 || ny >= g.H {
				continue
			}
			b := g.At(nx, ny)
			if b < minB {
				minB = b
			}
			if b > maxB {
				maxB = b
			}
		}
	}

	switch contrast := maxB - minB; {
	case contrast > 100:
		return 40
	case contrast > 50:
		return 25
	default:
		return 15
	}
}

// detectAggressive marks interior cells whose maximum absolute difference
// to any of the 8 neighbors exceeds a fixed low threshold. It trades
// precision for recall on low-contrast images.
func detectAggressive(g *imaging.BrightnessGrid) *Mask {
	neighbors := [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
	}

	mask := NewMask(g.W, g.H)
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			center := g.At(x, y)
			maxDiff := 0
			for _, d := range neighbors {
				diff := abs(center - g.At(x+d[0], y+d[1]))
				if diff > maxDiff {
					maxDiff = diff
				}
			}
			if maxDiff > aggressiveThreshold {
				mask.set(x, y)
			}
		}
	}
	return mask
}

// synthesize builds a deterministic-shape mask for images with no
// detectable structure: a horizontal and a vertical line through the grid
// center, each spanning the inner half of its axis, plus a bounded number
// of scattered cells. Scattered cells are drawn until they land on an
// unset cell, so the total count always clears the minEdgeCells floor.
func synthesize(width, height int, rng *rand.Rand) *Mask {
	mask := NewMask(width, height)

	midX, midY := width/2, height/2
	for x := width / 4; x < 3*width/4; x++ {
		mask.set(x, midY)
	}
	for y := height / 4; y < 3*height/4; y++ {
		mask.set(midX, y)
	}

	scatter := width * height / 50
	if scatter > maxScatter {
		scatter = maxScatter
	}
	for added, attempts := 0, 0; added < scatter && attempts < scatter*10; attempts++ {
		x := 1 + rng.Intn(width-2)
		y := 1 + rng.Intn(height-2)
		if !mask.At(x, y) {
			mask.set(x, y)
			added++
		}
	}

	return mask
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
