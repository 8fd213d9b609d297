package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/disintegration/imaging"
)

// ErrDecode indicates the source bytes are not a supported raster format.
var ErrDecode = errors.New("imaging: unsupported or corrupt image data")

// BrightnessGrid holds 8-bit luminance values at maze resolution, stored
// row-major: the value for (x, y) lives at index y*W + x.
type BrightnessGrid struct {
	W   int
	H   int
	Pix []uint8
}

// At returns the luminance at (x, y) as an int in [0, 255]. Out-of-bounds
// coordinates return 0.
func (g *BrightnessGrid) At(x, y int) int {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return 0
	}
	return int(g.Pix[y*g.W+x])
}

// Sample decodes data and resamples it to exactly width x height luminance
// values using bilinear interpolation.
//
// Returns an error wrapping ErrDecode if the bytes are not a decodable
// PNG, JPEG, or GIF image. No state is retained between calls.
func Sample(data []byte, width, height int) (*BrightnessGrid, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	resized := imaging.Resize(img, width, height, imaging.Linear)

	grid := &BrightnessGrid{
		W:   width,
		H:   height,
		Pix: make([]uint8, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := resized.PixOffset(x, y)
			r := int(resized.Pix[i])
			g := int(resized.Pix[i+1])
			b := int(resized.Pix[i+2])
			grid.Pix[y*width+x] = Luminance(r, g, b)
		}
	}
	return grid, nil
}

// Luminance converts 8-bit RGB components to 8-bit luminance using the
// BT.601 weights, truncating toward zero. The integer form is exact:
// 0.299 = 299/1000 and likewise for the other coefficients.
func Luminance(r, g, b int) uint8 {
	return uint8((299*r + 587*g + 114*b) / 1000)
}

// Stats summarizes the brightness distribution of a grid. Low contrast
// warns that edge detection will likely need to escalate.
type Stats struct {
	Min      int     // Darkest luminance value present
	Max      int     // Brightest luminance value present
	Avg      float64 // Mean luminance
	Contrast int     // Max - Min
}

// Analyze computes brightness statistics over the whole grid.
func Analyze(g *BrightnessGrid) Stats {
	if len(g.Pix) == 0 {
		return Stats{}
	}
	min, max := 255, 0
	total := 0
	for _, v := range g.Pix {
		b := int(v)
		if b < min {
			min = b
		}
		if b > max {
			max = b
		}
		total += b
	}
	return Stats{
		Min:      min,
		Max:      max,
		Avg:      float64(total) / float64(len(g.Pix)),
		Contrast: max - min,
	}
}
