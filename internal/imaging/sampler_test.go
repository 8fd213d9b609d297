package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// encodePNG renders a solid-color image to PNG bytes for use as fixture
// input.
func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestSample_Dimensions(t *testing.T) {
	data := encodePNG(t, 120, 80, color.RGBA{200, 100, 50, 255})

	tests := []struct {
		name string
		w, h int
	}{
		{"downscale", 30, 20},
		{"upscale", 200, 150},
		{"exact", 120, 80},
		{"non-uniform", 17, 93},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := Sample(data, tt.w, tt.h)
			if err != nil {
				t.Fatalf("Sample failed: %v", err)
			}
			if grid.W != tt.w || grid.H != tt.h {
				t.Errorf("dimensions: got %dx%d, want %dx%d", grid.W, grid.H, tt.w, tt.h)
			}
			if len(grid.Pix) != tt.w*tt.h {
				t.Errorf("pixel count: got %d, want %d", len(grid.Pix), tt.w*tt.h)
			}
		})
	}
}

func TestSample_UniformLuminance(t *testing.T) {
	// Luminance of (100, 150, 200) = (29900 + 88050 + 22800) / 1000 = 140.
	data := encodePNG(t, 40, 40, color.RGBA{100, 150, 200, 255})

	grid, err := Sample(data, 20, 20)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	for i, v := range grid.Pix {
		if v != 140 {
			t.Fatalf("pixel %d: got luminance %d, want 140", i, v)
		}
	}
}

func TestSample_InvalidData(t *testing.T) {
	_, err := Sample([]byte("definitely not an image"), 20, 20)
	if err == nil {
		t.Fatal("expected an error for undecodable bytes")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error should wrap ErrDecode, got %v", err)
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    uint8
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{255, 0, 0, 76},  // 299*255/1000, truncated
		{0, 255, 0, 149}, // 587*255/1000
		{0, 0, 255, 29},  // 114*255/1000
		{100, 150, 200, 140},
	}
	for _, tt := range tests {
		if got := Luminance(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("Luminance(%d,%d,%d): got %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestAnalyze(t *testing.T) {
	g := &BrightnessGrid{W: 2, H: 2, Pix: []uint8{10, 20, 30, 40}}
	stats := Analyze(g)

	if stats.Min != 10 || stats.Max != 40 {
		t.Errorf("min/max: got %d/%d, want 10/40", stats.Min, stats.Max)
	}
	if stats.Avg != 25 {
		t.Errorf("avg: got %v, want 25", stats.Avg)
	}
	if stats.Contrast != 30 {
		t.Errorf("contrast: got %d, want 30", stats.Contrast)
	}
}

func TestBrightnessGrid_AtOutOfBounds(t *testing.T) {
	g := &BrightnessGrid{W: 2, H: 2, Pix: []uint8{10, 20, 30, 40}}
	if got := g.At(-1, 0); got != 0 {
		t.Errorf("out-of-bounds At: got %d, want 0", got)
	}
	if got := g.At(1, 1); got != 40 {
		t.Errorf("At(1,1): got %d, want 40", got)
	}
}
