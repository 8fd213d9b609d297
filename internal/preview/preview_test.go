package preview

import (
	"bytes"
	"image/png"
	"math/rand"
	"strings"
	"testing"

	"github.com/jamienguyen9/maze-generator/internal/detection"
	"github.com/jamienguyen9/maze-generator/internal/maze"
	"github.com/jamienguyen9/maze-generator/internal/pathfind"
)

func TestEdgeMask(t *testing.T) {
	m := detection.NewMask(10, 10)
	m.Bits[5*10+5] = true

	data, err := EdgeMask(m)
	if err != nil {
		t.Fatalf("EdgeMask failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 80 || img.Bounds().Dy() != 80 {
		t.Errorf("dimensions: got %dx%d, want 80x80 (8x upscale)",
			img.Bounds().Dx(), img.Bounds().Dy())
	}

	// The marked cell renders black, the rest white.
	r, _, _, _ := img.At(5*8+4, 5*8+4).RGBA()
	if r != 0 {
		t.Errorf("edge cell should be black, got red channel %d", r>>8)
	}
	r, _, _, _ = img.At(4, 4).RGBA()
	if r>>8 != 255 {
		t.Errorf("empty cell should be white, got red channel %d", r>>8)
	}
}

func TestMaze(t *testing.T) {
	g := maze.Generate(15, 12, rand.New(rand.NewSource(3)))
	path := pathfind.Find(g, detection.NewMask(15, 12), g.EntryPoint(), g.ExitPoint())
	text := maze.Render(g, path)

	data, err := Maze(text)
	if err != nil {
		t.Fatalf("Maze failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 15*8 || img.Bounds().Dy() != 12*8 {
		t.Errorf("dimensions: got %dx%d, want %dx%d",
			img.Bounds().Dx(), img.Bounds().Dy(), 15*8, 12*8)
	}
}

func TestMaze_RaggedInput(t *testing.T) {
	_, err := Maze("███\n██")
	if err == nil {
		t.Fatal("expected an error for ragged maze text")
	}
	if !strings.Contains(err.Error(), "ragged") {
		t.Errorf("error should mention the ragged row, got %v", err)
	}

	if _, err := Maze(""); err == nil {
		t.Error("expected an error for empty maze text")
	}
}
