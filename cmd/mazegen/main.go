package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/jamienguyen9/maze-generator/internal/detection"
	"github.com/jamienguyen9/maze-generator/internal/generator"
	"github.com/jamienguyen9/maze-generator/internal/imagestore"
	"github.com/jamienguyen9/maze-generator/internal/imaging"
	"github.com/jamienguyen9/maze-generator/internal/preview"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("mazegen %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		imagePath = flag.String("image", "", "Path to the source image (png, jpeg, or gif)")
		width     = flag.Int("width", 50, "Maze width in cells (10-200)")
		height    = flag.Int("height", 50, "Maze height in cells (10-200)")
		seed      = flag.Int64("seed", 0, "Random seed (0 = time-based)")
		edgesOut  = flag.String("edges-out", "", "Write an edge-mask preview PNG to this path")
		mazeOut   = flag.String("maze-out", "", "Write a colored maze preview PNG to this path")
		verbose   = flag.Bool("verbose", false, "Enable debug logging and image analysis output")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "mazegen - generate a text maze whose solution traces an image's contours")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage: mazegen -image path/to/image.png [options]")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *imagePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	// Log to stderr; stdout carries the maze itself.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *imagePath, *width, *height, *seed, *edgesOut, *mazeOut, *verbose); err != nil {
		logger.Error("generation failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, imagePath string, width, height int, seed int64, edgesOut, mazeOut string, verbose bool) error {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	store := imagestore.New()
	handle, err := store.Put(filepath.Base(imagePath), data)
	if err != nil {
		return fmt.Errorf("failed to store image: %w", err)
	}

	opts := generator.DefaultOptions()
	opts.Seed = seed
	opts.Logger = logger
	gen := generator.New(store, opts)

	if verbose {
		if grid, err := imaging.Sample(data, width, height); err == nil {
			stats := imaging.Analyze(grid)
			logger.Debug("image analysis", "min_brightness", stats.Min,
				"max_brightness", stats.Max, "avg_brightness", stats.Avg,
				"contrast", stats.Contrast)
		}
	}

	result := gen.Generate(generator.Request{Handle: handle, Width: width, Height: height})
	if !result.Success {
		return result.Err
	}

	fmt.Println(result.Maze)
	fmt.Fprintf(os.Stderr, "\n%dx%d maze, difficulty %s, solution length %d, %d edge cells\n",
		result.Metadata.Width, result.Metadata.Height, result.Metadata.Difficulty,
		result.Metadata.SolutionLength, result.Metadata.EdgeCells)

	if mazeOut != "" {
		png, err := preview.Maze(result.Maze)
		if err != nil {
			return err
		}
		if err := os.WriteFile(mazeOut, png, 0o644); err != nil {
			return fmt.Errorf("failed to write maze preview: %w", err)
		}
	}
	if edgesOut != "" {
		if err := writeEdgePreview(data, width, height, seed, edgesOut); err != nil {
			return err
		}
	}
	return nil
}

// writeEdgePreview reruns detection on its own to visualize the mask. The
// pipeline discards the mask after pathfinding, so the preview pays for a
// second detection pass instead of growing the core's result type.
func writeEdgePreview(data []byte, width, height int, seed int64, path string) error {
	grid, err := imaging.Sample(data, width, height)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	det := detection.Detect(grid, rand.New(rand.NewSource(seed)))
	png, err := preview.EdgeMask(det.Mask)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("failed to write edge preview: %w", err)
	}
	return nil
}
