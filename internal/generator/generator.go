package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/jamienguyen9/maze-generator/internal/detection"
	"github.com/jamienguyen9/maze-generator/internal/imagestore"
	"github.com/jamienguyen9/maze-generator/internal/imaging"
	"github.com/jamienguyen9/maze-generator/internal/maze"
	"github.com/jamienguyen9/maze-generator/internal/pathfind"
)

// Stage identifies a step of the generation pipeline, mostly for logging
// and failure reports.
type Stage string

const (
	StageValidating       Stage = "validating"
	StageSampling         Stage = "sampling"
	StageEdgeDetecting    Stage = "edge_detecting"
	StageTopologyBuilding Stage = "topology_building"
	StagePathfinding      Stage = "pathfinding"
	StageRendering        Stage = "rendering"
)

// Request asks for one maze. Width and Height are in cells.
type Request struct {
	Handle string
	Width  int
	Height int
}

// Metadata describes a successfully generated maze.
type Metadata struct {
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	EdgeCells      int       `json:"edge_cells"`
	SolutionLength int       `json:"solution_length"`
	Difficulty     string    `json:"difficulty"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// Result is the tagged outcome of one generation call. Exactly one of
// (Maze, Metadata) and Err is populated, according to Success.
type Result struct {
	Success  bool      `json:"success"`
	Maze     string    `json:"maze,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
	Err      *Error    `json:"error,omitempty"`
}

// Generator runs the image-to-maze pipeline. It is safe for concurrent
// use; see the package documentation.
type Generator struct {
	store *imagestore.Store
	opts  Options
}

// New returns a Generator reading images from store. opts is validated
// and defaulted; see Options.
func New(store *imagestore.Store, opts Options) *Generator {
	opts.Validate()
	return &Generator{store: store, opts: opts}
}

// Store returns the image store this generator reads from.
func (g *Generator) Store() *imagestore.Store { return g.store }

// Generate runs the full pipeline for one request and returns a tagged
// result. It never panics: stage panics are recovered and surfaced as
// typed failures, since a single oversized or pathological request must
// not take down the process.
func (g *Generator) Generate(req Request) (res *Result) {
	log := g.opts.Logger.With(
		"handle", req.Handle, "width", req.Width, "height", req.Height)

	defer func() {
		if r := recover(); r != nil {
			log.Error("generation panic recovered", "panic", r)
			res = failure(newError(KindResourceExhausted,
				"generation aborted: %v", r))
		}
	}()

	// Validating. Everything here runs before any grid allocation.
	if err := g.admit(req); err != nil {
		log.Warn("request rejected", "stage", StageValidating, "kind", err.Kind.String())
		return failure(err)
	}
	if !g.store.Exists(req.Handle) {
		log.Warn("request rejected", "stage", StageValidating, "kind", KindImageNotFound.String())
		return failure(newError(KindImageNotFound, "no image stored under handle %q", req.Handle))
	}
	data, err := g.store.Fetch(req.Handle)
	if err != nil {
		return failure(wrapError(KindImageNotFound, err, "image disappeared during generation"))
	}

	rng := g.newRand()

	// Sampling.
	grid, err := imaging.Sample(data, req.Width, req.Height)
	if err != nil {
		log.Warn("sampling failed", "stage", StageSampling, "err", err)
		if errors.Is(err, imaging.ErrDecode) {
			return failure(wrapError(KindDecode, err, "image bytes could not be decoded"))
		}
		return failure(wrapError(KindInternal, err, "sampling failed"))
	}

	// EdgeDetecting. The brightness grid is not referenced again after
	// this stage; its lifetime ends with this scope.
	det := detection.Detect(grid, rng)
	log.Debug("edges detected", "stage", StageEdgeDetecting,
		"tier", det.Tier.String(), "edge_cells", det.Count)

	// TopologyBuilding.
	m := maze.Generate(req.Width, req.Height, rng)

	// Pathfinding.
	entry, exit := m.EntryPoint(), m.ExitPoint()
	path := pathfind.Find(m, det.Mask, entry, exit)
	if len(path) == 0 || path[0] != entry || path[len(path)-1] != exit {
		// Unreachable given the pathfinder's fallback tiers; kept as a
		// defensive check so a future regression fails loudly but safely.
		log.Error("pathfinder returned an invalid path",
			"stage", StagePathfinding, "len", len(path))
		return failure(newError(KindInternal, "could not find a solution path"))
	}
	log.Debug("path found", "stage", StagePathfinding, "length", len(path))

	// Rendering. Render takes ownership of the grid and mutates it; the
	// grid and path are dropped when this call returns.
	text := maze.Render(m, path)

	meta := &Metadata{
		Width:          req.Width,
		Height:         req.Height,
		EdgeCells:      det.Count,
		SolutionLength: len(path),
		Difficulty:     maze.DifficultyFor(req.Width, req.Height, len(path)),
		GeneratedAt:    g.opts.Now(),
	}
	log.Info("maze generated", "difficulty", meta.Difficulty,
		"solution_length", meta.SolutionLength, "edge_cells", meta.EdgeCells)

	return &Result{Success: true, Maze: text, Metadata: meta}
}

// admit enforces dimension bounds, the cell ceiling, and the pre-flight
// memory estimate. It allocates nothing grid-sized.
func (g *Generator) admit(req Request) *Error {
	if req.Width < MinDimension || req.Width > MaxDimension ||
		req.Height < MinDimension || req.Height > MaxDimension {
		return newError(KindInvalidDimensions,
			"dimensions must be between %d and %d, got %dx%d",
			MinDimension, MaxDimension, req.Width, req.Height)
	}
	cells := req.Width * req.Height
	if cells > MaxCells {
		return newError(KindSizeExceeded,
			"maze size too large: %d cells exceeds the %d-cell limit", cells, MaxCells)
	}

	need := estimateMemory(cells)
	allowed := uint64(g.opts.MemoryFraction * float64(g.opts.Available()))
	if need > allowed {
		return newError(KindInsufficientMemory,
			"estimated %d bytes needed but only %d available; try a smaller size",
			need, allowed)
	}
	return nil
}

// estimateMemory approximates the peak footprint of one request: maze
// grid cells, edge mask, path-node bookkeeping, and the text buffer, all
// doubled as a safety multiplier.
func estimateMemory(cells int) uint64 {
	c := uint64(cells)
	gridMem := 2 * c
	maskMem := c
	pathMem := 24 * c
	textMem := 2 * c
	return (gridMem + maskMem + pathMem + textMem) * 2
}

// newRand builds the per-request random source. A configured non-zero
// seed makes every call reproduce the same maze; otherwise the clock
// seeds each call independently.
func (g *Generator) newRand() *rand.Rand {
	seed := g.opts.Seed
	if seed == 0 {
		seed = g.opts.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func failure(err *Error) *Result {
	return &Result{Success: false, Err: err}
}
