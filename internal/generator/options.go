package generator

import (
	"log/slog"
	"runtime"
	"time"
)

// Dimension and admission limits for generation requests.
const (
	// MinDimension is the smallest accepted width or height.
	MinDimension = 10
	// MaxDimension is the largest accepted width or height.
	MaxDimension = 200
	// MaxCells is the hard admission ceiling on width*height, independent
	// of the per-axis bounds.
	MaxCells = 10000
)

// Options configures a Generator. The zero value is not usable; start
// from DefaultOptions and override fields as needed.
type Options struct {
	// MemoryBudget is the total heap budget, in bytes, that generation
	// work is allowed to draw from.
	MemoryBudget uint64

	// MemoryFraction is the fraction of currently available budget a
	// single request's estimated footprint may occupy.
	MemoryFraction float64

	// Seed seeds the per-request random source. Zero means seed from the
	// clock, giving a different maze on every call; any other value makes
	// generation fully reproducible.
	Seed int64

	// Now supplies the generation timestamp. Defaults to time.Now.
	Now func() time.Time

	// Available reports the memory currently available to generation
	// work, in bytes. The default probes the runtime heap against
	// MemoryBudget. Injectable for tests.
	Available func() uint64

	// Logger receives stage-level progress and failure logs. Defaults to
	// slog.Default.
	Logger *slog.Logger
}

// DefaultOptions returns Options with standard defaults: a 256 MiB budget,
// 80% admission fraction, clock seeding, and the runtime heap probe.
func DefaultOptions() Options {
	return Options{
		MemoryBudget:   256 << 20,
		MemoryFraction: 0.8,
	}
}

// Validate clamps option values to safe ranges and fills in nil hooks.
func (o *Options) Validate() {
	if o.MemoryBudget == 0 {
		o.MemoryBudget = 256 << 20
	}
	if o.MemoryFraction <= 0 || o.MemoryFraction > 1 {
		o.MemoryFraction = 0.8
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Available == nil {
		budget := o.MemoryBudget
		o.Available = func() uint64 { return availableMemory(budget) }
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// availableMemory reports how much of the configured budget the heap has
// not already claimed.
func availableMemory(budget uint64) uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	if ms.HeapInuse >= budget {
		return 0
	}
	return budget - ms.HeapInuse
}
