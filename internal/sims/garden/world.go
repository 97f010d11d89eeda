package garden

import (
	"pixelgarden/internal/core"
	pcore "pixelgarden/pkg/core"
)

// World owns the shared grid, the scheduler, and the per-tick engines. All
// engines mutate the grid in place; the phase order inside Step is a
// correctness contract, not an optimization.
type World struct {
	cfg Config

	w, h int

	grid  *Grid
	sched *Scheduler
	conn  *connectivity
	rng   *pcore.RNG

	traits TraitFunc
	tick   uint64

	mode    ViewMode
	display []uint8

	groundLevel []int
	rootCount   int
	stemCount   int
	leafCount   int
	flowerCount int

	waterScratch []int
	weights      []float64
	candidates   []int
}

// New returns a garden simulation with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a garden world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	total := cfg.Width * cfg.Height
	w := &World{
		cfg:         cfg,
		w:           cfg.Width,
		h:           cfg.Height,
		grid:        NewGrid(cfg.Width, cfg.Height),
		sched:       NewScheduler(total),
		conn:        newConnectivity(total),
		rng:         pcore.NewRNG(cfg.Seed),
		display:     make([]uint8, total),
		groundLevel: make([]int, cfg.Width),
		weights:     make([]float64, 0, 8),
		candidates:  make([]int, 0, 8),
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "garden" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the attribute arrays for rendering, tools, and inspection.
func (w *World) Grid() *Grid { return w.grid }

// Tick reports how many steps have run since the last Reset.
func (w *World) Tick() uint64 { return w.tick }

// Config returns a copy of the active configuration.
func (w *World) Config() Config { return w.cfg }

// SetTraitFunc installs the genetics collaborator. Passing nil restores the
// default multiplier of 1.0 for every trait.
func (w *World) SetTraitFunc(f TraitFunc) { w.traits = f }

func (w *World) trait(index int, t Trait) float64 {
	if w.traits == nil {
		return 1.0
	}
	m := w.traits(index, t)
	if m < 0 {
		return 0
	}
	return m
}

func (w *World) soilDepth() int {
	d := w.cfg.Params.SoilDepth
	if d <= 0 {
		d = w.h / 4
	}
	if d > w.h {
		d = w.h
	}
	return d
}

// Reset rebuilds the initial world deterministically: a soil band across the
// bottom, moisture and nutrients sprinkled through it, and a handful of seeds
// resting on the surface.
func (w *World) Reset(seed int64) {
	if w.w == 0 || w.h == 0 {
		return
	}
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Reseed(effective)
	w.tick = 0
	w.sched.Reset()

	total := w.w * w.h
	for i := 0; i < total; i++ {
		w.grid.Clear(i)
	}

	p := w.cfg.Params
	surface := w.h - w.soilDepth()
	for y := surface; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			i := y*w.w + x
			w.grid.Type[i] = CellSoil
			w.grid.State[i] = StateDefault
			w.grid.Water[i] = clampResource(p.SoilInitWater + w.rng.IntN(7) - 3)
			w.grid.Nutrient[i] = clampResource(p.SoilInitNutrient + w.rng.IntN(11) - 5)
		}
	}

	for s := 0; s < p.StartSeeds; s++ {
		x := w.rng.IntN(w.w)
		i := w.grid.Index(x, surface-1)
		if i == None || w.grid.Type[i] != CellAir {
			continue
		}
		w.grid.Type[i] = CellSeed
		w.grid.Energy[i] = clampResource(p.StartSeedEnergy)
	}

	// Everything material starts live; air stays dormant until touched.
	for i := 0; i < total; i++ {
		if w.grid.Type[i] != CellAir {
			w.sched.Activate(i)
		}
	}
	w.sched.EndTick()

	w.rebuildDisplay()
}

// Step advances the simulation by one tick. Biology runs first so growth is
// evaluated for support in the same tick; physics runs last so freshly
// detached dead matter is already eligible for gravity and erosion.
func (w *World) Step() {
	if w.w == 0 || w.h == 0 {
		return
	}
	w.tick++
	w.sched.BeginTick()

	w.stepBiology()
	w.analyzeConnectivity()
	w.stepPhysics()

	w.sched.EndTick()
	w.rebuildDisplay()
}

// touch keeps i live for the next tick and wakes its neighborhood, so
// dormant cells react to writes beside them.
func (w *World) touch(i int) {
	w.sched.Activate(i)
	x, y := w.grid.Coords(i)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if n := w.grid.Index(x+dx, y+dy); n != None {
				w.sched.Activate(n)
			}
		}
	}
}

// computeGroundLevels records, per column, the first row holding soil. A
// column without soil reports the grid height.
func (w *World) computeGroundLevels() {
	for x := 0; x < w.w; x++ {
		w.groundLevel[x] = w.h
		for y := 0; y < w.h; y++ {
			if w.grid.Type[y*w.w+x] == CellSoil {
				w.groundLevel[x] = y
				break
			}
		}
	}
}

// heightAboveGround reports how far above its column's soil line the cell
// sits. Cells at or below ground report zero or negative values.
func (w *World) heightAboveGround(i int) int {
	x, y := w.grid.Coords(i)
	return w.groundLevel[x] - y
}

func init() {
	core.Register("garden", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
