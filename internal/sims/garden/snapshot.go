package garden

import "fmt"

// SnapshotVersion identifies the snapshot layout this build writes.
const SnapshotVersion = 1

// SnapshotState is a direct copy of the parallel attribute arrays plus the
// bookkeeping needed to resume a run.
type SnapshotState struct {
	Version int
	Width   int
	Height  int
	Tick    uint64
	Seed    int64

	Types    []uint8
	States   []uint8
	Water    []uint8
	Energy   []uint8
	Nutrient []uint8
	Meta     []CellMeta
}

// Snapshot captures the current world state.
func (w *World) Snapshot() *SnapshotState {
	total := w.w * w.h
	s := &SnapshotState{
		Version:  SnapshotVersion,
		Width:    w.w,
		Height:   w.h,
		Tick:     w.tick,
		Seed:     w.cfg.Seed,
		Types:    make([]uint8, total),
		States:   make([]uint8, total),
		Water:    make([]uint8, total),
		Energy:   make([]uint8, total),
		Nutrient: make([]uint8, total),
		Meta:     make([]CellMeta, total),
	}
	for i := 0; i < total; i++ {
		s.Types[i] = uint8(w.grid.Type[i])
		s.States[i] = uint8(w.grid.State[i])
	}
	copy(s.Water, w.grid.Water)
	copy(s.Energy, w.grid.Energy)
	copy(s.Nutrient, w.grid.Nutrient)
	copy(s.Meta, w.grid.Meta)
	return s
}

// Restore replaces the world state with the snapshot's. Every non-air cell
// is re-activated so the next tick processes the whole restored scene.
func (w *World) Restore(s *SnapshotState) error {
	if s == nil {
		return fmt.Errorf("nil snapshot")
	}
	if s.Version != SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", s.Version)
	}
	if s.Width != w.w || s.Height != w.h {
		return fmt.Errorf("snapshot is %dx%d, world is %dx%d", s.Width, s.Height, w.w, w.h)
	}
	total := w.w * w.h
	if len(s.Types) != total || len(s.States) != total || len(s.Water) != total ||
		len(s.Energy) != total || len(s.Nutrient) != total || len(s.Meta) != total {
		return fmt.Errorf("snapshot arrays do not match %d cells", total)
	}

	w.sched.Reset()
	for i := 0; i < total; i++ {
		w.grid.Type[i] = CellType(s.Types[i])
		w.grid.State[i] = CellState(s.States[i])
	}
	copy(w.grid.Water, s.Water)
	copy(w.grid.Energy, s.Energy)
	copy(w.grid.Nutrient, s.Nutrient)
	copy(w.grid.Meta, s.Meta)

	w.tick = s.Tick
	for i := 0; i < total; i++ {
		if w.grid.Type[i] != CellAir {
			w.sched.Activate(i)
		}
	}
	w.sched.EndTick()
	w.rebuildDisplay()
	return nil
}
