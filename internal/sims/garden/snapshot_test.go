package garden

import (
	"slices"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 55

	world := NewWithConfig(cfg)
	world.Reset(0)
	for i := 0; i < 25; i++ {
		world.Step()
	}

	snap := world.Snapshot()
	if snap.Version != SnapshotVersion {
		t.Fatalf("snapshot version = %d, want %d", snap.Version, SnapshotVersion)
	}
	if snap.Tick != 25 {
		t.Fatalf("snapshot tick = %d, want 25", snap.Tick)
	}

	restored := NewWithConfig(cfg)
	if err := restored.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if restored.Tick() != world.Tick() {
		t.Fatalf("restored tick = %d, want %d", restored.Tick(), world.Tick())
	}
	if !slices.Equal(restored.Grid().Type, world.Grid().Type) {
		t.Fatal("restored cell types differ")
	}
	if !slices.Equal(restored.Grid().Water, world.Grid().Water) {
		t.Fatal("restored water differs")
	}
	if !slices.Equal(restored.Grid().Energy, world.Grid().Energy) {
		t.Fatal("restored energy differs")
	}
	if !slices.Equal(restored.Grid().Meta, world.Grid().Meta) {
		t.Fatal("restored metadata differs")
	}
	if !slices.Equal(restored.Cells(), world.Cells()) {
		t.Fatal("restored display buffer differs")
	}

	// The restored world must keep stepping without incident.
	restored.Step()
	if restored.Tick() != 26 {
		t.Fatalf("tick after resumed step = %d, want 26", restored.Tick())
	}
}

func TestRestoreRejectsMismatches(t *testing.T) {
	world := New(16, 12)
	world.Reset(1)
	snap := world.Snapshot()

	other := New(20, 12)
	if err := other.Restore(snap); err == nil {
		t.Fatal("dimension mismatch must be rejected")
	}

	if err := world.Restore(nil); err == nil {
		t.Fatal("nil snapshot must be rejected")
	}

	bad := world.Snapshot()
	bad.Version = SnapshotVersion + 1
	if err := world.Restore(bad); err == nil {
		t.Fatal("unknown version must be rejected")
	}

	short := world.Snapshot()
	short.Water = short.Water[:3]
	if err := world.Restore(short); err == nil {
		t.Fatal("truncated arrays must be rejected")
	}
}
