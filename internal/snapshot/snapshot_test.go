package snapshot

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"pixelgarden/internal/sims/garden"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	world := garden.New(24, 16)
	world.Reset(7)
	for i := 0; i < 10; i++ {
		world.Step()
	}
	state := world.Snapshot()

	path := filepath.Join(t.TempDir(), "run", "world.snap")
	if err := Save(path, state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Width != state.Width || loaded.Height != state.Height {
		t.Fatalf("loaded %dx%d, want %dx%d", loaded.Width, loaded.Height, state.Width, state.Height)
	}
	if loaded.Tick != state.Tick {
		t.Fatalf("loaded tick %d, want %d", loaded.Tick, state.Tick)
	}
	if !slices.Equal(loaded.Types, state.Types) {
		t.Fatal("cell types did not survive the round trip")
	}
	if !slices.Equal(loaded.Water, state.Water) {
		t.Fatal("water did not survive the round trip")
	}
	if !slices.Equal(loaded.Meta, state.Meta) {
		t.Fatal("metadata did not survive the round trip")
	}

	// A restored world accepts the loaded state.
	resumed := garden.New(24, 16)
	if err := resumed.Restore(loaded); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if resumed.Tick() != 10 {
		t.Fatalf("resumed tick = %d, want 10", resumed.Tick())
	}
}

func TestSaveRejectsNil(t *testing.T) {
	if err := Save(filepath.Join(t.TempDir(), "x.snap"), nil); err == nil {
		t.Fatal("nil snapshot must error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.snap")); err == nil {
		t.Fatal("missing file must error")
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.snap")
	if err := os.WriteFile(path, []byte("not a snapshot"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("corrupt file must error")
	}
}
