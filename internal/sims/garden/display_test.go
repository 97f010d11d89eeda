package garden

import "testing"

func TestViewModeCycle(t *testing.T) {
	world := bareWorld(8, 8, nil)

	if world.ViewMode() != ViewTypes {
		t.Fatalf("initial view mode = %v, want types", world.ViewMode())
	}
	seen := map[ViewMode]bool{world.ViewMode(): true}
	for i := 1; i < int(viewModeCount); i++ {
		seen[world.CycleViewMode()] = true
	}
	if len(seen) != int(viewModeCount) {
		t.Fatalf("cycle visited %d modes, want %d", len(seen), viewModeCount)
	}
	if world.CycleViewMode() != ViewTypes {
		t.Fatal("cycle must wrap back to the type view")
	}
}

func TestSetViewModeRejectsInvalid(t *testing.T) {
	world := bareWorld(8, 8, nil)

	if world.SetViewMode(ViewMode(99)) {
		t.Fatal("invalid view mode must be rejected")
	}
	if world.ViewMode() != ViewTypes {
		t.Fatal("rejected mode must not change the current view")
	}
	if !world.SetViewMode(ViewMoisture) {
		t.Fatal("moisture is a valid view mode")
	}
}

func TestMoistureViewMirrorsWater(t *testing.T) {
	world := bareWorld(8, 8, nil)
	g := world.Grid()

	world.PlaceWater(2, 3, 123)
	world.SetViewMode(ViewMoisture)
	world.rebuildDisplay()

	i := g.Index(2, 3)
	if world.Cells()[i] != 123 {
		t.Fatalf("moisture view cell = %d, want the raw water amount 123", world.Cells()[i])
	}
}

func TestPaletteSizePerMode(t *testing.T) {
	world := bareWorld(8, 8, nil)
	for mode := ViewTypes; mode < viewModeCount; mode++ {
		world.SetViewMode(mode)
		if got := len(world.Palette()); got != 256 {
			t.Fatalf("%v palette has %d entries, want 256", mode, got)
		}
	}
}

func TestTypeViewEncodesFlowerVariants(t *testing.T) {
	world := bareWorld(8, 8, nil)
	g := world.Grid()

	i := g.Index(4, 4)
	g.Type[i] = CellPlant
	g.State[i] = PlantFlower
	g.Meta[i] = CellMeta{Kind: MetaFlower, Variant: 2}

	world.SetViewMode(ViewTypes)
	world.rebuildDisplay()

	if got := world.Cells()[i]; got != flowerVariantBase+2 {
		t.Fatalf("flower display value = %d, want %d", got, flowerVariantBase+2)
	}

	// A flower without species metadata falls back to the generic encoding.
	g.Meta[i] = CellMeta{}
	world.rebuildDisplay()
	want := uint8(int(CellPlant)*displayStateStride + int(PlantFlower))
	if got := world.Cells()[i]; got != want {
		t.Fatalf("generic flower display value = %d, want %d", got, want)
	}
}
