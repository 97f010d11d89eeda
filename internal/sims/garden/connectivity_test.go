package garden

import "testing"

// freezeGrowth zeroes every growth and conversion probability so staged plant
// structures keep their shape across a tick.
func freezeGrowth(p *Params) {
	p.RootGrowthChance = 0
	p.StemSproutChance = 0
	p.StemGrowthChance = 0
	p.LeafSproutChance = 0
	p.FlowerConvertChance = 0
	p.FlowerSeedChance = 0
	p.LeafShareChance = 0
	p.PlantSurviveChance = 0
}

func plantAt(w *World, x, y int, state CellState, energy, water uint8) int {
	g := w.Grid()
	i := g.Index(x, y)
	g.Type[i] = CellPlant
	g.State[i] = state
	g.Energy[i] = energy
	g.Water[i] = water
	if state == PlantRoot {
		g.Meta[i] = CellMeta{Kind: MetaRoot, Thickness: 2}
	}
	w.touch(i)
	return i
}

func countTypes(g *Grid) map[CellType]int {
	counts := make(map[CellType]int)
	for _, ct := range g.Type {
		counts[ct]++
	}
	return counts
}

func TestOrphanPlantsDetachSameTick(t *testing.T) {
	world := bareWorld(12, 12, freezeGrowth)
	g := world.Grid()

	for x := 2; x <= 9; x++ {
		world.PlaceSoil(x, 9, 30, 10)
	}
	root := plantAt(world, 5, 8, PlantRoot, 100, 20)

	// Two stems floating with no path to the root.
	plantAt(world, 5, 3, PlantStem, 80, 20)
	plantAt(world, 5, 4, PlantStem, 80, 20)
	promote(world)

	world.Step()

	counts := countTypes(g)
	if counts[CellPlant] != 1 {
		t.Fatalf("plant count = %d after detachment, want 1", counts[CellPlant])
	}
	if g.Type[root] != CellPlant || g.State[root] != PlantRoot {
		t.Fatal("the grounded root must survive")
	}
	if counts[CellDeadMatter] != 2 {
		t.Fatalf("dead matter count = %d, want the 2 detached stems", counts[CellDeadMatter])
	}
}

func TestAttachedChainSurvives(t *testing.T) {
	world := bareWorld(12, 12, freezeGrowth)
	g := world.Grid()

	for x := 2; x <= 9; x++ {
		world.PlaceSoil(x, 9, 30, 10)
	}
	root := plantAt(world, 5, 8, PlantRoot, 100, 20)
	stem1 := plantAt(world, 5, 7, PlantStem, 80, 20)
	stem2 := plantAt(world, 5, 6, PlantStem, 80, 20)
	leaf := plantAt(world, 4, 6, PlantLeaf, 50, 20)
	promote(world)

	world.Step()

	for _, i := range []int{root, stem1, stem2, leaf} {
		if g.Type[i] != CellPlant {
			t.Fatalf("connected plant cell %d lost its type, got %v", i, g.Type[i])
		}
	}
}

func TestDetachmentCascadesThroughBranch(t *testing.T) {
	world := bareWorld(16, 16, freezeGrowth)
	g := world.Grid()

	for x := 2; x <= 13; x++ {
		world.PlaceSoil(x, 12, 30, 10)
	}
	// A floating L-shaped branch: every cell is transitively reachable from
	// the detachment point, so the whole branch must fall together.
	branch := []int{
		plantAt(world, 7, 4, PlantStem, 80, 20),
		plantAt(world, 7, 5, PlantStem, 80, 20),
		plantAt(world, 8, 5, PlantLeaf, 50, 20),
		plantAt(world, 8, 6, PlantStem, 80, 20),
	}
	promote(world)

	world.Step()

	for _, i := range branch {
		if g.Type[i] == CellPlant {
			t.Fatalf("branch cell %d survived detachment", i)
		}
	}
	if got := countTypes(g)[CellDeadMatter]; got != len(branch) {
		t.Fatalf("dead matter count = %d, want %d", got, len(branch))
	}
}

func TestDetachmentGrantsSalvageNutrients(t *testing.T) {
	world := bareWorld(12, 12, freezeGrowth)
	g := world.Grid()

	for x := 2; x <= 9; x++ {
		world.PlaceSoil(x, 10, 30, 10)
	}
	// An isolated floating leaf over open air: it detaches and falls at most
	// one row in the same tick, carrying the leaf salvage grant.
	leaf := plantAt(world, 5, 3, PlantLeaf, 50, 20)
	promote(world)

	world.Step()

	x, y := g.Coords(leaf)
	fallen := g.Index(x, y+1)
	var got int = None
	for _, i := range []int{leaf, fallen} {
		if g.Type[i] == CellDeadMatter {
			got = i
			break
		}
	}
	if got == None {
		t.Fatal("detached leaf must be dead matter at or just below its position")
	}
	if g.Nutrient[got] != 6 {
		t.Fatalf("salvage nutrient = %d, want 6 for a leaf", g.Nutrient[got])
	}
}

func TestNoOrphanPlantAfterAnyTick(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 36
	cfg.Seed = 31

	world := NewWithConfig(cfg)
	world.Reset(0)

	// Run the tick phases by hand so the invariant can be checked at the
	// analyzer's postcondition: every surviving plant cell carries the
	// connected mark before physics runs.
	for tick := 0; tick < 120; tick++ {
		world.Sunlight(0)
		world.Rain(0.2, 100)

		world.tick++
		world.sched.BeginTick()
		world.stepBiology()
		world.analyzeConnectivity()

		for i, ct := range world.Grid().Type {
			if ct == CellPlant && !world.conn.connected[i] {
				t.Fatalf("tick %d: plant cell %d left orphaned after analysis", tick, i)
			}
		}

		world.stepPhysics()
		world.sched.EndTick()
		world.rebuildDisplay()
	}
}
