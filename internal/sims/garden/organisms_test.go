package garden

import "testing"

func TestSeedGerminatesOnWetSoil(t *testing.T) {
	world := bareWorld(16, 16, func(p *Params) {
		p.SeedGerminationChance = 1.0
		p.SeedBurialFactor = 0
	})
	g := world.Grid()

	for x := 7; x <= 9; x++ {
		world.PlaceSoil(x, 10, 40, 10)
	}
	world.PlaceSeed(8, 9, 100)
	promote(world)

	world.Step()

	i := g.Index(8, 9)
	if g.Type[i] != CellPlant || g.State[i] != PlantRoot {
		t.Fatalf("seed on wet soil should be a root, got type %v state %v", g.Type[i], g.State[i])
	}
	if g.Meta[i].Kind != MetaRoot {
		t.Fatal("germinated root must carry root metadata")
	}
	if g.Energy[i] <= 100 {
		t.Fatalf("germination must grant sprout energy, got %d", g.Energy[i])
	}
	if g.Water[i] == 0 {
		t.Fatal("germination must pull starter water from the soil")
	}
}

func TestSeedStaysDormantOnDrySoil(t *testing.T) {
	world := bareWorld(16, 16, func(p *Params) {
		p.SeedGerminationChance = 1.0
		p.SeedEnergyLossChance = 0
	})
	g := world.Grid()

	for x := 7; x <= 9; x++ {
		world.PlaceSoil(x, 10, 0, 10)
	}
	world.PlaceSeed(8, 9, 100)
	promote(world)

	world.Step()

	i := g.Index(8, 9)
	if g.Type[i] != CellSeed {
		t.Fatalf("seed on dry soil must stay a seed, got %v", g.Type[i])
	}
	if g.Energy[i] != 100 {
		t.Fatalf("dormant seed energy = %d, want unchanged 100", g.Energy[i])
	}
}

func TestSeedStarvesToDeadMatter(t *testing.T) {
	world := bareWorld(16, 16, func(p *Params) {
		p.SeedEnergyLossChance = 1.0
	})
	g := world.Grid()

	for x := 7; x <= 9; x++ {
		world.PlaceSoil(x, 10, 0, 10)
	}
	world.PlaceSeed(8, 9, 1)
	promote(world)

	world.Step()

	i := g.Index(8, 9)
	if g.Type[i] != CellDeadMatter {
		t.Fatalf("drained seed must die to dead matter, got %v", g.Type[i])
	}
	if g.Meta[i].Kind != MetaDecay {
		t.Fatal("dead matter must carry decay metadata")
	}
}

func TestInsectStarvesToDeadMatter(t *testing.T) {
	world := bareWorld(12, 12, nil)
	g := world.Grid()

	for x := 4; x <= 6; x++ {
		world.PlaceSoil(x, 6, 0, 0)
	}
	world.PlaceInsect(5, 5, 1)
	promote(world)

	world.Step()

	i := g.Index(5, 5)
	if g.Type[i] != CellDeadMatter {
		t.Fatalf("starved insect must die to dead matter, got %v", g.Type[i])
	}
	if g.Meta[i].Kind != MetaDecay {
		t.Fatal("insect remains must carry decay metadata")
	}
}

func TestInsectEatsAdjacentLeaf(t *testing.T) {
	world := bareWorld(12, 12, func(p *Params) {
		p.InsectEatChance = 1.0
		p.InsectMoveChance = 0
		p.InsectFallChance = 0
		p.PlantSurviveChance = 0
	})
	g := world.Grid()

	world.PlaceInsect(5, 5, 100)
	leaf := g.Index(6, 5)
	g.Type[leaf] = CellPlant
	g.State[leaf] = PlantLeaf
	g.Energy[leaf] = 50
	g.Water[leaf] = 20
	world.touch(leaf)
	promote(world)

	world.Step()

	if g.Type[leaf] == CellPlant {
		t.Fatal("adjacent leaf should be consumed")
	}
	insect := g.Index(5, 5)
	if g.Type[insect] != CellInsect {
		t.Fatalf("feeding insect must stay put, got %v", g.Type[insect])
	}
	// 100 - 1 metabolism + 25 gain.
	if g.Energy[insect] != 124 {
		t.Fatalf("insect energy = %d, want 124", g.Energy[insect])
	}
	if !g.Meta[insect].OnPlant || g.Meta[insect].Starvation != 0 {
		t.Fatal("a meal must reset the starvation counter and set the feeding flag")
	}
}

func TestWormDiesIntoFertileSoil(t *testing.T) {
	world := bareWorld(12, 12, nil)
	g := world.Grid()

	for x := 4; x <= 6; x++ {
		world.PlaceSoil(x, 6, 0, 0)
	}
	world.PlaceWorm(5, 5, 1)
	promote(world)

	world.Step()

	i := g.Index(5, 5)
	if g.Type[i] != CellSoil || g.State[i] != SoilFertile {
		t.Fatalf("dead worm must leave fertile soil, got type %v state %v", g.Type[i], g.State[i])
	}
	if g.Nutrient[i] != 30 {
		t.Fatalf("worm death nutrient = %d, want 30", g.Nutrient[i])
	}
}

func TestWormEatsDeadMatterIntoFertileSoil(t *testing.T) {
	world := bareWorld(12, 12, func(p *Params) {
		p.WormEatChance = 1.0
		p.WormMoveChance = 0
		p.DecayChance = 0
		p.DecayInPlaceChance = 0
	})
	g := world.Grid()

	for x := 4; x <= 8; x++ {
		world.PlaceSoil(x, 8, 0, 0)
	}
	world.PlaceSeed(5, 7, 10)
	world.Kill(5, 7)
	world.PlaceWorm(6, 7, 100)
	promote(world)

	world.Step()

	dead := g.Index(5, 7)
	if g.Type[dead] != CellSoil || g.State[dead] != SoilFertile {
		t.Fatalf("eaten dead matter must become fertile soil, got type %v state %v", g.Type[dead], g.State[dead])
	}
	if g.Nutrient[dead] != 20 {
		t.Fatalf("nutrient grant = %d, want 20", g.Nutrient[dead])
	}
	worm := g.Index(6, 7)
	if g.Type[worm] != CellWorm {
		t.Fatalf("feeding worm must stay put, got %v", g.Type[worm])
	}
	// 100 - 1 metabolism + 30 gain.
	if g.Energy[worm] != 129 {
		t.Fatalf("worm energy = %d, want 129", g.Energy[worm])
	}
}

func TestWormTunnelLeavesFertileSoil(t *testing.T) {
	world := bareWorld(12, 12, func(p *Params) {
		p.WormEatChance = 0
		p.WormMoveChance = 1.0
	})
	g := world.Grid()

	// A worm fully enclosed in soil always finds a burrow target.
	for y := 4; y <= 8; y++ {
		for x := 3; x <= 7; x++ {
			world.PlaceSoil(x, y, 10, 5)
		}
	}
	start := g.Index(5, 6)
	g.Clear(start)
	world.PlaceWorm(5, 6, 100)
	promote(world)

	world.Step()

	if g.Type[start] != CellSoil || g.State[start] != SoilFertile {
		t.Fatalf("vacated position must be fertile soil, got type %v state %v", g.Type[start], g.State[start])
	}
	worms := 0
	for _, ct := range g.Type {
		if ct == CellWorm {
			worms++
		}
	}
	if worms != 1 {
		t.Fatalf("worm count = %d after tunnelling, want 1", worms)
	}
}

func TestDeadMatterSinksNutrientsIntoSoil(t *testing.T) {
	world := bareWorld(12, 12, func(p *Params) {
		p.DecayChance = 1.0
	})
	g := world.Grid()

	world.PlaceSoil(5, 8, 10, 5)
	world.PlaceSeed(5, 7, 10)
	world.Kill(5, 7)
	dead := g.Index(5, 7)
	g.Water[dead] = 30
	g.Nutrient[dead] = 12
	promote(world)

	world.Step()

	if g.Type[dead] != CellAir {
		t.Fatalf("decayed matter must clear to air, got %v", g.Type[dead])
	}
	below := g.Index(5, 8)
	if g.Nutrient[below] != 17 {
		t.Fatalf("soil nutrient = %d, want 17", g.Nutrient[below])
	}
	if g.Water[below] != 40 {
		t.Fatalf("soil water = %d, want 40", g.Water[below])
	}
}

func TestInsectReproducesIntoAdjacentAir(t *testing.T) {
	world := bareWorld(12, 12, func(p *Params) {
		p.InsectReproduceChance = 1.0
		p.InsectEatChance = 0
		p.InsectMoveChance = 0
	})
	g := world.Grid()

	for x := 4; x <= 6; x++ {
		world.PlaceSoil(x, 6, 0, 0)
	}
	world.PlaceInsect(5, 5, 200)
	promote(world)

	world.Step()

	larvae := 0
	var larva int
	for i, ct := range g.Type {
		if ct == CellInsect && g.State[i] == InsectLarva {
			larvae++
			larva = i
		}
	}
	if larvae != 1 {
		t.Fatalf("larva count = %d, want 1", larvae)
	}
	if g.Meta[larva].Kind != MetaInsect {
		t.Fatal("larva must carry insect metadata")
	}
	if g.Energy[larva] != 60 {
		t.Fatalf("larva energy = %d, want the 60-unit split", g.Energy[larva])
	}
	parent := g.Index(5, 5)
	// 200 - 1 metabolism - 60 split.
	if g.Type[parent] != CellInsect || g.Energy[parent] != 139 {
		t.Fatalf("parent energy = %d, want 139", g.Energy[parent])
	}
}
