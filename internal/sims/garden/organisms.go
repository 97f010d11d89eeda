package garden

// updateSeed handles germination and slow starvation for a resting seed.
func (w *World) updateSeed(i int) {
	p := w.cfg.Params
	g := w.grid
	x, y := g.Coords(i)

	soilWater := 0
	soilCount := 0
	for _, n := range g.Neighbors(x, y, 1) {
		if g.Type[n.Index] == CellSoil {
			soilWater += int(g.Water[n.Index])
			soilCount++
		}
	}

	below := g.Index(x, y+1)
	resting := below != None && g.Type[below] == CellSoil
	if resting || soilCount >= 4 {
		avg := 0
		if soilCount > 0 {
			avg = soilWater / soilCount
		}
		// Deeper burial suppresses germination: a surface seed touches soil
		// on one side only, an interred one on most of them.
		depth := soilCount
		if resting {
			depth--
		}
		chance := p.SeedGerminationChance * p.GrowthRate / (1 + float64(depth)*p.SeedBurialFactor)
		if avg > p.SeedGerminationWater && w.rng.Chance(chance) {
			w.germinate(i)
			return
		}
	}

	// Idle seeds bleed energy; burial speeds up the loss.
	lossChance := p.SeedEnergyLossChance * (1 + float64(soilCount)*0.1)
	if w.rng.Chance(lossChance) {
		g.AddEnergy(i, -1)
	}
	if g.Energy[i] == 0 {
		w.toDeadMatter(i)
		return
	}
	w.touch(i)
}

// germinate turns a seed into a root, pulling starter water from the soil
// beneath it and granting the sprout energy bonus.
func (w *World) germinate(i int) {
	p := w.cfg.Params
	g := w.grid
	x, y := g.Coords(i)

	g.Type[i] = CellPlant
	g.State[i] = PlantRoot
	g.Meta[i] = CellMeta{Kind: MetaRoot, Thickness: 2}
	g.AddEnergy(i, p.SeedSproutEnergy)

	for _, n := range g.Neighbors(x, y, 1) {
		if g.Type[n.Index] != CellSoil {
			continue
		}
		g.TransferWater(n.Index, i, p.RootAbsorbMax)
		w.sched.Activate(n.Index)
		if g.Water[i] > 0 {
			break
		}
	}
	w.touch(i)
}

// updateInsect drives one insect tick: metabolism, starvation accounting,
// feeding, foraging movement, and reproduction. Every rate is scaled by the
// genetics collaborator when one is installed.
func (w *World) updateInsect(i int) {
	p := w.cfg.Params
	g := w.grid

	if g.Energy[i] == 0 {
		w.toDeadMatter(i)
		return
	}

	if g.Meta[i].Kind != MetaInsect {
		g.Meta[i] = CellMeta{Kind: MetaInsect}
	}
	meta := &g.Meta[i]
	if meta.Age < 255 {
		meta.Age++
	}
	if g.State[i] == InsectLarva &&
		int(meta.Age) >= int(float64(p.InsectMatureAge)*w.trait(i, TraitLifespan)) {
		g.State[i] = InsectAdult
	}
	adult := g.State[i] != InsectLarva

	drain := int(float64(p.InsectMetabolism) * w.trait(i, TraitMetabolism))
	if drain < 1 {
		drain = 1
	}
	g.AddEnergy(i, -drain)
	if g.Energy[i] == 0 {
		w.toDeadMatter(i)
		return
	}

	if int(g.Energy[i]) < p.InsectLowEnergy {
		if meta.Starvation < 253 {
			meta.Starvation += 2
		}
	} else if meta.Starvation < 254 {
		meta.Starvation++
	}
	limit := float64(p.InsectStarvationLimit) * w.trait(i, TraitLifespan)
	if float64(meta.Starvation) >= limit {
		w.toDeadMatter(i)
		return
	}

	fed := w.insectFeed(i, adult)
	if fed {
		meta = &g.Meta[i]
		meta.Starvation = 0
		meta.OnPlant = true
	} else {
		g.Meta[i].OnPlant = false
	}

	if adult && !fed && int(g.Energy[i]) > p.InsectReproduceEnergy &&
		w.rng.Chance(p.InsectReproduceChance*w.trait(i, TraitReproduction)) {
		w.insectReproduce(i)
	}

	if !fed {
		moveChance := p.InsectMoveChance * w.trait(i, TraitSpeed)
		if !adult {
			moveChance *= 0.5
		}
		if w.rng.Chance(moveChance) {
			w.insectMove(i)
			return
		}
	}
	w.touch(i)
}

// insectFeed tries to eat an adjacent plant cell. How badly the meal damages
// the plant depends on the part being eaten.
func (w *World) insectFeed(i int, adult bool) bool {
	p := w.cfg.Params
	g := w.grid
	x, y := g.Coords(i)

	if !w.rng.Chance(p.InsectEatChance * w.trait(i, TraitFeeding)) {
		return false
	}

	for _, n := range g.Neighbors(x, y, 1) {
		if g.Type[n.Index] != CellPlant {
			continue
		}
		gain := int(float64(p.InsectEatGain) * w.trait(i, TraitFeeding))
		if !adult {
			gain /= 2
		}
		switch g.State[n.Index] {
		case PlantLeaf, PlantFlower:
			// Soft tissue is consumed whole.
			g.AddEnergy(i, gain)
			g.Clear(n.Index)
			w.touch(n.Index)
		case PlantStem:
			strength := w.trait(i, TraitStrength)
			g.AddEnergy(i, gain/2)
			g.AddEnergy(n.Index, -int(30*strength))
			if g.Energy[n.Index] == 0 {
				w.toDeadMatter(n.Index)
			}
			w.sched.Activate(n.Index)
		case PlantRoot:
			g.AddEnergy(i, gain/3)
			g.AddEnergy(n.Index, -15)
			if g.Energy[n.Index] == 0 {
				w.toDeadMatter(n.Index)
			}
			w.sched.Activate(n.Index)
		default:
			continue
		}
		return true
	}
	return false
}

// insectMove walks the insect into an adjacent air cell. When plants are in
// sensing range the move is weighted toward air near them; otherwise it is a
// uniform wander.
func (w *World) insectMove(i int) {
	g := w.grid
	x, y := g.Coords(i)

	plantX, plantY, foraging := w.nearestPlant(x, y, w.cfg.Params.InsectForageRadius)

	target := w.pickWeighted(x, y, func(dx, dy, idx int) float64 {
		if g.Type[idx] != CellAir {
			return 0
		}
		if !foraging {
			return 1
		}
		nx, ny := x+dx, y+dy
		dist := abs(nx-plantX) + abs(ny-plantY)
		return 1 + 4.0/float64(1+dist)
	})
	if target == None {
		w.touch(i)
		return
	}
	g.Swap(i, target)
	w.sched.MarkProcessed(target)
	w.touch(i)
	w.touch(target)
}

func (w *World) nearestPlant(x, y, radius int) (int, int, bool) {
	if radius < 1 {
		return 0, 0, false
	}
	bestDist := radius*2 + 1
	bestX, bestY := 0, 0
	found := false
	for _, n := range w.grid.Neighbors(x, y, radius) {
		if w.grid.Type[n.Index] != CellPlant {
			continue
		}
		d := abs(n.X-x) + abs(n.Y-y)
		if d < bestDist {
			bestDist = d
			bestX, bestY = n.X, n.Y
			found = true
		}
	}
	return bestX, bestY, found
}

// insectReproduce spawns a larva into adjacent air, transferring the fixed
// energy cost from the parent.
func (w *World) insectReproduce(i int) {
	p := w.cfg.Params
	g := w.grid
	x, y := g.Coords(i)

	for _, n := range g.Neighbors(x, y, 1) {
		if g.Type[n.Index] != CellAir {
			continue
		}
		g.Type[n.Index] = CellInsect
		g.State[n.Index] = InsectLarva
		g.Water[n.Index] = 0
		g.Energy[n.Index] = 0
		g.Nutrient[n.Index] = 0
		g.Meta[n.Index] = CellMeta{Kind: MetaInsect}
		g.TransferEnergy(i, n.Index, p.InsectReproduceCost)
		w.sched.MarkProcessed(n.Index)
		w.touch(n.Index)
		return
	}
}

// updateWorm drives one worm tick: it eats adjacent dead matter into fertile
// soil, tunnels through the ground leaving fertile soil behind, and dies
// into fertile soil itself.
func (w *World) updateWorm(i int) {
	p := w.cfg.Params
	g := w.grid

	g.AddEnergy(i, -p.WormMetabolism)
	if g.Energy[i] == 0 {
		g.Type[i] = CellSoil
		g.State[i] = SoilFertile
		g.Nutrient[i] = clampResource(p.WormDeathNutrient)
		g.Meta[i] = CellMeta{}
		w.touch(i)
		return
	}

	x, y := g.Coords(i)

	// Dead matter first: it is converted to fertile soil with a nutrient
	// grant and feeds the worm.
	if w.rng.Chance(p.WormEatChance) {
		for _, n := range g.Neighbors(x, y, 1) {
			if g.Type[n.Index] != CellDeadMatter {
				continue
			}
			g.Type[n.Index] = CellSoil
			g.State[n.Index] = SoilFertile
			g.AddNutrient(n.Index, p.WormNutrientGrant)
			g.Meta[n.Index] = CellMeta{}
			g.AddEnergy(i, p.WormEatGain)
			w.touch(n.Index)
			w.touch(i)
			return
		}
	}

	if !w.rng.Chance(p.WormMoveChance) {
		w.touch(i)
		return
	}

	target := w.pickWeighted(x, y, func(dx, dy, idx int) float64 {
		switch g.Type[idx] {
		case CellDeadMatter:
			return 6
		case CellSoil:
			if g.State[idx] == SoilWet {
				return 5
			}
			return 3
		case CellAir:
			return 0.5
		default:
			return 0
		}
	})
	if target == None {
		w.touch(i)
		return
	}

	// The worm displaces whatever it burrows into; the old position becomes
	// fertile soil carrying the displaced cell's moisture.
	displacedWater := g.Water[target]
	displacedNutrient := g.Nutrient[target]

	g.Type[target] = CellWorm
	g.State[target] = g.State[i]
	g.Water[target] = g.Water[i]
	g.Energy[target] = g.Energy[i]
	g.Nutrient[target] = g.Nutrient[i]
	g.Meta[target] = g.Meta[i]

	g.Type[i] = CellSoil
	g.State[i] = SoilFertile
	g.Water[i] = displacedWater
	g.Energy[i] = 0
	g.Nutrient[i] = clampResource(int(displacedNutrient) + 3)
	g.Meta[i] = CellMeta{}

	w.sched.MarkProcessed(target)
	w.touch(i)
	w.touch(target)
}

// updateDecay decomposes dead matter: resting on soil or water it tends to
// sink its nutrients downward and vanish; otherwise it may turn into fertile
// soil in place, more readily next to water.
func (w *World) updateDecay(i int) {
	p := w.cfg.Params
	g := w.grid
	x, y := g.Coords(i)

	if g.Meta[i].Kind != MetaDecay {
		g.Meta[i] = CellMeta{Kind: MetaDecay}
	}
	if g.Meta[i].Progress < 255 {
		g.Meta[i].Progress++
	}

	below := g.Index(x, y+1)
	if below != None && (g.Type[below] == CellSoil || g.Type[below] == CellWater) {
		if w.rng.Chance(p.DecayChance) {
			g.TransferNutrient(i, below, int(g.Nutrient[i]))
			g.TransferWater(i, below, int(g.Water[i]))
			g.Clear(i)
			w.touch(below)
			w.touch(i)
			return
		}
	}

	inPlace := p.DecayInPlaceChance
	for _, n := range g.Neighbors(x, y, 1) {
		if g.Type[n.Index] == CellWater {
			inPlace += p.DecayNearWaterBonus
			break
		}
	}
	if w.rng.Chance(inPlace) {
		g.Type[i] = CellSoil
		g.State[i] = SoilFertile
		g.AddNutrient(i, 5)
		g.Meta[i] = CellMeta{}
	}
	w.touch(i)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
