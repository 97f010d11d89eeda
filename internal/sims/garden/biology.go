package garden

// stepBiology runs every organism update for the tick: plants, seeds,
// insects, worms, and decomposition of dead matter. Cells that already moved
// or spawned this tick are skipped by the processed guard.
func (w *World) stepBiology() {
	w.computeGroundLevels()
	for _, i := range w.sched.Active() {
		if w.sched.Processed(i) {
			continue
		}
		switch w.grid.Type[i] {
		case CellPlant:
			w.updatePlant(i)
		case CellSeed:
			w.updateSeed(i)
		case CellInsect:
			w.updateInsect(i)
		case CellWorm:
			w.updateWorm(i)
		case CellDeadMatter:
			w.updateDecay(i)
		}
	}
}

func (w *World) updatePlant(i int) {
	switch w.grid.State[i] {
	case PlantRoot:
		w.updateRoot(i)
	case PlantStem:
		w.updateStem(i)
	case PlantLeaf:
		w.updateLeaf(i)
	case PlantFlower:
		w.updateFlower(i)
	}
	if w.grid.Type[i] == CellPlant {
		w.metabolizePlant(i)
	}
	if w.grid.Type[i] == CellPlant {
		w.touch(i)
	}
}

// pickWeighted selects one adjacent cell of (x, y) by cumulative-subtraction
// sampling over the weights the callback assigns. Zero-weight directions are
// never chosen; it returns None when no direction is viable.
func (w *World) pickWeighted(x, y int, weight func(dx, dy, idx int) float64) int {
	w.candidates = w.candidates[:0]
	w.weights = w.weights[:0]
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			idx := w.grid.Index(x+dx, y+dy)
			if idx == None {
				continue
			}
			wt := weight(dx, dy, idx)
			if wt <= 0 {
				continue
			}
			w.candidates = append(w.candidates, idx)
			w.weights = append(w.weights, wt)
		}
	}
	pick := w.rng.WeightedIndex(w.weights)
	if pick < 0 {
		return None
	}
	return w.candidates[pick]
}

func (w *World) updateRoot(i int) {
	p := w.cfg.Params
	g := w.grid
	x, y := g.Coords(i)

	// Draw water and nutrients from adjacent soil, capped per neighbor.
	gained := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := g.Index(x+dx, y+dy)
			if n == None || g.Type[n] != CellSoil {
				continue
			}
			take := p.RootAbsorbMax
			if int(g.Water[n]) < take {
				take = int(g.Water[n])
			}
			gained += g.TransferWater(n, i, take)
			g.TransferNutrient(n, i, take/3)
			w.sched.Activate(n)
		}
	}
	if gained > 0 {
		g.AddEnergy(i, 1)
	}

	// Push absorbed water up toward the rest of the plant.
	if int(g.Water[i]) > p.PlantWaterNeed*2 {
		for dy := -1; dy <= 0; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := g.Index(x+dx, y+dy)
				if n == None || g.Type[n] != CellPlant {
					continue
				}
				if g.Water[n] >= g.Water[i] {
					continue
				}
				excess := int(g.Water[i]) - p.PlantWaterNeed*2
				if excess > 10 {
					excess = 10
				}
				g.TransferWater(i, n, excess)
				w.sched.Activate(n)
			}
		}
	}

	// Grow into adjacent soil, favoring downward and lateral spread.
	if int(g.Energy[i]) > p.RootGrowthEnergy && w.rng.Chance(p.RootGrowthChance*p.GrowthRate) {
		target := w.pickWeighted(x, y, func(dx, dy, idx int) float64 {
			if g.Type[idx] != CellSoil {
				return 0
			}
			switch {
			case dy > 0:
				return 3
			case dy == 0:
				return 2
			default:
				return 0.5
			}
		})
		if target != None {
			w.growRootInto(i, target)
		}
	}

	// Enough root mass near the surface sprouts a stem into the air above.
	if w.heightAboveGround(i) >= -p.RootSurfaceDepth {
		above := g.Index(x, y-1)
		if above != None && g.Type[above] == CellAir &&
			w.countNearbyRoots(x, y) >= p.RootMassForStem &&
			w.rng.Chance(p.StemSproutChance*p.GrowthRate) {
			w.sproutPlant(i, above, PlantStem, 3)
		}
	}
}

// growRootInto converts a soil cell into a new root, splitting the parent's
// resources at the configured fraction. The parent keeps the complement.
func (w *World) growRootInto(parent, target int) {
	g := w.grid
	p := w.cfg.Params

	soilWater := int(g.Water[target])
	soilNutrient := int(g.Nutrient[target])

	g.Type[target] = CellPlant
	g.State[target] = PlantRoot
	g.Water[target] = 0
	g.Energy[target] = 0
	g.Nutrient[target] = 0

	thickness := w.rootThickness(parent)
	g.Meta[target] = CellMeta{Kind: MetaRoot, Thickness: thickness}

	g.TransferEnergy(parent, target, int(float64(g.Energy[parent])*p.RootSplitFrac))
	g.TransferWater(parent, target, int(float64(g.Water[parent])*p.RootSplitFrac))
	g.TransferNutrient(parent, target, int(float64(g.Nutrient[parent])*p.RootSplitFrac))

	// The displaced soil's moisture and nutrients are swallowed by the root.
	g.AddWater(target, soilWater)
	g.AddNutrient(target, soilNutrient)

	w.sched.MarkProcessed(target)
	w.touch(target)
	w.touch(parent)
}

func (w *World) rootThickness(i int) uint8 {
	m := w.grid.Meta[i]
	if m.Kind == MetaRoot && m.Thickness > 0 {
		return m.Thickness
	}
	return 2
}

func (w *World) countNearbyRoots(x, y int) int {
	count := 0
	for _, n := range w.grid.Neighbors(x, y, 2) {
		if w.grid.Type[n.Index] == CellPlant && w.grid.State[n.Index] == PlantRoot {
			count++
		}
	}
	return count
}

// sproutPlant creates a child plant cell at target, giving it a 1/denom share
// of the parent's resources.
func (w *World) sproutPlant(parent, target int, state CellState, denom int) {
	g := w.grid
	g.Type[target] = CellPlant
	g.State[target] = state
	g.Water[target] = 0
	g.Energy[target] = 0
	g.Nutrient[target] = 0
	g.Meta[target] = CellMeta{}

	g.TransferEnergy(parent, target, int(g.Energy[parent])/denom)
	g.TransferWater(parent, target, int(g.Water[parent])/denom)
	g.TransferNutrient(parent, target, int(g.Nutrient[parent])/denom)

	w.sched.MarkProcessed(target)
	w.touch(target)
	w.touch(parent)
}

func (w *World) updateStem(i int) {
	p := w.cfg.Params
	g := w.grid
	x, y := g.Coords(i)
	height := w.heightAboveGround(i)

	// Near the top of the growth band a stem may become a flower cluster.
	if height >= int(float64(p.StemMaxHeight)*p.FlowerBandFrac) &&
		w.rng.Chance(p.FlowerConvertChance*p.GrowthRate) {
		w.bloom(i)
		return
	}

	// Grow upward or diagonally into air only.
	if height < p.StemMaxHeight && int(g.Energy[i]) > p.StemGrowthEnergy &&
		w.rng.Chance(p.StemGrowthChance*p.GrowthRate) {
		target := w.pickWeighted(x, y, func(dx, dy, idx int) float64 {
			if g.Type[idx] != CellAir {
				return 0
			}
			switch {
			case dy < 0 && dx == 0:
				return 3
			case dy < 0:
				return 1.5
			case dy == 0:
				return 0.3
			default:
				return 0
			}
		})
		if target != None {
			state := PlantStem
			w.sproutPlantSplit(i, target, state)
			return
		}
	}

	// Sprout a leaf to the side, keeping two thirds of each resource.
	if w.rng.Chance(p.LeafSproutChance * p.GrowthRate) {
		target := w.pickWeighted(x, y, func(dx, dy, idx int) float64 {
			if g.Type[idx] != CellAir || dy > 0 {
				return 0
			}
			if dx != 0 && dy == 0 {
				return 2
			}
			return 1
		})
		if target != None {
			w.sproutPlant(i, target, PlantLeaf, 3)
		}
	}
}

// sproutPlantSplit grows a stem continuation, handing the child the larger
// share so the growing tip stays vigorous.
func (w *World) sproutPlantSplit(parent, target int, state CellState) {
	g := w.grid
	g.Type[target] = CellPlant
	g.State[target] = state
	g.Water[target] = 0
	g.Energy[target] = 0
	g.Nutrient[target] = 0
	g.Meta[target] = CellMeta{}

	g.TransferEnergy(parent, target, int(g.Energy[parent])*55/100)
	g.TransferWater(parent, target, int(g.Water[parent])/2)
	g.TransferNutrient(parent, target, int(g.Nutrient[parent])/2)

	w.sched.MarkProcessed(target)
	w.touch(target)
	w.touch(parent)
}

// petalOffsets lists the cluster shape per flower variant, relative to the
// blooming stem.
var petalOffsets = [][][2]int{
	{{0, -1}, {-1, 0}, {1, 0}, {0, 1}},                   // plus
	{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}},                 // cross
	{{0, -1}, {-1, -1}, {1, -1}, {-1, 0}, {1, 0}},        // fan
	{{-1, 0}, {1, 0}, {0, -1}, {-1, -1}, {1, -1}, {0, 1}}, // bloom
}

// bloom converts a stem tip into a flower center and stamps a petal cluster
// around it from the variant's shape template.
func (w *World) bloom(center int) {
	g := w.grid
	p := w.cfg.Params

	variantCount := p.FlowerVariantCount
	if variantCount < 1 {
		variantCount = 1
	}
	if variantCount > len(petalOffsets) {
		variantCount = len(petalOffsets)
	}
	variant := uint8(w.rng.IntN(variantCount))
	colorVar := w.rng.Uint8n(4)

	g.State[center] = PlantFlower
	g.Meta[center] = CellMeta{Kind: MetaFlower, Variant: variant, ColorVar: colorVar}
	w.touch(center)

	x, y := g.Coords(center)
	for _, off := range petalOffsets[variant] {
		n := g.Index(x+off[0], y+off[1])
		if n == None || g.Type[n] != CellAir {
			continue
		}
		g.Type[n] = CellPlant
		g.State[n] = PlantFlower
		g.Water[n] = 0
		g.Energy[n] = 0
		g.Nutrient[n] = 0
		g.Meta[n] = CellMeta{Kind: MetaFlower, Variant: variant, ColorVar: colorVar}
		g.TransferEnergy(center, n, int(g.Energy[center])/4)
		w.sched.MarkProcessed(n)
		w.touch(n)
	}
}

func (w *World) updateLeaf(i int) {
	p := w.cfg.Params
	g := w.grid

	gain := p.LeafEnergyGain
	if int(g.Water[i]) < p.LeafAdequateWater {
		gain = 1
	}
	if int(g.Energy[i]) < p.LeafEnergyCap {
		g.AddEnergy(i, gain)
		if int(g.Energy[i]) > p.LeafEnergyCap {
			g.Energy[i] = clampResource(p.LeafEnergyCap)
		}
	}

	// Push surplus energy to materially poorer plant neighbors.
	if w.rng.Chance(p.LeafShareChance) {
		x, y := g.Coords(i)
		for _, n := range g.Neighbors(x, y, 1) {
			if g.Type[n.Index] != CellPlant {
				continue
			}
			diff := int(g.Energy[i]) - int(g.Energy[n.Index])
			if diff <= p.LeafShareThreshold {
				continue
			}
			amt := diff / 2
			if amt > p.LeafShareAmount {
				amt = p.LeafShareAmount
			}
			g.TransferEnergy(i, n.Index, amt)
			w.sched.Activate(n.Index)
			break
		}
	}
}

func (w *World) updateFlower(i int) {
	p := w.cfg.Params
	g := w.grid
	x, y := g.Coords(i)

	center := false
	for _, n := range g.Neighbors(x, y, 1) {
		if g.Type[n.Index] == CellPlant && g.State[n.Index] == PlantStem {
			center = true
			break
		}
	}

	if !center {
		// Petal senescence: non-center petals slowly bleed energy.
		if w.rng.Chance(p.PetalFadeChance) {
			g.AddEnergy(i, -p.PetalFadeAmount)
		}
		return
	}

	if int(g.Energy[i]) <= p.FlowerSeedEnergy {
		return
	}

	chance := p.FlowerSeedChance * w.speciesSeedFactor(i)
	if !w.rng.Chance(chance) {
		return
	}

	emitted := 0
	limit := 1 + w.rng.IntN(2)
	for _, n := range g.Neighbors(x, y, 1) {
		if emitted >= limit {
			break
		}
		if g.Type[n.Index] != CellAir {
			continue
		}
		if int(g.Energy[i]) <= p.FlowerSeedCost {
			break
		}
		g.Type[n.Index] = CellSeed
		g.State[n.Index] = StateDefault
		g.Water[n.Index] = 0
		g.Energy[n.Index] = 0
		g.Nutrient[n.Index] = 0
		g.Meta[n.Index] = CellMeta{}
		g.TransferEnergy(i, n.Index, p.FlowerSeedCost)
		g.TransferWater(i, n.Index, 3)
		w.sched.MarkProcessed(n.Index)
		w.touch(n.Index)
		emitted++
	}
}

// speciesSeedFactor scales seeding probability by the flower variant, so the
// metadata-keyed species differ in fertility as well as shape.
func (w *World) speciesSeedFactor(i int) float64 {
	m := w.grid.Meta[i]
	if m.Kind != MetaFlower {
		return 1.0
	}
	return 1.0 + 0.25*float64(m.Variant)
}

// metabolizePlant applies the shared per-tick energy drain, the per-state
// drought penalty, and the death-or-survive roll at zero energy.
func (w *World) metabolizePlant(i int) {
	p := w.cfg.Params
	g := w.grid

	drain := p.PlantMetabolism
	if int(g.Water[i]) < p.PlantWaterNeed {
		switch g.State[i] {
		case PlantRoot:
			drain += p.DroughtPenaltyRoot
		case PlantStem:
			drain += p.DroughtPenaltyStem
		case PlantLeaf:
			drain += p.DroughtPenaltyLeaf
		case PlantFlower:
			drain += p.DroughtPenaltyFlower
		}
	}
	g.AddEnergy(i, -drain)
	if g.Water[i] > 0 {
		g.Water[i]--
	}

	if g.Energy[i] == 0 {
		if w.rng.Chance(p.PlantSurviveChance) {
			g.Energy[i] = 1
			return
		}
		w.toDeadMatter(i)
	}
}

// salvageFor maps a plant state to the nutrient grant its remains carry.
func (w *World) salvageFor(state CellState) int {
	p := w.cfg.Params
	switch state {
	case PlantRoot:
		return p.SalvageRoot
	case PlantStem:
		return p.SalvageStem
	case PlantLeaf:
		return p.SalvageLeaf
	case PlantFlower:
		return p.SalvageFlower
	default:
		return 0
	}
}

// toDeadMatter converts a cell into dead matter, granting the salvage
// nutrients for its prior state. Water and remaining energy are kept. The
// cell stays active so decomposition and gravity pick it up.
func (w *World) toDeadMatter(i int) {
	g := w.grid
	if g.Type[i] == CellPlant {
		g.AddNutrient(i, w.salvageFor(g.State[i]))
	}
	g.Type[i] = CellDeadMatter
	g.State[i] = StateDefault
	g.Meta[i] = CellMeta{Kind: MetaDecay}
	w.touch(i)
}
