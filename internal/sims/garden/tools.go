package garden

// Tool primitives. The input layer writes through these; they use the same
// mutation rules as the engines and always activate the touched index so the
// next tick processes it.

// PlaceWater converts the cell at (x, y) to water with the given amount.
// Existing water tops up instead. Reports false out of bounds.
func (w *World) PlaceWater(x, y int, amount uint8) bool {
	i := w.grid.Index(x, y)
	if i == None {
		return false
	}
	if w.grid.Type[i] == CellWater {
		w.grid.AddWater(i, int(amount))
	} else {
		w.grid.Clear(i)
		w.grid.Type[i] = CellWater
		w.grid.Water[i] = amount
	}
	w.touch(i)
	return true
}

// PlaceSoil converts the cell at (x, y) to soil with starting moisture and
// nutrients.
func (w *World) PlaceSoil(x, y int, water, nutrient uint8) bool {
	i := w.grid.Index(x, y)
	if i == None {
		return false
	}
	w.grid.Clear(i)
	w.grid.Type[i] = CellSoil
	w.grid.Water[i] = water
	w.grid.Nutrient[i] = nutrient
	w.touch(i)
	return true
}

// PlaceSeed drops a seed with the given starting energy.
func (w *World) PlaceSeed(x, y int, energy uint8) bool {
	i := w.grid.Index(x, y)
	if i == None {
		return false
	}
	w.grid.Clear(i)
	w.grid.Type[i] = CellSeed
	w.grid.Energy[i] = energy
	w.touch(i)
	return true
}

// PlaceInsect spawns an adult insect with the given starting energy.
func (w *World) PlaceInsect(x, y int, energy uint8) bool {
	i := w.grid.Index(x, y)
	if i == None {
		return false
	}
	w.grid.Clear(i)
	w.grid.Type[i] = CellInsect
	w.grid.State[i] = InsectAdult
	w.grid.Energy[i] = energy
	w.grid.Meta[i] = CellMeta{Kind: MetaInsect}
	w.touch(i)
	return true
}

// PlaceWorm spawns a worm with the given starting energy.
func (w *World) PlaceWorm(x, y int, energy uint8) bool {
	i := w.grid.Index(x, y)
	if i == None {
		return false
	}
	w.grid.Clear(i)
	w.grid.Type[i] = CellWorm
	w.grid.Energy[i] = energy
	w.touch(i)
	return true
}

// Kill converts the cell at (x, y) to dead matter, with the usual salvage
// rules when it was a plant.
func (w *World) Kill(x, y int) bool {
	i := w.grid.Index(x, y)
	if i == None || w.grid.Type[i] == CellAir {
		return false
	}
	w.toDeadMatter(i)
	return true
}

// Dig clears the cell at (x, y) back to air.
func (w *World) Dig(x, y int) bool {
	i := w.grid.Index(x, y)
	if i == None {
		return false
	}
	w.grid.Clear(i)
	w.touch(i)
	return true
}

// Environment hooks. The weather collaborator drives these between ticks.

// Sunlight injects energy column by column: the first plant cell the light
// reaches gets the full amount (leaves photosynthesize best), anything
// deeper is shaded. Opaque material stops the ray.
func (w *World) Sunlight(amount int) {
	if amount <= 0 {
		amount = w.cfg.Params.SunlightEnergy
	}
	g := w.grid
	for x := 0; x < w.w; x++ {
		remaining := amount
		for y := 0; y < w.h && remaining > 0; y++ {
			i := y*w.w + x
			t := g.Type[i]
			if t == CellAir {
				continue
			}
			if t == CellWater {
				// Light dims through water but keeps going.
				remaining--
				continue
			}
			if t == CellPlant {
				gain := remaining
				if g.State[i] != PlantLeaf {
					gain = (remaining + 1) / 2
				}
				g.AddEnergy(i, gain)
				w.sched.Activate(i)
			}
			break
		}
	}
}

// Rain spawns water across the top row. Each column gets a droplet with the
// given probability; a non-positive chance uses the configured default.
func (w *World) Rain(chance float64, amount uint8) {
	if chance <= 0 {
		chance = w.cfg.Params.RainChance
	}
	if amount == 0 {
		amount = clampResource(w.cfg.Params.RainAmount)
	}
	for x := 0; x < w.w; x++ {
		if !w.rng.Chance(chance) {
			continue
		}
		i := w.grid.Index(x, 0)
		if i == None || w.grid.Type[i] != CellAir {
			continue
		}
		w.grid.Type[i] = CellWater
		w.grid.Water[i] = amount
		w.touch(i)
	}
}
