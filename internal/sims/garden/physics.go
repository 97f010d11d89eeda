package garden

import (
	"slices"
)

// stepPhysics runs the fluid and mechanics passes: water flow, soil moisture
// diffusion, gravity, then erosion. Water is processed bottom-to-top so a
// column cannot cascade through the whole grid in one tick.
func (w *World) stepPhysics() {
	w.waterScratch = w.waterScratch[:0]
	for _, i := range w.sched.Active() {
		if w.grid.Type[i] == CellWater {
			w.waterScratch = append(w.waterScratch, i)
		}
	}
	// Larger linear index means lower row; sort descending for bottom-first.
	slices.SortFunc(w.waterScratch, func(a, b int) int { return b - a })
	for _, i := range w.waterScratch {
		if w.grid.Type[i] != CellWater || w.sched.Processed(i) {
			continue
		}
		w.flowWater(i)
	}

	for _, i := range w.sched.Active() {
		if w.grid.Type[i] == CellSoil && !w.sched.Processed(i) {
			w.diffuseSoilMoisture(i)
		}
	}

	for _, i := range w.sched.Active() {
		if w.sched.Processed(i) {
			continue
		}
		switch w.grid.Type[i] {
		case CellSeed, CellDeadMatter:
			w.applyGravity(i)
		case CellInsect:
			if w.rng.Chance(w.cfg.Params.InsectFallChance) {
				w.applyGravity(i)
			}
		}
	}

	for _, i := range w.sched.Active() {
		if w.grid.Type[i] == CellWater {
			w.erode(i)
		}
	}
}

// waterPressure derives the flow-gating scalar for a water cell: its own
// amount plus a decaying contribution from the water column directly above,
// scaled up slightly with column height.
func (w *World) waterPressure(i int) int {
	p := w.cfg.Params
	g := w.grid

	pressure := float64(g.Water[i])
	contrib := 1.0
	height := 0
	for k := 1; k <= p.PressureColumn; k++ {
		a := i - k*w.w
		if a < 0 || g.Type[a] != CellWater {
			break
		}
		contrib *= p.PressureDecay
		pressure += float64(g.Water[a]) * contrib
		height = k
	}
	pressure *= 1 + float64(height)*p.PressureHeightBonus
	return int(pressure)
}

func (w *World) flowWater(i int) {
	p := w.cfg.Params
	g := w.grid
	x, y := g.Coords(i)
	pressure := w.waterPressure(i)

	// 1. Straight down.
	below := g.Index(x, y+1)
	if below != None {
		switch g.Type[below] {
		case CellAir:
			g.Swap(i, below)
			w.sched.MarkProcessed(below)
			w.touch(i)
			w.touch(below)
			return
		case CellWater:
			diff := int(g.Water[i]) - int(g.Water[below])
			if diff > 1 {
				g.TransferWater(i, below, diff/2)
				w.touch(below)
			}
		case CellSoil:
			if g.TransferWater(i, below, p.AbsorbSoilRate) > 0 {
				w.touch(below)
			}
		case CellDeadMatter, CellSeed:
			if g.TransferWater(i, below, p.AbsorbDeadRate) > 0 {
				w.touch(below)
			}
			if pressure >= p.SwapPressure && !w.sched.Processed(below) {
				// High pressure forces the light material upward, at most one
				// cell per tick.
				g.Swap(i, below)
				w.sched.MarkProcessed(below)
				w.sched.MarkProcessed(i)
				w.touch(i)
				w.touch(below)
				return
			}
		}
		if g.Water[i] == 0 {
			g.Clear(i)
			w.touch(i)
			return
		}
	}

	// 2. Horizontal spread once pressure clears the threshold. Side order is
	// randomized so repeated ticks stay symmetric.
	if pressure >= p.FlowMinSpread {
		first := -1
		if w.rng.Bool() {
			first = 1
		}
		for _, side := range [2]int{first, -first} {
			t := g.Index(x+side, y)
			if t == None {
				continue
			}
			switch g.Type[t] {
			case CellAir:
				half := int(g.Water[i]) / 2
				if half > 0 {
					g.Type[t] = CellWater
					g.State[t] = StateDefault
					g.TransferWater(i, t, half)
					w.sched.MarkProcessed(t)
					w.touch(t)
				}
			case CellWater:
				diff := int(g.Water[i]) - int(g.Water[t])
				if diff > 1 {
					g.TransferWater(i, t, diff/2)
					w.touch(t)
				}
			case CellSoil:
				if g.TransferWater(i, t, p.AbsorbSoilRate/2) > 0 {
					w.touch(t)
				}
			}
		}
		if g.Water[i] == 0 {
			g.Clear(i)
			w.touch(i)
			return
		}
	}

	// 3. Diagonal down.
	first := -1
	if w.rng.Bool() {
		first = 1
	}
	for _, side := range [2]int{first, -first} {
		t := g.Index(x+side, y+1)
		if t == None {
			continue
		}
		if g.Type[t] == CellAir {
			g.Swap(i, t)
			w.sched.MarkProcessed(t)
			w.touch(i)
			w.touch(t)
			return
		}
		if g.Type[t] == CellWater {
			diff := int(g.Water[i]) - int(g.Water[t])
			if diff > 1 {
				g.TransferWater(i, t, diff/2)
				w.touch(t)
			}
		}
	}

	// 4. Fountain: very high pressure pushes water upward into air.
	if pressure >= p.FountainPressure {
		above := g.Index(x, y-1)
		if above != None && g.Type[above] == CellAir {
			third := int(g.Water[i]) / 3
			if third > 0 {
				g.Type[above] = CellWater
				g.State[above] = StateDefault
				g.TransferWater(i, above, third)
				w.sched.MarkProcessed(above)
				w.touch(above)
			}
		}
	}

	if g.Water[i] == 0 {
		g.Clear(i)
	}
	w.touch(i)
}

// diffuseSoilMoisture spreads soil water toward roots first, then downward,
// then sideways, and refreshes the wet/dry state from the moisture level.
func (w *World) diffuseSoilMoisture(i int) {
	p := w.cfg.Params
	g := w.grid
	x, y := g.Coords(i)

	// Roots siphon moisture before it diffuses anywhere else.
	if int(g.Water[i]) >= p.SoilWetThreshold {
		for _, n := range g.Neighbors(x, y, 1) {
			if g.Type[n.Index] != CellPlant || g.State[n.Index] != PlantRoot {
				continue
			}
			if g.TransferWater(i, n.Index, p.RootSuction) > 0 {
				g.AddEnergy(n.Index, 1)
				w.sched.Activate(n.Index)
			}
		}
	}

	below := g.Index(x, y+1)
	if below != None && g.Type[below] == CellSoil && g.Water[below] < g.Water[i] {
		amt := (int(g.Water[i]) - int(g.Water[below])) / 2
		if amt > p.SoilDiffuseRate {
			amt = p.SoilDiffuseRate
		}
		if g.TransferWater(i, below, amt) > 0 {
			w.sched.Activate(below)
		}
	}

	for _, side := range [2]int{-1, 1} {
		t := g.Index(x+side, y)
		if t == None || g.Type[t] != CellSoil || g.Water[t] >= g.Water[i] {
			continue
		}
		amt := (int(g.Water[i]) - int(g.Water[t])) / 2
		if amt > p.SoilBalanceRate {
			amt = p.SoilBalanceRate
		}
		if g.TransferWater(i, t, amt) > 0 {
			w.sched.Activate(t)
		}
	}

	// Fertile soil keeps its state; the wet/dry flags track moisture.
	if g.State[i] != SoilFertile {
		switch {
		case int(g.Water[i]) >= p.SoilWetThreshold:
			g.State[i] = SoilWet
		case int(g.Water[i]) <= p.SoilDryThreshold:
			g.State[i] = SoilDry
		default:
			g.State[i] = StateDefault
		}
	}

	if g.Water[i] > 0 || g.State[i] != SoilDry {
		w.sched.Activate(i)
	}
}

// applyGravity drops loose material: straight down into air, through water
// with a type-dependent sink probability, diagonally if blocked, and finally
// a sideways slide off an unsupported incline.
func (w *World) applyGravity(i int) {
	p := w.cfg.Params
	g := w.grid
	x, y := g.Coords(i)

	below := g.Index(x, y+1)
	if below == None {
		return
	}

	move := func(t int) {
		g.Swap(i, t)
		w.sched.MarkProcessed(t)
		w.touch(i)
		w.touch(t)
	}

	switch g.Type[below] {
	case CellAir:
		move(below)
		return
	case CellWater:
		sink := p.SinkChanceDead
		switch g.Type[i] {
		case CellSeed:
			sink = p.SinkChanceSeed
		case CellInsect:
			sink = p.SinkChanceInsect
		}
		if w.rng.Chance(sink) {
			move(below)
			return
		}
	}

	first := -1
	if w.rng.Bool() {
		first = 1
	}
	for _, side := range [2]int{first, -first} {
		t := g.Index(x+side, y+1)
		if t != None && g.Type[t] == CellAir {
			move(t)
			return
		}
	}

	// Slide: resting on a solid incline with an open shoulder and nothing
	// bracing the side.
	if w.rng.Chance(p.SlideChance) {
		for _, side := range [2]int{first, -first} {
			t := g.Index(x+side, y)
			d := g.Index(x+side, y+1)
			if t != None && d != None && g.Type[t] == CellAir && g.Type[d] == CellAir {
				move(t)
				return
			}
		}
	}
	w.sched.Activate(i)
}

// erode lets sufficiently laden water eat into adjacent soil. Fertile soil
// and nearby roots resist; pressure and wetness make it worse. Water below
// the minimum load never erodes, regardless of random draws.
func (w *World) erode(i int) {
	p := w.cfg.Params
	g := w.grid

	if int(g.Water[i]) < p.ErosionMinWater {
		return
	}

	pressure := w.waterPressure(i)
	x, y := g.Coords(i)
	for _, n := range g.Neighbors(x, y, 1) {
		if g.Type[n.Index] != CellSoil {
			continue
		}
		chance := p.ErosionChance * float64(pressure) / 128.0
		if g.State[n.Index] == SoilWet {
			chance *= 1.5
		}
		if g.State[n.Index] == SoilFertile {
			chance *= 0.3
		}
		if w.rootsAdjacent(n.X, n.Y) {
			chance *= 0.25
		}
		if !w.rng.Chance(chance) {
			continue
		}
		if w.rng.Chance(p.ErosionPartialChance) {
			// Partial erosion: soak the soil and strip some nutrients.
			g.TransferWater(i, n.Index, 10)
			g.AddNutrient(n.Index, -5)
		} else {
			soilWater := int(g.Water[n.Index])
			g.Type[n.Index] = CellWater
			g.State[n.Index] = StateDefault
			g.Nutrient[n.Index] = 0
			g.Water[n.Index] = clampResource(soilWater)
			g.TransferWater(i, n.Index, 20)
			g.Meta[n.Index] = CellMeta{}
		}
		w.touch(n.Index)
	}
}

func (w *World) rootsAdjacent(x, y int) bool {
	for _, n := range w.grid.Neighbors(x, y, 1) {
		if w.grid.Type[n.Index] == CellPlant && w.grid.State[n.Index] == PlantRoot {
			return true
		}
	}
	return false
}
