package garden

// connectivity holds the per-tick flood-fill state. Nothing here persists
// across ticks; growth and detachment reshape the plant graph every step, so
// the analysis is recomputed from scratch each time.
type connectivity struct {
	connected []bool
	checked   []bool
	queue     []int
	cascade   []int
}

func newConnectivity(total int) *connectivity {
	if total < 0 {
		total = 0
	}
	return &connectivity{
		connected: make([]bool, total),
		checked:   make([]bool, total),
		queue:     make([]int, 0, total/8+1),
		cascade:   make([]int, 0, 64),
	}
}

func (c *connectivity) reset() {
	for i := range c.connected {
		c.connected[i] = false
		c.checked[i] = false
	}
	c.queue = c.queue[:0]
	c.cascade = c.cascade[:0]
}

// analyzeConnectivity recomputes which plant cells are structurally attached
// to the ground and detaches the rest. Three phases: seed identification,
// breadth-first propagation, and support verification. Every plant cell left
// unmarked afterwards is converted to dead matter in the same tick.
func (w *World) analyzeConnectivity() {
	c := w.conn
	c.reset()
	w.computeGroundLevels()

	g := w.grid
	total := w.w * w.h

	w.rootCount, w.stemCount, w.leafCount, w.flowerCount = 0, 0, 0, 0
	for i := 0; i < total; i++ {
		if g.Type[i] != CellPlant {
			continue
		}
		switch g.State[i] {
		case PlantRoot:
			w.rootCount++
		case PlantStem:
			w.stemCount++
		case PlantLeaf:
			w.leafCount++
		case PlantFlower:
			w.flowerCount++
		}
	}
	totalPlants := w.rootCount + w.stemCount + w.leafCount + w.flowerCount
	if totalPlants == 0 {
		return
	}

	// Phase 1: roots resting on or buried in the soil line anchor the flood
	// fill. The resting row sits one above the first soil row, so a freshly
	// germinated surface root still qualifies.
	for i := 0; i < total; i++ {
		if g.Type[i] != CellPlant || g.State[i] != PlantRoot {
			continue
		}
		x, y := g.Coords(i)
		if y < w.groundLevel[x]-1 {
			continue
		}
		if !w.touchesSoil(x, y) {
			continue
		}
		c.connected[i] = true
		c.checked[i] = true
		c.queue = append(c.queue, i)
	}

	// Phase 2: BFS over 8-connected plant neighbors. The queue is consumed
	// with a front index so dequeue stays O(1) at grid scale.
	for front := 0; front < len(c.queue); front++ {
		i := c.queue[front]
		x, y := g.Coords(i)
		for dy := -1; dy <= 1; dy++ {
			ny := y + dy
			if ny < 0 || ny >= w.h {
				continue
			}
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx := x + dx
				if nx < 0 || nx >= w.w {
					continue
				}
				n := ny*w.w + nx
				if c.checked[n] || g.Type[n] != CellPlant {
					continue
				}
				c.checked[n] = true
				c.connected[n] = true
				c.queue = append(c.queue, n)
			}
		}
	}

	// Phase 3: stems the flood fill reached must still justify their height.
	// Young plants are exempt; established ones lose poorly supported stems.
	if totalPlants >= w.cfg.Params.SupportYoungCount {
		w.verifySupport()
	}

	// Detachment: convert every unmarked plant cell, cascading from each
	// detachment point so whole branches fall in the same tick.
	for i := 0; i < total; i++ {
		if g.Type[i] != CellPlant || c.connected[i] {
			continue
		}
		w.detachCascade(i)
	}
}

func (w *World) touchesSoil(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := w.grid.Index(x+dx, y+dy)
			if n != None && w.grid.Type[n] == CellSoil {
				return true
			}
		}
	}
	return false
}

// verifySupport strips the connected mark from stems whose effective support
// falls short of the height-dependent requirement. The queue is walked in
// BFS order so lower stems are judged before the ones resting on them.
func (w *World) verifySupport() {
	c := w.conn
	g := w.grid
	p := w.cfg.Params

	thickness := w.trunkThickness()
	rootStrength := w.rootStrength()
	integrity := w.stemIntegrity()

	for front := 0; front < len(c.queue); front++ {
		i := c.queue[front]
		if g.Type[i] != CellPlant || g.State[i] != PlantStem || !c.connected[i] {
			continue
		}
		height := w.heightAboveGround(i)
		if height <= 0 {
			continue
		}

		support := 0.0
		x, y := g.Coords(i)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := g.Index(x+dx, y+dy)
				if n == None || g.Type[n] != CellPlant || !c.connected[n] {
					continue
				}
				switch g.State[n] {
				case PlantRoot:
					support += 1.5
				case PlantStem:
					support += 1.0
				case PlantLeaf, PlantFlower:
					support += 0.25
				}
			}
		}
		effective := support * thickness * rootStrength * integrity
		required := p.SupportBase + float64(height)*p.SupportPerHeight
		if effective < required {
			c.connected[i] = false
		}
	}
}

// trunkThickness approximates how many stems cluster near ground level.
func (w *World) trunkThickness() float64 {
	band := w.cfg.Params.TrunkBand
	if band < 1 {
		band = 1
	}
	nearGround := 0
	g := w.grid
	for i, t := range g.Type {
		if t != CellPlant || g.State[i] != PlantStem {
			continue
		}
		h := w.heightAboveGround(i)
		if h > 0 && h <= band {
			nearGround++
		}
	}
	thickness := 1.0 + float64(nearGround)/4.0
	if thickness > 3.0 {
		thickness = 3.0
	}
	return thickness
}

// rootStrength is a global metric: plants with proportionally more root mass
// hold their stems better.
func (w *World) rootStrength() float64 {
	stems := w.stemCount
	if stems < 1 {
		stems = 1
	}
	s := w.cfg.Params.RootStrengthScale * float64(w.rootCount) / float64(stems)
	if s > 2.0 {
		s = 2.0
	}
	if s < 0.25 {
		s = 0.25
	}
	return s
}

// stemIntegrity weakens very large canopies: past the soft cap, total stem
// count dilutes per-stem integrity.
func (w *World) stemIntegrity() float64 {
	softCap := w.cfg.Params.StemIntegrityCap
	if softCap < 1 {
		softCap = 1
	}
	if w.stemCount <= softCap {
		return 1.0
	}
	return float64(softCap) / float64(w.stemCount)
}

// detachCascade converts the plant cell at start to dead matter together
// with every still-unmarked plant cell transitively reachable from it, so a
// severed branch falls as one piece within the tick.
func (w *World) detachCascade(start int) {
	c := w.conn
	g := w.grid

	c.cascade = c.cascade[:0]
	c.cascade = append(c.cascade, start)
	c.connected[start] = true // reuse the mark as a visited guard for the cascade

	for front := 0; front < len(c.cascade); front++ {
		i := c.cascade[front]
		w.toDeadMatter(i)

		x, y := g.Coords(i)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := g.Index(x+dx, y+dy)
				if n == None || g.Type[n] != CellPlant || c.connected[n] {
					continue
				}
				c.connected[n] = true
				c.cascade = append(c.cascade, n)
			}
		}
	}
}
