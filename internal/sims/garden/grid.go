package garden

// None is the sentinel returned for out-of-bounds lookups. Callers branch on
// it instead of receiving an error.
const None = -1

// Neighbor identifies one adjacent cell produced by Grid.Neighbors.
type Neighbor struct {
	X, Y  int
	Index int
}

// Grid owns the parallel per-cell attribute arrays, addressed by the linear
// index y*W+x. Resource values are always kept in [0, 255].
type Grid struct {
	W, H int

	Type     []CellType
	State    []CellState
	Water    []uint8
	Energy   []uint8
	Nutrient []uint8
	Meta     []CellMeta
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	total := w * h
	return &Grid{
		W:        w,
		H:        h,
		Type:     make([]CellType, total),
		State:    make([]CellState, total),
		Water:    make([]uint8, total),
		Energy:   make([]uint8, total),
		Nutrient: make([]uint8, total),
		Meta:     make([]CellMeta, total),
	}
}

// Index returns the linear index for (x, y), or None if out of bounds.
func (g *Grid) Index(x, y int) int {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return None
	}
	return y*g.W + x
}

// Coords returns the (x, y) coordinates for a linear index.
func (g *Grid) Coords(i int) (int, int) {
	return i % g.W, i / g.W
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Neighbors returns the 8-connected neighborhood of (x, y) at radius 1, or a
// wider square scan for larger radii. Out-of-bounds positions are omitted.
func (g *Grid) Neighbors(x, y, radius int) []Neighbor {
	if radius < 1 {
		radius = 1
	}
	out := make([]Neighbor, 0, (2*radius+1)*(2*radius+1)-1)
	for dy := -radius; dy <= radius; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.H {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.W {
				continue
			}
			out = append(out, Neighbor{X: nx, Y: ny, Index: ny*g.W + nx})
		}
	}
	return out
}

// Clear resets the cell at i to empty air.
func (g *Grid) Clear(i int) {
	g.Type[i] = CellAir
	g.State[i] = StateDefault
	g.Water[i] = 0
	g.Energy[i] = 0
	g.Nutrient[i] = 0
	g.Meta[i] = CellMeta{}
}

// Swap exchanges every attribute between two cells. Swapping with an empty
// air cell moves a cell and leaves air behind.
func (g *Grid) Swap(i, j int) {
	g.Type[i], g.Type[j] = g.Type[j], g.Type[i]
	g.State[i], g.State[j] = g.State[j], g.State[i]
	g.Water[i], g.Water[j] = g.Water[j], g.Water[i]
	g.Energy[i], g.Energy[j] = g.Energy[j], g.Energy[i]
	g.Nutrient[i], g.Nutrient[j] = g.Nutrient[j], g.Nutrient[i]
	g.Meta[i], g.Meta[j] = g.Meta[j], g.Meta[i]
}

// AddWater adjusts the water amount at i, clamping into [0, 255].
func (g *Grid) AddWater(i, delta int) {
	g.Water[i] = clampResource(int(g.Water[i]) + delta)
}

// AddEnergy adjusts the energy amount at i, clamping into [0, 255].
func (g *Grid) AddEnergy(i, delta int) {
	g.Energy[i] = clampResource(int(g.Energy[i]) + delta)
}

// AddNutrient adjusts the nutrient amount at i, clamping into [0, 255].
func (g *Grid) AddNutrient(i, delta int) {
	g.Nutrient[i] = clampResource(int(g.Nutrient[i]) + delta)
}

// TransferWater moves up to amount water from src to dst without creating or
// destroying any. The moved quantity is limited by the source's supply and
// the destination's remaining capacity; it returns how much actually moved.
func (g *Grid) TransferWater(src, dst, amount int) int {
	if amount <= 0 || src == dst {
		return 0
	}
	if have := int(g.Water[src]); amount > have {
		amount = have
	}
	if room := 255 - int(g.Water[dst]); amount > room {
		amount = room
	}
	if amount <= 0 {
		return 0
	}
	g.Water[src] -= uint8(amount)
	g.Water[dst] += uint8(amount)
	return amount
}

// TransferEnergy moves up to amount energy from src to dst, same rules as
// TransferWater.
func (g *Grid) TransferEnergy(src, dst, amount int) int {
	if amount <= 0 || src == dst {
		return 0
	}
	if have := int(g.Energy[src]); amount > have {
		amount = have
	}
	if room := 255 - int(g.Energy[dst]); amount > room {
		amount = room
	}
	if amount <= 0 {
		return 0
	}
	g.Energy[src] -= uint8(amount)
	g.Energy[dst] += uint8(amount)
	return amount
}

// TransferNutrient moves up to amount nutrient from src to dst, same rules
// as TransferWater.
func (g *Grid) TransferNutrient(src, dst, amount int) int {
	if amount <= 0 || src == dst {
		return 0
	}
	if have := int(g.Nutrient[src]); amount > have {
		amount = have
	}
	if room := 255 - int(g.Nutrient[dst]); amount > room {
		amount = room
	}
	if amount <= 0 {
		return 0
	}
	g.Nutrient[src] -= uint8(amount)
	g.Nutrient[dst] += uint8(amount)
	return amount
}

func clampResource(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
