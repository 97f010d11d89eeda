package garden

import "testing"

func TestGridIndexBounds(t *testing.T) {
	g := NewGrid(8, 6)

	if got := g.Index(0, 0); got != 0 {
		t.Fatalf("Index(0,0) = %d, want 0", got)
	}
	if got := g.Index(7, 5); got != 47 {
		t.Fatalf("Index(7,5) = %d, want 47", got)
	}
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 6}, {-1, -1}} {
		if got := g.Index(pos[0], pos[1]); got != None {
			t.Fatalf("Index(%d,%d) = %d, want None", pos[0], pos[1], got)
		}
	}

	x, y := g.Coords(g.Index(5, 3))
	if x != 5 || y != 3 {
		t.Fatalf("Coords roundtrip = (%d,%d), want (5,3)", x, y)
	}
}

func TestGridNeighbors(t *testing.T) {
	g := NewGrid(8, 8)

	if got := len(g.Neighbors(4, 4, 1)); got != 8 {
		t.Fatalf("interior neighborhood = %d cells, want 8", got)
	}
	if got := len(g.Neighbors(0, 0, 1)); got != 3 {
		t.Fatalf("corner neighborhood = %d cells, want 3", got)
	}
	if got := len(g.Neighbors(4, 0, 1)); got != 5 {
		t.Fatalf("edge neighborhood = %d cells, want 5", got)
	}
	if got := len(g.Neighbors(4, 4, 2)); got != 24 {
		t.Fatalf("radius-2 neighborhood = %d cells, want 24", got)
	}

	for _, n := range g.Neighbors(4, 4, 1) {
		if n.Index != g.Index(n.X, n.Y) {
			t.Fatalf("neighbor (%d,%d) carries index %d, want %d", n.X, n.Y, n.Index, g.Index(n.X, n.Y))
		}
	}
}

func TestGridResourceClamping(t *testing.T) {
	g := NewGrid(4, 4)

	g.AddWater(0, 300)
	if g.Water[0] != 255 {
		t.Fatalf("water = %d after overfill, want 255", g.Water[0])
	}
	g.AddWater(0, -1000)
	if g.Water[0] != 0 {
		t.Fatalf("water = %d after drain, want 0", g.Water[0])
	}
	g.AddEnergy(1, -5)
	if g.Energy[1] != 0 {
		t.Fatalf("energy = %d after draining empty cell, want 0", g.Energy[1])
	}
}

func TestGridTransferConserves(t *testing.T) {
	g := NewGrid(4, 4)
	g.Water[0] = 30
	g.Water[1] = 250

	// Limited by destination headroom.
	if moved := g.TransferWater(0, 1, 30); moved != 5 {
		t.Fatalf("moved %d into a nearly full cell, want 5", moved)
	}
	if g.Water[0] != 25 || g.Water[1] != 255 {
		t.Fatalf("after transfer: src %d dst %d, want 25 and 255", g.Water[0], g.Water[1])
	}

	// Limited by source supply.
	g.Water[2] = 0
	if moved := g.TransferWater(0, 2, 100); moved != 25 {
		t.Fatalf("moved %d from a 25-unit cell, want 25", moved)
	}
	if got := int(g.Water[0]) + int(g.Water[1]) + int(g.Water[2]); got != 280 {
		t.Fatalf("total water %d after transfers, want 280", got)
	}

	if moved := g.TransferWater(3, 3, 10); moved != 0 {
		t.Fatalf("self-transfer moved %d, want 0", moved)
	}
}

func TestGridSwapAndClear(t *testing.T) {
	g := NewGrid(4, 4)
	g.Type[0] = CellWorm
	g.Energy[0] = 42
	g.Meta[0] = CellMeta{Kind: MetaInsect, Age: 7}

	g.Swap(0, 5)
	if g.Type[0] != CellAir || g.Type[5] != CellWorm {
		t.Fatal("Swap did not move the cell into air")
	}
	if g.Energy[5] != 42 || g.Meta[5].Age != 7 {
		t.Fatal("Swap did not carry attributes")
	}

	g.Clear(5)
	if g.Type[5] != CellAir || g.Energy[5] != 0 || g.Meta[5].Kind != MetaNone {
		t.Fatal("Clear did not reset the cell")
	}
}
