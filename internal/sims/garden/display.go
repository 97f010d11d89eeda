package garden

import "image/color"

// ViewMode selects which attribute the display buffer encodes.
type ViewMode uint8

const (
	ViewTypes ViewMode = iota
	ViewMoisture
	ViewEnergy
	ViewNutrient

	viewModeCount
)

func (m ViewMode) String() string {
	switch m {
	case ViewTypes:
		return "types"
	case ViewMoisture:
		return "moisture"
	case ViewEnergy:
		return "energy"
	case ViewNutrient:
		return "nutrient"
	default:
		return "unknown"
	}
}

// SetViewMode switches the visualization mode. Invalid modes are rejected
// and the prior mode is retained; the caller decides whether to log it.
func (w *World) SetViewMode(m ViewMode) bool {
	if m >= viewModeCount {
		return false
	}
	w.mode = m
	w.rebuildDisplay()
	return true
}

// ViewMode reports the active visualization mode.
func (w *World) ViewMode() ViewMode { return w.mode }

// CycleViewMode advances to the next visualization mode.
func (w *World) CycleViewMode() ViewMode {
	w.mode = (w.mode + 1) % viewModeCount
	w.rebuildDisplay()
	return w.mode
}

const (
	displayStateStride = 16
	// Flower species colors live in a tail region past the type*state block.
	flowerVariantBase = 240
)

var typePalette = buildTypePalette()
var moisturePalette = buildRampPalette(color.NRGBA{R: 20, G: 20, B: 35, A: 255}, color.NRGBA{R: 60, G: 140, B: 255, A: 255})
var energyPalette = buildRampPalette(color.NRGBA{R: 25, G: 20, B: 20, A: 255}, color.NRGBA{R: 255, G: 210, B: 70, A: 255})
var nutrientPalette = buildRampPalette(color.NRGBA{R: 20, G: 25, B: 20, A: 255}, color.NRGBA{R: 90, G: 220, B: 110, A: 255})

// Palette exposes the color table matching the current display encoding.
func (w *World) Palette() []color.RGBA {
	switch w.mode {
	case ViewMoisture:
		return moisturePalette
	case ViewEnergy:
		return energyPalette
	case ViewNutrient:
		return nutrientPalette
	default:
		return typePalette
	}
}

// rebuildDisplay re-encodes the grid into the display buffer for the active
// visualization mode.
func (w *World) rebuildDisplay() {
	g := w.grid
	switch w.mode {
	case ViewMoisture:
		copy(w.display, g.Water)
	case ViewEnergy:
		copy(w.display, g.Energy)
	case ViewNutrient:
		copy(w.display, g.Nutrient)
	default:
		for i := range w.display {
			w.display[i] = encodeTypeDisplay(g.Type[i], g.State[i], g.Meta[i])
		}
	}
}

// encodeTypeDisplay packs type+state into a palette index. Flower cells fold
// the species variant into the index so distinct species read differently.
func encodeTypeDisplay(t CellType, s CellState, m CellMeta) uint8 {
	if t == CellPlant && s == PlantFlower && m.Kind == MetaFlower {
		return flowerVariantBase + m.Variant&3
	}
	return uint8(t)*displayStateStride + uint8(s)
}

func buildTypePalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		t := CellType(uint8(i) / displayStateStride)
		s := CellState(uint8(i) % displayStateStride)
		palette[i] = toRGBA(typeColorFor(t, s))
	}
	// Flower variant tail: one hue per species.
	variants := []color.NRGBA{
		{R: 235, G: 110, B: 160, A: 255},
		{R: 250, G: 220, B: 90, A: 255},
		{R: 180, G: 120, B: 240, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
	for v, c := range variants {
		palette[flowerVariantBase+v] = toRGBA(c)
	}
	return palette
}

func typeColorFor(t CellType, s CellState) color.NRGBA {
	switch t {
	case CellWater:
		return color.NRGBA{R: 50, G: 110, B: 220, A: 255}
	case CellSoil:
		switch s {
		case SoilWet:
			return color.NRGBA{R: 56, G: 40, B: 26, A: 255}
		case SoilDry:
			return color.NRGBA{R: 120, G: 96, B: 64, A: 255}
		case SoilFertile:
			return color.NRGBA{R: 80, G: 58, B: 30, A: 255}
		default:
			return color.NRGBA{R: 92, G: 70, B: 44, A: 255}
		}
	case CellPlant:
		switch s {
		case PlantRoot:
			return color.NRGBA{R: 190, G: 165, B: 110, A: 255}
		case PlantStem:
			return color.NRGBA{R: 60, G: 130, B: 50, A: 255}
		case PlantLeaf:
			return color.NRGBA{R: 90, G: 190, B: 70, A: 255}
		case PlantFlower:
			return color.NRGBA{R: 235, G: 110, B: 160, A: 255}
		default:
			return color.NRGBA{R: 70, G: 140, B: 60, A: 255}
		}
	case CellSeed:
		return color.NRGBA{R: 215, G: 190, B: 105, A: 255}
	case CellInsect:
		if s == InsectLarva {
			return color.NRGBA{R: 200, G: 200, B: 170, A: 255}
		}
		return color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	case CellWorm:
		return color.NRGBA{R: 205, G: 130, B: 140, A: 255}
	case CellDeadMatter:
		return color.NRGBA{R: 105, G: 95, B: 75, A: 255}
	case CellAir:
		fallthrough
	default:
		return color.NRGBA{R: 16, G: 20, B: 30, A: 255}
	}
}

func buildRampPalette(from, to color.NRGBA) []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		palette[i] = toRGBA(blendColors(from, to, float64(i)/255.0))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	wt := overlayWeight
	inv := 1 - wt
	return color.NRGBA{
		R: uint8(br*inv + or*wt + 0.5),
		G: uint8(bg*inv + og*wt + 0.5),
		B: uint8(bb*inv + ob*wt + 0.5),
		A: uint8(ba*inv + oa*wt + 0.5),
	}
}
