package garden

// CellType enumerates the material occupying a grid index.
type CellType uint8

const (
	CellAir CellType = iota
	CellWater
	CellSoil
	CellPlant
	CellSeed
	CellInsect
	CellWorm
	CellDeadMatter
)

func (t CellType) String() string {
	switch t {
	case CellAir:
		return "air"
	case CellWater:
		return "water"
	case CellSoil:
		return "soil"
	case CellPlant:
		return "plant"
	case CellSeed:
		return "seed"
	case CellInsect:
		return "insect"
	case CellWorm:
		return "worm"
	case CellDeadMatter:
		return "dead"
	default:
		return "unknown"
	}
}

// CellState refines a cell's behavior within its type. The meaning of each
// value depends on the cell type; unknown combinations are treated as inert.
type CellState uint8

const (
	StateDefault CellState = iota

	// Soil states.
	SoilWet
	SoilDry
	SoilFertile

	// Plant states.
	PlantRoot
	PlantStem
	PlantLeaf
	PlantFlower

	// Insect states.
	InsectLarva
	InsectAdult
)

func (s CellState) String() string {
	switch s {
	case StateDefault:
		return "default"
	case SoilWet:
		return "wet"
	case SoilDry:
		return "dry"
	case SoilFertile:
		return "fertile"
	case PlantRoot:
		return "root"
	case PlantStem:
		return "stem"
	case PlantLeaf:
		return "leaf"
	case PlantFlower:
		return "flower"
	case InsectLarva:
		return "larva"
	case InsectAdult:
		return "adult"
	default:
		return "unknown"
	}
}

// MetaKind tags which variant of the per-cell metadata slot is live.
type MetaKind uint8

const (
	MetaNone MetaKind = iota
	MetaInsect
	MetaRoot
	MetaFlower
	MetaDecay
)

// CellMeta is the per-cell bookkeeping slot. Which fields are meaningful is
// decided entirely by Kind; the engines never read fields across kinds.
type CellMeta struct {
	Kind MetaKind

	// MetaInsect: starvation counter, feeding contact flag, age in ticks.
	Starvation uint8
	OnPlant    bool
	Age        uint8

	// MetaRoot: root thickness class.
	Thickness uint8

	// MetaFlower: species variant and color variation.
	Variant  uint8
	ColorVar uint8

	// MetaDecay: decomposition progress.
	Progress uint8
}

// Trait names the organism attributes the genetics collaborator can scale.
type Trait uint8

const (
	TraitMetabolism Trait = iota
	TraitSpeed
	TraitFeeding
	TraitReproduction
	TraitStrength
	TraitLifespan
)

// TraitFunc scales an organism attribute for the cell at index. A nil
// function means every trait multiplier is 1.0.
type TraitFunc func(index int, trait Trait) float64
