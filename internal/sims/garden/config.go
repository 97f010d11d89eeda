package garden

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds every tunable threshold and probability in the simulation.
// The shapes of the algorithms are fixed; these numbers are not.
type Params struct {
	// Terrain seeding.
	SoilDepth       int     `yaml:"soil_depth"`
	SoilInitWater   int     `yaml:"soil_init_water"`
	SoilInitNutrient int    `yaml:"soil_init_nutrient"`
	StartSeeds      int     `yaml:"start_seeds"`
	StartSeedEnergy int     `yaml:"start_seed_energy"`

	// Plant metabolism.
	GrowthRate         float64 `yaml:"growth_rate"`
	PlantMetabolism    int     `yaml:"plant_metabolism"`
	PlantWaterNeed     int     `yaml:"plant_water_need"`
	PlantSurviveChance float64 `yaml:"plant_survive_chance"`
	DroughtPenaltyRoot   int   `yaml:"drought_penalty_root"`
	DroughtPenaltyStem   int   `yaml:"drought_penalty_stem"`
	DroughtPenaltyLeaf   int   `yaml:"drought_penalty_leaf"`
	DroughtPenaltyFlower int   `yaml:"drought_penalty_flower"`

	// Roots.
	RootAbsorbMax     int     `yaml:"root_absorb_max"`
	RootGrowthEnergy  int     `yaml:"root_growth_energy"`
	RootGrowthChance  float64 `yaml:"root_growth_chance"`
	RootSplitFrac     float64 `yaml:"root_split_frac"`
	RootSurfaceDepth  int     `yaml:"root_surface_depth"`
	RootMassForStem   int     `yaml:"root_mass_for_stem"`
	StemSproutChance  float64 `yaml:"stem_sprout_chance"`

	// Stems.
	StemGrowthEnergy    int     `yaml:"stem_growth_energy"`
	StemGrowthChance    float64 `yaml:"stem_growth_chance"`
	StemMaxHeight       int     `yaml:"stem_max_height"`
	LeafSproutChance    float64 `yaml:"leaf_sprout_chance"`
	FlowerBandFrac      float64 `yaml:"flower_band_frac"`
	FlowerConvertChance float64 `yaml:"flower_convert_chance"`
	FlowerVariantCount  int     `yaml:"flower_variant_count"`

	// Leaves.
	LeafEnergyGain    int     `yaml:"leaf_energy_gain"`
	LeafEnergyCap     int     `yaml:"leaf_energy_cap"`
	LeafAdequateWater int     `yaml:"leaf_adequate_water"`
	LeafShareChance   float64 `yaml:"leaf_share_chance"`
	LeafShareThreshold int    `yaml:"leaf_share_threshold"`
	LeafShareAmount   int     `yaml:"leaf_share_amount"`

	// Flowers.
	FlowerSeedEnergy int     `yaml:"flower_seed_energy"`
	FlowerSeedChance float64 `yaml:"flower_seed_chance"`
	FlowerSeedCost   int     `yaml:"flower_seed_cost"`
	PetalFadeChance  float64 `yaml:"petal_fade_chance"`
	PetalFadeAmount  int     `yaml:"petal_fade_amount"`

	// Seeds.
	SeedGerminationWater  int     `yaml:"seed_germination_water"`
	SeedGerminationChance float64 `yaml:"seed_germination_chance"`
	SeedSproutEnergy      int     `yaml:"seed_sprout_energy"`
	SeedBurialFactor      float64 `yaml:"seed_burial_factor"`
	SeedEnergyLossChance  float64 `yaml:"seed_energy_loss_chance"`

	// Insects.
	InsectMetabolism      int     `yaml:"insect_metabolism"`
	InsectLowEnergy       int     `yaml:"insect_low_energy"`
	InsectStarvationLimit int     `yaml:"insect_starvation_limit"`
	InsectEatChance       float64 `yaml:"insect_eat_chance"`
	InsectEatGain         int     `yaml:"insect_eat_gain"`
	InsectMoveChance      float64 `yaml:"insect_move_chance"`
	InsectForageRadius    int     `yaml:"insect_forage_radius"`
	InsectMatureAge       int     `yaml:"insect_mature_age"`
	InsectReproduceEnergy int     `yaml:"insect_reproduce_energy"`
	InsectReproduceChance float64 `yaml:"insect_reproduce_chance"`
	InsectReproduceCost   int     `yaml:"insect_reproduce_cost"`

	// Worms.
	WormMetabolism    int     `yaml:"worm_metabolism"`
	WormEatChance     float64 `yaml:"worm_eat_chance"`
	WormEatGain       int     `yaml:"worm_eat_gain"`
	WormNutrientGrant int     `yaml:"worm_nutrient_grant"`
	WormMoveChance    float64 `yaml:"worm_move_chance"`
	WormDeathNutrient int     `yaml:"worm_death_nutrient"`

	// Decomposition.
	DecayChance         float64 `yaml:"decay_chance"`
	DecayInPlaceChance  float64 `yaml:"decay_in_place_chance"`
	DecayNearWaterBonus float64 `yaml:"decay_near_water_bonus"`

	// Detachment salvage.
	SalvageRoot   int `yaml:"salvage_root"`
	SalvageStem   int `yaml:"salvage_stem"`
	SalvageLeaf   int `yaml:"salvage_leaf"`
	SalvageFlower int `yaml:"salvage_flower"`

	// Structural support.
	SupportBase       float64 `yaml:"support_base"`
	SupportPerHeight  float64 `yaml:"support_per_height"`
	SupportYoungCount int     `yaml:"support_young_count"`
	TrunkBand         int     `yaml:"trunk_band"`
	RootStrengthScale float64 `yaml:"root_strength_scale"`
	StemIntegrityCap  int     `yaml:"stem_integrity_cap"`

	// Water flow.
	PressureColumn      int     `yaml:"pressure_column"`
	PressureDecay       float64 `yaml:"pressure_decay"`
	PressureHeightBonus float64 `yaml:"pressure_height_bonus"`
	FlowMinSpread       int     `yaml:"flow_min_spread"`
	SwapPressure        int     `yaml:"swap_pressure"`
	FountainPressure    int     `yaml:"fountain_pressure"`
	AbsorbSoilRate      int     `yaml:"absorb_soil_rate"`
	AbsorbDeadRate      int     `yaml:"absorb_dead_rate"`

	// Soil moisture.
	SoilWetThreshold int `yaml:"soil_wet_threshold"`
	SoilDryThreshold int `yaml:"soil_dry_threshold"`
	SoilDiffuseRate  int `yaml:"soil_diffuse_rate"`
	SoilBalanceRate  int `yaml:"soil_balance_rate"`
	RootSuction      int `yaml:"root_suction"`

	// Gravity.
	SinkChanceSeed   float64 `yaml:"sink_chance_seed"`
	SinkChanceDead   float64 `yaml:"sink_chance_dead"`
	SinkChanceInsect float64 `yaml:"sink_chance_insect"`
	InsectFallChance float64 `yaml:"insect_fall_chance"`
	SlideChance      float64 `yaml:"slide_chance"`

	// Erosion.
	ErosionMinWater      int     `yaml:"erosion_min_water"`
	ErosionChance        float64 `yaml:"erosion_chance"`
	ErosionPartialChance float64 `yaml:"erosion_partial_chance"`

	// Environment hooks.
	SunlightEnergy int     `yaml:"sunlight_energy"`
	RainChance     float64 `yaml:"rain_chance"`
	RainAmount     int     `yaml:"rain_amount"`
}

// Config controls the garden simulation dimensions and tunables.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  192,
		Height: 128,
		Seed:   1337,
		Params: Params{
			SoilDepth:        0, // 0 means a quarter of the grid height
			SoilInitWater:    18,
			SoilInitNutrient: 25,
			StartSeeds:       6,
			StartSeedEnergy:  100,

			GrowthRate:           1.0,
			PlantMetabolism:      1,
			PlantWaterNeed:       5,
			PlantSurviveChance:   0.1,
			DroughtPenaltyRoot:   2,
			DroughtPenaltyStem:   1,
			DroughtPenaltyLeaf:   3,
			DroughtPenaltyFlower: 2,

			RootAbsorbMax:    12,
			RootGrowthEnergy: 40,
			RootGrowthChance: 0.12,
			RootSplitFrac:    0.45,
			RootSurfaceDepth: 4,
			RootMassForStem:  4,
			StemSproutChance: 0.2,

			StemGrowthEnergy:    50,
			StemGrowthChance:    0.15,
			StemMaxHeight:       24,
			LeafSproutChance:    0.18,
			FlowerBandFrac:      0.75,
			FlowerConvertChance: 0.05,
			FlowerVariantCount:  4,

			LeafEnergyGain:     2,
			LeafEnergyCap:      200,
			LeafAdequateWater:  10,
			LeafShareChance:    0.25,
			LeafShareThreshold: 30,
			LeafShareAmount:    10,

			FlowerSeedEnergy: 120,
			FlowerSeedChance: 0.02,
			FlowerSeedCost:   40,
			PetalFadeChance:  0.05,
			PetalFadeAmount:  2,

			SeedGerminationWater:  20,
			SeedGerminationChance: 0.3,
			SeedSproutEnergy:      15,
			SeedBurialFactor:      0.15,
			SeedEnergyLossChance:  0.2,

			InsectMetabolism:      1,
			InsectLowEnergy:       30,
			InsectStarvationLimit: 60,
			InsectEatChance:       0.5,
			InsectEatGain:         25,
			InsectMoveChance:      0.6,
			InsectForageRadius:    3,
			InsectMatureAge:       40,
			InsectReproduceEnergy: 150,
			InsectReproduceChance: 0.01,
			InsectReproduceCost:   60,

			WormMetabolism:    1,
			WormEatChance:     0.8,
			WormEatGain:       30,
			WormNutrientGrant: 20,
			WormMoveChance:    0.5,
			WormDeathNutrient: 30,

			DecayChance:         0.08,
			DecayInPlaceChance:  0.02,
			DecayNearWaterBonus: 0.04,

			SalvageRoot:   12,
			SalvageStem:   10,
			SalvageLeaf:   6,
			SalvageFlower: 8,

			SupportBase:       1.0,
			SupportPerHeight:  0.15,
			SupportYoungCount: 30,
			TrunkBand:         3,
			RootStrengthScale: 1.0,
			StemIntegrityCap:  200,

			PressureColumn:      5,
			PressureDecay:       0.7,
			PressureHeightBonus: 0.05,
			FlowMinSpread:       15,
			SwapPressure:        140,
			FountainPressure:    180,
			AbsorbSoilRate:      10,
			AbsorbDeadRate:      4,

			SoilWetThreshold: 20,
			SoilDryThreshold: 5,
			SoilDiffuseRate:  4,
			SoilBalanceRate:  2,
			RootSuction:      8,

			SinkChanceSeed:   0.4,
			SinkChanceDead:   0.25,
			SinkChanceInsect: 0.1,
			InsectFallChance: 0.3,
			SlideChance:      0.5,

			ErosionMinWater:      100,
			ErosionChance:        0.02,
			ErosionPartialChance: 0.5,

			SunlightEnergy: 2,
			RainChance:     0.02,
			RainAmount:     80,
		},
	}
}

// Validate reports configuration values the simulation cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Params.GrowthRate < 0 {
		return fmt.Errorf("growth_rate must not be negative, got %f", c.Params.GrowthRate)
	}
	if c.Params.RootSplitFrac < 0 || c.Params.RootSplitFrac > 1 {
		return fmt.Errorf("root_split_frac must be in [0,1], got %f", c.Params.RootSplitFrac)
	}
	if c.Params.PressureDecay <= 0 || c.Params.PressureDecay > 1 {
		return fmt.Errorf("pressure_decay must be in (0,1], got %f", c.Params.PressureDecay)
	}
	return nil
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromMap populates the config from flag-style key/value pairs. Dimension and
// seed keys are handled here; everything else routes through the parameter
// setters so unknown keys are ignored rather than fatal.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	for key, v := range cfg {
		switch key {
		case "w", "h", "seed":
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			if c.Params.setFloat(key, parsed) {
				continue
			}
		}
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.setInt(key, parsed)
		}
	}
	return c
}

// setFloat updates a float-valued parameter by key, clamping probabilities
// into [0, 1]. Unknown keys report false.
func (p *Params) setFloat(key string, value float64) bool {
	chance := func(dst *float64) bool {
		if value < 0 {
			value = 0
		}
		if value > 1 {
			value = 1
		}
		*dst = value
		return true
	}
	switch key {
	case "growth_rate":
		if value < 0 {
			value = 0
		}
		p.GrowthRate = value
		return true
	case "plant_survive_chance":
		return chance(&p.PlantSurviveChance)
	case "root_growth_chance":
		return chance(&p.RootGrowthChance)
	case "root_split_frac":
		return chance(&p.RootSplitFrac)
	case "stem_sprout_chance":
		return chance(&p.StemSproutChance)
	case "stem_growth_chance":
		return chance(&p.StemGrowthChance)
	case "leaf_sprout_chance":
		return chance(&p.LeafSproutChance)
	case "leaf_share_chance":
		return chance(&p.LeafShareChance)
	case "flower_band_frac":
		return chance(&p.FlowerBandFrac)
	case "flower_convert_chance":
		return chance(&p.FlowerConvertChance)
	case "flower_seed_chance":
		return chance(&p.FlowerSeedChance)
	case "petal_fade_chance":
		return chance(&p.PetalFadeChance)
	case "seed_germination_chance":
		return chance(&p.SeedGerminationChance)
	case "seed_burial_factor":
		if value < 0 {
			value = 0
		}
		p.SeedBurialFactor = value
		return true
	case "seed_energy_loss_chance":
		return chance(&p.SeedEnergyLossChance)
	case "insect_eat_chance":
		return chance(&p.InsectEatChance)
	case "insect_move_chance":
		return chance(&p.InsectMoveChance)
	case "insect_reproduce_chance":
		return chance(&p.InsectReproduceChance)
	case "worm_eat_chance":
		return chance(&p.WormEatChance)
	case "worm_move_chance":
		return chance(&p.WormMoveChance)
	case "decay_chance":
		return chance(&p.DecayChance)
	case "decay_in_place_chance":
		return chance(&p.DecayInPlaceChance)
	case "decay_near_water_bonus":
		return chance(&p.DecayNearWaterBonus)
	case "support_base":
		if value < 0 {
			value = 0
		}
		p.SupportBase = value
		return true
	case "support_per_height":
		if value < 0 {
			value = 0
		}
		p.SupportPerHeight = value
		return true
	case "root_strength_scale":
		if value < 0 {
			value = 0
		}
		p.RootStrengthScale = value
		return true
	case "pressure_decay":
		if value <= 0 || value > 1 {
			return false
		}
		p.PressureDecay = value
		return true
	case "pressure_height_bonus":
		if value < 0 {
			value = 0
		}
		p.PressureHeightBonus = value
		return true
	case "sink_chance_seed":
		return chance(&p.SinkChanceSeed)
	case "sink_chance_dead":
		return chance(&p.SinkChanceDead)
	case "sink_chance_insect":
		return chance(&p.SinkChanceInsect)
	case "insect_fall_chance":
		return chance(&p.InsectFallChance)
	case "slide_chance":
		return chance(&p.SlideChance)
	case "erosion_chance":
		return chance(&p.ErosionChance)
	case "erosion_partial_chance":
		return chance(&p.ErosionPartialChance)
	case "rain_chance":
		return chance(&p.RainChance)
	}
	return false
}

// setInt updates an integer-valued parameter by key. Negative values are
// rejected. Unknown keys report false.
func (p *Params) setInt(key string, value int) bool {
	if value < 0 {
		return false
	}
	switch key {
	case "soil_depth":
		p.SoilDepth = value
	case "soil_init_water":
		p.SoilInitWater = value
	case "soil_init_nutrient":
		p.SoilInitNutrient = value
	case "start_seeds":
		p.StartSeeds = value
	case "start_seed_energy":
		p.StartSeedEnergy = value
	case "plant_metabolism":
		p.PlantMetabolism = value
	case "plant_water_need":
		p.PlantWaterNeed = value
	case "root_absorb_max":
		p.RootAbsorbMax = value
	case "root_growth_energy":
		p.RootGrowthEnergy = value
	case "root_surface_depth":
		p.RootSurfaceDepth = value
	case "root_mass_for_stem":
		p.RootMassForStem = value
	case "stem_growth_energy":
		p.StemGrowthEnergy = value
	case "stem_max_height":
		p.StemMaxHeight = value
	case "flower_variant_count":
		if value < 1 {
			return false
		}
		p.FlowerVariantCount = value
	case "leaf_energy_gain":
		p.LeafEnergyGain = value
	case "leaf_energy_cap":
		p.LeafEnergyCap = value
	case "leaf_adequate_water":
		p.LeafAdequateWater = value
	case "leaf_share_threshold":
		p.LeafShareThreshold = value
	case "leaf_share_amount":
		p.LeafShareAmount = value
	case "flower_seed_energy":
		p.FlowerSeedEnergy = value
	case "flower_seed_cost":
		p.FlowerSeedCost = value
	case "petal_fade_amount":
		p.PetalFadeAmount = value
	case "seed_germination_water":
		p.SeedGerminationWater = value
	case "seed_sprout_energy":
		p.SeedSproutEnergy = value
	case "insect_metabolism":
		p.InsectMetabolism = value
	case "insect_low_energy":
		p.InsectLowEnergy = value
	case "insect_starvation_limit":
		p.InsectStarvationLimit = value
	case "insect_eat_gain":
		p.InsectEatGain = value
	case "insect_forage_radius":
		p.InsectForageRadius = value
	case "insect_mature_age":
		p.InsectMatureAge = value
	case "insect_reproduce_energy":
		p.InsectReproduceEnergy = value
	case "insect_reproduce_cost":
		p.InsectReproduceCost = value
	case "worm_metabolism":
		p.WormMetabolism = value
	case "worm_eat_gain":
		p.WormEatGain = value
	case "worm_nutrient_grant":
		p.WormNutrientGrant = value
	case "worm_death_nutrient":
		p.WormDeathNutrient = value
	case "salvage_root":
		p.SalvageRoot = value
	case "salvage_stem":
		p.SalvageStem = value
	case "salvage_leaf":
		p.SalvageLeaf = value
	case "salvage_flower":
		p.SalvageFlower = value
	case "support_young_count":
		p.SupportYoungCount = value
	case "trunk_band":
		p.TrunkBand = value
	case "stem_integrity_cap":
		if value < 1 {
			return false
		}
		p.StemIntegrityCap = value
	case "pressure_column":
		p.PressureColumn = value
	case "flow_min_spread":
		p.FlowMinSpread = value
	case "swap_pressure":
		p.SwapPressure = value
	case "fountain_pressure":
		p.FountainPressure = value
	case "absorb_soil_rate":
		p.AbsorbSoilRate = value
	case "absorb_dead_rate":
		p.AbsorbDeadRate = value
	case "soil_wet_threshold":
		p.SoilWetThreshold = value
	case "soil_dry_threshold":
		p.SoilDryThreshold = value
	case "soil_diffuse_rate":
		p.SoilDiffuseRate = value
	case "soil_balance_rate":
		p.SoilBalanceRate = value
	case "root_suction":
		p.RootSuction = value
	case "erosion_min_water":
		p.ErosionMinWater = value
	case "sunlight_energy":
		p.SunlightEnergy = value
	case "rain_amount":
		p.RainAmount = value
	default:
		return false
	}
	return true
}
