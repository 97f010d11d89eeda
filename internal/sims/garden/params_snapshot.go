package garden

import (
	"strconv"

	"pixelgarden/internal/core"
)

// Parameters exposes the current tunables grouped for presentation.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("soil_depth", "Soil depth", p.SoilDepth),
				intParam("start_seeds", "Starting seeds", p.StartSeeds),
			},
		},
		{
			Name: "Plants",
			Params: []core.Parameter{
				floatParam("growth_rate", "Growth rate", p.GrowthRate),
				intParam("plant_metabolism", "Plant metabolism", p.PlantMetabolism),
				floatParam("plant_survive_chance", "Survive-at-zero chance", p.PlantSurviveChance),
				intParam("root_growth_energy", "Root growth energy", p.RootGrowthEnergy),
				floatParam("root_growth_chance", "Root growth chance", p.RootGrowthChance),
				floatParam("root_split_frac", "Root split fraction", p.RootSplitFrac),
				floatParam("stem_growth_chance", "Stem growth chance", p.StemGrowthChance),
				intParam("stem_max_height", "Stem max height", p.StemMaxHeight),
				floatParam("leaf_sprout_chance", "Leaf sprout chance", p.LeafSproutChance),
				floatParam("flower_convert_chance", "Flower convert chance", p.FlowerConvertChance),
				floatParam("flower_seed_chance", "Flower seed chance", p.FlowerSeedChance),
			},
		},
		{
			Name: "Seeds",
			Params: []core.Parameter{
				intParam("seed_germination_water", "Germination water", p.SeedGerminationWater),
				floatParam("seed_germination_chance", "Germination chance", p.SeedGerminationChance),
				floatParam("seed_burial_factor", "Burial factor", p.SeedBurialFactor),
			},
		},
		{
			Name: "Insects",
			Params: []core.Parameter{
				intParam("insect_metabolism", "Insect metabolism", p.InsectMetabolism),
				intParam("insect_starvation_limit", "Starvation limit", p.InsectStarvationLimit),
				floatParam("insect_eat_chance", "Eat chance", p.InsectEatChance),
				intParam("insect_eat_gain", "Eat gain", p.InsectEatGain),
				floatParam("insect_move_chance", "Move chance", p.InsectMoveChance),
				floatParam("insect_reproduce_chance", "Reproduce chance", p.InsectReproduceChance),
			},
		},
		{
			Name: "Worms",
			Params: []core.Parameter{
				intParam("worm_eat_gain", "Eat gain", p.WormEatGain),
				floatParam("worm_move_chance", "Move chance", p.WormMoveChance),
				intParam("worm_death_nutrient", "Death nutrient", p.WormDeathNutrient),
			},
		},
		{
			Name: "Support",
			Params: []core.Parameter{
				floatParam("support_base", "Support base", p.SupportBase),
				floatParam("support_per_height", "Support per height", p.SupportPerHeight),
				intParam("support_young_count", "Young plant exemption", p.SupportYoungCount),
				intParam("trunk_band", "Trunk band", p.TrunkBand),
				floatParam("root_strength_scale", "Root strength scale", p.RootStrengthScale),
			},
		},
		{
			Name: "Water",
			Params: []core.Parameter{
				intParam("pressure_column", "Pressure column", p.PressureColumn),
				floatParam("pressure_decay", "Pressure decay", p.PressureDecay),
				intParam("flow_min_spread", "Spread pressure", p.FlowMinSpread),
				intParam("swap_pressure", "Swap pressure", p.SwapPressure),
				intParam("fountain_pressure", "Fountain pressure", p.FountainPressure),
				intParam("absorb_soil_rate", "Soil absorption", p.AbsorbSoilRate),
				intParam("erosion_min_water", "Erosion min water", p.ErosionMinWater),
				floatParam("erosion_chance", "Erosion chance", p.ErosionChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// SetFloatParameter updates a float tunable by key, clamping probabilities.
func (w *World) SetFloatParameter(key string, value float64) bool {
	return w.cfg.Params.setFloat(key, value)
}

// SetIntParameter updates an integer tunable by key.
func (w *World) SetIntParameter(key string, value int) bool {
	return w.cfg.Params.setInt(key, value)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
