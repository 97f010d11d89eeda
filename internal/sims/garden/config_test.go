package garden

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero width must not validate")
	}

	cfg = DefaultConfig()
	cfg.Params.PressureDecay = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero pressure decay must not validate")
	}

	cfg = DefaultConfig()
	cfg.Params.RootSplitFrac = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("root split fraction above 1 must not validate")
	}
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.yaml")
	data := []byte("width: 64\nheight: 48\nseed: 7\nparams:\n  growth_rate: 2.0\n  erosion_min_water: 80\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 || cfg.Seed != 7 {
		t.Fatalf("dimensions = %dx%d seed %d, want 64x48 seed 7", cfg.Width, cfg.Height, cfg.Seed)
	}
	if cfg.Params.GrowthRate != 2.0 {
		t.Fatalf("growth rate = %f, want 2.0", cfg.Params.GrowthRate)
	}
	if cfg.Params.ErosionMinWater != 80 {
		t.Fatalf("erosion min water = %d, want 80", cfg.Params.ErosionMinWater)
	}
	// Untouched keys keep their defaults.
	if cfg.Params.StartSeeds != DefaultConfig().Params.StartSeeds {
		t.Fatal("unset parameter must keep its default")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file must error")
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                      "40",
		"h":                      "30",
		"seed":                   "99",
		"growth_rate":            "1.5",
		"stem_max_height":        "12",
		"no_such_parameter":      "3",
		"seed_germination_water": "junk",
	})
	if cfg.Width != 40 || cfg.Height != 30 || cfg.Seed != 99 {
		t.Fatalf("dimensions = %dx%d seed %d, want 40x30 seed 99", cfg.Width, cfg.Height, cfg.Seed)
	}
	if cfg.Params.GrowthRate != 1.5 {
		t.Fatalf("growth rate = %f, want 1.5", cfg.Params.GrowthRate)
	}
	if cfg.Params.StemMaxHeight != 12 {
		t.Fatalf("stem max height = %d, want 12", cfg.Params.StemMaxHeight)
	}
	// Unknown keys and unparseable values fall back to defaults.
	def := DefaultConfig().Params
	if cfg.Params.SeedGerminationWater != def.SeedGerminationWater {
		t.Fatal("unparseable value must keep the default")
	}
}

func TestSetFloatClampsProbabilities(t *testing.T) {
	p := DefaultConfig().Params
	if !p.setFloat("erosion_chance", 1.5) {
		t.Fatal("erosion_chance is a known key")
	}
	if p.ErosionChance != 1.0 {
		t.Fatalf("erosion chance = %f, want clamped 1.0", p.ErosionChance)
	}
	if !p.setFloat("insect_eat_chance", -0.5) {
		t.Fatal("insect_eat_chance is a known key")
	}
	if p.InsectEatChance != 0 {
		t.Fatalf("insect eat chance = %f, want clamped 0", p.InsectEatChance)
	}
	if p.setFloat("not_a_key", 0.5) {
		t.Fatal("unknown float keys must report false")
	}
}

func TestSetIntRejectsNegative(t *testing.T) {
	p := DefaultConfig().Params
	if p.setInt("stem_max_height", -3) {
		t.Fatal("negative values must be rejected")
	}
	if !p.setInt("stem_max_height", 40) {
		t.Fatal("stem_max_height is a known key")
	}
	if p.StemMaxHeight != 40 {
		t.Fatalf("stem max height = %d, want 40", p.StemMaxHeight)
	}
	if p.setInt("not_a_key", 1) {
		t.Fatal("unknown int keys must report false")
	}
}
