package census

import (
	"path/filepath"
	"strings"
	"testing"

	"pixelgarden/internal/sims/garden"
)

func TestTakeCoversEveryCell(t *testing.T) {
	world := garden.New(32, 24)
	world.Reset(11)
	for i := 0; i < 20; i++ {
		world.Step()
	}

	s := Take(world)
	if s.Tick != 20 {
		t.Fatalf("sample tick = %d, want 20", s.Tick)
	}

	counted := s.Air + s.Water + s.Soil + s.Plants + s.Seeds + s.Insects + s.Worms + s.Dead
	if counted != 32*24 {
		t.Fatalf("category counts sum to %d, want every one of %d cells", counted, 32*24)
	}
	if parts := s.Roots + s.Stems + s.Leaves + s.Flowers; parts != s.Plants {
		t.Fatalf("plant part counts sum to %d, want %d", parts, s.Plants)
	}
	if s.Soil == 0 {
		t.Fatal("a freshly seeded world must hold soil")
	}
}

func TestPlotNeedsTwoSamples(t *testing.T) {
	if got := Plot([]Sample{{Tick: 1}}, 8); got != "" {
		t.Fatal("a single sample cannot be plotted")
	}
	samples := []Sample{
		{Tick: 0, Plants: 2, Insects: 1},
		{Tick: 50, Plants: 8, Insects: 3},
		{Tick: 100, Plants: 14, Insects: 2},
	}
	if got := Plot(samples, 8); got == "" {
		t.Fatal("plot output must not be empty")
	}
}

func TestSummaryMentionsEveryPopulation(t *testing.T) {
	out := Summary(Sample{Tick: 42, Plants: 7, Insects: 3, Worms: 1, Dead: 5})
	for _, want := range []string{"tick 42", "plants", "insects", "worms", "dead", "nutrient"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestWriteCSVSeries(t *testing.T) {
	samples := []Sample{
		{Tick: 0, Plants: 2, TotalWater: 900},
		{Tick: 50, Plants: 9, Insects: 1, TotalWater: 870},
	}
	var buf strings.Builder
	if err := WriteCSV(&buf, samples); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "tick,air,water") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "50,") || !strings.Contains(lines[2], ",9,") {
		t.Fatalf("unexpected second row %q", lines[2])
	}
}

func TestRecorderAppendsAndCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "census.db")
	rec, err := OpenRecorder(path)
	if err != nil {
		t.Fatalf("OpenRecorder: %v", err)
	}
	defer rec.Close()

	if err := rec.Append(Sample{Tick: 10, Plants: 3, TotalWater: 500}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := rec.Append(Sample{Tick: 20, Plants: 5, TotalWater: 480}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	// Re-recording a tick replaces the row instead of duplicating it.
	if err := rec.Append(Sample{Tick: 20, Plants: 6, TotalWater: 470}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	n, err := rec.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Fatalf("row count = %d, want 2", n)
	}
}
