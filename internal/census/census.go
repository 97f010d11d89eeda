// Package census summarizes world state per tick for headless runs and
// long-run recording.
package census

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"

	"pixelgarden/internal/sims/garden"
)

// Sample is one tick's population and resource totals.
type Sample struct {
	Tick uint64

	Air    int
	Water  int
	Soil   int
	Plants int
	Seeds  int
	Insects int
	Worms  int
	Dead   int

	Roots   int
	Stems   int
	Leaves  int
	Flowers int

	TotalWater    int
	TotalEnergy   int
	TotalNutrient int
}

// Take reads the world's attribute arrays and tallies a sample.
func Take(w *garden.World) Sample {
	g := w.Grid()
	s := Sample{Tick: w.Tick()}
	for i, t := range g.Type {
		switch t {
		case garden.CellAir:
			s.Air++
		case garden.CellWater:
			s.Water++
		case garden.CellSoil:
			s.Soil++
		case garden.CellPlant:
			s.Plants++
			switch g.State[i] {
			case garden.PlantRoot:
				s.Roots++
			case garden.PlantStem:
				s.Stems++
			case garden.PlantLeaf:
				s.Leaves++
			case garden.PlantFlower:
				s.Flowers++
			}
		case garden.CellSeed:
			s.Seeds++
		case garden.CellInsect:
			s.Insects++
		case garden.CellWorm:
			s.Worms++
		case garden.CellDeadMatter:
			s.Dead++
		}
		s.TotalWater += int(g.Water[i])
		s.TotalEnergy += int(g.Energy[i])
		s.TotalNutrient += int(g.Nutrient[i])
	}
	return s
}

// Plot renders the plant and insect population series as a terminal graph.
func Plot(samples []Sample, height int) string {
	if len(samples) < 2 {
		return ""
	}
	if height <= 0 {
		height = 10
	}
	plants := make([]float64, len(samples))
	insects := make([]float64, len(samples))
	for i, s := range samples {
		plants[i] = float64(s.Plants)
		insects[i] = float64(s.Insects)
	}
	return asciigraph.PlotMany(
		[][]float64{plants, insects},
		asciigraph.Height(height),
		asciigraph.Caption("plants / insects"),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
	)
}

// WriteCSV streams the sampled series as CSV with a header row.
func WriteCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	header := []string{
		"tick", "air", "water", "soil", "plants", "seeds", "insects", "worms", "dead",
		"roots", "stems", "leaves", "flowers",
		"total_water", "total_energy", "total_nutrient",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatUint(s.Tick, 10),
			strconv.Itoa(s.Air), strconv.Itoa(s.Water), strconv.Itoa(s.Soil),
			strconv.Itoa(s.Plants), strconv.Itoa(s.Seeds), strconv.Itoa(s.Insects),
			strconv.Itoa(s.Worms), strconv.Itoa(s.Dead),
			strconv.Itoa(s.Roots), strconv.Itoa(s.Stems), strconv.Itoa(s.Leaves),
			strconv.Itoa(s.Flowers),
			strconv.Itoa(s.TotalWater), strconv.Itoa(s.TotalEnergy), strconv.Itoa(s.TotalNutrient),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary formats the final sample as aligned key/value lines.
func Summary(s Sample) string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick %d\n", s.Tick)
	fmt.Fprintf(&b, "plants   %6d (roots %d, stems %d, leaves %d, flowers %d)\n",
		s.Plants, s.Roots, s.Stems, s.Leaves, s.Flowers)
	fmt.Fprintf(&b, "seeds    %6d\n", s.Seeds)
	fmt.Fprintf(&b, "insects  %6d\n", s.Insects)
	fmt.Fprintf(&b, "worms    %6d\n", s.Worms)
	fmt.Fprintf(&b, "dead     %6d\n", s.Dead)
	fmt.Fprintf(&b, "water    %6d cells, %d units held\n", s.Water, s.TotalWater)
	fmt.Fprintf(&b, "energy   %6d units held\n", s.TotalEnergy)
	fmt.Fprintf(&b, "nutrient %6d units held", s.TotalNutrient)
	return b.String()
}
