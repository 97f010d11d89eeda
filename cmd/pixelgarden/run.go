package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"pixelgarden/internal/census"
	"pixelgarden/internal/core"
	"pixelgarden/internal/sims/garden"
	"pixelgarden/internal/snapshot"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

type runOptions struct {
	configPath  string
	sets        []string
	width       int
	height      int
	seed        int64
	ticks       int
	tps         int
	rain        bool
	sun         bool
	censusEvery int
	censusDB    string
	censusCSV   string
	plot        bool
	snapshotOut string
	resumeFrom  string
}

func newRunCmd() *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation headless and report a census",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadless(opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	fs.StringArrayVar(&opts.sets, "set", nil, "parameter override key=value (repeatable)")
	fs.IntVar(&opts.width, "width", 0, "grid width (overrides config)")
	fs.IntVar(&opts.height, "height", 0, "grid height (overrides config)")
	fs.Int64Var(&opts.seed, "seed", 0, "simulation seed (0 uses the config seed)")
	fs.IntVar(&opts.ticks, "ticks", 2000, "how many ticks to run")
	fs.IntVar(&opts.tps, "tps", 0, "throttle to ticks per second (0 = unthrottled)")
	fs.BoolVar(&opts.rain, "rain", true, "spawn rain at the top row each tick")
	fs.BoolVar(&opts.sun, "sun", true, "inject sunlight each tick")
	fs.IntVar(&opts.censusEvery, "census-every", 50, "census sampling interval in ticks")
	fs.StringVar(&opts.censusDB, "census-db", "", "record census samples to this sqlite database")
	fs.StringVar(&opts.censusCSV, "census-csv", "", "write census samples to this CSV file")
	fs.BoolVar(&opts.plot, "plot", false, "print a population graph at the end")
	fs.StringVar(&opts.snapshotOut, "snapshot", "", "save the final state to this file")
	fs.StringVar(&opts.resumeFrom, "resume", "", "restore state from this snapshot before running")
	return cmd
}

func loadWorld(opts runOptions) (*garden.World, error) {
	cfg := garden.DefaultConfig()
	if opts.configPath != "" {
		var err error
		cfg, err = garden.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
	}
	if opts.width > 0 {
		cfg.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Height = opts.height
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	world := garden.NewWithConfig(cfg)
	applyOverrides(world, opts.sets)
	world.Reset(opts.seed)
	return world, nil
}

// applyOverrides routes --set pairs through the parameter setters. Unknown
// or malformed pairs are logged and ignored: the prior value stays in force.
func applyOverrides(world *garden.World, sets []string) {
	for _, kv := range sets {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			log.Printf("ignoring malformed --set %q", kv)
			continue
		}
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			if world.SetFloatParameter(key, f) {
				continue
			}
			if n, err := strconv.Atoi(value); err == nil && world.SetIntParameter(key, n) {
				continue
			}
		}
		log.Printf("ignoring unknown parameter %q", key)
	}
}

func runHeadless(opts runOptions) error {
	world, err := loadWorld(opts)
	if err != nil {
		return err
	}

	if opts.resumeFrom != "" {
		state, err := snapshot.Load(opts.resumeFrom)
		if err != nil {
			return err
		}
		if err := world.Restore(state); err != nil {
			return err
		}
		log.Printf("resumed from %s at tick %d", opts.resumeFrom, world.Tick())
	}

	var recorder *census.Recorder
	if opts.censusDB != "" {
		recorder, err = census.OpenRecorder(opts.censusDB)
		if err != nil {
			return err
		}
		defer recorder.Close()
	}

	every := opts.censusEvery
	if every < 1 {
		every = 1
	}

	var pacer *core.FixedStep
	if opts.tps > 0 {
		pacer = core.NewFixedStep(opts.tps)
	}

	size := world.Size()
	fmt.Println(titleStyle.Render(fmt.Sprintf("pixelgarden %dx%d, %d ticks", size.W, size.H, opts.ticks)))

	samples := make([]census.Sample, 0, opts.ticks/every+1)
	record := func() error {
		s := census.Take(world)
		samples = append(samples, s)
		if recorder != nil {
			return recorder.Append(s)
		}
		return nil
	}
	if err := record(); err != nil {
		return err
	}

	for t := 0; t < opts.ticks; t++ {
		if pacer != nil {
			for !pacer.ShouldStep() {
				time.Sleep(time.Millisecond)
			}
		}
		if opts.sun {
			world.Sunlight(0)
		}
		if opts.rain {
			world.Rain(0, 0)
		}
		world.Step()
		if world.Tick()%uint64(every) == 0 {
			if err := record(); err != nil {
				return err
			}
		}
	}

	final := census.Take(world)
	fmt.Println(summaryStyle.Render(census.Summary(final)))

	if opts.plot {
		if graph := census.Plot(samples, 12); graph != "" {
			fmt.Println(graph)
		}
	}

	if opts.censusCSV != "" {
		f, err := os.Create(opts.censusCSV)
		if err != nil {
			return err
		}
		if err := census.WriteCSV(f, samples); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Printf("wrote census series to %s", opts.censusCSV)
	}

	if opts.snapshotOut != "" {
		if err := snapshot.Save(opts.snapshotOut, world.Snapshot()); err != nil {
			return err
		}
		log.Printf("saved snapshot to %s", opts.snapshotOut)
	}
	return nil
}
