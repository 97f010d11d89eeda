//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"pixelgarden/internal/app"
	"pixelgarden/internal/ui"
)

func newGUICmd() *cobra.Command {
	opts := runOptions{}
	scale := 6
	tps := 30
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the interactive window",
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := loadWorld(opts)
			if err != nil {
				return err
			}

			game := app.New(world, scale, world.Config().Seed)
			size := world.Size()

			ebiten.SetWindowTitle("pixelgarden")
			ebiten.SetTPS(tps)
			ebiten.SetWindowSize(size.W*scale+ui.DefaultPanelWidth, size.H*scale)

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	fs.StringArrayVar(&opts.sets, "set", nil, "parameter override key=value (repeatable)")
	fs.IntVar(&opts.width, "width", 0, "grid width (overrides config)")
	fs.IntVar(&opts.height, "height", 0, "grid height (overrides config)")
	fs.Int64Var(&opts.seed, "seed", 0, "simulation seed (0 uses the config seed)")
	fs.IntVar(&scale, "scale", scale, "window pixels per cell")
	fs.IntVar(&tps, "tps", tps, "simulation ticks per second")
	return cmd
}
