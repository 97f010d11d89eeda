package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)

	root := &cobra.Command{
		Use:   "pixelgarden",
		Short: "A pixel-ecosystem sandbox: plants, insects, worms, water, and soil on a shared grid",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newGUICmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
