//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the interactive window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("this binary was built without the GUI; rebuild with `-tags ebiten`")
		},
	}
}
