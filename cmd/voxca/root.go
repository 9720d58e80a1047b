package main

import (
	"github.com/spf13/cobra"

	_ "voxel-ca/internal/presets/brain"
	_ "voxel-ca/internal/presets/elementary"
	_ "voxel-ca/internal/presets/life"
	_ "voxel-ca/internal/presets/tower"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "voxca",
		Short: "Run 3-D cellular automaton programs",
		Long: `voxca applies rule programs to voxel grids.

A program is either a built-in preset or a YAML file describing the grid and
its stages. Settings can also come from a --config file or VOXCA_* variables.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newValidateCmd(), newPresetsCmd())
	return root
}
