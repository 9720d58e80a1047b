package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"voxel-ca/internal/core"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in presets and their default parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			factories := core.Presets()
			for _, name := range core.PresetNames() {
				fmt.Fprintln(out, name)
				for _, g := range factories[name](nil).Parameters().Groups {
					fmt.Fprintf(out, "  %s\n", g.Name)
					for _, p := range g.Params {
						fmt.Fprintf(out, "    %-12s %-8s %s\n", p.Key, p.Value, p.Label)
					}
				}
			}
			return nil
		},
	}
}
