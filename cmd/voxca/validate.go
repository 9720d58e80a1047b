package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"voxel-ca/internal/ruleconf"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a program file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := ruleconf.Load(args[0])
			if err != nil {
				return err
			}
			g, err := file.Grid()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			p, err := file.Program()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			size := g.Size()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s, %s %dx%dx%d, %d stages, %d generations\n",
				p.Name, g.Topology(), size.X, size.Y, size.Z, len(p.Stages), p.TotalGenerations())
			return nil
		},
	}
}
