package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourbench/solver"
	"github.com/katalvlaran/tourbench/tsplib"
)

func newVerifyCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <input> [tour]",
		Short: "Check a tour file against its instance and print its cost",
		Long: `Verify checks that the tour visits every city of the instance exactly
once and closes on city 1. The tour defaults to the file solve would write.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.settings(cmd, args[:1])
			if err != nil {
				return err
			}
			tourPath := tsplib.TourPath(cfg.Input)
			if len(args) == 2 {
				tourPath = args[1]
			}

			cost, err := solver.Verify(cfg.Input, tourPath)
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%s: valid tour, cost %.9f\n", tourPath, cost)

			return nil
		},
	}
}
