package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourbench/tsp"
	"github.com/katalvlaran/tourbench/tsplib"
)

func newGenerateCmd() *cobra.Command {
	var (
		cities int
		seed   int64
		width  float64
		height float64
	)

	cmd := &cobra.Command{
		Use:   "generate <output>",
		Short: "Write a reproducible random instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cities < 2 {
				return fmt.Errorf("--cities must be at least 2, got %d", cities)
			}

			in := &tsplib.Instance{
				Name:    args[0],
				Comment: fmt.Sprintf("%d random cities, seed %d", cities, seed),
				Cities:  tsp.RandomCities(cities, seed, width, height),
			}
			if err := tsplib.WriteInstanceFile(args[0], in); err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "Instance with %d cities placed in %s\n", cities, args[0])

			return nil
		},
	}
	cmd.Flags().IntVarP(&cities, "cities", "n", 8, "number of cities")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the fixed default)")
	cmd.Flags().Float64Var(&width, "width", 100, "x extent")
	cmd.Flags().Float64Var(&height, "height", 100, "y extent")

	return cmd
}
