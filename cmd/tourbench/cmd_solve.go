package main

import (
	"github.com/spf13/cobra"
)

func newSolveCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [input]",
		Short: "Solve an instance and write <name>.tour next to it",
		Long: `Solve reads the coordinate file (sample.tsp when omitted), runs the
selected strategy and writes the best tour found into the same directory,
replacing the input extension with .tour.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.session(cmd, args)
			if err != nil {
				return err
			}

			rep, err := s.solver.Solve(cmd.Context(), s.cfg.Input)
			if ferr := s.flush(); err == nil {
				err = ferr
			}
			if err != nil {
				return err
			}

			printf(cmd.OutOrStdout(), "TSP Solution placed in %s\n", rep.Output)

			return nil
		},
	}
}
