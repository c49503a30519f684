package main

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourbench/tsp"
)

func newCompareCmd(f *rootFlags) *cobra.Command {
	var names []string

	cmd := &cobra.Command{
		Use:   "compare [input]",
		Short: "Run several strategies on one instance and print a cost table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategies := make([]tsp.Strategy, 0, len(names))
			for _, name := range names {
				st, err := tsp.ParseStrategy(name)
				if err != nil {
					return err
				}
				strategies = append(strategies, st)
			}

			s, err := f.session(cmd, args)
			if err != nil {
				return err
			}
			reports, err := s.solver.Compare(cmd.Context(), s.cfg.Input, strategies...)
			if ferr := s.flush(); err == nil {
				err = ferr
			}
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			printf(tw, "STRATEGY\tCOST\tCANDIDATES\tELAPSED\tTOUR\n")
			for _, rep := range reports {
				printf(tw, "%s\t%.6f\t%d\t%s\t%s\n",
					rep.Result.Strategy, rep.Result.Cost, rep.Result.Candidates, rep.Elapsed, rep.Result.Tour)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&names, "strategies", []string{"exhaustive", "greedy"}, "strategies to run, in order")

	return cmd
}
