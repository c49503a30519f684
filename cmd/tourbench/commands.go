package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourbench/config"
	"github.com/katalvlaran/tourbench/metrics"
	"github.com/katalvlaran/tourbench/solver"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath      string
	strategy        string
	workers         int
	maxCities       int
	eager           bool
	logLevel        string
	logFormat       string
	metricsTextfile string
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	root := &cobra.Command{
		Use:   "tourbench",
		Short: "Brute-force and nearest-neighbor solver for small Euclidean TSP instances",
		Long: `tourbench reads a TSPLIB-style coordinate file, searches for the
shortest closed tour starting and ending at city 1 and writes it as a tour
file next to the input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML settings file")
	pf.StringVarP(&f.strategy, "strategy", "s", "", "bruteforce, exhaustive, greedy or heldkarp")
	pf.IntVarP(&f.workers, "workers", "w", 1, "goroutines for the exhaustive search")
	pf.IntVar(&f.maxCities, "max-cities", 0, "refuse exact searches above this many cities (0 = unlimited)")
	pf.BoolVar(&f.eager, "eager", false, "materialize every permutation before scoring")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&f.logFormat, "log-format", "", "text or json")
	pf.StringVar(&f.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file after the run")

	root.AddCommand(
		newSolveCmd(&f),
		newCompareCmd(&f),
		newVerifyCmd(&f),
		newGenerateCmd(),
	)

	return root
}

// settings merges the config file (or defaults) with explicitly set flags.
// A positional input argument wins over both.
func (f *rootFlags) settings(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.Changed("max-cities") {
		cfg.MaxCities = f.maxCities
	}
	if flags.Changed("eager") {
		cfg.Eager = f.eager
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if flags.Changed("metrics-textfile") {
		cfg.Metrics.Textfile = f.metricsTextfile
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// session is everything a solving subcommand needs.
type session struct {
	cfg       config.Config
	logger    *slog.Logger
	collector *metrics.Collector
	solver    *solver.Solver
}

func (f *rootFlags) session(cmd *cobra.Command, args []string) (*session, error) {
	cfg, err := f.settings(cmd, args)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:       cfg,
		logger:    cfg.NewLogger(cmd.ErrOrStderr()),
		collector: metrics.New(),
	}
	s.solver = solver.New(opts, solver.WithLogger(s.logger), solver.WithRecorder(s.collector))

	return s, nil
}

// flush writes the metrics textfile when one is configured.
func (s *session) flush() error {
	if s.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := s.collector.WriteTextfile(s.cfg.Metrics.Textfile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	s.logger.Debug("metrics written", "path", s.cfg.Metrics.Textfile)

	return nil
}

func printf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, format, a...)
}
