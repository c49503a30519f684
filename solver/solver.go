// Package solver is the facade that turns a coordinate file into a tour
// file: read the instance, run one tsp strategy, write the tour, report
// where it went.
//
// Every call is independent: the registry, the cost model and the best
// tour are built per call and dropped afterwards, so one Solver may be
// reused or shared across goroutines.
package solver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/tourbench/tsp"
	"github.com/katalvlaran/tourbench/tsplib"
)

// Recorder receives per-run measurements. *metrics.Collector implements it.
type Recorder interface {
	ObserveSolve(strategy string, cities, candidates int, cost float64, elapsed time.Duration)
	ObserveFailure(strategy string)
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the structured logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder attaches a metrics sink.
func WithRecorder(r Recorder) Option {
	return func(s *Solver) { s.recorder = r }
}

// Solver runs one configured strategy against instance files.
type Solver struct {
	opts     tsp.Options
	logger   *slog.Logger
	recorder Recorder
}

// New returns a Solver for opts.
func New(opts tsp.Options, options ...Option) *Solver {
	s := &Solver{opts: opts, logger: slog.Default()}
	for _, o := range options {
		o(s)
	}

	return s
}

// Report describes one completed run.
type Report struct {
	RunID   string
	Input   string
	Output  string // empty when no tour file was written
	Cities  int
	Result  tsp.Result
	Elapsed time.Duration
}

// Solve reads inputPath, runs the configured strategy and writes the best
// tour next to the input (see tsplib.TourPath). Report.Output is the path of
// the written tour file.
//
// Failures to read, solve or write are returned; nothing is written when
// the search fails.
func (s *Solver) Solve(ctx context.Context, inputPath string) (Report, error) {
	rep, err := s.run(ctx, inputPath, s.opts)
	if err != nil {
		return Report{}, err
	}

	out := tsplib.TourPath(inputPath)
	if err = tsplib.WriteTourFile(out, rep.Result.Tour); err != nil {
		s.fail(s.opts.Strategy)
		s.logger.Error("write tour failed", "run_id", rep.RunID, "output", out, "error", err)
		return Report{}, fmt.Errorf("write tour: %w", err)
	}
	rep.Output = out
	s.logger.Info("tour written", "run_id", rep.RunID, "output", out)
	s.record(rep)

	return rep, nil
}

// Compare runs each strategy on the same instance and returns one report
// per strategy, in order. No tour files are written.
func (s *Solver) Compare(ctx context.Context, inputPath string, strategies ...tsp.Strategy) ([]Report, error) {
	reports := make([]Report, 0, len(strategies))
	for _, st := range strategies {
		opts := s.opts
		opts.Strategy = st
		rep, err := s.run(ctx, inputPath, opts)
		if err != nil {
			return nil, err
		}
		s.record(rep)
		reports = append(reports, rep)
	}

	return reports, nil
}

func (s *Solver) run(ctx context.Context, inputPath string, opts tsp.Options) (Report, error) {
	var (
		runID  = uuid.NewString()
		logger = s.logger.With("run_id", runID, "strategy", opts.Strategy.String())
	)

	in, err := tsplib.ReadInstanceFile(inputPath)
	if err != nil {
		s.fail(opts.Strategy)
		return Report{}, err
	}
	reg, err := in.Registry()
	if err != nil {
		s.fail(opts.Strategy)
		return Report{}, fmt.Errorf("%s: %w", inputPath, err)
	}

	logger.Info("solve started", "input", inputPath, "cities", reg.Len())
	start := time.Now()
	res, err := tsp.Solve(ctx, reg, opts)
	elapsed := time.Since(start)
	if err != nil {
		s.fail(opts.Strategy)
		logger.Error("solve failed", "error", err)
		return Report{}, fmt.Errorf("solve %s: %w", inputPath, err)
	}
	logger.Info("solve finished",
		"cities", reg.Len(),
		"cost", res.Cost,
		"candidates", res.Candidates,
		"elapsed", elapsed,
	)
	return Report{
		RunID:   runID,
		Input:   inputPath,
		Cities:  reg.Len(),
		Result:  res,
		Elapsed: elapsed,
	}, nil
}

// record reports a fully successful run, tour file included.
func (s *Solver) record(rep Report) {
	if s.recorder != nil {
		s.recorder.ObserveSolve(rep.Result.Strategy.String(), rep.Cities, rep.Result.Candidates, rep.Result.Cost, rep.Elapsed)
	}
}

func (s *Solver) fail(st tsp.Strategy) {
	if s.recorder != nil {
		s.recorder.ObserveFailure(st.String())
	}
}

// Verify checks that the tour file at tourPath is a valid closed tour for
// the instance at instancePath and returns its cost.
func Verify(instancePath, tourPath string) (float64, error) {
	in, err := tsplib.ReadInstanceFile(instancePath)
	if err != nil {
		return 0, err
	}
	reg, err := in.Registry()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", instancePath, err)
	}
	tour, err := tsplib.ReadTourFile(tourPath)
	if err != nil {
		return 0, err
	}
	cost, err := tsp.TourCost(tsp.NewDense(reg), tour)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", tourPath, err)
	}

	return cost, nil
}
