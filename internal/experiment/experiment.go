// Package experiment provides a read-only facade over one loaded experiment
// directory: parameter lookups, trace accessors, derived statistics and charts.
//
// An Experiment is loaded once by New and never mutated afterwards, so it can be
// shared freely between callers.
package experiment

import (
	"errors"
	"fmt"
	"iter"

	"schedlab/internal/loader"
	"schedlab/internal/logger"
	"schedlab/internal/params"
	"schedlab/internal/trace"
)

// Lookup errors. Every accessor reports absence through one of these,
// matched with errors.Is.
var (
	ErrSchedulerNotFound = errors.New("scheduler not found")
	ErrSeedNotFound      = errors.New("seed not found")
	ErrColumnNotFound    = trace.ErrColumnNotFound
	ErrNoIdleProcess     = errors.New("trace has no idle process")
	ErrZeroCPUTime       = errors.New("total cpu time is zero")
	ErrRaggedColumns     = errors.New("traces have different row counts")
)

// SeededTrace pairs a seed with its trace.
type SeededTrace struct {
	Seed  string
	Trace *trace.Trace
}

// Experiment is an immutable snapshot of one experiment directory.
type Experiment struct {
	directory string
	input     *loader.SeededParams
	simulator *loader.SeededParams
	outputs   *loader.OutputSet
}

var log = logger.NewStyledLogger("Experiment")

// New loads the experiment rooted at directory. Any load failure is returned.
func New(directory string) (*Experiment, error) {
	res, err := loader.Load(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to load experiment %s: %w", directory, err)
	}
	return FromResult(directory, res), nil
}

// FromResult wraps an already loaded result.
func FromResult(directory string, res *loader.Result) *Experiment {
	return &Experiment{
		directory: directory,
		input:     res.InputParameters,
		simulator: res.SimulatorParameters,
		outputs:   res.Outputs,
	}
}

// Directory returns the experiment root.
func (e *Experiment) Directory() string {
	return e.directory
}

// String implements fmt.Stringer.
func (e *Experiment) String() string {
	return "Experiment: " + e.directory
}

// AllSeeds returns the input-parameter seeds in load order.
func (e *Experiment) AllSeeds() []string {
	return e.input.Keys()
}

// Schedulers returns the scheduler names in load order.
func (e *Experiment) Schedulers() []string {
	return e.outputs.Keys()
}

// Output returns a copy of the scheduler's (seed, trace) list.
func (e *Experiment) Output(scheduler string) ([]SeededTrace, error) {
	traces, ok := e.outputs.Get(scheduler)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchedulerNotFound, scheduler)
	}
	out := make([]SeededTrace, 0, traces.Len())
	for seed, tr := range traces.All() {
		out = append(out, SeededTrace{Seed: seed, Trace: tr})
	}
	return out, nil
}

// OutputForSeed returns the trace for one (scheduler, seed) run. When the run is
// absent it logs what is available and returns a nil trace with
// ErrSchedulerNotFound or ErrSeedNotFound.
func (e *Experiment) OutputForSeed(scheduler, seed string) (*trace.Trace, error) {
	traces, ok := e.outputs.Get(scheduler)
	if !ok {
		log.Warn("Scheduler not found in output data", "scheduler", scheduler, "available", e.Schedulers())
		return nil, fmt.Errorf("%w: %s", ErrSchedulerNotFound, scheduler)
	}
	tr, ok := traces.Get(seed)
	if !ok {
		log.Warn("Seed not found for scheduler", "scheduler", scheduler, "seed", seed, "available", traces.Keys())
		return nil, fmt.Errorf("%w: %s/%s", ErrSeedNotFound, scheduler, seed)
	}
	return tr, nil
}

// InputParams returns the input parameters for seed.
func (e *Experiment) InputParams(seed string) (*params.Table, error) {
	table, ok := e.input.Get(seed)
	if !ok {
		return nil, fmt.Errorf("%w: input parameters for %s", ErrSeedNotFound, seed)
	}
	return table, nil
}

// SimulatorSeeds returns the keys of the simulator parameter files in load order.
func (e *Experiment) SimulatorSeeds() []string {
	return e.simulator.Keys()
}

// SimulatorParams returns the simulator parameters keyed by seed (or file stem).
func (e *Experiment) SimulatorParams(seed string) (*params.Table, error) {
	table, ok := e.simulator.Get(seed)
	if !ok {
		return nil, fmt.Errorf("%w: simulator parameters for %s", ErrSeedNotFound, seed)
	}
	return table, nil
}

// SimulatorParameters returns every simulator parameter table in load order.
func (e *Experiment) SimulatorParameters() []*params.Table {
	return e.simulator.Values()
}

// run is one (scheduler, seed) trace.
type run struct {
	scheduler string
	seed      string
	trace     *trace.Trace
}

// runs iterates every (scheduler, seed) trace in load order.
func (e *Experiment) runs() iter.Seq[run] {
	return func(yield func(run) bool) {
		for scheduler, traces := range e.outputs.All() {
			for seed, tr := range traces.All() {
				if !yield(run{scheduler: scheduler, seed: seed, trace: tr}) {
					return
				}
			}
		}
	}
}
