// Package loader scans an experiment directory and materializes its parameter
// files and scheduler traces.
//
// Expected layout:
//
//	<root>/input_files/input_parameters_seed<seed>.<ext>
//	<root>/simulator_parameters/*simulator_parameters*
//	<root>/scheduler_outputs/<scheduler>/output_seed_<seed>.out
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"schedlab/internal/logger"
	"schedlab/internal/ordered"
	"schedlab/internal/params"
	"schedlab/internal/trace"
)

// Directory and file name conventions.
const (
	InputDir     = "input_files"
	SimulatorDir = "simulator_parameters"
	OutputDir    = "scheduler_outputs"

	InputPrefix      = "input_parameters_seed"
	SimulatorMarker  = "simulator_parameters"
	OutputPrefix     = "output_seed_"
	OutputExt        = ".out"
	outputGlobSuffix = OutputPrefix + "*" + OutputExt
)

// SeededParams maps seed to parameter table in load order.
type SeededParams = ordered.Map[string, *params.Table]

// SeededTraces maps seed to trace in load order.
type SeededTraces = ordered.Map[string, *trace.Trace]

// OutputSet maps scheduler name to its seeded traces.
type OutputSet = ordered.Map[string, *SeededTraces]

// Result bundles everything loaded from one experiment root.
type Result struct {
	InputParameters     *SeededParams
	SimulatorParameters *SeededParams
	Outputs             *OutputSet
}

var log = logger.NewStyledLogger("Loader")

// Load reads the three experiment sub-directories under root.
func Load(root string) (*Result, error) {
	input, err := LoadInputParameters(filepath.Join(root, InputDir))
	if err != nil {
		return nil, err
	}
	sim, err := LoadSimulatorParameters(filepath.Join(root, SimulatorDir))
	if err != nil {
		return nil, err
	}
	outputs, err := LoadOutputData(filepath.Join(root, OutputDir))
	if err != nil {
		return nil, err
	}
	log.Info("Loaded experiment", "path", root,
		"seeds", input.Len(), "simulator_files", sim.Len(), "schedulers", outputs.Len())
	return &Result{
		InputParameters:     input,
		SimulatorParameters: sim,
		Outputs:             outputs,
	}, nil
}

// LoadInputParameters parses every input_parameters_seed* file in dir.
// Files are visited in lexical order, which is the order seeds are reported in.
func LoadInputParameters(dir string) (*SeededParams, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list input parameters: %w", err)
	}

	out := ordered.New[string, *params.Table](len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), InputPrefix) {
			continue
		}
		seed := InputSeed(e.Name())
		table, err := params.ParseFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		log.Debug("Loaded input parameters", "seed", seed, "params", table.Len())
		out.Set(seed, table)
	}
	return out, nil
}

// LoadSimulatorParameters parses every file in dir whose name contains
// simulator_parameters, keyed by the seed in its name (or its stem).
// Every file keeps its own entry: a seed already taken falls back to the
// file's stem, then to its full name.
func LoadSimulatorParameters(dir string) (*SeededParams, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulator parameters: %w", err)
	}

	out := ordered.New[string, *params.Table](len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.Contains(e.Name(), SimulatorMarker) {
			continue
		}
		key := SimulatorSeed(e.Name())
		table, err := params.ParseFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		if out.Has(key) {
			key = uniqueKey(out, e.Name())
			log.Warn("Duplicate simulator parameter seed, keyed by file name", "key", key, "file", e.Name())
		}
		out.Set(key, table)
	}
	return out, nil
}

func uniqueKey(set *SeededParams, name string) string {
	if stem := strings.TrimSuffix(name, filepath.Ext(name)); !set.Has(stem) {
		return stem
	}
	return name
}

// LoadOutputData reads output_seed_*.out from every scheduler sub-directory of dir.
// A malformed trace aborts the load.
func LoadOutputData(dir string) (*OutputSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduler outputs: %w", err)
	}

	out := ordered.New[string, *SeededTraces](len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		scheduler := e.Name()
		files, err := filepath.Glob(filepath.Join(dir, scheduler, outputGlobSuffix))
		if err != nil {
			return nil, err
		}

		traces := ordered.New[string, *trace.Trace](len(files))
		for _, path := range files {
			seed := OutputSeed(filepath.Base(path))
			tr, err := trace.ReadFile(path)
			if err != nil {
				return nil, err
			}
			log.Debug("Loaded trace", "scheduler", scheduler, "seed", seed, "rows", tr.Len())
			traces.Set(seed, tr)
		}
		out.Set(scheduler, traces)
	}
	return out, nil
}
