package loader

import (
	"path/filepath"
	"strings"
)

// InputSeed extracts <seed> from input_parameters_seed<seed>.<ext> or
// input_parameters_seed_<seed>.<ext>.
func InputSeed(name string) string {
	return beforeDot(strings.TrimPrefix(strings.TrimPrefix(name, InputPrefix), "_"))
}

// OutputSeed extracts <seed> from output_seed_<seed>.out.
func OutputSeed(name string) string {
	return beforeDot(strings.TrimPrefix(name, OutputPrefix))
}

// SimulatorSeed extracts the seed following the last "seed" marker
// (simulator_parameters_seed7.prp, simulator_parameters_seed_7.prp).
// Names without a marker are keyed by their stem.
func SimulatorSeed(name string) string {
	i := strings.LastIndex(name, "seed")
	if i < 0 {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	seed := beforeDot(strings.TrimPrefix(name[i+len("seed"):], "_"))
	if seed == "" {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return seed
}

func beforeDot(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}
