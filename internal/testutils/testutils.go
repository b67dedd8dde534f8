// Package testutils builds experiment directories on disk for tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Directory layout of an experiment. Mirrors the loader constants; this
// package cannot import the loader because loader tests use it.
const (
	InputDir     = "input_files"
	SimulatorDir = "simulator_parameters"
	OutputDir    = "scheduler_outputs"
)

// FiveProcessTrace has five rows. cpuTime sums to 100 with 20 on the idle
// process, so CPU utilization is 99.2.
const FiveProcessTrace = `id createdTime startedTime terminatedTime cpuTime turnaroundTime
0  0           0           100            20      100
1  0           10          30             10      30
2  5           30          60             20      55
3  10          60          90             30      80
4  1           2           12             20      11
`

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "Should create directory for %s", path)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Should create file %s", path)
}

// CreateTempDir creates a temporary directory holding files, keyed by
// slash-separated relative path.
func CreateTempDir(t testing.TB, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		WriteFile(t, filepath.Join(root, filepath.FromSlash(name)), content)
	}
	return root
}

// ExperimentBuilder assembles an experiment directory file by file.
type ExperimentBuilder struct {
	files map[string]string
}

// NewExperiment returns an empty builder. Build always creates the three
// subdirectories, even when nothing was added to them.
func NewExperiment() *ExperimentBuilder {
	return &ExperimentBuilder{files: map[string]string{}}
}

// Input adds input_parameters_seed<seed>.txt.
func (b *ExperimentBuilder) Input(seed, content string) *ExperimentBuilder {
	b.files[InputDir+"/input_parameters_seed"+seed+".txt"] = content
	return b
}

// Simulator adds simulator_parameters_seed<seed>.prp.
func (b *ExperimentBuilder) Simulator(seed, content string) *ExperimentBuilder {
	b.files[SimulatorDir+"/simulator_parameters_seed"+seed+".prp"] = content
	return b
}

// Output adds output_seed_<seed>.out under the scheduler directory.
func (b *ExperimentBuilder) Output(scheduler, seed, content string) *ExperimentBuilder {
	b.files[OutputDir+"/"+scheduler+"/output_seed_"+seed+".out"] = content
	return b
}

// File adds an arbitrary file relative to the experiment root.
func (b *ExperimentBuilder) File(name, content string) *ExperimentBuilder {
	b.files[name] = content
	return b
}

// Build writes the experiment to a temporary directory and returns its root.
func (b *ExperimentBuilder) Build(t testing.TB) string {
	t.Helper()
	root := CreateTempDir(t, b.files)
	for _, dir := range []string{InputDir, SimulatorDir, OutputDir} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	return root
}

// Standard is two schedulers (fcfs, rr) over seeds 1 and 2, each run using
// FiveProcessTrace. Input seeds carry alpha=<seed> and quantum=4; seed 1 has
// simulator parameters cores=1.
func Standard() *ExperimentBuilder {
	b := NewExperiment().
		Input("1", "alpha=1\nquantum=4\n").
		Input("2", "alpha=2\nquantum=4\n").
		Simulator("1", "cores=1\n")
	for _, sched := range []string{"fcfs", "rr"} {
		for _, seed := range []string{"1", "2"} {
			b.Output(sched, seed, FiveProcessTrace)
		}
	}
	return b
}
